// Package metrics holds the Prometheus collectors for the chat gateway.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Chat outcome labels.
const (
	OutcomeSuccess       = "success"
	OutcomeRejected      = "rejected"
	OutcomeNotConfigured = "not_configured"
	OutcomeQuota         = "quota_exceeded"
	OutcomeError         = "error"
)

type Metrics struct {
	chatRequests     *prometheus.CounterVec
	modelLatency     prometheus.Histogram
	missingInfo      prometheus.Counter
	unansweredWrites *prometheus.CounterVec
}

// New registers the collectors on reg. Passing a fresh registry keeps tests isolated.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		chatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio_chat",
			Name:      "requests_total",
			Help:      "Chat requests by outcome.",
		}, []string{"outcome"}),
		modelLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "portfolio_chat",
			Name:      "model_call_duration_seconds",
			Help:      "Latency of the model provider call.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
		missingInfo: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio_chat",
			Name:      "missing_info_total",
			Help:      "Replies flagged with the missing-info marker.",
		}),
		unansweredWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio_chat",
			Name:      "unanswered_writes_total",
			Help:      "Unanswered-question store writes by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.chatRequests, m.modelLatency, m.missingInfo, m.unansweredWrites)
	return m
}

// The methods below are nil-safe so components can run without metrics.

func (m *Metrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}
	m.chatRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveModelCall(d time.Duration) {
	if m == nil {
		return
	}
	m.modelLatency.Observe(d.Seconds())
}

func (m *Metrics) ObserveMissingInfo() {
	if m == nil {
		return
	}
	m.missingInfo.Inc()
}

func (m *Metrics) ObserveUnansweredWrite(result string) {
	if m == nil {
		return
	}
	m.unansweredWrites.WithLabelValues(result).Inc()
}
