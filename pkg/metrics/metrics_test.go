package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CountsOutcomes(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest(OutcomeSuccess)
	m.ObserveRequest(OutcomeSuccess)
	m.ObserveRequest(OutcomeQuota)
	m.ObserveMissingInfo()
	m.ObserveUnansweredWrite("ok")
	m.ObserveModelCall(150 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.chatRequests.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.chatRequests.WithLabelValues(OutcomeQuota)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.missingInfo))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.unansweredWrites.WithLabelValues("ok")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest(OutcomeError)
		m.ObserveModelCall(time.Second)
		m.ObserveMissingInfo()
		m.ObserveUnansweredWrite("error")
	})
}
