package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio-chat/pkg/metrics"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const defaultRecordTimeout = 3 * time.Second

// QuestionRecorder is an append-only store for unanswered questions.
type QuestionRecorder interface {
	Record(ctx context.Context, question string) error
}

// NoopRecorder stands in when no store is configured.
type NoopRecorder struct{}

func (NoopRecorder) Record(context.Context, string) error { return nil }

// UnansweredLogger is the side channel for knowledge gaps. Log makes at most one
// store attempt and never reports failure to its caller.
type UnansweredLogger struct {
	recorder QuestionRecorder
	breaker  *gobreaker.CircuitBreaker
	timeout  time.Duration
	disabled bool
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewUnansweredLogger(recorder QuestionRecorder, timeout time.Duration, m *metrics.Metrics, logger *zap.Logger) *UnansweredLogger {
	if recorder == nil {
		recorder = NoopRecorder{}
	}
	_, disabled := recorder.(NoopRecorder)
	if timeout <= 0 {
		timeout = defaultRecordTimeout
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "unanswered-store",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &UnansweredLogger{
		recorder: recorder,
		breaker:  breaker,
		timeout:  timeout,
		disabled: disabled,
		metrics:  m,
		logger:   logger,
	}
}

// Enabled is false when writes are skipped because no store is configured.
func (l *UnansweredLogger) Enabled() bool {
	return !l.disabled
}

// Log records question once. The write outlives request cancellation but is bounded by the
// logger's timeout. Errors and panics from the store end here.
func (l *UnansweredLogger) Log(ctx context.Context, question string) {
	if l.disabled {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			l.metrics.ObserveUnansweredWrite("error")
			l.logger.Error("Unanswered question store panicked", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	defer cancel()

	_, err := l.breaker.Execute(func() (interface{}, error) {
		return nil, l.recorder.Record(ctx, storableText(question))
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		l.metrics.ObserveUnansweredWrite("skipped")
		l.logger.Warn("Unanswered question store unavailable, skipping write", zap.Error(err))
	case err != nil:
		l.metrics.ObserveUnansweredWrite("error")
		l.logger.Error("Failed to record unanswered question", zap.Error(err))
	default:
		l.metrics.ObserveUnansweredWrite("ok")
		l.logger.Debug("Unanswered question recorded")
	}
}

// storableText drops invalid UTF-8 and NUL bytes, which Postgres text columns reject.
func storableText(s string) string {
	return strings.ReplaceAll(strings.ToValidUTF8(s, ""), "\x00", "")
}
