package repository

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-chat/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedInsert struct {
	path string
	body string
}

// newSupabaseServer fakes the PostgREST insert endpoint. Handlers block on
// release when stall is set, until the test finishes.
func newSupabaseServer(t *testing.T, stall bool) (*httptest.Server, chan capturedInsert) {
	t.Helper()

	release := make(chan struct{})
	inserts := make(chan capturedInsert, 4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		inserts <- capturedInsert{path: r.URL.Path, body: string(raw)}
		if stall {
			select {
			case <-release:
			case <-time.After(10 * time.Second):
			}
		}
		w.WriteHeader(http.StatusCreated)
	}))

	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	return srv, inserts
}

func TestSupabaseQuestionRepository_Record(t *testing.T) {
	srv, inserts := newSupabaseServer(t, false)

	repo, err := NewSupabaseQuestionRepository(srv.URL, "anon-key", "ai_learning_logs", zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, repo.Record(context.Background(), "What's your favorite book?"))

	got := <-inserts
	assert.True(t, strings.HasSuffix(got.path, "/ai_learning_logs"), got.path)
	assert.Contains(t, got.body, `"question":"What's your favorite book?"`)
}

func TestSupabaseQuestionRepository_RecordStopsAtDeadline(t *testing.T) {
	srv, inserts := newSupabaseServer(t, true)

	repo, err := NewSupabaseQuestionRepository(srv.URL, "anon-key", "ai_learning_logs", zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = repo.Record(ctx, "slow")
	elapsed := time.Since(start)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, 2*time.Second)
	<-inserts
}

func TestSupabaseQuestionRepository_RecordCanceledBeforeStart(t *testing.T) {
	srv, inserts := newSupabaseServer(t, false)

	repo, err := NewSupabaseQuestionRepository(srv.URL, "anon-key", "ai_learning_logs", zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Record(ctx, "never sent"), context.Canceled)
	assert.Empty(t, inserts)
}

func TestSupabaseQuestionRepository_LoggerTimeoutBoundsSlowStore(t *testing.T) {
	srv, inserts := newSupabaseServer(t, true)

	repo, err := NewSupabaseQuestionRepository(srv.URL, "anon-key", "ai_learning_logs", zap.NewNop())
	require.NoError(t, err)
	logger := service.NewUnansweredLogger(repo, 200*time.Millisecond, nil, zap.NewNop())

	start := time.Now()
	logger.Log(context.Background(), "What's your favorite book?")

	assert.Less(t, time.Since(start), 2*time.Second)
	<-inserts
}
