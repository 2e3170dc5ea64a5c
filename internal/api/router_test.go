package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"portfolio-chat/internal/api/handlers"
	"portfolio-chat/internal/models"
	"portfolio-chat/internal/service"
	"portfolio-chat/pkg/config"
	"portfolio-chat/pkg/metrics"
	"portfolio-chat/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubModel struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
	turns []models.ConversationTurn
}

func (m *stubModel) Generate(ctx context.Context, turns []models.ConversationTurn) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.turns = turns
	return m.reply, m.err
}

type recordingLogger struct {
	mu        sync.Mutex
	questions []string
}

func (l *recordingLogger) Log(ctx context.Context, question string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.questions = append(l.questions, question)
}

type testServer struct {
	app        *fiber.App
	unanswered *recordingLogger
}

// newTestServer wires the full router. A nil model simulates a missing credential.
func newTestServer(t *testing.T, model service.ModelClient) *testServer {
	t.Helper()

	logger := zap.NewNop()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	kb := models.NewKnowledgeBase([]models.KnowledgeEntry{
		{ID: "favorites", Content: "Favorite color: Deep Space Blue (#002642)"},
	})
	unanswered := &recordingLogger{}
	chatService := service.NewChatService(model, unanswered, "persona", kb, m, logger)
	storeLogger := service.NewUnansweredLogger(service.NoopRecorder{}, time.Second, m, logger)

	app := SetupRouter(
		handlers.NewChatHandler(chatService, logger),
		handlers.NewHealthHandler(kb, chatService, storeLogger),
		reg,
		&config.ServerConfig{CORSAllowOrigins: "*"},
		logger,
	)
	return &testServer{app: app, unanswered: unanswered}
}

func (s *testServer) do(t *testing.T, method, path, body string) (int, string, http.Header) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw), resp.Header
}

func decodeJSON(t *testing.T, body string) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func TestChat_RejectsNonPostMethods(t *testing.T) {
	model := &stubModel{reply: "hi"}
	srv := newTestServer(t, model)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		status, body, _ := srv.do(t, method, "/api/chat", "")
		assert.Equal(t, http.StatusMethodNotAllowed, status, method)
		assert.Equal(t, "Method Not Allowed", body, method)
	}
	assert.Zero(t, model.calls)
}

func TestChat_MissingCredential(t *testing.T) {
	srv := newTestServer(t, nil)

	status, body, _ := srv.do(t, http.MethodPost, "/api/chat", `{"message":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, map[string]string{"error": "Server configuration error"}, decodeJSON(t, body))
}

func TestChat_QuotaExceeded(t *testing.T) {
	model := &stubModel{err: errors.New("rate limit reached for this project")}
	srv := newTestServer(t, model)

	status, body, _ := srv.do(t, http.MethodPost, "/api/chat", `{"message":"hi","history":[]}`)

	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, map[string]string{"error": "quota_exceeded"}, decodeJSON(t, body))
	assert.Equal(t, 1, model.calls)
}

func TestChat_QuotaByStatusCode(t *testing.T) {
	model := &stubModel{err: &service.ProviderError{StatusCode: http.StatusTooManyRequests, Err: errors.New("slow down")}}
	srv := newTestServer(t, model)

	status, body, _ := srv.do(t, http.MethodPost, "/api/chat", `{"message":"hi"}`)

	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "quota_exceeded", decodeJSON(t, body)["error"])
}

func TestChat_GenericProviderFailure(t *testing.T) {
	model := &stubModel{err: errors.New("connection reset by peer")}
	srv := newTestServer(t, model)

	status, body, _ := srv.do(t, http.MethodPost, "/api/chat", `{"message":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, map[string]string{"error": "Failed to process request"}, decodeJSON(t, body))
	assert.NotContains(t, body, "connection reset")
}

func TestChat_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "malformed json", body: `{"message":`, wantErr: "Failed to process request"},
		{name: "missing message", body: `{"history":[]}`, wantErr: "Message is required"},
		{name: "empty message", body: `{"message":""}`, wantErr: "Message is required"},
		{name: "whitespace message", body: `{"message":"   "}`, wantErr: "Message is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &stubModel{reply: "hi"}
			srv := newTestServer(t, model)

			status, body, _ := srv.do(t, http.MethodPost, "/api/chat", tt.body)

			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.wantErr, decodeJSON(t, body)["error"])
			assert.Zero(t, model.calls)
		})
	}
}

func TestChat_AnsweredQuestion(t *testing.T) {
	model := &stubModel{reply: "I like **Deep Space Blue** (#002642)."}
	srv := newTestServer(t, model)

	status, body, headers := srv.do(t, http.MethodPost, "/api/chat",
		`{"message":"What's your favorite color?","history":[]}`)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]string{"response": "I like **Deep Space Blue** (#002642)."}, decodeJSON(t, body))
	assert.Empty(t, srv.unanswered.questions)
	assert.NotEmpty(t, headers.Get(middleware.RequestIDHeader))
}

func TestChat_MissingInfoIsStrippedAndLogged(t *testing.T) {
	model := &stubModel{reply: "[MISSING_INFO] I haven't mentioned a favorite book."}
	srv := newTestServer(t, model)

	status, body, _ := srv.do(t, http.MethodPost, "/api/chat",
		`{"message":"What's your favorite book?","history":[]}`)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "I haven't mentioned a favorite book.", decodeJSON(t, body)["response"])
	assert.Equal(t, []string{"What's your favorite book?"}, srv.unanswered.questions)
}

func TestChat_HistoryIsForwarded(t *testing.T) {
	model := &stubModel{reply: "Yeah."}
	srv := newTestServer(t, model)

	status, _, _ := srv.do(t, http.MethodPost, "/api/chat",
		`{"message":"And then?","history":[{"role":"user","content":"Hi"},{"role":"assistant","content":"Hey"}]}`)

	require.Equal(t, http.StatusOK, status)
	// persona, acknowledgement, two history turns, question
	require.Len(t, model.turns, 5)
	assert.Equal(t, models.RoleUser, model.turns[2].Role)
	assert.Equal(t, models.RoleModel, model.turns[3].Role)
	assert.Equal(t, "Hey", model.turns[3].Content)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubModel{})

	status, body, _ := srv.do(t, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, status)
	var got struct {
		Status          string `json:"status"`
		Entries         int    `json:"entries"`
		ModelConfigured bool   `json:"model_configured"`
		StoreEnabled    bool   `json:"store_enabled"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, 1, got.Entries)
	assert.True(t, got.ModelConfigured)
	assert.False(t, got.StoreEnabled)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubModel{reply: "ok"})
	srv.do(t, http.MethodPost, "/api/chat", `{"message":"hi"}`)

	status, body, _ := srv.do(t, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "portfolio_chat_requests_total")
}
