package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-chat/internal/models"
	"portfolio-chat/pkg/metrics"

	"go.uber.org/zap"
)

// ModelClient sends an assembled conversation to a hosted model and returns its text reply.
type ModelClient interface {
	Generate(ctx context.Context, turns []models.ConversationTurn) (string, error)
}

// QuestionLogger records questions the knowledge base could not answer.
// Implementations must not fail the caller.
type QuestionLogger interface {
	Log(ctx context.Context, question string)
}

type ChatInput struct {
	Message string
	History []models.ConversationTurn
}

type ChatResult struct {
	Response string
	// Flagged is true when the model signalled a knowledge gap.
	Flagged bool
}

// ChatService is the stateless gateway between callers and the model.
// The persona and corpus are fixed at construction.
type ChatService struct {
	model      ModelClient
	unanswered QuestionLogger
	persona    string
	knowledge  string
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewChatService wires the gateway. A nil model means no credential was
// configured and every request fails with ErrModelNotConfigured.
func NewChatService(
	model ModelClient,
	unanswered QuestionLogger,
	persona string,
	kb *models.KnowledgeBase,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		model:      model,
		unanswered: unanswered,
		persona:    persona,
		knowledge:  kb.FullText(),
		metrics:    m,
		logger:     logger,
	}
}

// ModelConfigured reports whether requests can reach a model at all.
func (s *ChatService) ModelConfigured() bool {
	return s.model != nil
}

// Handle runs one request: validate, prompt, call the model once, then strip the
// missing-info marker and log the original question if it was present.
func (s *ChatService) Handle(ctx context.Context, in ChatInput) (*ChatResult, error) {
	if strings.TrimSpace(in.Message) == "" {
		s.metrics.ObserveRequest(metrics.OutcomeRejected)
		return nil, ErrEmptyMessage
	}

	if s.model == nil {
		s.metrics.ObserveRequest(metrics.OutcomeNotConfigured)
		return nil, ErrModelNotConfigured
	}

	turns := AssemblePrompt(s.persona, s.knowledge, in.History, in.Message)

	start := time.Now()
	reply, err := s.model.Generate(ctx, turns)
	s.metrics.ObserveModelCall(time.Since(start))
	if err != nil {
		if classifyError(err) == ProviderErrorQuota {
			s.metrics.ObserveRequest(metrics.OutcomeQuota)
			return nil, fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
		}
		s.metrics.ObserveRequest(metrics.OutcomeError)
		return nil, fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}
	if strings.TrimSpace(reply) == "" {
		s.metrics.ObserveRequest(metrics.OutcomeError)
		return nil, fmt.Errorf("%w: empty reply", ErrProviderFailure)
	}

	text, flagged := StripMissingInfo(reply)
	if flagged {
		s.metrics.ObserveMissingInfo()
		s.logger.Info("Knowledge gap detected", zap.Int("history_turns", len(in.History)))
		s.unanswered.Log(ctx, in.Message)
	}

	s.metrics.ObserveRequest(metrics.OutcomeSuccess)
	return &ChatResult{Response: text, Flagged: flagged}, nil
}

// StripMissingInfo removes every marker and reports whether one was found.
// Line breaks around a marker are kept, so a marker between paragraphs does not
// merge them. Applying it twice changes nothing.
func StripMissingInfo(reply string) (string, bool) {
	if !strings.Contains(reply, MissingInfoMarker) {
		return reply, false
	}

	parts := strings.Split(reply, MissingInfoMarker)
	var b strings.Builder
	b.WriteString(parts[0])
	for _, next := range parts[1:] {
		before := b.String()
		left := strings.TrimRight(before, " \t\r\n")
		gapLeft := before[len(left):]
		right := strings.TrimLeft(next, " \t\r\n")
		gapRight := next[:len(next)-len(right)]

		b.Reset()
		b.WriteString(left)
		b.WriteString(joinGap(gapLeft, gapRight, left != "" && right != ""))
		b.WriteString(right)
	}

	return strings.TrimSpace(b.String()), true
}

// joinGap picks the whitespace that replaces a removed marker: the wider line
// break of the two sides, or a single space between words on the same line.
func joinGap(left, right string, between bool) string {
	if n := max(strings.Count(left, "\n"), strings.Count(right, "\n")); n > 0 {
		return strings.Repeat("\n", n)
	}
	if between {
		return " "
	}
	return ""
}
