package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio-chat/internal/models"
	"portfolio-chat/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiService talks to the Gemini API through the official genai SDK.
type GeminiService struct {
	client   *genai.Client
	model    string
	settings *genai.GenerateContentConfig
	logger   *zap.Logger
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, ErrModelNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Using Gemini model", zap.String("model", cfg.Model))

	return &GeminiService{
		client: client,
		model:  cfg.Model,
		settings: &genai.GenerateContentConfig{
			Temperature: genai.Ptr(cfg.Temperature),
		},
		logger: logger,
	}, nil
}

// Generate sends every turn in order; the last one is the new user message.
func (s *GeminiService) Generate(ctx context.Context, turns []models.ConversationTurn) (string, error) {
	if len(turns) == 0 {
		return "", errors.New("no turns to send")
	}

	contents := make([]*genai.Content, len(turns))
	for i, t := range turns {
		role := genai.Role(genai.RoleUser)
		if t.Role == models.RoleModel {
			role = genai.RoleModel
		}
		contents[i] = genai.NewContentFromText(t.Content, role)
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, s.settings)
	if err != nil {
		return "", wrapGenAIError(err)
	}

	text := resp.Text()
	s.logger.Debug("Gemini reply received",
		zap.String("model", s.model),
		zap.Int("turns", len(turns)),
		zap.Int("text_length", len(text)),
	)
	return text, nil
}

// wrapGenAIError keeps the provider's HTTP status so quota errors can be told apart.
func wrapGenAIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{StatusCode: apiErr.Code, Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &ProviderError{StatusCode: apiErrPtr.Code, Err: err}
	}
	return &ProviderError{Err: err}
}
