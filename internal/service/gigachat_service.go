package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio-chat/internal/models"
	"portfolio-chat/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// GigaChatService is the alternative provider, selected with LLM_PROVIDER=gigachat.
type GigaChatService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewGigaChatService(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatService, error) {
	if cfg.APIKey == "" {
		return nil, ErrModelNotConfigured
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.Temperature = 0.7

	logger.Info("Using GigaChat model", zap.String("model", cfg.Model))

	return &GigaChatService{client: client, model: model, logger: logger}, nil
}

func (s *GigaChatService) Generate(ctx context.Context, turns []models.ConversationTurn) (string, error) {
	if len(turns) == 0 {
		return "", errors.New("no turns to send")
	}

	messages := make([]gigago.Message, len(turns))
	for i, t := range turns {
		role := gigago.RoleUser
		if t.Role == models.RoleModel {
			role = gigago.RoleAssistant
		}
		messages[i] = gigago.Message{Role: role, Content: t.Content}
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", &ProviderError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Err: errors.New("no response from GigaChat")}
	}

	return resp.Choices[0].Message.Content, nil
}

func (s *GigaChatService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
