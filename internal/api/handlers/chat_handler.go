package handlers

import (
	"errors"

	"portfolio-chat/internal/dto"
	"portfolio-chat/internal/models"
	"portfolio-chat/internal/service"
	"portfolio-chat/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Caller-visible error strings. Details stay in the logs.
const (
	errBadRequest     = "Failed to process request"
	errMessageMissing = "Message is required"
	errConfiguration  = "Server configuration error"
	errQuotaExceeded  = "quota_exceeded"
)

type ChatHandler struct {
	chatService *service.ChatService
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		validate:    validator.New(),
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask the portfolio assistant a question
// @Description Answers from the portfolio knowledge base only. The last 10 history turns are forwarded to the model.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message and optional history"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 405 {string} string "Method Not Allowed"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).SendString("Method Not Allowed")
	}

	log := h.logger.With(zap.String("request_id", middleware.GetRequestID(c)))

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid chat request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: errBadRequest})
	}
	if err := h.validate.Struct(&req); err != nil {
		log.Warn("Chat request failed validation", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: errMessageMissing})
	}

	history := make([]models.ConversationTurn, len(req.History))
	for i, t := range req.History {
		history[i] = models.ConversationTurn{Role: models.Role(t.Role), Content: t.Content}
	}

	result, err := h.chatService.Handle(c.UserContext(), service.ChatInput{
		Message: req.Message,
		History: history,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: errMessageMissing})
		case errors.Is(err, service.ErrModelNotConfigured):
			log.Error("Model provider credential is missing")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: errConfiguration})
		case errors.Is(err, service.ErrQuotaExceeded):
			log.Warn("Model provider quota exceeded", zap.Error(err))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Error: errQuotaExceeded})
		default:
			log.Error("Error in chat API", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: errBadRequest})
		}
	}

	log.Info("Chat request answered",
		zap.Bool("missing_info", result.Flagged),
		zap.Int("history_turns", len(history)),
	)

	return c.JSON(dto.ChatResponse{Response: result.Response})
}
