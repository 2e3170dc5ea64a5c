package handlers

import (
	"portfolio-chat/internal/dto"
	"portfolio-chat/internal/models"
	"portfolio-chat/internal/service"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	kb          *models.KnowledgeBase
	chatService *service.ChatService
	unanswered  *service.UnansweredLogger
}

func NewHealthHandler(kb *models.KnowledgeBase, chatService *service.ChatService, unanswered *service.UnansweredLogger) *HealthHandler {
	return &HealthHandler{kb: kb, chatService: chatService, unanswered: unanswered}
}

// Health godoc
// @Summary Liveness and configuration summary
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:          "ok",
		Entries:         h.kb.Len(),
		ModelConfigured: h.chatService.ModelConfigured(),
		StoreEnabled:    h.unanswered.Enabled(),
	})
}
