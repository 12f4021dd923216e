package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/wellness-service/internal/api/dto"
	"github.com/spec-kit/wellness-service/internal/service"
	util "github.com/spec-kit/wellness-service/pkg/util"
)

// ChatHandler exposes the mood statement endpoint.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chatService}
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.UserID == "" {
		return util.NewValidationError("userId required", nil)
	}

	analysis, err := h.chat.Record(c.Context(), req.UserID, req.Message)
	if err != nil {
		return err
	}

	return c.JSON(dto.ChatResponse{
		Message: "Chat Saved",
		Analysis: dto.ChatAnalysisResponse{
			Emotion:      analysis.Entry.Emotion,
			Confidence:   analysis.Entry.Confidence,
			Stress:       analysis.Entry.Stress,
			Pressure:     analysis.Pressure,
			BurnoutLevel: analysis.BurnoutLevel,
		},
	})
}
