package server

import (
	"wecare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendChatMessage handles POST /api/chat/messages
func (s *Server) SendChatMessage(c *fiber.Ctx) error {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	reply, err := s.chatService.SendMessage(c.Context(), currentUserID(c), req.Message)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"reply": reply})
}

// GetChatHistory handles GET /api/chat/history
func (s *Server) GetChatHistory(c *fiber.Ctx) error {
	turns, err := s.chatService.History(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(turns)
}

// ClearChatHistory handles DELETE /api/chat/history
func (s *Server) ClearChatHistory(c *fiber.Ctx) error {
	if err := s.chatService.ClearHistory(c.Context(), currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Chat history cleared"})
}
