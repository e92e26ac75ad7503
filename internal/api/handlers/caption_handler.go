package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentflow/internal/service"
	"github.com/maheshrc27/contentflow/internal/transfer"
)

type CaptionHandler struct {
	s service.CaptionService
}

func NewCaptionHandler(service service.CaptionService) *CaptionHandler {
	return &CaptionHandler{s: service}
}

func (h *CaptionHandler) Generate(c *fiber.Ctx) error {
	var req transfer.CaptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	caption, err := h.s.Generate(c.Context(), GetUserID(c), &req)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "caption": caption})
}
