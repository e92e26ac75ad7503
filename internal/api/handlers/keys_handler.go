package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentflow/internal/service"
)

type ApiKeyHandler struct {
	s service.ApiKeyService
}

func NewApiKeyHandler(service service.ApiKeyService) *ApiKeyHandler {
	return &ApiKeyHandler{s: service}
}

func (h *ApiKeyHandler) CreateApiKey(c *fiber.Ctx) error {
	userId := GetUserID(c)

	if err := h.s.Create(c.Context(), userId); err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *ApiKeyHandler) ListKeys(c *fiber.Ctx) error {
	userId := GetUserID(c)

	keys, err := h.s.List(c.Context(), userId)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "keys": keys})
}

func (h *ApiKeyHandler) RemoveAPIKey(c *fiber.Ctx) error {
	userId := GetUserID(c)
	keyId := c.Query("id")

	if err := h.s.RemoveAPIKey(c.Context(), userId, keyId); err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
