package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentflow/internal/service"
	"github.com/maheshrc27/contentflow/internal/transfer"
)

type TagHandler struct {
	s service.TagService
}

func NewTagHandler(service service.TagService) *TagHandler {
	return &TagHandler{s: service}
}

func (h *TagHandler) ListPostTags(c *fiber.Ctx) error {
	tags, err := h.s.ListPostTags(c.Context(), GetUserID(c), c.Params("postId"))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "tags": tags})
}

func (h *TagHandler) AddPostTag(c *fiber.Ctx) error {
	var req transfer.AddTagRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.TagID == "" {
		return badRequest(c, "tag_id is required")
	}

	tag, err := h.s.AddPostTag(c.Context(), GetUserID(c), c.Params("postId"), req.TagID)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "tag": tag})
}

func (h *TagHandler) RemovePostTag(c *fiber.Ctx) error {
	err := h.s.RemovePostTag(c.Context(), GetUserID(c), c.Params("postId"), c.Params("tagId"))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
