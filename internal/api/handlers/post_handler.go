package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentflow/internal/service"
	"github.com/maheshrc27/contentflow/internal/transfer"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		slog.Info(err.Error())
		return badRequest(c, "No file selected")
	}

	post, err := h.s.CreatePost(c.Context(), GetUserID(c),
		c.FormValue("client_id"),
		c.FormValue("project_id"),
		c.FormValue("caption"),
		file)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "post": post})
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.List(c.Context(), GetUserID(c), c.Query("client_id"), c.Query("project_id"))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "posts": posts})
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	var req transfer.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	post, err := h.s.UpdateCaption(c.Context(), GetUserID(c), c.Params("id"), req.Caption)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "post": post})
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
