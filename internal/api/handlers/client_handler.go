package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentflow/internal/service"
	"github.com/maheshrc27/contentflow/internal/transfer"
)

type ClientHandler struct {
	s  service.ClientService
	as service.AccountService
}

func NewClientHandler(service service.ClientService, accounts service.AccountService) *ClientHandler {
	return &ClientHandler{s: service, as: accounts}
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var req transfer.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	client, err := h.s.CreateClient(c.Context(), GetUserID(c), &req)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "client": client})
}

func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.s.ListClients(c.Context(), GetUserID(c))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "clients": clients})
}

func (h *ClientHandler) CreateProject(c *fiber.Ctx) error {
	var req transfer.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	project, err := h.s.CreateProject(c.Context(), GetUserID(c), c.Params("id"), &req)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "project": project})
}

func (h *ClientHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.s.ListProjects(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "projects": projects})
}

func (h *ClientHandler) CreateTag(c *fiber.Ctx) error {
	var req transfer.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tag, err := h.s.CreateTag(c.Context(), GetUserID(c), c.Params("id"), &req)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "tag": tag})
}

func (h *ClientHandler) ListTags(c *fiber.Ctx) error {
	tags, err := h.s.ListTags(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "tags": tags})
}

func (h *ClientHandler) ListAccounts(c *fiber.Ctx) error {
	accounts, err := h.as.ListAccounts(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "accounts": accounts})
}

func (h *ClientHandler) SyncAccounts(c *fiber.Ctx) error {
	accounts, err := h.as.SyncForUser(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "accounts": accounts})
}
