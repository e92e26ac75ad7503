package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentflow/internal/service"
	"github.com/maheshrc27/contentflow/internal/transfer"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CalendarHandler struct {
	s  service.CalendarService
	ex service.ExportService
}

func NewCalendarHandler(service service.CalendarService, export service.ExportService) *CalendarHandler {
	return &CalendarHandler{s: service, ex: export}
}

func scheduledFilter(c *fiber.Ctx) transfer.ScheduledFilter {
	return transfer.ScheduledFilter{
		ClientID:  c.Query("client_id"),
		ProjectID: c.Query("project_id"),
		From:      c.Query("from"),
		To:        c.Query("to"),
		Status:    c.Query("status"),
	}
}

func (h *CalendarHandler) ListScheduled(c *fiber.Ctx) error {
	filter := scheduledFilter(c)
	if filter.ClientID == "" {
		return badRequest(c, "client_id is required")
	}

	posts, err := h.s.List(c.Context(), GetUserID(c), filter)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"posts":   posts,
		"by_date": service.BucketByDate(posts),
	})
}

func (h *CalendarHandler) CreateScheduled(c *fiber.Ctx) error {
	var req transfer.CreateScheduledRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	post, err := h.s.Create(c.Context(), GetUserID(c), &req)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "post": post})
}

func (h *CalendarHandler) UpdateScheduled(c *fiber.Ctx) error {
	var req transfer.UpdateScheduledRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	post, err := h.s.Update(c.Context(), GetUserID(c), &req)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "post": post})
}

func (h *CalendarHandler) DeleteScheduled(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return badRequest(c, "id is required")
	}

	if err := h.s.Remove(c.Context(), GetUserID(c), id); err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *CalendarHandler) Submit(c *fiber.Ctx) error {
	post, err := h.s.Submit(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "post": post})
}

func (h *CalendarHandler) PublishNow(c *fiber.Ctx) error {
	post, err := h.s.PublishNow(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "post": post})
}

func (h *CalendarHandler) Export(c *fiber.Ctx) error {
	filter := scheduledFilter(c)
	if filter.ClientID == "" {
		return badRequest(c, "client_id is required")
	}

	data, name, err := h.ex.ExportCalendar(c.Context(), GetUserID(c), filter)
	if err != nil {
		return ErrorResponse(c, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment(name)
	return c.Send(data)
}
