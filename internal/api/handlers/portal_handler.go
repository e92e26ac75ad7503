package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentflow/internal/service"
	"github.com/maheshrc27/contentflow/internal/transfer"
)

type PortalHandler struct {
	s service.PortalService
}

func NewPortalHandler(service service.PortalService) *PortalHandler {
	return &PortalHandler{s: service}
}

func (h *PortalHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file provided")
	}

	upload, err := h.s.Upload(c.Context(), c.Params("token"), c.FormValue("notes"), file)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "upload": upload})
}

func (h *PortalHandler) ListUploads(c *fiber.Ctx) error {
	uploads, err := h.s.ListUploads(c.Context(), c.Params("token"))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "uploads": uploads})
}

func (h *PortalHandler) UpdateNotes(c *fiber.Ctx) error {
	var req transfer.UploadNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	upload, err := h.s.UpdateNotes(c.Context(), c.Params("token"), req.UploadID, req.Notes)
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "upload": upload})
}

func (h *PortalHandler) DeleteUpload(c *fiber.Ctx) error {
	if err := h.s.DeleteUpload(c.Context(), c.Params("token"), c.Query("upload_id")); err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *PortalHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.ListPosts(c.Context(), c.Params("token"))
	if err != nil {
		return ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "posts": posts})
}

// Approvals answers 200 when every decision applied and 207 when some
// failed, listing the failures.
func (h *PortalHandler) Approvals(c *fiber.Ctx) error {
	var req transfer.ApprovalBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	results, err := h.s.ApplyApprovals(c.Context(), c.Params("token"), req.Decisions)
	if err != nil {
		return ErrorResponse(c, err)
	}

	failed := service.ApprovalFailures(results)
	if len(failed) > 0 {
		return c.Status(fiber.StatusMultiStatus).JSON(fiber.Map{
			"success": false,
			"error":   "Some decisions could not be applied",
			"results": results,
			"failed":  failed,
		})
	}

	return c.JSON(fiber.Map{"success": true, "results": results})
}
