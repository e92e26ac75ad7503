package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentflow/pkg/apperror"
)

func GetUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

func statusFor(err error) int {
	switch {
	case apperror.IsBadRequest(err):
		return fiber.StatusBadRequest
	case apperror.IsUnauthorized(err):
		return fiber.StatusUnauthorized
	case apperror.IsForbidden(err):
		return fiber.StatusForbidden
	case apperror.IsNotFound(err):
		return fiber.StatusNotFound
	case apperror.IsConflict(err):
		return fiber.StatusConflict
	case apperror.GetCode(err) == "unavailable":
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// ErrorResponse writes {success:false, error[, details]}. Unexpected errors
// carry the underlying message in details.
func ErrorResponse(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	body := fiber.Map{
		"success": false,
		"error":   apperror.GetMessage(err),
	}
	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed", "path", c.Path(), "error", err.Error())
		var appErr *apperror.Error
		if !errors.As(err, &appErr) {
			body["error"] = "Internal server error"
			body["details"] = err.Error()
		} else if appErr.Err != nil {
			body["details"] = appErr.Err.Error()
		}
	}
	return c.Status(status).JSON(body)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
