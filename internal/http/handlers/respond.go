package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "emunah/internal/log"
	"emunah/internal/store"
	"emunah/internal/validate"
)

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// respondErr maps the error taxonomy onto HTTP: validation failures are 400
// with the offending field in the message, typed absence is 404, uniqueness
// violations are 409, anything else is a logged 500.
func respondErr(c *fiber.Ctx, err error, resource, conflictMsg string) error {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		applog.Security(c, "validation.fail", map[string]any{"field": verr.Field})
		return jsonError(c, fiber.StatusBadRequest, verr.Error())
	case errors.Is(err, store.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, resource+" not found")
	case errors.Is(err, store.ErrConflict):
		return jsonError(c, fiber.StatusConflict, conflictMsg)
	default:
		applog.Error(c, "store.fail", err, map[string]any{"resource": resource})
		return jsonError(c, fiber.StatusInternalServerError, "Failed to access "+resource)
	}
}
