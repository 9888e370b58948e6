package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "emunah/internal/log"
	"emunah/internal/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Dashboard.Stats()
	if err != nil {
		applog.Error(c, "dashboard.stats.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}
	return c.JSON(stats)
}
