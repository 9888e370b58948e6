package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "emunah/internal/log"
	"emunah/internal/store"
	"emunah/internal/validate"
)

type SettingsHandler struct {
	Store store.Storage
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	s, err := h.Store.GetSettings()
	if err != nil {
		applog.Error(c, "settings.get.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch settings")
	}
	return c.JSON(s)
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	patch, err := validate.SettingsPatch(c.Body())
	if err != nil {
		return respondErr(c, err, "Settings", "")
	}
	s, err := h.Store.UpdateSettings(patch)
	if err != nil {
		return respondErr(c, err, "Settings", "")
	}
	applog.Audit(c, "settings.update", nil)
	return c.JSON(s)
}
