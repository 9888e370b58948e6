package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "emunah/internal/log"
	"emunah/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return jsonError(c, fiber.StatusBadRequest, "Username and password are required")
	}
	u, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCreds) {
			applog.Security(c, "auth.login.fail", map[string]any{"username": req.Username})
			return jsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		applog.Error(c, "auth.login.err", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to authenticate")
	}
	applog.Audit(c, "auth.login", map[string]any{"username": u.Username})
	return c.JSON(u)
}
