package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "emunah/internal/log"
	"emunah/internal/services"
	"emunah/internal/store"
	"emunah/internal/validate"
)

type ClientHandler struct {
	Store   store.Storage
	Clients *services.ClientService
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.Store.ListClients()
	if err != nil {
		applog.Error(c, "clients.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch clients")
	}
	return c.JSON(clients)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	cl, err := h.Store.GetClient(c.Params("id"))
	if err != nil {
		return respondErr(c, err, "Client", "")
	}
	return c.JSON(cl)
}

// Create is idempotent on phone: resubmitting the same client returns the
// record already on file with 200 instead of a fresh 201.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	in, err := validate.Client(c.Body())
	if err != nil {
		return respondErr(c, err, "Client", "")
	}
	cl, created, err := h.Clients.Create(in)
	if err != nil {
		return respondErr(c, err, "Client", "")
	}
	if !created {
		applog.Info(c, "clients.dedup", map[string]any{"client_id": cl.ID})
		return c.JSON(cl)
	}
	applog.Audit(c, "clients.create", map[string]any{"client_id": cl.ID})
	return c.Status(fiber.StatusCreated).JSON(cl)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	patch, err := validate.ClientPatch(c.Body())
	if err != nil {
		return respondErr(c, err, "Client", "")
	}
	cl, err := h.Store.UpdateClient(c.Params("id"), patch)
	if err != nil {
		return respondErr(c, err, "Client", "")
	}
	applog.Audit(c, "clients.update", map[string]any{"client_id": cl.ID})
	return c.JSON(cl)
}
