package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "emunah/internal/log"
	"emunah/internal/services"
	"emunah/internal/store"
	"emunah/internal/validate"
)

type OrderHandler struct {
	Store  store.Storage
	Orders *services.OrderService
}

const orderNumberConflictMsg = "An order with this number already exists"

func (h *OrderHandler) List(c *fiber.Ctx) error {
	f, err := listFilter(c)
	if err != nil {
		return respondErr(c, err, "Order", "")
	}
	orders, err := h.Store.ListOrders(f)
	if err != nil {
		applog.Error(c, "orders.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch orders")
	}
	return c.JSON(orders)
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	o, err := h.Store.GetOrder(c.Params("id"))
	if err != nil {
		return respondErr(c, err, "Order", "")
	}
	return c.JSON(o)
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	in, err := validate.Order(c.Body())
	if err != nil {
		return respondErr(c, err, "Order", orderNumberConflictMsg)
	}
	o, err := h.Orders.Create(in)
	if err != nil {
		return respondErr(c, err, "Order", orderNumberConflictMsg)
	}
	applog.Audit(c, "orders.create", map[string]any{"order_id": o.ID, "order_number": o.OrderNumber})
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	patch, err := validate.OrderPatch(c.Body())
	if err != nil {
		return respondErr(c, err, "Order", orderNumberConflictMsg)
	}
	o, err := h.Orders.Update(c.Params("id"), patch)
	if err != nil {
		return respondErr(c, err, "Order", orderNumberConflictMsg)
	}
	applog.Audit(c, "orders.update", map[string]any{"order_id": o.ID})
	return c.JSON(o)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.Store.DeleteOrder(c.Params("id"))
	if err != nil {
		applog.Error(c, "orders.delete.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete order")
	}
	if !deleted {
		return jsonError(c, fiber.StatusNotFound, "Order not found")
	}
	applog.Audit(c, "orders.delete", map[string]any{"order_id": c.Params("id")})
	return c.SendStatus(fiber.StatusNoContent)
}
