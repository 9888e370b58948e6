package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "emunah/internal/log"
	"emunah/internal/store"
	"emunah/internal/validate"
)

type ProductHandler struct {
	Store store.Storage
}

const slugConflictMsg = "A product with this slug already exists"

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Store.ListProducts()
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch products")
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	p, err := h.Store.GetProduct(c.Params("id"))
	if err != nil {
		return respondErr(c, err, "Product", slugConflictMsg)
	}
	return c.JSON(p)
}

func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	p, err := h.Store.GetProductBySlug(c.Params("slug"))
	if err != nil {
		return respondErr(c, err, "Product", slugConflictMsg)
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, err := validate.Product(c.Body())
	if err != nil {
		return respondErr(c, err, "Product", slugConflictMsg)
	}
	p, err := h.Store.CreateProduct(in)
	if err != nil {
		return respondErr(c, err, "Product", slugConflictMsg)
	}
	applog.Audit(c, "products.create", map[string]any{"product_id": p.ID, "slug": p.Slug})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	patch, err := validate.ProductPatch(c.Body())
	if err != nil {
		return respondErr(c, err, "Product", slugConflictMsg)
	}
	p, err := h.Store.UpdateProduct(c.Params("id"), patch)
	if err != nil {
		return respondErr(c, err, "Product", slugConflictMsg)
	}
	applog.Audit(c, "products.update", map[string]any{"product_id": p.ID})
	return c.JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.Store.DeleteProduct(c.Params("id"))
	if err != nil {
		applog.Error(c, "products.delete.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete product")
	}
	if !deleted {
		return jsonError(c, fiber.StatusNotFound, "Product not found")
	}
	applog.Audit(c, "products.delete", map[string]any{"product_id": c.Params("id")})
	return c.SendStatus(fiber.StatusNoContent)
}
