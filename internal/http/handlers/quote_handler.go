package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "emunah/internal/log"
	"emunah/internal/services"
	"emunah/internal/store"
	"emunah/internal/validate"
)

type QuoteHandler struct {
	Store  store.Storage
	Quotes *services.QuoteService
}

const quoteConvertedMsg = "Quote already converted"

// listFilter builds a store filter from the status/startDate/endDate query
// parameters shared by the quote and order listings.
func listFilter(c *fiber.Ctx) (store.Filter, error) {
	f := store.Filter{Status: c.Query("status")}
	if s := c.Query("startDate"); s != "" {
		bound, ok := validate.DateBound(s, false)
		if !ok {
			return f, &validate.Error{Field: "startDate", Message: "must be YYYY-MM-DD or RFC 3339"}
		}
		f.StartDate = bound
	}
	if s := c.Query("endDate"); s != "" {
		bound, ok := validate.DateBound(s, true)
		if !ok {
			return f, &validate.Error{Field: "endDate", Message: "must be YYYY-MM-DD or RFC 3339"}
		}
		f.EndDate = bound
	}
	return f, nil
}

func (h *QuoteHandler) List(c *fiber.Ctx) error {
	f, err := listFilter(c)
	if err != nil {
		return respondErr(c, err, "Quote", "")
	}
	quotes, err := h.Store.ListQuotes(f)
	if err != nil {
		applog.Error(c, "quotes.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch quotes")
	}
	return c.JSON(quotes)
}

func (h *QuoteHandler) Get(c *fiber.Ctx) error {
	q, err := h.Store.GetQuote(c.Params("id"))
	if err != nil {
		return respondErr(c, err, "Quote", "")
	}
	return c.JSON(q)
}

func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	in, err := validate.Quote(c.Body())
	if err != nil {
		return respondErr(c, err, "Quote", "A quote with this number already exists")
	}
	q, err := h.Quotes.Create(in)
	if err != nil {
		return respondErr(c, err, "Quote", "A quote with this number already exists")
	}
	applog.Audit(c, "quotes.create", map[string]any{"quote_id": q.ID, "quote_number": q.QuoteNumber})
	return c.Status(fiber.StatusCreated).JSON(q)
}

func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	patch, err := validate.QuotePatch(c.Body())
	if err != nil {
		return respondErr(c, err, "Quote", "A quote with this number already exists")
	}
	q, err := h.Quotes.Update(c.Params("id"), patch)
	if err != nil {
		return respondErr(c, err, "Quote", "A quote with this number already exists")
	}
	applog.Audit(c, "quotes.update", map[string]any{"quote_id": q.ID})
	return c.JSON(q)
}

func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.Store.DeleteQuote(c.Params("id"))
	if err != nil {
		applog.Error(c, "quotes.delete.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete quote")
	}
	if !deleted {
		return jsonError(c, fiber.StatusNotFound, "Quote not found")
	}
	applog.Audit(c, "quotes.delete", map[string]any{"quote_id": c.Params("id")})
	return c.SendStatus(fiber.StatusNoContent)
}

// Convert creates a pending order from the quote and marks the quote
// converted. A second conversion attempt gets 409.
func (h *QuoteHandler) Convert(c *fiber.Ctx) error {
	o, err := h.Quotes.Convert(c.Params("id"))
	if err != nil {
		return respondErr(c, err, "Quote", quoteConvertedMsg)
	}
	applog.Audit(c, "quotes.convert", map[string]any{
		"quote_id": c.Params("id"), "order_id": o.ID, "order_number": o.OrderNumber,
	})
	return c.Status(fiber.StatusCreated).JSON(o)
}
