package services

import (
	"encoding/json"
	"fmt"

	"emunah/internal/domain"
	"emunah/internal/money"
	"emunah/internal/validate"
)

// ParseItems decodes the serialized items list of a quote or order. The
// store keeps the text verbatim; this is where its shape is actually checked.
func ParseItems(raw string) ([]domain.QuoteItem, error) {
	var items []domain.QuoteItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, &validate.Error{Field: "items", Message: "must be a JSON array of line items"}
	}
	if len(items) == 0 {
		return nil, &validate.Error{Field: "items", Message: "must contain at least one item"}
	}
	for i, it := range items {
		if it.ProductName == "" {
			return nil, &validate.Error{Field: "items", Message: fmt.Sprintf("item %d: productName is required", i)}
		}
		if it.Quantity < 1 {
			return nil, &validate.Error{Field: "items", Message: fmt.Sprintf("item %d: quantity must be at least 1", i)}
		}
		if it.UnitPrice < 0 {
			return nil, &validate.Error{Field: "items", Message: fmt.Sprintf("item %d: unitPrice must not be negative", i)}
		}
	}
	return items, nil
}

// LineTotal is quantity × unitPrice in cents.
func LineTotal(it domain.QuoteItem) money.Amount {
	return it.UnitPrice.MulInt(it.Quantity)
}

// Subtotal sums the line totals.
func Subtotal(items []domain.QuoteItem) money.Amount {
	var sum money.Amount
	for _, it := range items {
		sum += LineTotal(it)
	}
	return sum
}
