package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"emunah/internal/domain"
	"emunah/internal/store"
	"emunah/internal/validate"
)

// QuoteService owns the arithmetic contract a quote must satisfy before it
// reaches the store: the submitted subtotal must match the items list. The
// total stays caller-supplied (subtotal plus whatever shipping addendum the
// quote builder folded in).
type QuoteService struct {
	Store store.Storage
}

func NewQuoteService(st store.Storage) *QuoteService { return &QuoteService{Store: st} }

// NewDocumentNumber mints a human-readable unique number such as
// ORC-5F2A91CC.
func NewDocumentNumber(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *QuoteService) Create(in domain.InsertQuote) (*domain.Quote, error) {
	items, err := ParseItems(in.Items)
	if err != nil {
		return nil, err
	}
	if got := Subtotal(items); got != in.Subtotal {
		return nil, &validate.Error{
			Field:   "subtotal",
			Message: fmt.Sprintf("does not match items (computed %s, got %s)", got, in.Subtotal),
		}
	}
	if in.QuoteNumber == "" {
		in.QuoteNumber = NewDocumentNumber("ORC")
	}
	return s.Store.CreateQuote(in)
}

func (s *QuoteService) Update(id string, patch domain.QuotePatch) (*domain.Quote, error) {
	if patch.Items != nil || patch.Subtotal != nil {
		current, err := s.Store.GetQuote(id)
		if err != nil {
			return nil, err
		}
		itemsJSON := current.Items
		if patch.Items != nil {
			itemsJSON = *patch.Items
		}
		items, err := ParseItems(itemsJSON)
		if err != nil {
			return nil, err
		}
		computed := Subtotal(items)
		if patch.Subtotal != nil && *patch.Subtotal != computed {
			return nil, &validate.Error{
				Field:   "subtotal",
				Message: fmt.Sprintf("does not match items (computed %s, got %s)", computed, *patch.Subtotal),
			}
		}
		if patch.Subtotal == nil && computed != current.Subtotal {
			patch.Subtotal = &computed
		}
	}
	return s.Store.UpdateQuote(id, patch)
}

// Convert turns a quote into a pending order atomically; the store rejects
// quotes that were already converted.
func (s *QuoteService) Convert(quoteID string) (*domain.Order, error) {
	return s.Store.ConvertQuote(quoteID, NewDocumentNumber("PED"))
}
