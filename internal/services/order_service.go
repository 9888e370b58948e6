package services

import (
	"fmt"

	"emunah/internal/domain"
	"emunah/internal/store"
	"emunah/internal/validate"
)

// OrderService enforces the order arithmetic on every write: subtotal must
// match the items list, and total must equal subtotal plus shipping.
type OrderService struct {
	Store store.Storage
}

func NewOrderService(st store.Storage) *OrderService { return &OrderService{Store: st} }

func (s *OrderService) Create(in domain.InsertOrder) (*domain.Order, error) {
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
	if in.Subtotal+in.ShippingCost != in.Total {
		return nil, &validate.Error{
			Field:   "total",
			Message: fmt.Sprintf("must equal subtotal plus shippingCost (%s)", in.Subtotal+in.ShippingCost),
		}
	}
	if in.OrderNumber == "" {
		in.OrderNumber = NewDocumentNumber("PED")
	}
	return s.Store.CreateOrder(in)
}

func (s *OrderService) Update(id string, patch domain.OrderPatch) (*domain.Order, error) {
	if patch.Items != nil || patch.Subtotal != nil || patch.ShippingCost != nil || patch.Total != nil {
		current, err := s.Store.GetOrder(id)
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
		subtotal := Subtotal(items)
		if patch.Subtotal != nil && *patch.Subtotal != subtotal {
			return nil, &validate.Error{
				Field:   "subtotal",
				Message: fmt.Sprintf("does not match items (computed %s, got %s)", subtotal, *patch.Subtotal),
			}
		}
		if subtotal != current.Subtotal {
			patch.Subtotal = &subtotal
		}
		shipping := current.ShippingCost
		if patch.ShippingCost != nil {
			shipping = *patch.ShippingCost
		}
		total := current.Total
		if patch.Total != nil {
			total = *patch.Total
		}
		if subtotal+shipping != total {
			return nil, &validate.Error{
				Field:   "total",
				Message: fmt.Sprintf("must equal subtotal plus shippingCost (%s)", subtotal+shipping),
			}
		}
	}
	return s.Store.UpdateOrder(id, patch)
}
