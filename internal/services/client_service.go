package services

import (
	"errors"

	"emunah/internal/domain"
	"emunah/internal/store"
)

// ClientService makes client creation idempotent on the phone number: the
// quote builder submits client info on every quote without checking whether
// the client already exists.
type ClientService struct {
	Store store.Storage
}

func NewClientService(st store.Storage) *ClientService { return &ClientService{Store: st} }

// Create returns the existing client unchanged when one with the same phone
// is already on file; created reports whether a new record was made.
func (s *ClientService) Create(in domain.InsertClient) (client *domain.Client, created bool, err error) {
	existing, err := s.Store.GetClientByPhone(in.Phone)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}
	c, err := s.Store.CreateClient(in)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}
