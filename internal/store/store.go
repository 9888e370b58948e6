// Package store provides keyed persistence for the catalog and back-office
// entities behind one interface, with an in-memory backend for tests and
// development and a SQL backend for durable deployments.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"emunah/internal/domain"
)

// ErrNotFound is the typed absence every Get/Update returns when the id does
// not exist. Delete reports absence as (false, nil) instead.
var ErrNotFound = errors.New("not found")

// ErrConflict reports a uniqueness violation (product slug, quote number,
// order number) or an invalid conversion target.
var ErrConflict = errors.New("conflict")

// Filter narrows quote/order listings. Empty fields are unbounded; both date
// bounds are inclusive and use domain.TimeLayout.
type Filter struct {
	Status    string
	StartDate string
	EndDate   string
}

type Storage interface {
	// Users
	GetUser(id string) (*domain.User, error)
	GetUserByUsername(username string) (*domain.User, error)
	CreateUser(in domain.InsertUser) (*domain.User, error)

	// Products
	ListProducts() ([]domain.Product, error)
	GetProduct(id string) (*domain.Product, error)
	GetProductBySlug(slug string) (*domain.Product, error)
	CreateProduct(in domain.InsertProduct) (*domain.Product, error)
	UpdateProduct(id string, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(id string) (bool, error)

	// Clients. Clients are never deletable, only updatable.
	ListClients() ([]domain.Client, error)
	GetClient(id string) (*domain.Client, error)
	GetClientByPhone(phone string) (*domain.Client, error)
	CreateClient(in domain.InsertClient) (*domain.Client, error)
	UpdateClient(id string, patch domain.ClientPatch) (*domain.Client, error)

	// Quotes
	ListQuotes(f Filter) ([]domain.Quote, error)
	GetQuote(id string) (*domain.Quote, error)
	CreateQuote(in domain.InsertQuote) (*domain.Quote, error)
	UpdateQuote(id string, patch domain.QuotePatch) (*domain.Quote, error)
	DeleteQuote(id string) (bool, error)

	// ConvertQuote creates the order for a quote and marks the quote
	// converted in one atomic step. The order copies the quote's client
	// snapshot, items and subtotal; shipping starts at zero. Converting an
	// already-converted quote fails with ErrConflict.
	ConvertQuote(quoteID, orderNumber string) (*domain.Order, error)

	// Orders
	ListOrders(f Filter) ([]domain.Order, error)
	GetOrder(id string) (*domain.Order, error)
	CreateOrder(in domain.InsertOrder) (*domain.Order, error)
	UpdateOrder(id string, patch domain.OrderPatch) (*domain.Order, error)
	DeleteOrder(id string) (bool, error)

	// Settings (single record, always present)
	GetSettings() (*domain.Settings, error)
	UpdateSettings(patch domain.SettingsPatch) (*domain.Settings, error)
}

func newID() string { return uuid.NewString() }

func nowStamp() string { return time.Now().UTC().Format(domain.TimeLayout) }

// inRange checks an inclusive createdAt window; empty bounds are unbounded.
// Lexicographic comparison is chronological because of the fixed-width layout.
func inRange(createdAt string, f Filter) bool {
	if f.StartDate != "" && createdAt < f.StartDate {
		return false
	}
	if f.EndDate != "" && createdAt > f.EndDate {
		return false
	}
	return true
}
