package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emunah/internal/domain"
	"emunah/internal/money"
)

// backends runs the same suite against every Storage implementation.
func backends(t *testing.T, fn func(t *testing.T, st Storage)) {
	t.Helper()
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemory())
	})
	t.Run("sqlite", func(t *testing.T) {
		st, err := OpenSQL("sqlite", ":memory:")
		require.NoError(t, err)
		fn(t, st)
	})
}

func insertProduct(slug string) domain.InsertProduct {
	return domain.InsertProduct{
		Name:        "Camiseta EMUNAH Básica",
		Slug:        slug,
		Price:       8990,
		Description: "Algodão premium",
		Category:    "Roupas",
		Image:       "/uploads/camiseta.png",
		Stock:       10,
		Active:      true,
	}
}

func insertQuote(number string) domain.InsertQuote {
	return domain.InsertQuote{
		QuoteNumber: number,
		ClientID:    "c1",
		ClientName:  "Maria Silva",
		ClientPhone: "(11) 98888-7777",
		Items:       `[{"productName":"Camiseta","quantity":2,"unitPrice":"10.00"}]`,
		Subtotal:    2000,
		Total:       2000,
	}
}

func insertOrder(number string) domain.InsertOrder {
	return domain.InsertOrder{
		OrderNumber: number,
		ClientID:    "c1",
		ClientName:  "Maria Silva",
		ClientPhone: "(11) 98888-7777",
		Items:       `[{"productName":"Caneca","quantity":1,"unitPrice":"45.90"}]`,
		Subtotal:    4590,
		Total:       4590,
	}
}

func TestProductCRUD(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		p, err := st.CreateProduct(insertProduct("camiseta-emunah-basica"))
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.CreatedAt)
		assert.Equal(t, money.Amount(8990), p.Price)
		assert.True(t, p.Active)

		got, err := st.GetProduct(p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Slug, got.Slug)

		bySlug, err := st.GetProductBySlug("camiseta-emunah-basica")
		require.NoError(t, err)
		assert.Equal(t, p.ID, bySlug.ID)

		stock := 5
		updated, err := st.UpdateProduct(p.ID, domain.ProductPatch{Stock: &stock})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Stock)
		assert.Equal(t, p.Name, updated.Name, "untouched fields survive a patch")
		assert.Equal(t, p.Price, updated.Price)

		deleted, err := st.DeleteProduct(p.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = st.DeleteProduct(p.ID)
		require.NoError(t, err)
		assert.False(t, deleted, "second delete reports absence, not an error")

		_, err = st.GetProduct(p.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProductSlugUnique(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		_, err := st.CreateProduct(insertProduct("caneca-fe-diaria"))
		require.NoError(t, err)

		_, err = st.CreateProduct(insertProduct("caneca-fe-diaria"))
		assert.ErrorIs(t, err, ErrConflict)

		other, err := st.CreateProduct(insertProduct("ecobag-proposito"))
		require.NoError(t, err)

		taken := "caneca-fe-diaria"
		_, err = st.UpdateProduct(other.ID, domain.ProductPatch{Slug: &taken})
		assert.ErrorIs(t, err, ErrConflict)

		// renaming to its own slug is fine
		own := "ecobag-proposito"
		_, err = st.UpdateProduct(other.ID, domain.ProductPatch{Slug: &own})
		assert.NoError(t, err)
	})
}

func TestClientByPhone(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		c, err := st.CreateClient(domain.InsertClient{Name: "Maria Silva", Phone: "(11) 98888-7777"})
		require.NoError(t, err)

		got, err := st.GetClientByPhone("(11) 98888-7777")
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)

		// formatting differences do not match; the phone is compared verbatim
		_, err = st.GetClientByPhone("11988887777")
		assert.ErrorIs(t, err, ErrNotFound)

		name := "Maria S. Oliveira"
		updated, err := st.UpdateClient(c.ID, domain.ClientPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
		assert.Equal(t, c.Phone, updated.Phone)
	})
}

func TestQuoteNumberUnique(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		_, err := st.CreateQuote(insertQuote("ORC-0001"))
		require.NoError(t, err)
		_, err = st.CreateQuote(insertQuote("ORC-0001"))
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestQuoteDefaultsToPending(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		q, err := st.CreateQuote(insertQuote("ORC-0002"))
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStatusPending, q.Status)
	})
}

func TestListFiltersAndOrdering(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		first, err := st.CreateQuote(insertQuote("ORC-1001"))
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
		second, err := st.CreateQuote(insertQuote("ORC-1002"))
		require.NoError(t, err)

		sent := domain.QuoteStatusSent
		_, err = st.UpdateQuote(second.ID, domain.QuotePatch{Status: &sent})
		require.NoError(t, err)

		all, err := st.ListQuotes(Filter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, second.ID, all[0].ID, "newest first")
		assert.Equal(t, first.ID, all[1].ID)

		onlySent, err := st.ListQuotes(Filter{Status: "sent"})
		require.NoError(t, err)
		require.Len(t, onlySent, 1)
		assert.Equal(t, second.ID, onlySent[0].ID)

		// the window [first.CreatedAt, first.CreatedAt] is inclusive on both ends
		window, err := st.ListQuotes(Filter{StartDate: first.CreatedAt, EndDate: first.CreatedAt})
		require.NoError(t, err)
		require.Len(t, window, 1)
		assert.Equal(t, first.ID, window[0].ID)

		after, err := st.ListQuotes(Filter{StartDate: second.CreatedAt})
		require.NoError(t, err)
		require.Len(t, after, 1)
		assert.Equal(t, second.ID, after[0].ID)

		none, err := st.ListQuotes(Filter{Status: "rejected"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestOrderCRUD(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		o, err := st.CreateOrder(insertOrder("PED-0001"))
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPending, o.Status)
		assert.Equal(t, money.Amount(0), o.ShippingCost)

		_, err = st.CreateOrder(insertOrder("PED-0001"))
		assert.ErrorIs(t, err, ErrConflict)

		shipped := domain.OrderStatusShipped
		tracking := "BR123456789"
		updated, err := st.UpdateOrder(o.ID, domain.OrderPatch{Status: &shipped, TrackingCode: &tracking})
		require.NoError(t, err)
		assert.Equal(t, "shipped", updated.Status)
		assert.Equal(t, tracking, updated.TrackingCode)
		assert.Equal(t, o.Total, updated.Total)

		deleted, err := st.DeleteOrder(o.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
		deleted, err = st.DeleteOrder(o.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestConvertQuote(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		q, err := st.CreateQuote(insertQuote("ORC-2001"))
		require.NoError(t, err)

		o, err := st.ConvertQuote(q.ID, "PED-2001")
		require.NoError(t, err)
		assert.Equal(t, "PED-2001", o.OrderNumber)
		assert.Equal(t, q.ID, o.QuoteID)
		assert.Equal(t, q.ClientName, o.ClientName)
		assert.Equal(t, q.ClientPhone, o.ClientPhone)
		assert.Equal(t, q.Items, o.Items)
		assert.Equal(t, q.Subtotal, o.Subtotal)
		assert.Equal(t, q.Subtotal, o.Total, "shipping starts at zero")
		assert.Equal(t, domain.OrderStatusPending, o.Status)

		got, err := st.GetQuote(q.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStatusConverted, got.Status)

		// second conversion is refused and creates no extra order
		_, err = st.ConvertQuote(q.ID, "PED-2002")
		assert.ErrorIs(t, err, ErrConflict)
		orders, err := st.ListOrders(Filter{})
		require.NoError(t, err)
		assert.Len(t, orders, 1)

		_, err = st.ConvertQuote("missing-id", "PED-2003")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSettings(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		s, err := st.GetSettings()
		require.NoError(t, err)
		assert.Equal(t, "EMUNAH", s.StoreName)
		assert.True(t, s.QuoteAlerts)
		assert.True(t, s.LowStockAlerts)

		insta := "@emunah.store"
		alerts := false
		updated, err := st.UpdateSettings(domain.SettingsPatch{Instagram: &insta, LowStockAlerts: &alerts})
		require.NoError(t, err)
		assert.Equal(t, insta, updated.Instagram)
		assert.False(t, updated.LowStockAlerts)
		assert.Equal(t, "EMUNAH", updated.StoreName, "unpatched fields survive")

		again, err := st.GetSettings()
		require.NoError(t, err)
		assert.Equal(t, updated, again)
	})
}

func TestUsers(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		u, err := st.CreateUser(domain.InsertUser{Username: "admin", Hash: "x"})
		require.NoError(t, err)

		got, err := st.GetUserByUsername("admin")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)

		byID, err := st.GetUser(u.ID)
		require.NoError(t, err)
		assert.Equal(t, "admin", byID.Username)

		_, err = st.CreateUser(domain.InsertUser{Username: "admin", Hash: "y"})
		assert.ErrorIs(t, err, ErrConflict)

		_, err = st.GetUserByUsername("nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSeedIdempotent(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		require.NoError(t, Seed(st))
		require.NoError(t, Seed(st))

		products, err := st.ListProducts()
		require.NoError(t, err)
		assert.Len(t, products, 4)

		seen := map[string]bool{}
		for _, p := range products {
			seen[p.Slug] = true
		}
		for _, slug := range []string{"camiseta-emunah-basica", "caneca-fe-diaria", "camiseta-versiculo", "ecobag-proposito"} {
			assert.True(t, seen[slug], "missing seed product %s", slug)
		}

		u, err := st.GetUserByUsername("admin")
		require.NoError(t, err)
		assert.NotEmpty(t, u.Hash)
	})
}

func TestMoneySurvivesRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, st Storage) {
		for i, cents := range []money.Amount{1, 99, 100, 8990, 123456789} {
			in := insertProduct(fmt.Sprintf("preco-%d", i))
			in.Price = cents
			p, err := st.CreateProduct(in)
			require.NoError(t, err)
			got, err := st.GetProduct(p.ID)
			require.NoError(t, err)
			assert.Equal(t, cents, got.Price)
		}
	})
}
