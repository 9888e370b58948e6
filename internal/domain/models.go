package domain

import "emunah/internal/money"

// TimeLayout is the fixed-width UTC timestamp format used for createdAt in
// both store backends, so lexicographic comparison matches chronological
// order. An empty string means "no createdAt" and sorts as oldest.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Product struct {
	ID          string       `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	Slug        string       `db:"slug" json:"slug"`
	Price       money.Amount `db:"price" json:"price"`
	Description string       `db:"description" json:"description"`
	Category    string       `db:"category" json:"category"` // Roupas | Acessórios (open set)
	Image       string       `db:"image" json:"image"`
	Stock       int          `db:"stock" json:"stock"`
	Active      bool         `db:"active" json:"active"`
	CreatedAt   string       `db:"created_at" json:"createdAt"`
}

type Client struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"` // natural dedup key, compared verbatim
	Address   string `db:"address" json:"address"`
	City      string `db:"city" json:"city"`
	State     string `db:"state" json:"state"`
	ZipCode   string `db:"zip_code" json:"zipCode"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

// Quote carries a denormalized snapshot of the client (name/phone) taken at
// quote time, so later client edits never alter historical documents.
type Quote struct {
	ID          string       `db:"id" json:"id"`
	QuoteNumber string       `db:"quote_number" json:"quoteNumber"`
	ClientID    string       `db:"client_id" json:"clientId"`
	ClientName  string       `db:"client_name" json:"clientName"`
	ClientPhone string       `db:"client_phone" json:"clientPhone"`
	Items       string       `db:"items" json:"items"` // JSON array, persisted verbatim
	Subtotal    money.Amount `db:"subtotal" json:"subtotal"`
	Total       money.Amount `db:"total" json:"total"`
	Status      string       `db:"status" json:"status"`
	BibleVerse  string       `db:"bible_verse" json:"bibleVerse"`
	CreatedAt   string       `db:"created_at" json:"createdAt"`
}

type Order struct {
	ID            string       `db:"id" json:"id"`
	OrderNumber   string       `db:"order_number" json:"orderNumber"`
	ClientID      string       `db:"client_id" json:"clientId"`
	ClientName    string       `db:"client_name" json:"clientName"`
	ClientPhone   string       `db:"client_phone" json:"clientPhone"`
	ClientAddress string       `db:"client_address" json:"clientAddress"`
	ClientCity    string       `db:"client_city" json:"clientCity"`
	ClientState   string       `db:"client_state" json:"clientState"`
	ClientZipCode string       `db:"client_zip_code" json:"clientZipCode"`
	Items         string       `db:"items" json:"items"`
	Subtotal      money.Amount `db:"subtotal" json:"subtotal"`
	ShippingCost  money.Amount `db:"shipping_cost" json:"shippingCost"`
	Total         money.Amount `db:"total" json:"total"`
	Status        string       `db:"status" json:"status"`
	TrackingCode  string       `db:"tracking_code" json:"trackingCode"`
	PaymentMethod string       `db:"payment_method" json:"paymentMethod"`
	QuoteID       string       `db:"quote_id" json:"quoteId"`
	CreatedAt     string       `db:"created_at" json:"createdAt"`
}

// QuoteItem is one line of a quote or order items list.
type QuoteItem struct {
	ProductID   string       `json:"productId,omitempty"`
	ProductName string       `json:"productName"`
	Quantity    int          `json:"quantity"`
	UnitPrice   money.Amount `json:"unitPrice"`
}

// Settings is the single store-wide configuration record shown on quotes and
// the storefront footer.
type Settings struct {
	StoreName      string `db:"store_name" json:"storeName"`
	ContactEmail   string `db:"contact_email" json:"contactEmail"`
	ContactPhone   string `db:"contact_phone" json:"contactPhone"`
	CNPJ           string `db:"cnpj" json:"cnpj"`
	Instagram      string `db:"instagram" json:"instagram"`
	QuoteAlerts    bool   `db:"quote_alerts" json:"quoteAlerts"`
	LowStockAlerts bool   `db:"low_stock_alerts" json:"lowStockAlerts"`
}

// DefaultSettings is the store profile used until staff edit it.
func DefaultSettings() Settings {
	return Settings{
		StoreName:      "EMUNAH",
		ContactEmail:   "contato@emunah.com",
		ContactPhone:   "(11) 99999-9999",
		CNPJ:           "00.000.000/0001-00",
		QuoteAlerts:    true,
		LowStockAlerts: true,
	}
}

const (
	QuoteStatusPending   = "pending"
	QuoteStatusSent      = "sent"
	QuoteStatusApproved  = "approved"
	QuoteStatusRejected  = "rejected"
	QuoteStatusConverted = "converted"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusApproved   = "approved"
	OrderStatusProduction = "production"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusSent, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusConverted:
		return true
	}
	return false
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusProduction, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}
