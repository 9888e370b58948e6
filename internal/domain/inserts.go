package domain

import "emunah/internal/money"

// Insert payloads are the validated shapes accepted by the store. The
// validation layer constructs them from raw request bodies; handlers and
// services never pass unchecked input past this boundary.

type InsertProduct struct {
	Name        string
	Slug        string
	Price       money.Amount
	Description string
	Category    string
	Image       string
	Stock       int
	Active      bool
}

type InsertClient struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	ZipCode string
}

type InsertQuote struct {
	QuoteNumber string // generated when empty
	ClientID    string
	ClientName  string
	ClientPhone string
	Items       string
	Subtotal    money.Amount
	Total       money.Amount
	Status      string
	BibleVerse  string
}

type InsertOrder struct {
	OrderNumber   string // generated when empty
	ClientID      string
	ClientName    string
	ClientPhone   string
	ClientAddress string
	ClientCity    string
	ClientState   string
	ClientZipCode string
	Items         string
	Subtotal      money.Amount
	ShippingCost  money.Amount
	Total         money.Amount
	Status        string
	TrackingCode  string
	PaymentMethod string
	QuoteID       string
}

// Patch payloads carry only the fields present in a PATCH body; nil means
// "leave unchanged". id and createdAt are never patchable.

type ProductPatch struct {
	Name        *string
	Slug        *string
	Price       *money.Amount
	Description *string
	Category    *string
	Image       *string
	Stock       *int
	Active      *bool
}

type ClientPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	City    *string
	State   *string
	ZipCode *string
}

type QuotePatch struct {
	QuoteNumber *string
	ClientID    *string
	ClientName  *string
	ClientPhone *string
	Items       *string
	Subtotal    *money.Amount
	Total       *money.Amount
	Status      *string
	BibleVerse  *string
}

type OrderPatch struct {
	OrderNumber   *string
	ClientID      *string
	ClientName    *string
	ClientPhone   *string
	ClientAddress *string
	ClientCity    *string
	ClientState   *string
	ClientZipCode *string
	Items         *string
	Subtotal      *money.Amount
	ShippingCost  *money.Amount
	Total         *money.Amount
	Status        *string
	TrackingCode  *string
	PaymentMethod *string
}

type SettingsPatch struct {
	StoreName      *string
	ContactEmail   *string
	ContactPhone   *string
	CNPJ           *string
	Instagram      *string
	QuoteAlerts    *bool
	LowStockAlerts *bool
}
