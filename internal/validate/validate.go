// Package validate turns raw JSON request bodies into the typed insert and
// patch payloads the store accepts. Every required field must be present with
// the right primitive type; numeric fields arriving as strings must parse
// cleanly; failures name the offending field.
package validate

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"emunah/internal/domain"
	"emunah/internal/money"
)

// Error is a validation failure tied to a single field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func errf(field, msg string) *Error { return &Error{Field: field, Message: msg} }

var reSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slug checks a URL-safe product slug.
func Slug(s string) bool { return s != "" && len(s) <= 120 && reSlug.MatchString(s) }

type raw map[string]json.RawMessage

func decode(body []byte) (raw, error) {
	var m raw
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, &Error{Message: "invalid JSON body"}
	}
	return m, nil
}

func (m raw) str(field string) (string, bool, error) {
	v, ok := m[field]
	if !ok || string(v) == "null" {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", true, errf(field, "must be a string")
	}
	return s, true, nil
}

func (m raw) reqStr(field string) (string, error) {
	s, ok, err := m.str(field)
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(s) == "" {
		return "", errf(field, "is required")
	}
	return s, nil
}

func (m raw) amount(field string) (money.Amount, bool, error) {
	v, ok := m[field]
	if !ok || string(v) == "null" {
		return 0, false, nil
	}
	var a money.Amount
	if err := json.Unmarshal(v, &a); err != nil {
		return 0, true, errf(field, "must be a decimal amount")
	}
	return a, true, nil
}

func (m raw) reqAmount(field string) (money.Amount, error) {
	a, ok, err := m.amount(field)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errf(field, "is required")
	}
	return a, nil
}

// nonNegAmount is for price-like fields that may not be negative.
func (m raw) nonNegAmount(field string) (money.Amount, bool, error) {
	a, ok, err := m.amount(field)
	if err != nil {
		return 0, ok, err
	}
	if ok && a < 0 {
		return 0, true, errf(field, "must not be negative")
	}
	return a, ok, nil
}

// intField rejects non-integer and negative input outright; silent coercion
// to zero is not done on any path.
func (m raw) intField(field string) (int, bool, error) {
	v, ok := m[field]
	if !ok || string(v) == "null" {
		return 0, false, nil
	}
	var n int
	if err := json.Unmarshal(v, &n); err != nil {
		// accept numeric strings, as the admin forms submit them
		var s string
		if err2 := json.Unmarshal(v, &s); err2 != nil {
			return 0, true, errf(field, "must be an integer")
		}
		parsed, perr := parseInt(s)
		if perr != nil {
			return 0, true, errf(field, "must be an integer")
		}
		n = parsed
	}
	if n < 0 {
		return 0, true, errf(field, "must not be negative")
	}
	return n, true, nil
}

func parseInt(s string) (int, error) {
	var n int
	err := json.Unmarshal([]byte(strings.TrimSpace(s)), &n)
	return n, err
}

func (m raw) boolField(field string) (bool, bool, error) {
	v, ok := m[field]
	if !ok || string(v) == "null" {
		return false, false, nil
	}
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		return false, true, errf(field, "must be a boolean")
	}
	return b, true, nil
}

// Product validates an InsertProduct payload.
func Product(body []byte) (domain.InsertProduct, error) {
	var p domain.InsertProduct
	m, err := decode(body)
	if err != nil {
		return p, err
	}
	if p.Name, err = m.reqStr("name"); err != nil {
		return p, err
	}
	if p.Slug, err = m.reqStr("slug"); err != nil {
		return p, err
	}
	if !Slug(p.Slug) {
		return p, errf("slug", "must be lowercase letters, digits and hyphens")
	}
	if p.Price, err = m.reqAmount("price"); err != nil {
		return p, err
	}
	if p.Price < 0 {
		return p, errf("price", "must not be negative")
	}
	if p.Description, err = m.reqStr("description"); err != nil {
		return p, err
	}
	if p.Category, err = m.reqStr("category"); err != nil {
		return p, err
	}
	if p.Image, err = m.reqStr("image"); err != nil {
		return p, err
	}
	stock, ok, err := m.intField("stock")
	if err != nil {
		return p, err
	}
	if ok {
		p.Stock = stock
	}
	active, ok, err := m.boolField("active")
	if err != nil {
		return p, err
	}
	p.Active = true
	if ok {
		p.Active = active
	}
	return p, nil
}

// ProductPatch validates a partial product update.
func ProductPatch(body []byte) (domain.ProductPatch, error) {
	var p domain.ProductPatch
	m, err := decode(body)
	if err != nil {
		return p, err
	}
	if s, ok, err := m.str("name"); err != nil {
		return p, err
	} else if ok {
		p.Name = &s
	}
	if s, ok, err := m.str("slug"); err != nil {
		return p, err
	} else if ok {
		if !Slug(s) {
			return p, errf("slug", "must be lowercase letters, digits and hyphens")
		}
		p.Slug = &s
	}
	if a, ok, err := m.nonNegAmount("price"); err != nil {
		return p, err
	} else if ok {
		p.Price = &a
	}
	if s, ok, err := m.str("description"); err != nil {
		return p, err
	} else if ok {
		p.Description = &s
	}
	if s, ok, err := m.str("category"); err != nil {
		return p, err
	} else if ok {
		p.Category = &s
	}
	if s, ok, err := m.str("image"); err != nil {
		return p, err
	} else if ok {
		p.Image = &s
	}
	if n, ok, err := m.intField("stock"); err != nil {
		return p, err
	} else if ok {
		p.Stock = &n
	}
	if b, ok, err := m.boolField("active"); err != nil {
		return p, err
	} else if ok {
		p.Active = &b
	}
	return p, nil
}

// Client validates an InsertClient payload. Phone is the dedup key and is
// kept exactly as submitted.
func Client(body []byte) (domain.InsertClient, error) {
	var c domain.InsertClient
	m, err := decode(body)
	if err != nil {
		return c, err
	}
	if c.Name, err = m.reqStr("name"); err != nil {
		return c, err
	}
	if c.Phone, err = m.reqStr("phone"); err != nil {
		return c, err
	}
	for field, dst := range map[string]*string{
		"email": &c.Email, "address": &c.Address, "city": &c.City,
		"state": &c.State, "zipCode": &c.ZipCode,
	} {
		s, ok, err := m.str(field)
		if err != nil {
			return c, err
		}
		if ok {
			*dst = s
		}
	}
	return c, nil
}

// ClientPatch validates a partial client update.
func ClientPatch(body []byte) (domain.ClientPatch, error) {
	var c domain.ClientPatch
	m, err := decode(body)
	if err != nil {
		return c, err
	}
	for field, dst := range map[string]**string{
		"name": &c.Name, "email": &c.Email, "phone": &c.Phone,
		"address": &c.Address, "city": &c.City, "state": &c.State, "zipCode": &c.ZipCode,
	} {
		s, ok, err := m.str(field)
		if err != nil {
			return c, err
		}
		if ok {
			if (field == "name" || field == "phone") && strings.TrimSpace(s) == "" {
				return c, errf(field, "must not be empty")
			}
			v := s
			*dst = &v
		}
	}
	return c, nil
}

// Quote validates an InsertQuote payload. Subtotal/total consistency with the
// items list is the quote service's contract, not checked here.
func Quote(body []byte) (domain.InsertQuote, error) {
	var q domain.InsertQuote
	m, err := decode(body)
	if err != nil {
		return q, err
	}
	if q.ClientID, err = m.reqStr("clientId"); err != nil {
		return q, err
	}
	if q.ClientName, err = m.reqStr("clientName"); err != nil {
		return q, err
	}
	if q.ClientPhone, err = m.reqStr("clientPhone"); err != nil {
		return q, err
	}
	if q.Items, err = m.reqStr("items"); err != nil {
		return q, err
	}
	if q.Subtotal, err = m.reqAmount("subtotal"); err != nil {
		return q, err
	}
	if q.Total, err = m.reqAmount("total"); err != nil {
		return q, err
	}
	if s, ok, err := m.str("quoteNumber"); err != nil {
		return q, err
	} else if ok {
		q.QuoteNumber = s
	}
	if s, ok, err := m.str("status"); err != nil {
		return q, err
	} else if ok {
		if !domain.ValidQuoteStatus(s) {
			return q, errf("status", "unknown quote status")
		}
		q.Status = s
	}
	if s, ok, err := m.str("bibleVerse"); err != nil {
		return q, err
	} else if ok {
		q.BibleVerse = s
	}
	return q, nil
}

// QuotePatch validates a partial quote update.
func QuotePatch(body []byte) (domain.QuotePatch, error) {
	var q domain.QuotePatch
	m, err := decode(body)
	if err != nil {
		return q, err
	}
	for field, dst := range map[string]**string{
		"quoteNumber": &q.QuoteNumber, "clientId": &q.ClientID,
		"clientName": &q.ClientName, "clientPhone": &q.ClientPhone,
		"items": &q.Items, "bibleVerse": &q.BibleVerse,
	} {
		s, ok, err := m.str(field)
		if err != nil {
			return q, err
		}
		if ok {
			v := s
			*dst = &v
		}
	}
	if s, ok, err := m.str("status"); err != nil {
		return q, err
	} else if ok {
		if !domain.ValidQuoteStatus(s) {
			return q, errf("status", "unknown quote status")
		}
		q.Status = &s
	}
	if a, ok, err := m.amount("subtotal"); err != nil {
		return q, err
	} else if ok {
		q.Subtotal = &a
	}
	if a, ok, err := m.amount("total"); err != nil {
		return q, err
	} else if ok {
		q.Total = &a
	}
	return q, nil
}

// Order validates an InsertOrder payload.
func Order(body []byte) (domain.InsertOrder, error) {
	var o domain.InsertOrder
	m, err := decode(body)
	if err != nil {
		return o, err
	}
	if o.ClientID, err = m.reqStr("clientId"); err != nil {
		return o, err
	}
	if o.ClientName, err = m.reqStr("clientName"); err != nil {
		return o, err
	}
	if o.ClientPhone, err = m.reqStr("clientPhone"); err != nil {
		return o, err
	}
	if o.Items, err = m.reqStr("items"); err != nil {
		return o, err
	}
	if o.Subtotal, err = m.reqAmount("subtotal"); err != nil {
		return o, err
	}
	if o.Total, err = m.reqAmount("total"); err != nil {
		return o, err
	}
	if a, ok, err := m.nonNegAmount("shippingCost"); err != nil {
		return o, err
	} else if ok {
		o.ShippingCost = a
	}
	if s, ok, err := m.str("status"); err != nil {
		return o, err
	} else if ok {
		if !domain.ValidOrderStatus(s) {
			return o, errf("status", "unknown order status")
		}
		o.Status = s
	}
	for field, dst := range map[string]*string{
		"orderNumber": &o.OrderNumber, "clientAddress": &o.ClientAddress,
		"clientCity": &o.ClientCity, "clientState": &o.ClientState,
		"clientZipCode": &o.ClientZipCode, "trackingCode": &o.TrackingCode,
		"paymentMethod": &o.PaymentMethod, "quoteId": &o.QuoteID,
	} {
		s, ok, err := m.str(field)
		if err != nil {
			return o, err
		}
		if ok {
			*dst = s
		}
	}
	return o, nil
}

// OrderPatch validates a partial order update.
func OrderPatch(body []byte) (domain.OrderPatch, error) {
	var o domain.OrderPatch
	m, err := decode(body)
	if err != nil {
		return o, err
	}
	for field, dst := range map[string]**string{
		"orderNumber": &o.OrderNumber, "clientId": &o.ClientID,
		"clientName": &o.ClientName, "clientPhone": &o.ClientPhone,
		"clientAddress": &o.ClientAddress, "clientCity": &o.ClientCity,
		"clientState": &o.ClientState, "clientZipCode": &o.ClientZipCode,
		"items": &o.Items, "trackingCode": &o.TrackingCode,
		"paymentMethod": &o.PaymentMethod,
	} {
		s, ok, err := m.str(field)
		if err != nil {
			return o, err
		}
		if ok {
			v := s
			*dst = &v
		}
	}
	if s, ok, err := m.str("status"); err != nil {
		return o, err
	} else if ok {
		if !domain.ValidOrderStatus(s) {
			return o, errf("status", "unknown order status")
		}
		o.Status = &s
	}
	if a, ok, err := m.amount("subtotal"); err != nil {
		return o, err
	} else if ok {
		o.Subtotal = &a
	}
	if a, ok, err := m.nonNegAmount("shippingCost"); err != nil {
		return o, err
	} else if ok {
		o.ShippingCost = &a
	}
	if a, ok, err := m.amount("total"); err != nil {
		return o, err
	} else if ok {
		o.Total = &a
	}
	return o, nil
}

// SettingsPatch validates a partial settings update.
func SettingsPatch(body []byte) (domain.SettingsPatch, error) {
	var s domain.SettingsPatch
	m, err := decode(body)
	if err != nil {
		return s, err
	}
	for field, dst := range map[string]**string{
		"storeName": &s.StoreName, "contactEmail": &s.ContactEmail,
		"contactPhone": &s.ContactPhone, "cnpj": &s.CNPJ, "instagram": &s.Instagram,
	} {
		v, ok, err := m.str(field)
		if err != nil {
			return s, err
		}
		if ok {
			val := v
			*dst = &val
		}
	}
	if b, ok, err := m.boolField("quoteAlerts"); err != nil {
		return s, err
	} else if ok {
		s.QuoteAlerts = &b
	}
	if b, ok, err := m.boolField("lowStockAlerts"); err != nil {
		return s, err
	} else if ok {
		s.LowStockAlerts = &b
	}
	return s, nil
}

// DateBound normalizes a startDate/endDate query value to the storage
// timestamp layout. Accepts a bare date (2006-01-02) or RFC 3339; a bare end
// date expands to the last instant of that day so both bounds stay inclusive.
func DateBound(s string, end bool) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		if end {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return t.UTC().Format(domain.TimeLayout), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(domain.TimeLayout), true
	}
	return "", false
}
