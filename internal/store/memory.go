package store

import (
	"sort"
	"sync"

	"emunah/internal/domain"
)

// Memory is a map-backed Storage. Good for tests and single-process demo
// runs; everything is lost on exit.
type Memory struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	products map[string]domain.Product
	clients  map[string]domain.Client
	quotes   map[string]domain.Quote
	orders   map[string]domain.Order
	settings domain.Settings
}

var _ Storage = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]domain.User),
		products: make(map[string]domain.Product),
		clients:  make(map[string]domain.Client),
		quotes:   make(map[string]domain.Quote),
		orders:   make(map[string]domain.Order),
		settings: domain.DefaultSettings(),
	}
}

// ---------- Users ----------

func (m *Memory) GetUser(id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) GetUserByUsername(username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateUser(in domain.InsertUser) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == in.Username {
			return nil, ErrConflict
		}
	}
	u := domain.User{ID: newID(), Username: in.Username, Hash: in.Hash}
	m.users[u.ID] = u
	return &u, nil
}

// ---------- Products ----------

func (m *Memory) ListProducts() ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m *Memory) GetProduct(id string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *Memory) GetProductBySlug(slug string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.products {
		if p.Slug == slug {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateProduct(in domain.InsertProduct) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.Slug == in.Slug {
			return nil, ErrConflict
		}
	}
	p := domain.Product{
		ID:          newID(),
		Name:        in.Name,
		Slug:        in.Slug,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
		Image:       in.Image,
		Stock:       in.Stock,
		Active:      in.Active,
		CreatedAt:   nowStamp(),
	}
	m.products[p.ID] = p
	return &p, nil
}

func (m *Memory) UpdateProduct(id string, patch domain.ProductPatch) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Slug != nil {
		for oid, other := range m.products {
			if oid != id && other.Slug == *patch.Slug {
				return nil, ErrConflict
			}
		}
		p.Slug = *patch.Slug
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
	m.products[id] = p
	return &p, nil
}

func (m *Memory) DeleteProduct(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return false, nil
	}
	delete(m.products, id)
	return true, nil
}

// ---------- Clients ----------

func (m *Memory) ListClients() ([]domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Client, 0, len(m.clients))
	for _, c := range m.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m *Memory) GetClient(id string) (*domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.clients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *Memory) GetClientByPhone(phone string) (*domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.clients {
		if c.Phone == phone {
			c := c
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateClient(in domain.InsertClient) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := domain.Client{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
		CreatedAt: nowStamp(),
	}
	m.clients[c.ID] = c
	return &c, nil
}

func (m *Memory) UpdateClient(id string, patch domain.ClientPatch) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.City != nil {
		c.City = *patch.City
	}
	if patch.State != nil {
		c.State = *patch.State
	}
	if patch.ZipCode != nil {
		c.ZipCode = *patch.ZipCode
	}
	m.clients[id] = c
	return &c, nil
}

// ---------- Quotes ----------

func (m *Memory) ListQuotes(f Filter) ([]domain.Quote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Quote, 0, len(m.quotes))
	for _, q := range m.quotes {
		if f.Status != "" && q.Status != f.Status {
			continue
		}
		if (f.StartDate != "" || f.EndDate != "") && !inRange(q.CreatedAt, f) {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m *Memory) GetQuote(id string) (*domain.Quote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quotes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &q, nil
}

func (m *Memory) CreateQuote(in domain.InsertQuote) (*domain.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if in.QuoteNumber != "" {
		for _, q := range m.quotes {
			if q.QuoteNumber == in.QuoteNumber {
				return nil, ErrConflict
			}
		}
	}
	status := in.Status
	if status == "" {
		status = domain.QuoteStatusPending
	}
	q := domain.Quote{
		ID:          newID(),
		QuoteNumber: in.QuoteNumber,
		ClientID:    in.ClientID,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		Items:       in.Items,
		Subtotal:    in.Subtotal,
		Total:       in.Total,
		Status:      status,
		BibleVerse:  in.BibleVerse,
		CreatedAt:   nowStamp(),
	}
	m.quotes[q.ID] = q
	return &q, nil
}

func (m *Memory) UpdateQuote(id string, patch domain.QuotePatch) (*domain.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quotes[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.QuoteNumber != nil {
		for oid, other := range m.quotes {
			if oid != id && other.QuoteNumber == *patch.QuoteNumber {
				return nil, ErrConflict
			}
		}
		q.QuoteNumber = *patch.QuoteNumber
	}
	if patch.ClientID != nil {
		q.ClientID = *patch.ClientID
	}
	if patch.ClientName != nil {
		q.ClientName = *patch.ClientName
	}
	if patch.ClientPhone != nil {
		q.ClientPhone = *patch.ClientPhone
	}
	if patch.Items != nil {
		q.Items = *patch.Items
	}
	if patch.Subtotal != nil {
		q.Subtotal = *patch.Subtotal
	}
	if patch.Total != nil {
		q.Total = *patch.Total
	}
	if patch.Status != nil {
		q.Status = *patch.Status
	}
	if patch.BibleVerse != nil {
		q.BibleVerse = *patch.BibleVerse
	}
	m.quotes[id] = q
	return &q, nil
}

func (m *Memory) DeleteQuote(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.quotes[id]; !ok {
		return false, nil
	}
	delete(m.quotes, id)
	return true, nil
}

func (m *Memory) ConvertQuote(quoteID, orderNumber string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quotes[quoteID]
	if !ok {
		return nil, ErrNotFound
	}
	if q.Status == domain.QuoteStatusConverted {
		return nil, ErrConflict
	}
	for _, o := range m.orders {
		if o.OrderNumber == orderNumber {
			return nil, ErrConflict
		}
	}
	o := domain.Order{
		ID:          newID(),
		OrderNumber: orderNumber,
		ClientID:    q.ClientID,
		ClientName:  q.ClientName,
		ClientPhone: q.ClientPhone,
		Items:       q.Items,
		Subtotal:    q.Subtotal,
		Total:       q.Subtotal,
		Status:      domain.OrderStatusPending,
		QuoteID:     q.ID,
		CreatedAt:   nowStamp(),
	}
	m.orders[o.ID] = o
	q.Status = domain.QuoteStatusConverted
	m.quotes[quoteID] = q
	return &o, nil
}

// ---------- Orders ----------

func (m *Memory) ListOrders(f Filter) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if (f.StartDate != "" || f.EndDate != "") && !inRange(o.CreatedAt, f) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m *Memory) GetOrder(id string) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (m *Memory) CreateOrder(in domain.InsertOrder) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if in.OrderNumber != "" {
		for _, o := range m.orders {
			if o.OrderNumber == in.OrderNumber {
				return nil, ErrConflict
			}
		}
	}
	status := in.Status
	if status == "" {
		status = domain.OrderStatusPending
	}
	o := domain.Order{
		ID:            newID(),
		OrderNumber:   in.OrderNumber,
		ClientID:      in.ClientID,
		ClientName:    in.ClientName,
		ClientPhone:   in.ClientPhone,
		ClientAddress: in.ClientAddress,
		ClientCity:    in.ClientCity,
		ClientState:   in.ClientState,
		ClientZipCode: in.ClientZipCode,
		Items:         in.Items,
		Subtotal:      in.Subtotal,
		ShippingCost:  in.ShippingCost,
		Total:         in.Total,
		Status:        status,
		TrackingCode:  in.TrackingCode,
		PaymentMethod: in.PaymentMethod,
		QuoteID:       in.QuoteID,
		CreatedAt:     nowStamp(),
	}
	m.orders[o.ID] = o
	return &o, nil
}

func (m *Memory) UpdateOrder(id string, patch domain.OrderPatch) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.OrderNumber != nil {
		for oid, other := range m.orders {
			if oid != id && other.OrderNumber == *patch.OrderNumber {
				return nil, ErrConflict
			}
		}
		o.OrderNumber = *patch.OrderNumber
	}
	if patch.ClientID != nil {
		o.ClientID = *patch.ClientID
	}
	if patch.ClientName != nil {
		o.ClientName = *patch.ClientName
	}
	if patch.ClientPhone != nil {
		o.ClientPhone = *patch.ClientPhone
	}
	if patch.ClientAddress != nil {
		o.ClientAddress = *patch.ClientAddress
	}
	if patch.ClientCity != nil {
		o.ClientCity = *patch.ClientCity
	}
	if patch.ClientState != nil {
		o.ClientState = *patch.ClientState
	}
	if patch.ClientZipCode != nil {
		o.ClientZipCode = *patch.ClientZipCode
	}
	if patch.Items != nil {
		o.Items = *patch.Items
	}
	if patch.Subtotal != nil {
		o.Subtotal = *patch.Subtotal
	}
	if patch.ShippingCost != nil {
		o.ShippingCost = *patch.ShippingCost
	}
	if patch.Total != nil {
		o.Total = *patch.Total
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.TrackingCode != nil {
		o.TrackingCode = *patch.TrackingCode
	}
	if patch.PaymentMethod != nil {
		o.PaymentMethod = *patch.PaymentMethod
	}
	m.orders[id] = o
	return &o, nil
}

func (m *Memory) DeleteOrder(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return false, nil
	}
	delete(m.orders, id)
	return true, nil
}

// ---------- Settings ----------

func (m *Memory) GetSettings() (*domain.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.settings
	return &s, nil
}

func (m *Memory) UpdateSettings(patch domain.SettingsPatch) (*domain.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	applySettingsPatch(&m.settings, patch)
	s := m.settings
	return &s, nil
}

func applySettingsPatch(s *domain.Settings, patch domain.SettingsPatch) {
	if patch.StoreName != nil {
		s.StoreName = *patch.StoreName
	}
	if patch.ContactEmail != nil {
		s.ContactEmail = *patch.ContactEmail
	}
	if patch.ContactPhone != nil {
		s.ContactPhone = *patch.ContactPhone
	}
	if patch.CNPJ != nil {
		s.CNPJ = *patch.CNPJ
	}
	if patch.Instagram != nil {
		s.Instagram = *patch.Instagram
	}
	if patch.QuoteAlerts != nil {
		s.QuoteAlerts = *patch.QuoteAlerts
	}
	if patch.LowStockAlerts != nil {
		s.LowStockAlerts = *patch.LowStockAlerts
	}
}
