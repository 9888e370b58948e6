package store

import "emunah/internal/domain"

const orderCols = `id, order_number, client_id, client_name, client_phone, client_address, client_city, client_state, client_zip_code, items, subtotal, shipping_cost, total, status, tracking_code, payment_method, quote_id, created_at`

func (s *SQL) ListOrders(f Filter) ([]domain.Order, error) {
	where, args := listWhere(f)
	out := []domain.Order{}
	err := s.db.Select(&out, s.db.Rebind(`
	  SELECT `+orderCols+`
	  FROM orders`+where+`
	  ORDER BY created_at DESC
	`), args...)
	return out, err
}

func (s *SQL) GetOrder(id string) (*domain.Order, error) {
	var o domain.Order
	if err := s.get(&o, `SELECT `+orderCols+` FROM orders WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *SQL) CreateOrder(in domain.InsertOrder) (*domain.Order, error) {
	if in.OrderNumber != "" {
		taken, err := s.exists(`SELECT COUNT(*) FROM orders WHERE order_number = ?`, in.OrderNumber)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
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
	_, err := s.db.Exec(s.db.Rebind(`
	  INSERT INTO orders(`+orderCols+`)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), o.ID, o.OrderNumber, o.ClientID, o.ClientName, o.ClientPhone, o.ClientAddress, o.ClientCity, o.ClientState,
		o.ClientZipCode, o.Items, o.Subtotal, o.ShippingCost, o.Total, o.Status, o.TrackingCode, o.PaymentMethod,
		o.QuoteID, o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *SQL) UpdateOrder(id string, patch domain.OrderPatch) (*domain.Order, error) {
	var sc setClause
	if patch.OrderNumber != nil {
		taken, err := s.exists(`SELECT COUNT(*) FROM orders WHERE order_number = ? AND id <> ?`, *patch.OrderNumber, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
		sc.add("order_number", *patch.OrderNumber)
	}
	if patch.ClientID != nil {
		sc.add("client_id", *patch.ClientID)
	}
	if patch.ClientName != nil {
		sc.add("client_name", *patch.ClientName)
	}
	if patch.ClientPhone != nil {
		sc.add("client_phone", *patch.ClientPhone)
	}
	if patch.ClientAddress != nil {
		sc.add("client_address", *patch.ClientAddress)
	}
	if patch.ClientCity != nil {
		sc.add("client_city", *patch.ClientCity)
	}
	if patch.ClientState != nil {
		sc.add("client_state", *patch.ClientState)
	}
	if patch.ClientZipCode != nil {
		sc.add("client_zip_code", *patch.ClientZipCode)
	}
	if patch.Items != nil {
		sc.add("items", *patch.Items)
	}
	if patch.Subtotal != nil {
		sc.add("subtotal", *patch.Subtotal)
	}
	if patch.ShippingCost != nil {
		sc.add("shipping_cost", *patch.ShippingCost)
	}
	if patch.Total != nil {
		sc.add("total", *patch.Total)
	}
	if patch.Status != nil {
		sc.add("status", *patch.Status)
	}
	if patch.TrackingCode != nil {
		sc.add("tracking_code", *patch.TrackingCode)
	}
	if patch.PaymentMethod != nil {
		sc.add("payment_method", *patch.PaymentMethod)
	}
	if sc.empty() {
		return s.GetOrder(id)
	}
	res, err := s.db.Exec(s.db.Rebind(sc.query("orders")), append(sc.args, id)...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetOrder(id)
}

func (s *SQL) DeleteOrder(id string) (bool, error) {
	res, err := s.db.Exec(s.db.Rebind(`DELETE FROM orders WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
