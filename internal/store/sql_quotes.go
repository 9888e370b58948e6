package store

import "emunah/internal/domain"

const quoteCols = `id, quote_number, client_id, client_name, client_phone, items, subtotal, total, status, bible_verse, created_at`

func (s *SQL) ListQuotes(f Filter) ([]domain.Quote, error) {
	where, args := listWhere(f)
	out := []domain.Quote{}
	err := s.db.Select(&out, s.db.Rebind(`
	  SELECT `+quoteCols+`
	  FROM quotes`+where+`
	  ORDER BY created_at DESC
	`), args...)
	return out, err
}

func (s *SQL) GetQuote(id string) (*domain.Quote, error) {
	var q domain.Quote
	if err := s.get(&q, `SELECT `+quoteCols+` FROM quotes WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *SQL) CreateQuote(in domain.InsertQuote) (*domain.Quote, error) {
	if in.QuoteNumber != "" {
		taken, err := s.exists(`SELECT COUNT(*) FROM quotes WHERE quote_number = ?`, in.QuoteNumber)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
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
	_, err := s.db.Exec(s.db.Rebind(`
	  INSERT INTO quotes(`+quoteCols+`)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), q.ID, q.QuoteNumber, q.ClientID, q.ClientName, q.ClientPhone, q.Items, q.Subtotal, q.Total, q.Status, q.BibleVerse, q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *SQL) UpdateQuote(id string, patch domain.QuotePatch) (*domain.Quote, error) {
	var sc setClause
	if patch.QuoteNumber != nil {
		taken, err := s.exists(`SELECT COUNT(*) FROM quotes WHERE quote_number = ? AND id <> ?`, *patch.QuoteNumber, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
		sc.add("quote_number", *patch.QuoteNumber)
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
	if patch.Items != nil {
		sc.add("items", *patch.Items)
	}
	if patch.Subtotal != nil {
		sc.add("subtotal", *patch.Subtotal)
	}
	if patch.Total != nil {
		sc.add("total", *patch.Total)
	}
	if patch.Status != nil {
		sc.add("status", *patch.Status)
	}
	if patch.BibleVerse != nil {
		sc.add("bible_verse", *patch.BibleVerse)
	}
	if sc.empty() {
		return s.GetQuote(id)
	}
	res, err := s.db.Exec(s.db.Rebind(sc.query("quotes")), append(sc.args, id)...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetQuote(id)
}

func (s *SQL) DeleteQuote(id string) (bool, error) {
	res, err := s.db.Exec(s.db.Rebind(`DELETE FROM quotes WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ConvertQuote runs the quote-to-order conversion in a single transaction:
// either the order exists and the quote is marked converted, or neither.
func (s *SQL) ConvertQuote(quoteID, orderNumber string) (*domain.Order, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var q domain.Quote
	if err := tx.Get(&q, tx.Rebind(`SELECT `+quoteCols+` FROM quotes WHERE id = ?`), quoteID); err != nil {
		if isNoRowsErr(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if q.Status == domain.QuoteStatusConverted {
		return nil, ErrConflict
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
	if _, err := tx.Exec(tx.Rebind(`
	  INSERT INTO orders(`+orderCols+`)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), o.ID, o.OrderNumber, o.ClientID, o.ClientName, o.ClientPhone, o.ClientAddress, o.ClientCity, o.ClientState,
		o.ClientZipCode, o.Items, o.Subtotal, o.ShippingCost, o.Total, o.Status, o.TrackingCode, o.PaymentMethod,
		o.QuoteID, o.CreatedAt); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(tx.Rebind(`UPDATE quotes SET status = ? WHERE id = ?`), domain.QuoteStatusConverted, quoteID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &o, nil
}
