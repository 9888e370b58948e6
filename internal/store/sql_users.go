package store

import "emunah/internal/domain"

func (s *SQL) GetUser(id string) (*domain.User, error) {
	var u domain.User
	if err := s.get(&u, `SELECT id, username, password_hash FROM users WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQL) GetUserByUsername(username string) (*domain.User, error) {
	var u domain.User
	if err := s.get(&u, `SELECT id, username, password_hash FROM users WHERE username = ?`, username); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQL) CreateUser(in domain.InsertUser) (*domain.User, error) {
	taken, err := s.exists(`SELECT COUNT(*) FROM users WHERE username = ?`, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}
	u := domain.User{ID: newID(), Username: in.Username, Hash: in.Hash}
	if _, err := s.db.Exec(s.db.Rebind(`
	  INSERT INTO users(id, username, password_hash) VALUES(?, ?, ?)
	`), u.ID, u.Username, u.Hash); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQL) GetSettings() (*domain.Settings, error) {
	var st domain.Settings
	err := s.get(&st, `
	  SELECT store_name, contact_email, contact_phone, cnpj, instagram, quote_alerts, low_stock_alerts
	  FROM settings WHERE id = 1
	`)
	if err == ErrNotFound {
		def := domain.DefaultSettings()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *SQL) UpdateSettings(patch domain.SettingsPatch) (*domain.Settings, error) {
	var sc setClause
	if patch.StoreName != nil {
		sc.add("store_name", *patch.StoreName)
	}
	if patch.ContactEmail != nil {
		sc.add("contact_email", *patch.ContactEmail)
	}
	if patch.ContactPhone != nil {
		sc.add("contact_phone", *patch.ContactPhone)
	}
	if patch.CNPJ != nil {
		sc.add("cnpj", *patch.CNPJ)
	}
	if patch.Instagram != nil {
		sc.add("instagram", *patch.Instagram)
	}
	if patch.QuoteAlerts != nil {
		sc.add("quote_alerts", *patch.QuoteAlerts)
	}
	if patch.LowStockAlerts != nil {
		sc.add("low_stock_alerts", *patch.LowStockAlerts)
	}
	if !sc.empty() {
		if _, err := s.db.Exec(s.db.Rebind(sc.query("settings")), append(sc.args, 1)...); err != nil {
			return nil, err
		}
	}
	return s.GetSettings()
}
