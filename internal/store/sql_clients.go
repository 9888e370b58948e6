package store

import "emunah/internal/domain"

const clientCols = `id, name, email, phone, address, city, state, zip_code, created_at`

func (s *SQL) ListClients() ([]domain.Client, error) {
	out := []domain.Client{}
	err := s.db.Select(&out, `
	  SELECT `+clientCols+`
	  FROM clients
	  ORDER BY created_at DESC
	`)
	return out, err
}

func (s *SQL) GetClient(id string) (*domain.Client, error) {
	var c domain.Client
	if err := s.get(&c, `SELECT `+clientCols+` FROM clients WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetClientByPhone matches the phone exactly as stored; it backs the
// idempotent create-client rule.
func (s *SQL) GetClientByPhone(phone string) (*domain.Client, error) {
	var c domain.Client
	if err := s.get(&c, `SELECT `+clientCols+` FROM clients WHERE phone = ? ORDER BY created_at ASC LIMIT 1`, phone); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQL) CreateClient(in domain.InsertClient) (*domain.Client, error) {
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
	_, err := s.db.Exec(s.db.Rebind(`
	  INSERT INTO clients(`+clientCols+`)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), c.ID, c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.ZipCode, c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQL) UpdateClient(id string, patch domain.ClientPatch) (*domain.Client, error) {
	var sc setClause
	if patch.Name != nil {
		sc.add("name", *patch.Name)
	}
	if patch.Email != nil {
		sc.add("email", *patch.Email)
	}
	if patch.Phone != nil {
		sc.add("phone", *patch.Phone)
	}
	if patch.Address != nil {
		sc.add("address", *patch.Address)
	}
	if patch.City != nil {
		sc.add("city", *patch.City)
	}
	if patch.State != nil {
		sc.add("state", *patch.State)
	}
	if patch.ZipCode != nil {
		sc.add("zip_code", *patch.ZipCode)
	}
	if sc.empty() {
		return s.GetClient(id)
	}
	res, err := s.db.Exec(s.db.Rebind(sc.query("clients")), append(sc.args, id)...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetClient(id)
}
