package store

import "emunah/internal/domain"

const productCols = `id, name, slug, price, description, category, image, stock, active, created_at`

func (s *SQL) ListProducts() ([]domain.Product, error) {
	out := []domain.Product{}
	err := s.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  ORDER BY created_at DESC
	`)
	return out, err
}

func (s *SQL) GetProduct(id string) (*domain.Product, error) {
	var p domain.Product
	if err := s.get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQL) GetProductBySlug(slug string) (*domain.Product, error) {
	var p domain.Product
	if err := s.get(&p, `SELECT `+productCols+` FROM products WHERE slug = ?`, slug); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQL) CreateProduct(in domain.InsertProduct) (*domain.Product, error) {
	taken, err := s.exists(`SELECT COUNT(*) FROM products WHERE slug = ?`, in.Slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
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
	_, err = s.db.Exec(s.db.Rebind(`
	  INSERT INTO products(`+productCols+`)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), p.ID, p.Name, p.Slug, p.Price, p.Description, p.Category, p.Image, p.Stock, p.Active, p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQL) UpdateProduct(id string, patch domain.ProductPatch) (*domain.Product, error) {
	var sc setClause
	if patch.Slug != nil {
		taken, err := s.exists(`SELECT COUNT(*) FROM products WHERE slug = ? AND id <> ?`, *patch.Slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
		sc.add("slug", *patch.Slug)
	}
	if patch.Name != nil {
		sc.add("name", *patch.Name)
	}
	if patch.Price != nil {
		sc.add("price", *patch.Price)
	}
	if patch.Description != nil {
		sc.add("description", *patch.Description)
	}
	if patch.Category != nil {
		sc.add("category", *patch.Category)
	}
	if patch.Image != nil {
		sc.add("image", *patch.Image)
	}
	if patch.Stock != nil {
		sc.add("stock", *patch.Stock)
	}
	if patch.Active != nil {
		sc.add("active", *patch.Active)
	}
	if sc.empty() {
		return s.GetProduct(id)
	}
	res, err := s.db.Exec(s.db.Rebind(sc.query("products")), append(sc.args, id)...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetProduct(id)
}

func (s *SQL) DeleteProduct(id string) (bool, error) {
	res, err := s.db.Exec(s.db.Rebind(`DELETE FROM products WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
