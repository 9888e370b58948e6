package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"emunah/internal/domain"
)

// SQL is the relational Storage backend. Queries are written with ? binds
// and passed through Rebind, so the same code runs on SQLite (modernc, the
// default) and Postgres (lib/pq).
type SQL struct {
	db *sqlx.DB
}

var _ Storage = (*SQL)(nil)

// OpenSQL connects, bootstraps the schema, and ensures the settings row
// exists. driver is "sqlite" or "postgres".
func OpenSQL(driver, dsn string) (*SQL, error) {
	switch driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	s := &SQL{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// DB exposes the underlying handle for seeding and tests.
func (s *SQL) DB() *sqlx.DB { return s.db }

func (s *SQL) ensureSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  price TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL,
  image TEXT NOT NULL DEFAULT '',
  stock INTEGER NOT NULL DEFAULT 0,
  active BOOLEAN NOT NULL DEFAULT TRUE,
  created_at TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

CREATE TABLE IF NOT EXISTS clients(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL,
  address TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  state TEXT NOT NULL DEFAULT '',
  zip_code TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_clients_phone ON clients(phone);

CREATE TABLE IF NOT EXISTS quotes(
  id TEXT PRIMARY KEY,
  quote_number TEXT NOT NULL UNIQUE,
  client_id TEXT NOT NULL,
  client_name TEXT NOT NULL,
  client_phone TEXT NOT NULL,
  items TEXT NOT NULL,
  subtotal TEXT NOT NULL,
  total TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  bible_verse TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_quotes_status     ON quotes(status);
CREATE INDEX IF NOT EXISTS idx_quotes_created_at ON quotes(created_at);

CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  order_number TEXT NOT NULL UNIQUE,
  client_id TEXT NOT NULL,
  client_name TEXT NOT NULL,
  client_phone TEXT NOT NULL,
  client_address TEXT NOT NULL DEFAULT '',
  client_city TEXT NOT NULL DEFAULT '',
  client_state TEXT NOT NULL DEFAULT '',
  client_zip_code TEXT NOT NULL DEFAULT '',
  items TEXT NOT NULL,
  subtotal TEXT NOT NULL,
  shipping_cost TEXT NOT NULL DEFAULT '0.00',
  total TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  tracking_code TEXT NOT NULL DEFAULT '',
  payment_method TEXT NOT NULL DEFAULT '',
  quote_id TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_orders_status     ON orders(status);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS settings(
  id INTEGER PRIMARY KEY,
  store_name TEXT NOT NULL DEFAULT '',
  contact_email TEXT NOT NULL DEFAULT '',
  contact_phone TEXT NOT NULL DEFAULT '',
  cnpj TEXT NOT NULL DEFAULT '',
  instagram TEXT NOT NULL DEFAULT '',
  quote_alerts BOOLEAN NOT NULL DEFAULT TRUE,
  low_stock_alerts BOOLEAN NOT NULL DEFAULT TRUE
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	def := domain.DefaultSettings()
	_, err := s.db.Exec(s.db.Rebind(`
		INSERT INTO settings(id, store_name, contact_email, contact_phone, cnpj, instagram, quote_alerts, low_stock_alerts)
		SELECT 1, ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM settings WHERE id = 1)
	`), def.StoreName, def.ContactEmail, def.ContactPhone, def.CNPJ, def.Instagram, def.QuoteAlerts, def.LowStockAlerts)
	return err
}

// get wraps sqlx.Get and maps row absence to ErrNotFound.
func (s *SQL) get(dest any, query string, args ...any) error {
	err := s.db.Get(dest, s.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func isNoRowsErr(err error) bool { return errors.Is(err, sql.ErrNoRows) }

func (s *SQL) exists(query string, args ...any) (bool, error) {
	var n int
	if err := s.db.Get(&n, s.db.Rebind(query), args...); err != nil {
		return false, err
	}
	return n > 0, nil
}

// setClause assembles a dynamic UPDATE ... SET fragment.
type setClause struct {
	cols []string
	args []any
}

func (sc *setClause) add(col string, v any) {
	sc.cols = append(sc.cols, col+" = ?")
	sc.args = append(sc.args, v)
}

func (sc *setClause) empty() bool { return len(sc.cols) == 0 }

func (sc *setClause) query(table string) string {
	return "UPDATE " + table + " SET " + strings.Join(sc.cols, ", ") + " WHERE id = ?"
}

// listWhere builds the shared status/date-range WHERE fragment for quote and
// order listings.
func listWhere(f Filter) (string, []any) {
	var conds []string
	var args []any
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	if f.StartDate != "" {
		conds = append(conds, "created_at >= ? AND created_at <> ''")
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		conds = append(conds, "created_at <= ? AND created_at <> ''")
		args = append(args, f.EndDate)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
