package domain

type User struct {
	ID       string `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Hash     string `db:"password_hash" json:"-"`
}

type InsertUser struct {
	Username string
	Hash     string // bcrypt hash, produced by the auth service
}
