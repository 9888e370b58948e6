package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"emunah/internal/domain"
	"emunah/internal/store"
)

var ErrBadCreds = errors.New("invalid username or password")

// AuthService checks back-office credentials. There is no session layer;
// the admin UI only needs a yes/no on login.
type AuthService struct {
	Store store.Storage
}

func NewAuthService(st store.Storage) *AuthService { return &AuthService{Store: st} }

func (s *AuthService) Login(username, password string) (*domain.User, error) {
	u, err := s.Store.GetUserByUsername(username)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	return u, nil
}

// Register creates a back-office user with a bcrypt-hashed password.
func (s *AuthService) Register(username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	return s.Store.CreateUser(domain.InsertUser{Username: username, Hash: string(hash)})
}
