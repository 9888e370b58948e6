package store

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"emunah/internal/domain"
	"emunah/internal/money"
)

// Seed inserts the launch catalog and the back-office user if they are not
// present yet. Idempotent; safe to run on every start.
func Seed(s Storage) error {
	products := []domain.InsertProduct{
		{
			Name:        "Camiseta EMUNAH Básica",
			Slug:        "camiseta-emunah-basica",
			Price:       money.Amount(8990),
			Description: "Camiseta de algodão premium com o logo minimalista da EMUNAH. Conforto e propósito em uma peça única.",
			Category:    "Roupas",
			Image:       "/uploads/camiseta-emunah-basica.png",
			Stock:       50,
			Active:      true,
		},
		{
			Name:        "Caneca Fé Diária",
			Slug:        "caneca-fe-diaria",
			Price:       money.Amount(4590),
			Description: "Caneca de cerâmica perfeita para seu café ou chá. Comece o dia lembrando do seu propósito.",
			Category:    "Acessórios",
			Image:       "/uploads/caneca-fe-diaria.png",
			Stock:       30,
			Active:      true,
		},
		{
			Name:        "Camiseta Versículo",
			Slug:        "camiseta-versiculo",
			Price:       money.Amount(9990),
			Description: "Camiseta com estampa tipográfica inspirada em versículos bíblicos. Design moderno e sóbrio.",
			Category:    "Roupas",
			Image:       "/uploads/camiseta-versiculo.png",
			Stock:       40,
			Active:      true,
		},
		{
			Name:        "Ecobag Propósito",
			Slug:        "ecobag-proposito",
			Price:       money.Amount(3590),
			Description: "Sacola ecológica resistente para o dia a dia. Leve a mensagem por onde for.",
			Category:    "Acessórios",
			Image:       "/uploads/ecobag-proposito.png",
			Stock:       60,
			Active:      true,
		},
	}

	seeded := 0
	for _, p := range products {
		if _, err := s.GetProductBySlug(p.Slug); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
		if _, err := s.CreateProduct(p); err != nil {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		log.Printf("[seed] inserted %d launch products", seeded)
	}

	if _, err := s.GetUserByUsername("admin"); errors.Is(err, ErrNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte("emunah123"), 12)
		if err != nil {
			return err
		}
		if _, err := s.CreateUser(domain.InsertUser{Username: "admin", Hash: string(hash)}); err != nil {
			return err
		}
		log.Println("[seed] created admin user")
	} else if err != nil {
		return err
	}

	return nil
}
