package auth

import (
	"golang.org/x/crypto/bcrypt"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
)

// bcryptHasher hashes pepper+password with bcrypt.
type bcryptHasher struct {
	pepper string
	cost   int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	pepper := ""
	if cfg.Auth != nil {
		pepper = cfg.Auth.Pepper
		if cfg.Auth.BcryptCost != 0 {
			cost = cfg.Auth.BcryptCost
		}
	}

	return NewBcryptHasherWithCost(pepper, cost)
}

// NewBcryptHasherWithCost builds a hasher with an explicit pepper and cost.
func NewBcryptHasherWithCost(pepper string, cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{pepper: pepper, cost: cost}
}

// Hash generates a salted hash from the peppered password.
// bcrypt rejects inputs longer than 72 bytes, so callers bound password length.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(h.pepper+password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(h.pepper+password)) == nil
}
