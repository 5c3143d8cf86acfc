package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/accounts/pkg/logger"
)

// PasswordHasher abstracts one-way password hashing so the use case does not
// depend on a concrete algorithm.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. It never
	// returns an error: a malformed stored hash is treated as a mismatch.
	Verify(plaintext, hash string) bool
}

// BcryptHasher hashes passwords with bcrypt. The salt is generated per call
// and embedded in the hash; comparison is constant-time.
type BcryptHasher struct {
	cost int
	log  *logger.Logger
}

// NewBcryptHasher clamps cost into the range bcrypt accepts.
func NewBcryptHasher(cost int, log *logger.Logger) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost, log: log}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true
	}
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		// Stored hash is not a valid bcrypt string. Attribute carries no
		// credential material.
		h.log.Warn("stored password hash is malformed", "error", err)
	}
	return false
}
