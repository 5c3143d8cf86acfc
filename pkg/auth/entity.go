package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered account. PasswordHash is
// opaque and never contains the plaintext password.
type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// AdminName is the identity allowed to list accounts. There is no role model
// beyond this single hardcoded identity.
const AdminName = "admin"
