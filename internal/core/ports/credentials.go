package ports

import (
	"time"

	"wiggy/internal/core/domain/model/kernel"
)

// PasswordHasher turns plain-text passwords into encoded hashes and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches encoded. A malformed hash is an error.
	Verify(password, encoded string) (bool, error)
}

// TokenService issues and verifies bearer tokens that carry a user id.
type TokenService interface {
	Issue(userID kernel.UUID, now time.Time) (string, error)
	// Verify returns the user id of a valid, unexpired token.
	Verify(token string) (kernel.UUID, error)
}
