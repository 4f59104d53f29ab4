package ports

import (
	"context"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. A taken email yields errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists profile changes and the favorites list.
	Update(ctx context.Context, aggregate *user.User) error

	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail expects an address already normalized with user.NormalizeEmail.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
