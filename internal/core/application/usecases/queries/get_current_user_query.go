package queries

import (
	"errors"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/pkg/guard"
)

var ErrGetCurrentUserQueryIsNotConstructed = errors.New(
	"GetCurrentUserQuery must be created via NewGetCurrentUserQuery constructor",
)

// GetCurrentUserQuery loads the profile behind a bearer token.
type GetCurrentUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCurrentUserQuery(userID kernel.UUID) (GetCurrentUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCurrentUserQuery{}, err
	}

	return GetCurrentUserQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentUserQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentUserQueryIsNotConstructed)
}

func (q GetCurrentUserQuery) UserID() kernel.UUID { return q.userID }
