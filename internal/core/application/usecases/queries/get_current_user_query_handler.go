package queries

import (
	"context"

	"wiggy/internal/core/domain/model/user"
)

type GetCurrentUserQueryHandler struct {
	users UserReader
}

func NewGetCurrentUserQueryHandler(users UserReader) GetCurrentUserQueryHandler {
	return GetCurrentUserQueryHandler{users: users}
}

// Handle returns errs.ObjectNotFoundError when the token outlived its account.
func (h GetCurrentUserQueryHandler) Handle(ctx context.Context, query GetCurrentUserQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.users.Get(ctx, query.UserID())
}
