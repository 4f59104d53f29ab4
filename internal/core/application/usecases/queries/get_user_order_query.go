package queries

import (
	"errors"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/pkg/guard"
)

var ErrGetUserOrderQueryIsNotConstructed = errors.New(
	"GetUserOrderQuery must be created via NewGetUserOrderQuery constructor",
)

// GetUserOrderQuery fetches a single order of the caller.
type GetUserOrderQuery struct {
	userID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserOrderQuery(userID, orderID kernel.UUID) (GetUserOrderQuery, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return GetUserOrderQuery{}, err
	}

	return GetUserOrderQuery{
		userID:  userID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrderQueryIsNotConstructed)
}

func (q GetUserOrderQuery) UserID() kernel.UUID  { return q.userID }
func (q GetUserOrderQuery) OrderID() kernel.UUID { return q.orderID }
