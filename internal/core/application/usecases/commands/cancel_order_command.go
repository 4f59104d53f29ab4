package commands

import (
	"errors"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels one of the caller's orders.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(userID, orderID kernel.UUID) (CancelOrderCommand, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		userID:  userID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) UserID() kernel.UUID  { return c.userID }
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
