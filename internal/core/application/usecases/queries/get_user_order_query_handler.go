package queries

import (
	"context"

	"wiggy/internal/core/domain/model/order"
)

// GetUserOrderQueryHandler reads one order scoped to its owner.
type GetUserOrderQueryHandler struct {
	orders OrderReader
}

func NewGetUserOrderQueryHandler(orders OrderReader) GetUserOrderQueryHandler {
	return GetUserOrderQueryHandler{orders: orders}
}

// Handle returns errs.ObjectNotFoundError both for a missing order and for someone else's.
func (h GetUserOrderQueryHandler) Handle(ctx context.Context, query GetUserOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetForUser(ctx, query.OrderID(), query.UserID())
}
