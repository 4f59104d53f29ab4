package queries

import (
	"context"

	"wiggy/internal/core/domain/model/order"
)

// GetUserOrdersQueryHandler reads the order history of one user.
type GetUserOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetUserOrdersQueryHandler(orders OrderReader) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{orders: orders}
}

// Handle never returns another user's order. An empty history is an empty, non-nil slice.
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListForUser(ctx, query.UserID())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}

	return orders, nil
}
