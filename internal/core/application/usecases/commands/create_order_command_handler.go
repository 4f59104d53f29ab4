package commands

import (
	"context"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"
	"wiggy/internal/core/domain/services"
)

// CreateOrderCommandHandler places an order: it loads the restaurant, prices the cart
// against its current menu and persists the placed order in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewOrderPlacer(messenger))
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // restaurant does not exist
//	}
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	placer     services.OrderPlacer
}

func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory, placer services.OrderPlacer) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     placer,
	}
}

// Handle returns errs.ObjectNotFoundError when the restaurant is missing and
// errs.ReferenceIsInvalidError when a menu item is not on its menu. Nothing is persisted
// on failure.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	placed, err := h.placer.Place(
		kernel.NewUUID(),
		cmd.UserID(),
		r,
		cmd.Items(),
		order.Details{DeliveryAddress: cmd.DeliveryAddress(), Notes: cmd.Notes()},
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
