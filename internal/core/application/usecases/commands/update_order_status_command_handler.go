package commands

import (
	"context"
	"time"

	"wiggy/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies a status to an owned order. The transition is
// not checked against the current status.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	messages   order.StatusMessages
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, messages order.StatusMessages) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		messages:   messages,
	}
}

// Handle returns errs.ObjectNotFoundError when the order is missing or owned by someone else.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUser(ctx, cmd.OrderID(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status(), h.messages, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
