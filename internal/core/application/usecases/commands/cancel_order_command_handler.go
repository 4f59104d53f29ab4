package commands

import (
	"context"
	"time"

	"wiggy/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an owned order unless it was delivered.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	messages   order.StatusMessages
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, messages order.StatusMessages) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		messages:   messages,
	}
}

// Handle returns errs.ObjectNotFoundError for a missing or foreign order and
// errs.StateIsInvalidError for a delivered one; in both cases nothing is written.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if err = o.Cancel(h.messages, time.Now().UTC()); err != nil {
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
