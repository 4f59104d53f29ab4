package commands

import (
	"context"
	"time"

	"wiggy/internal/core/domain/model/order"
)

// AdvanceOrdersCommandHandler advances stale orders inside a single transaction.
type AdvanceOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	messages   order.StatusMessages
}

func NewAdvanceOrdersCommandHandler(uowFactory OrderUoWFactory, messages order.StatusMessages) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		uowFactory: uowFactory,
		messages:   messages,
	}
}

// Handle returns how many orders were advanced.
func (h *AdvanceOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.ListStale(ctx, now.Add(-cmd.IdleFor()), cmd.Limit())
	if err != nil {
		return 0, err
	}

	for _, o := range orders {
		if err = o.Advance(h.messages, now); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
