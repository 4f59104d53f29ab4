package commands

import (
	"errors"
	"fmt"
	"time"

	"wiggy/internal/pkg/errs"
	"wiggy/internal/pkg/guard"
)

var ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
	"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
)

// AdvanceOrdersCommand moves idle orders one step along the delivery lifecycle. It drives
// the demo progress job; no HTTP route issues it.
//
// Example:
//
//	cmd, _ := NewAdvanceOrdersCommand(2*time.Minute, 50)
//	advanced, err := handler.Handle(ctx, cmd)
type AdvanceOrdersCommand struct { //nolint:recvcheck //using for validation
	idleFor time.Duration
	limit   int

	guard guard.ConstructorGuard
}

// NewAdvanceOrdersCommand selects orders not updated for at least idleFor, at most limit
// of them per run.
func NewAdvanceOrdersCommand(idleFor time.Duration, limit int) (AdvanceOrdersCommand, error) {
	var idleErr, limitErr error
	if idleFor < 0 {
		idleErr = errs.NewValueIsInvalidErrorWithCause("idleFor", fmt.Errorf("%s is negative", idleFor))
	}
	if limit < 1 {
		limitErr = errs.NewValueIsInvalidErrorWithCause("limit", fmt.Errorf("%d is less than 1", limit))
	}
	if err := errors.Join(idleErr, limitErr); err != nil {
		return AdvanceOrdersCommand{}, err
	}

	return AdvanceOrdersCommand{
		idleFor: idleFor,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrdersCommandIsNotConstructed)
}

func (c AdvanceOrdersCommand) IdleFor() time.Duration { return c.idleFor }
func (c AdvanceOrdersCommand) Limit() int             { return c.limit }
