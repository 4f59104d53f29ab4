package commands

import (
	"context"
	"errors"
	"time"

	"wiggy/internal/core/ports"
	"wiggy/internal/pkg/errs"
)

// AuthenticateUserCommandHandler checks credentials and issues a token.
type AuthenticateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
}

func NewAuthenticateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle returns errs.CredentialsAreInvalidError for an unknown email or a wrong password,
// without saying which.
func (h *AuthenticateUserCommandHandler) Handle(ctx context.Context, cmd AuthenticateUserCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AuthResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthResult{}, errs.NewCredentialsAreInvalidError()
	}
	if err != nil {
		return AuthResult{}, err
	}

	ok, err := h.hasher.Verify(cmd.Password(), u.PasswordHash())
	if err != nil {
		return AuthResult{}, errs.NewCredentialsAreInvalidErrorWithCause(err)
	}
	if !ok {
		return AuthResult{}, errs.NewCredentialsAreInvalidError()
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthResult{}, err
	}

	token, err := h.tokens.Issue(u.ID(), time.Now().UTC())
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: u, Token: token}, nil
}
