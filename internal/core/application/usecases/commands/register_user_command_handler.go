package commands

import (
	"context"
	"errors"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/user"
	"wiggy/internal/core/ports"
	"wiggy/internal/pkg/errs"
)

// RegisterUserCommandHandler stores a new account with a hashed password and signs the
// caller in.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
	quotes     QuoteSource
}

func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	quotes QuoteSource,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
		quotes:     quotes,
	}
}

// Handle returns errs.ObjectAlreadyExistsError when the email is taken.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (AuthResult, error) {
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

	userRepo := uow.UserRepository()
	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return AuthResult{}, errs.NewObjectAlreadyExistsError("email", cmd.Email())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return AuthResult{}, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return AuthResult{}, err
	}

	now := time.Now().UTC()
	u, err := user.NewUser(kernel.NewUUID(), cmd.Name(), cmd.Email(), hash, cmd.Phone(), cmd.Address(), h.quotes.Quote(), now)
	if err != nil {
		return AuthResult{}, err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return AuthResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthResult{}, err
	}

	token, err := h.tokens.Issue(u.ID(), now)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: u, Token: token}, nil
}
