package commands_test

import (
	"errors"
	"testing"

	"wiggy/internal/core/application/usecases/commands"
	"wiggy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	u := newUser(t)
	cmd, _ := commands.NewAuthenticateUserCommand("Hungry@Example.com", "secret1")

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenService)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "hungry@example.com").Return(u, nil).Once(),
		hasher.On("Verify", "secret1", u.PasswordHash()).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		tokens.On("Issue", u.ID(), mock.AnythingOfType("time.Time")).Return("token", nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateUserCommandHandler(factory, hasher, tokens)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, u, res.User)
	assert.Equal(t, "token", res.Token)
	uow.AssertExpectations(t)
}

func TestAuthenticateUserCommandHandler_Handle_InvalidCredentials(t *testing.T) {
	u := newUser(t)

	tests := map[string]struct {
		lookupUser  any
		lookupErr   error
		verifyOK    bool
		verifyErr   error
		skipsVerify bool
	}{
		"unknown email":  {lookupErr: errs.NewObjectNotFoundError("email", u.Email()), skipsVerify: true},
		"wrong password": {lookupUser: u, verifyOK: false},
		"malformed hash": {lookupUser: u, verifyErr: errors.New("bad encoding")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewAuthenticateUserCommand(u.Email(), "secret1")

			repo := new(MockUserRepository)
			uow := new(MockUoW)
			hasher := new(MockPasswordHasher)
			tokens := new(MockTokenService)
			uow.On("Begin", ctx).Return(nil)
			uow.On("UserRepository").Return(repo)
			uow.On("Rollback", ctx).Return(nil)
			repo.On("GetByEmail", ctx, u.Email()).Return(tt.lookupUser, tt.lookupErr)
			hasher.On("Verify", "secret1", u.PasswordHash()).Return(tt.verifyOK, tt.verifyErr)
			factory := new(MockUserUoWFactory)
			factory.On("Create").Return(uow)

			h := commands.NewAuthenticateUserCommandHandler(factory, hasher, tokens)
			_, err := h.Handle(ctx, cmd)

			assert.ErrorIs(t, err, errs.ErrCredentialsAreInvalid)
			tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			if tt.skipsVerify {
				hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
			}
		})
	}
}
