package commands

import (
	"errors"
	"strings"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/user"
	"wiggy/internal/pkg/errs"
	"wiggy/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates a customer account.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	phone    string
	address  kernel.Address

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand requires a name, an email and a password of at least
// user.MinPasswordLength characters. The email is normalized.
func NewRegisterUserCommand(name, email, password, phone string, address kernel.Address) (RegisterUserCommand, error) {
	var nameErr, emailErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if user.NormalizeEmail(email) == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if err := errors.Join(nameErr, emailErr, user.ValidatePassword(password)); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		name:     strings.TrimSpace(name),
		email:    user.NormalizeEmail(email),
		password: password,
		phone:    phone,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Name() string            { return c.name }
func (c RegisterUserCommand) Email() string           { return c.email }
func (c RegisterUserCommand) Password() string        { return c.password }
func (c RegisterUserCommand) Phone() string           { return c.phone }
func (c RegisterUserCommand) Address() kernel.Address { return c.address }
