package commands

import "wiggy/internal/core/domain/model/user"

// AuthResult is returned by registration and login.
type AuthResult struct {
	User  *user.User
	Token string
}

// QuoteSource supplies the profile quote of a new user.
type QuoteSource interface {
	Quote() string
}
