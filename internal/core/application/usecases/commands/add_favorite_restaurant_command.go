package commands

import (
	"errors"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/pkg/guard"
)

var ErrAddFavoriteRestaurantCommandIsNotConstructed = errors.New(
	"AddFavoriteRestaurantCommand must be created via NewAddFavoriteRestaurantCommand constructor",
)

// AddFavoriteRestaurantCommand bookmarks a restaurant for the caller.
type AddFavoriteRestaurantCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddFavoriteRestaurantCommand(userID, restaurantID kernel.UUID) (AddFavoriteRestaurantCommand, error) {
	if err := errors.Join(userID.Validate(), restaurantID.Validate()); err != nil {
		return AddFavoriteRestaurantCommand{}, err
	}

	return AddFavoriteRestaurantCommand{
		userID:       userID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFavoriteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrAddFavoriteRestaurantCommandIsNotConstructed)
}

func (c AddFavoriteRestaurantCommand) UserID() kernel.UUID       { return c.userID }
func (c AddFavoriteRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }
