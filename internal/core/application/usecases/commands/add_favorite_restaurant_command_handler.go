package commands

import (
	"context"
)

// AddFavoriteRestaurantCommandHandler appends a restaurant to the user's favorites.
type AddFavoriteRestaurantCommandHandler struct {
	uowFactory FavoriteUoWFactory
}

func NewAddFavoriteRestaurantCommandHandler(uowFactory FavoriteUoWFactory) AddFavoriteRestaurantCommandHandler {
	return AddFavoriteRestaurantCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ObjectNotFoundError for an unknown restaurant and
// errs.ObjectAlreadyExistsError when it is already a favorite.
func (h *AddFavoriteRestaurantCommandHandler) Handle(ctx context.Context, cmd AddFavoriteRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = u.AddFavorite(cmd.RestaurantID()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
