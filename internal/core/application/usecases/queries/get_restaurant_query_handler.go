package queries

import (
	"context"

	"wiggy/internal/core/domain/model/restaurant"
)

type GetRestaurantQueryHandler struct {
	restaurants RestaurantReader
}

func NewGetRestaurantQueryHandler(restaurants RestaurantReader) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{restaurants: restaurants}
}

func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (*restaurant.Restaurant, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.restaurants.Get(ctx, query.RestaurantID())
}
