package queries

import (
	"context"

	"wiggy/internal/core/domain/model/restaurant"
)

// GetRestaurantsQueryHandler lists the catalog with filtering and sorting pushed to the store.
type GetRestaurantsQueryHandler struct {
	restaurants RestaurantReader
}

func NewGetRestaurantsQueryHandler(restaurants RestaurantReader) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{restaurants: restaurants}
}

func (h GetRestaurantsQueryHandler) Handle(ctx context.Context, query GetRestaurantsQuery) ([]*restaurant.Restaurant, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants, err := h.restaurants.List(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	if restaurants == nil {
		restaurants = make([]*restaurant.Restaurant, 0)
	}

	return restaurants, nil
}
