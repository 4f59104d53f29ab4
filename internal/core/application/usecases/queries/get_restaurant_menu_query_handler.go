package queries

import (
	"context"
)

type GetRestaurantMenuQueryHandler struct {
	restaurants RestaurantReader
}

func NewGetRestaurantMenuQueryHandler(restaurants RestaurantReader) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{restaurants: restaurants}
}

// Handle keeps menu order. Without a category the whole menu is returned.
func (h GetRestaurantMenuQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantMenuQuery,
) (GetRestaurantMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}

	r, err := h.restaurants.Get(ctx, query.RestaurantID())
	if err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}

	menu := r.Menu()
	if query.Category() != "" {
		menu = r.MenuByCategory(query.Category())
	}

	return GetRestaurantMenuQueryResponse{
		RestaurantName: r.Name(),
		Menu:           menu,
	}, nil
}
