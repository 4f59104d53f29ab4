package queries

import (
	"errors"
	"strings"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/restaurant"
	"wiggy/internal/pkg/guard"
)

var ErrGetRestaurantMenuQueryIsNotConstructed = errors.New(
	"GetRestaurantMenuQuery must be created via NewGetRestaurantMenuQuery constructor",
)

// GetRestaurantMenuQuery reads a restaurant's menu, optionally narrowed to one category.
type GetRestaurantMenuQuery struct {
	restaurantID kernel.UUID
	category     restaurant.Category

	guard guard.ConstructorGuard
}

// NewGetRestaurantMenuQuery accepts any category text. A category no item carries yields
// an empty menu rather than an error.
func NewGetRestaurantMenuQuery(restaurantID kernel.UUID, category string) (GetRestaurantMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantMenuQuery{}, err
	}

	return GetRestaurantMenuQuery{
		restaurantID: restaurantID,
		category:     restaurant.Category(strings.TrimSpace(category)),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantMenuQueryIsNotConstructed)
}

func (q GetRestaurantMenuQuery) RestaurantID() kernel.UUID     { return q.restaurantID }
func (q GetRestaurantMenuQuery) Category() restaurant.Category { return q.category }

// GetRestaurantMenuQueryResponse is the menu read model.
type GetRestaurantMenuQueryResponse struct {
	RestaurantName string
	Menu           []restaurant.MenuItem
}
