package queries

import (
	"errors"
	"strings"

	"wiggy/internal/core/ports"
	"wiggy/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery browses the catalog.
//
// Example:
//
//	query := NewGetRestaurantsQuery("Italian", "pizza", "rating")
//	restaurants, err := handler.Handle(ctx, query)
type GetRestaurantsQuery struct {
	filter ports.RestaurantFilter

	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery takes the raw query parameters. Blank values do not filter and an
// unknown sortBy falls back to newest first.
func NewGetRestaurantsQuery(cuisine, search, sortBy string) GetRestaurantsQuery {
	return GetRestaurantsQuery{
		filter: ports.RestaurantFilter{
			Cuisine: strings.TrimSpace(cuisine),
			Search:  strings.TrimSpace(search),
			SortBy:  ports.ParseRestaurantSort(sortBy),
		},
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

func (q GetRestaurantsQuery) Filter() ports.RestaurantFilter { return q.filter }
