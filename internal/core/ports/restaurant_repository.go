package ports

import (
	"context"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/restaurant"
)

// RestaurantSort selects the ordering of a restaurant listing.
type RestaurantSort string

const (
	SortNewest         RestaurantSort = ""
	SortByRating       RestaurantSort = "rating"
	SortByDeliveryTime RestaurantSort = "deliveryTime"
	SortByName         RestaurantSort = "name"
)

// ParseRestaurantSort maps a query parameter to a sort. Unknown values fall back to SortNewest.
func ParseRestaurantSort(s string) RestaurantSort {
	switch RestaurantSort(s) {
	case SortByRating, SortByDeliveryTime, SortByName:
		return RestaurantSort(s)
	default:
		return SortNewest
	}
}

// RestaurantFilter narrows a restaurant listing. Empty fields do not filter.
type RestaurantFilter struct {
	// Cuisine must be one of the restaurant's cuisines (exact match).
	Cuisine string
	// Search is matched case-insensitively against name and description.
	Search string
	SortBy RestaurantSort
}

// RestaurantRepository defines the persistence contract for the catalog.
type RestaurantRepository interface {
	// Add persists a restaurant with its menu.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant with its menu in stored order.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// List returns restaurants matching the filter, with their menus.
	List(ctx context.Context, filter RestaurantFilter) ([]*restaurant.Restaurant, error)
}
