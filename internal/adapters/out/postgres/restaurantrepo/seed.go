package restaurantrepo

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/restaurant"
)

//go:embed catalog.json
var catalogJSON []byte

type seedAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type seedMenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	IsVeg       bool   `json:"isVeg"`
	IsAvailable bool   `json:"isAvailable"`
	Tagline     string `json:"tagline"`
}

type seedRestaurant struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Image        string         `json:"image"`
	Cuisine      []string       `json:"cuisine"`
	Rating       float64        `json:"rating"`
	DeliveryTime string         `json:"deliveryTime"`
	DeliveryFee  int64          `json:"deliveryFee"`
	MinimumOrder int64          `json:"minimumOrder"`
	IsOpen       bool           `json:"isOpen"`
	Tagline      string         `json:"tagline"`
	Address      seedAddress    `json:"address"`
	Menu         []seedMenuItem `json:"menu"`
}

// DemoCatalog builds the bundled demo restaurants with fresh ids. Creation times are
// spaced a second apart so the default newest-first listing is stable.
func DemoCatalog(now time.Time) ([]*restaurant.Restaurant, error) {
	var seeds []seedRestaurant
	if err := json.Unmarshal(catalogJSON, &seeds); err != nil {
		return nil, fmt.Errorf("decode demo catalog: %w", err)
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(seeds))
	for i, s := range seeds {
		r, err := s.toDomain(now.Add(time.Duration(i-len(seeds)) * time.Second))
		if err != nil {
			return nil, fmt.Errorf("demo restaurant %q: %w", s.Name, err)
		}
		restaurants = append(restaurants, r)
	}

	return restaurants, nil
}

// Seed stores the demo catalog when no restaurant exists yet and returns how many
// restaurants it added.
func Seed(ctx context.Context, repo *GormRestaurantRepository, now time.Time) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	restaurants, err := DemoCatalog(now)
	if err != nil {
		return 0, err
	}
	for _, r := range restaurants {
		if err = repo.Add(ctx, r); err != nil {
			return 0, err
		}
	}

	return len(restaurants), nil
}

func (s seedRestaurant) toDomain(createdAt time.Time) (*restaurant.Restaurant, error) {
	menu := make([]restaurant.MenuItem, 0, len(s.Menu))
	for _, m := range s.Menu {
		price, err := kernel.NewMoney(m.Price)
		if err != nil {
			return nil, err
		}
		item, err := restaurant.NewMenuItem(kernel.NewUUID(), restaurant.MenuItemDetails{
			Name:        m.Name,
			Description: m.Description,
			Price:       price,
			Image:       m.Image,
			Category:    restaurant.Category(m.Category),
			IsVeg:       m.IsVeg,
			IsAvailable: m.IsAvailable,
			Tagline:     m.Tagline,
		})
		if err != nil {
			return nil, err
		}
		menu = append(menu, item)
	}

	deliveryFee, err := kernel.NewMoney(s.DeliveryFee)
	if err != nil {
		return nil, err
	}
	minimumOrder, err := kernel.NewMoney(s.MinimumOrder)
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(kernel.NewUUID(), restaurant.Profile{
		Name:         s.Name,
		Description:  s.Description,
		Image:        s.Image,
		Cuisine:      s.Cuisine,
		Rating:       s.Rating,
		DeliveryTime: s.DeliveryTime,
		DeliveryFee:  deliveryFee,
		MinimumOrder: minimumOrder,
		IsOpen:       s.IsOpen,
		Tagline:      s.Tagline,
		Address:      kernel.NewAddress(s.Address.Street, s.Address.City, s.Address.State, s.Address.ZipCode, ""),
	}, menu, createdAt)
}
