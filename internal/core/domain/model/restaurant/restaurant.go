package restaurant

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/pkg/errs"
)

const (
	DefaultImage        = "https://via.placeholder.com/300x200?text=Restaurant+Image"
	DefaultRating       = 4.2
	DefaultDeliveryTime = "30-45 mins"
	MinRating           = 1.0
	MaxRating           = 5.0
)

// Profile is everything about a restaurant except its identity and menu.
type Profile struct {
	Name         string
	Description  string
	Image        string
	Cuisine      []string
	Rating       float64
	DeliveryTime string
	DeliveryFee  kernel.Money
	MinimumOrder kernel.Money
	IsOpen       bool
	Tagline      string
	Address      kernel.Address
}

// Restaurant is a catalog entry with its menu.
type Restaurant struct {
	id        kernel.UUID
	profile   Profile
	menu      []MenuItem
	createdAt time.Time
}

// NewRestaurant validates the profile and the menu. A zero rating means "not rated yet"
// and becomes DefaultRating; empty image and delivery time get their defaults as well.
func NewRestaurant(id kernel.UUID, profile Profile, menu []MenuItem, createdAt time.Time) (*Restaurant, error) {
	if profile.Rating == 0 {
		profile.Rating = DefaultRating
	}
	if profile.Image == "" {
		profile.Image = DefaultImage
	}
	if profile.DeliveryTime == "" {
		profile.DeliveryTime = DefaultDeliveryTime
	}
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Cuisine = slices.Clone(profile.Cuisine)

	var nameErr, descErr, taglineErr, cuisineErr, ratingErr error
	if profile.Name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(profile.Description) == "" {
		descErr = errs.NewValueIsRequiredError("description")
	}
	if strings.TrimSpace(profile.Tagline) == "" {
		taglineErr = errs.NewValueIsRequiredError("tagline")
	}
	if len(profile.Cuisine) == 0 {
		cuisineErr = errs.NewValueIsRequiredError("cuisine")
	}
	if profile.Rating < MinRating || profile.Rating > MaxRating {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", profile.Rating, MinRating, MaxRating)
	}

	if err := errors.Join(id.Validate(), nameErr, descErr, taglineErr, cuisineErr, ratingErr, validateMenu(menu)); err != nil {
		return nil, err
	}

	return &Restaurant{
		id:        id,
		profile:   profile,
		menu:      slices.Clone(menu),
		createdAt: createdAt,
	}, nil
}

func validateMenu(menu []MenuItem) error {
	seen := make(map[kernel.UUID]struct{}, len(menu))
	for _, item := range menu {
		if err := item.id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("menu", err)
		}
		if _, dup := seen[item.id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("menu", fmt.Errorf("menu item %s is listed twice", item.id))
		}
		seen[item.id] = struct{}{}
	}
	return nil
}

func (r *Restaurant) ID() kernel.UUID           { return r.id }
func (r *Restaurant) Name() string              { return r.profile.Name }
func (r *Restaurant) DeliveryFee() kernel.Money { return r.profile.DeliveryFee }
func (r *Restaurant) DeliveryTime() string      { return r.profile.DeliveryTime }
func (r *Restaurant) CreatedAt() time.Time      { return r.createdAt }

// Profile returns a copy of the descriptive fields.
func (r *Restaurant) Profile() Profile {
	p := r.profile
	p.Cuisine = slices.Clone(p.Cuisine)
	return p
}

// Menu returns the menu in its stored order.
func (r *Restaurant) Menu() []MenuItem {
	return slices.Clone(r.menu)
}

// MenuItem looks id up within this restaurant's menu only.
func (r *Restaurant) MenuItem(id kernel.UUID) (MenuItem, bool) {
	for _, item := range r.menu {
		if item.id.IsEqual(id) {
			return item, true
		}
	}
	return MenuItem{}, false
}

// MenuByCategory keeps only items of the given category, preserving menu order.
func (r *Restaurant) MenuByCategory(category Category) []MenuItem {
	out := make([]MenuItem, 0)
	for _, item := range r.menu {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// ServesCuisine reports whether cuisine is one of the restaurant's cuisines.
func (r *Restaurant) ServesCuisine(cuisine string) bool {
	return slices.Contains(r.profile.Cuisine, cuisine)
}

// Matches reports whether term occurs in the name or the description, ignoring case.
func (r *Restaurant) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.profile.Name), term) ||
		strings.Contains(strings.ToLower(r.profile.Description), term)
}
