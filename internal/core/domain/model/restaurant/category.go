package restaurant

import (
	"fmt"

	"wiggy/internal/pkg/errs"
)

// Category groups menu items on the menu page.
type Category string

const (
	Starters   Category = "Starters"
	MainCourse Category = "Main Course"
	Desserts   Category = "Desserts"
	Beverages  Category = "Beverages"
	Snacks     Category = "Snacks"
)

// Categories returns the known categories in menu order.
func Categories() []Category {
	return []Category{Starters, MainCourse, Desserts, Beverages, Snacks}
}

// ParseCategory is case-sensitive, matching how categories are stored.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a menu category", s))
}

func (c Category) String() string {
	return string(c)
}
