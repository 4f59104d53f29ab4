package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/pkg/errs"
)

// DefaultMenuItemImage is shown for items without a photo.
const DefaultMenuItemImage = "https://via.placeholder.com/200x150?text=Food+Item"

// MenuItemDetails are the descriptive fields of a menu item.
type MenuItemDetails struct {
	Name        string
	Description string
	Price       kernel.Money
	Image       string
	Category    Category
	IsVeg       bool
	IsAvailable bool
	Tagline     string
}

// MenuItem is a dish on a restaurant's menu.
type MenuItem struct {
	id kernel.UUID
	MenuItemDetails
}

// NewMenuItem requires a name, a description, a tagline, a positive price and a known
// category. An empty image falls back to DefaultMenuItemImage.
func NewMenuItem(id kernel.UUID, details MenuItemDetails) (MenuItem, error) {
	var nameErr, descErr, taglineErr, priceErr error
	if strings.TrimSpace(details.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("menu item name")
	}
	if strings.TrimSpace(details.Description) == "" {
		descErr = errs.NewValueIsRequiredError("menu item description")
	}
	if strings.TrimSpace(details.Tagline) == "" {
		taglineErr = errs.NewValueIsRequiredError("menu item tagline")
	}
	if !details.Price.IsPositive() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", details.Price))
	}
	_, categoryErr := ParseCategory(string(details.Category))

	if err := errors.Join(id.Validate(), nameErr, descErr, taglineErr, priceErr, categoryErr); err != nil {
		return MenuItem{}, err
	}

	details.Name = strings.TrimSpace(details.Name)
	if details.Image == "" {
		details.Image = DefaultMenuItemImage
	}

	return MenuItem{id: id, MenuItemDetails: details}, nil
}

func (m MenuItem) ID() kernel.UUID { return m.id }
