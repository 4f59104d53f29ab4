package order

import (
	"errors"
	"fmt"
	"strings"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/pkg/errs"
)

// LineItem is one purchased menu item: a snapshot of {name, unit price, image} taken at
// checkout plus the quantity. Later menu edits never change it.
type LineItem struct {
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	image      string
	quantity   int
}

// NewLineItem validates the snapshot. Quantity must be at least 1.
func NewLineItem(menuItemID kernel.UUID, name string, unitPrice kernel.Money, image string, quantity int) (LineItem, error) {
	var nameErr, qtyErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	if err := errors.Join(menuItemID.Validate(), nameErr, qtyErr); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		menuItemID: menuItemID,
		name:       name,
		unitPrice:  unitPrice,
		image:      image,
		quantity:   quantity,
	}, nil
}

func (li LineItem) MenuItemID() kernel.UUID { return li.menuItemID }
func (li LineItem) Name() string            { return li.name }
func (li LineItem) UnitPrice() kernel.Money { return li.unitPrice }
func (li LineItem) Image() string           { return li.image }
func (li LineItem) Quantity() int           { return li.quantity }

// Total is unit price × quantity.
func (li LineItem) Total() kernel.Money {
	return li.unitPrice.Multiply(li.quantity)
}
