package commands

import (
	"errors"
	"fmt"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/services"
	"wiggy/internal/pkg/errs"
	"wiggy/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a checkout: a cart of menu item references and quantities
// for one restaurant. Prices are deliberately absent.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, restaurantID,
//	    []services.ItemRequest{{MenuItemID: burgerID, Quantity: 2}},
//	    kernel.NewAddress("12 MG Road", "Bengaluru", "KA", "560001", "98450 00000"),
//	    "leave at the door")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.UUID
	restaurantID    kernel.UUID
	items           []services.ItemRequest
	deliveryAddress kernel.Address
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers, requires at least one item and a quantity
// of at least 1 per item.
func NewCreateOrderCommand(
	userID, restaurantID kernel.UUID,
	items []services.ItemRequest,
	deliveryAddress kernel.Address,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryAddress: deliveryAddress,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() kernel.UUID             { return c.userID }
func (c CreateOrderCommand) RestaurantID() kernel.UUID       { return c.restaurantID }
func (c CreateOrderCommand) DeliveryAddress() kernel.Address { return c.deliveryAddress }
func (c CreateOrderCommand) Notes() string                   { return c.notes }

// Items returns a copy of the cart.
func (c CreateOrderCommand) Items() []services.ItemRequest {
	return append([]services.ItemRequest(nil), c.items...)
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []services.ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var itemErrs []error
	for i, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			itemErrs = append(itemErrs, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].menuItemId", i), err))
		}
		if item.Quantity < 1 {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is less than 1", item.Quantity),
			))
		}
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = append([]services.ItemRequest(nil), items...)
	return nil
}
