package services

import (
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"
	"wiggy/internal/core/domain/model/restaurant"
	"wiggy/internal/pkg/errs"
)

// ItemRequest is one cart entry as sent by the client. Only the menu item reference and
// the quantity are trusted; the price always comes from the menu.
type ItemRequest struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// OrderPlacer builds placed orders from a cart and a restaurant.
//
// Business rules:
//   - The cart must not be empty
//   - Every menu item must belong to the given restaurant
//   - Quantities must be at least 1
//   - Line items snapshot name, price and image from the menu
//   - The delivery fee and the delivery estimate come from the restaurant
//
// Availability and opening hours are not checked.
type OrderPlacer struct {
	messages order.StatusMessages
}

func NewOrderPlacer(messages order.StatusMessages) OrderPlacer {
	return OrderPlacer{messages: messages}
}

// Place prices the cart against r's current menu and returns the new order. Errors are
// errs.ValueIsRequiredError for an empty cart, errs.ReferenceIsInvalidError for a menu
// item outside r, and errs.ValueIsInvalidError for a bad quantity.
func (p OrderPlacer) Place(
	orderID, userID kernel.UUID,
	r *restaurant.Restaurant,
	cart []ItemRequest,
	details order.Details,
	now time.Time,
) (*order.Order, error) {
	if len(cart) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]order.LineItem, 0, len(cart))
	for _, req := range cart {
		menuItem, ok := r.MenuItem(req.MenuItemID)
		if !ok {
			return nil, errs.NewReferenceIsInvalidError("menuItemId", req.MenuItemID)
		}

		item, err := order.NewLineItem(menuItem.ID(), menuItem.Name, menuItem.Price, menuItem.Image, req.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	details.EstimatedDeliveryTime = r.DeliveryTime()

	return order.NewOrder(orderID, userID, r.ID(), items, r.DeliveryFee(), details, p.messages, now)
}
