package order

import (
	"errors"
	"slices"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/pkg/errs"
)

// DefaultEstimatedDeliveryTime is used when the restaurant does not advertise one.
const DefaultEstimatedDeliveryTime = "30-45 mins"

// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// StatusMessages picks the human-readable message stored next to a status.
// The message is cosmetic; a nil StatusMessages stores an empty message.
type StatusMessages interface {
	MessageFor(status Status) string
}

// Details are the free-form checkout fields copied onto the order.
type Details struct {
	DeliveryAddress       kernel.Address
	Notes                 string
	EstimatedDeliveryTime string
}

// Order is the aggregate root of the order engine. It owns the priced line items and
// the status lifecycle of a single checkout.
//
// Order follows these invariants:
//   - Has at least one line item
//   - Totals are always ComputeTotals(items, deliveryFee)
//   - The owner and the line items never change after creation
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID

	items  []LineItem
	totals Totals

	status        Status
	statusMessage string

	details Details

	createdAt time.Time
	updatedAt time.Time

	events []DomainEvent

	isConstructed bool
}

// NewOrder creates a placed order, prices it with ComputeTotals and records a PlacedEvent.
//
// Example:
//
//	item, _ := order.NewLineItem(menuItem.ID(), menuItem.Name(), menuItem.Price(), menuItem.Image(), 2)
//	o, err := order.NewOrder(kernel.NewUUID(), userID, r.ID(), []order.LineItem{item},
//	    r.DeliveryFee(), order.Details{Notes: "extra napkins"}, messenger, time.Now())
func NewOrder(
	id, userID, restaurantID kernel.UUID,
	items []LineItem,
	deliveryFee kernel.Money,
	details Details,
	messages StatusMessages,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		statusMessage: messageFor(messages, Placed),
		details:       details,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	if o.details.EstimatedDeliveryTime == "" {
		o.details.EstimatedDeliveryTime = DefaultEstimatedDeliveryTime
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	o.totals = ComputeTotals(o.items, deliveryFee)

	o.record(PlacedEvent{
		OrderID:      o.id,
		UserID:       o.userID,
		RestaurantID: o.restaurantID,
		FinalAmount:  o.totals.FinalAmount,
		At:           now,
	})

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. Stored totals must still agree with
// the stored items. No events are recorded.
func RestoreOrder(
	id, userID, restaurantID kernel.UUID,
	items []LineItem,
	totals Totals,
	status Status,
	statusMessage string,
	details Details,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		totals:        totals,
		status:        status,
		statusMessage: statusMessage,
		details:       details,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if err := totals.validateAgainst(o.items); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// IsOwnedBy reports whether userID placed this order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

func (o *Order) ID() kernel.UUID           { return o.id }
func (o *Order) UserID() kernel.UUID       { return o.userID }
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }
func (o *Order) Totals() Totals            { return o.totals }
func (o *Order) Status() Status            { return o.status }
func (o *Order) StatusMessage() string     { return o.statusMessage }
func (o *Order) Details() Details          { return o.details }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }

// Items returns a copy of the line items in checkout order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// ChangeStatus overwrites the status with any valid value, whatever the current one is,
// and regenerates the status message.
func (o *Order) ChangeStatus(status Status, messages StatusMessages, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.setStatus(status, messages, now)
	return nil
}

// Cancel moves the order to Cancelled. A delivered order is left untouched and an
// errs.StateIsInvalidError is returned.
func (o *Order) Cancel(messages StatusMessages, now time.Time) error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.setStatus(next, messages, now)
	return nil
}

// Advance moves the order one step along the happy path.
func (o *Order) Advance(messages StatusMessages, now time.Time) error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}
	o.setStatus(next, messages, now)
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []DomainEvent {
	return slices.Clone(o.events)
}

// ClearDomainEvents drops recorded events once they were dispatched.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) setStatus(status Status, messages StatusMessages, now time.Time) {
	from := o.status
	o.status = status
	o.statusMessage = messageFor(messages, status)
	o.updatedAt = now

	o.record(StatusChangedEvent{
		OrderID: o.id,
		UserID:  o.userID,
		From:    from,
		To:      status,
		At:      now,
	})
}

func (o *Order) record(event DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.quantity < 1 {
			return errs.NewValueIsInvalidError("items: line item must be created via NewLineItem")
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func messageFor(messages StatusMessages, status Status) string {
	if messages == nil {
		return ""
	}
	return messages.MessageFor(status)
}
