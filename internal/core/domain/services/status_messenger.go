package services

import (
	"math/rand/v2"

	"wiggy/internal/core/domain/model/order"
)

var statusMessages = map[order.Status][]string{
	order.Placed: {
		"Your order is being prepared with love, tears, and a lot of hope!",
		"Congratulations! You've officially committed to imaginary calories!",
		"Your order is in the system. Our digital chefs are stretching their pixelated muscles!",
	},
	order.Confirmed: {
		"Order confirmed! The restaurant is now aware of your food demands!",
		"Great news! Your order has been accepted faster than your friend requests!",
		"Order confirmed! Time to start the hunger countdown!",
	},
	order.Preparing: {
		"Your food is being prepared with the same care as a meme compilation!",
		"The kitchen is buzzing! Well, digitally buzzing at least!",
		"Your meal is being crafted with precision and a lot of imaginary ingredients!",
	},
	order.OutForDelivery: {
		"Your order is out for delivery! It's traveling faster than gossip in a small town!",
		"Delivery person is on the way! They're navigating through traffic and existential crises!",
		"Your food is en route! It's probably lost, but so are we all!",
	},
	order.Delivered: {
		"Order delivered! Enjoy your imaginary feast!",
		"Delivered successfully! Time to pretend you're full!",
		"Your food has arrived! Now you can officially say you've eaten today!",
	},
	order.Cancelled: {
		"Order cancelled! Don't worry, your hunger will find another way!",
		"Cancelled faster than your New Year's resolutions!",
		"Order cancelled! Your wallet is thanking you, but your stomach isn't!",
	},
}

// StatusMessages returns the message pool for a status, or nil for invalid statuses.
func StatusMessages(status order.Status) []string {
	return statusMessages[status]
}

// StatusMessenger implements order.StatusMessages over a fixed pool per status.
// It is safe for concurrent use.
type StatusMessenger struct {
	picker *picker
}

var _ order.StatusMessages = (*StatusMessenger)(nil)

// NewStatusMessenger uses src for selection; a nil src seeds a PCG from the runtime.
func NewStatusMessenger(src rand.Source) *StatusMessenger {
	return &StatusMessenger{picker: newPicker(src)}
}

// MessageFor returns one message from the status pool, or "" for an invalid status.
func (m *StatusMessenger) MessageFor(status order.Status) string {
	return m.picker.pick(statusMessages[status])
}
