package order

import (
	"fmt"

	"wiggy/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Placed ──> Confirmed ──> Preparing ──> OutForDelivery ──> Delivered
//	   │           │             │               │
//	   └───────────┴─────────────┴───────────────┴──────────> Cancelled
//
// The arrows are the path Advance follows and the states Cancel accepts. ChangeStatus
// does not consult them: any status can be written over any other.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Placed
	Confirmed
	Preparing
	OutForDelivery
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Placed:         "placed",
	Confirmed:      "confirmed",
	Preparing:      "preparing",
	OutForDelivery: "out-for-delivery",
	Delivered:      "delivered",
	Cancelled:      "cancelled",
}

// Statuses returns the six valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Placed, Confirmed, Preparing, OutForDelivery, Delivered, Cancelled}
}

// ParseStatus maps the wire name ("out-for-delivery", ...) to a Status.
// Matching is exact; anything else is a validation error.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of placed, confirmed, preparing, out-for-delivery, delivered, cancelled", s),
	)
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is expected.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Cancel returns Cancelled unless the order was already delivered.
func (s Status) Cancel() (Status, error) {
	if s == Delivered {
		return s, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot cancel a %s order", s),
		)
	}
	return Cancelled, nil
}

// Next returns the following status on the happy path.
// Terminal and invalid statuses have no successor.
func (s Status) Next() (Status, error) {
	switch s {
	case Placed:
		return Confirmed, nil
	case Confirmed:
		return Preparing, nil
	case Preparing:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	default:
		return s, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot be advanced", s),
		)
	}
}
