// Package order provides the Order aggregate: checkout pricing, the status lifecycle and
// ownership.
//
// The package includes:
//   - Order: the aggregate root holding line items, totals, status and delivery details
//   - LineItem: an immutable snapshot of a menu item taken at checkout
//   - Totals and ComputeTotals: pure pricing (subtotal, delivery fee, 5% tax, final amount)
//   - Status: the six lifecycle values and the guarded cancel/advance transitions
//   - PlacedEvent and StatusChangedEvent: domain events published after commit
//
// Key business rules:
//   - Prices are never taken from the client; line items snapshot the menu at checkout
//   - FinalAmount always equals TotalAmount + DeliveryFee + Tax, Tax is round(TotalAmount * 5%)
//   - The owner is fixed at creation; orders are never deleted, cancellation is a status
//   - ChangeStatus is permissive and may set any status from any status
//   - Cancel is rejected once the order is delivered; cancelling twice is allowed
package order
