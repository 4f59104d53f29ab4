// Package kernel provides the value objects shared by the order, restaurant and user
// aggregates.
//
// The package includes:
//   - UUID: identifier value object with validation and comparison
//   - Money: a non-negative amount of whole currency units with exact percentage rounding
//   - Address: the delivery address snapshot stored on an order
//
// All value objects are immutable and safe for concurrent use.
package kernel
