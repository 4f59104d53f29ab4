// Package services provides domain services that coordinate the restaurant, order and user
// aggregates.
//
// The package includes:
//   - OrderPlacer: turns a cart into a priced, placed order against a restaurant's menu
//   - StatusMessenger: picks the cosmetic message stored next to an order status
//   - QuoteGenerator: picks the profile quote given to new users
//
// Random choices go through an injected math/rand/v2 source so tests can pin them.
package services
