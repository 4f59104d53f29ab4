// Package restaurant models the catalog the order engine prices against.
//
// A Restaurant owns an ordered menu; orders only reference restaurants and menu items by
// id and copy a price snapshot at checkout, so nothing here depends on the order package.
package restaurant
