// Package user holds the customer account: credentials, contact details, a profile quote
// and favorite restaurants.
package user
