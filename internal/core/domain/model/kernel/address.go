package kernel

import "strings"

// Address is the delivery address snapshot taken at checkout. Every part is optional,
// matching what the storefront collects.
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
	phone   string
}

// NewAddress trims surrounding whitespace from every part.
func NewAddress(street, city, state, zipCode, phone string) Address {
	return Address{
		street:  strings.TrimSpace(street),
		city:    strings.TrimSpace(city),
		state:   strings.TrimSpace(state),
		zipCode: strings.TrimSpace(zipCode),
		phone:   strings.TrimSpace(phone),
	}
}

func (a Address) Street() string  { return a.street }
func (a Address) City() string    { return a.city }
func (a Address) State() string   { return a.state }
func (a Address) ZipCode() string { return a.zipCode }
func (a Address) Phone() string   { return a.phone }

// IsEmpty reports whether no part was supplied.
func (a Address) IsEmpty() bool {
	return a == Address{}
}
