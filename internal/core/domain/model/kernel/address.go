package kernel

import (
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")
	ErrCityIsRequired          = errs.NewValueIsRequiredError("city")
)

// AddressFields is the plain-data form of an Address, used to build one and to read it back.
type AddressFields struct {
	Line1        string
	Line2        string
	City         string
	State        string
	PostalCode   string
	Country      string
	ContactName  string
	ContactPhone string
}

// Address is a postal address block. Only the city is mandatory.
type Address struct {
	fields AddressFields
	guard  guard.ConstructorGuard
}

func NewAddress(fields AddressFields) (Address, error) {
	fields.City = strings.TrimSpace(fields.City)
	if fields.City == "" {
		return Address{}, ErrCityIsRequired
	}

	return Address{fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Fields() AddressFields {
	return a.fields
}

func (a Address) City() string {
	return a.fields.City
}

func (a Address) Country() string {
	return a.fields.Country
}
