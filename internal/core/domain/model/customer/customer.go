// Package customer provides the minimal customer projection the order core
// depends on. Customer records are owned by an external collaborator; this
// core only reads them for detail views and never mutates them.
package customer

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

// Customer is the {id, name, address} projection used by order detail
// views and catalog seeding.
type Customer struct {
	id      kernel.UUID
	name    string
	address string

	isConstructed bool
}

// NewCustomer creates a customer projection.
func NewCustomer(id kernel.UUID, name, address string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Customer{
		id:            id,
		name:          name,
		address:       address,
		isConstructed: true,
	}, nil
}

// Validate ensures the customer was created through the constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Address returns the customer's address.
func (c *Customer) Address() string {
	return c.address
}
