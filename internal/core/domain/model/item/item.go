// Package item provides the catalog Item aggregate. Items are the
// authoritative source for product names and unit prices: order lines
// snapshot an item's name and price at resolution time, so a later catalog
// change never rewrites a placed order.
package item

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

const (
	minNameLength = 2
	maxNameLength = 30
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a catalog entry with an identity, a display name, and a unit
// price. Items are immutable once referenced by an order: the order stores
// a resolved copy, not a live reference.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name length is between 2 and 30 characters
//   - Unit price is strictly positive
type Item struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	isConstructed bool
}

// NewItem creates a catalog item, validating all invariants.
func NewItem(id kernel.UUID, name string, price kernel.Money) (*Item, error) {
	it := &Item{isConstructed: true}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setPrice(price),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// RestoreItem reconstructs an item from persistence. The same invariants
// apply: stored rows that no longer satisfy them fail loudly instead of
// producing a half-valid aggregate.
func RestoreItem(id kernel.UUID, name string, price kernel.Money) (*Item, error) {
	return NewItem(id, name, price)
}

// Validate ensures the item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by identity.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the item's unit price.
func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if len(name) < minNameLength || len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), minNameLength, maxNameLength)
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	i.price = price
	return nil
}
