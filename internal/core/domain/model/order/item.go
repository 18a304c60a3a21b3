package order

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"
)

const maxNoteLength = 500

// Quantity is a strictly positive number of units of a product.
type Quantity int

// NewQuantity rejects zero and negative counts.
func NewQuantity(n int) (Quantity, error) {
	if n <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", n))
	}
	return Quantity(n), nil
}

// Int returns the plain count.
func (q Quantity) Int() int {
	return int(q)
}

// Item is one line of an order. The product, and with it the unit price, is
// captured when the item is built; later catalog changes do not affect it.
type Item struct {
	id       kernel.UUID
	product  *product.Product
	quantity Quantity
	note     string
	value    kernel.Money
}

// NewItem validates every field and computes the line value.
//
// Parameters:
//   - id: identifier of the item (must be valid UUID)
//   - p: the product as returned by the catalog
//   - quantity: number of units (must be positive)
//   - note: free text for the kitchen, at most 500 characters
func NewItem(id kernel.UUID, p *product.Product, quantity int, note string) (Item, error) {
	var item Item

	if err := errors.Join(
		item.setID(id),
		item.setProduct(p),
		item.setQuantity(quantity),
		item.setNote(note),
	); err != nil {
		return Item{}, err
	}

	value, err := item.product.Price().Times(item.quantity.Int())
	if err != nil {
		return Item{}, err
	}
	item.value = value

	return item, nil
}

// ID returns the item identifier, stable across item updates.
func (i Item) ID() kernel.UUID {
	return i.id
}

// Product returns the product captured when the item was built.
func (i Item) Product() *product.Product {
	return i.product
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() Quantity {
	return i.quantity
}

// Note returns the free text for the kitchen, possibly empty.
func (i Item) Note() string {
	return i.note
}

// Value is unit price times quantity.
func (i Item) Value() kernel.Money {
	return i.value
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProduct(p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i.product = p
	return nil
}

func (i *Item) setQuantity(n int) error {
	q, err := NewQuantity(n)
	if err != nil {
		return err
	}
	i.quantity = q
	return nil
}

func (i *Item) setNote(note string) error {
	if n := utf8.RuneCountInString(note); n > maxNoteLength {
		return errs.NewValueIsOutOfRangeError("note length", n, 0, maxNoteLength)
	}
	i.note = note
	return nil
}
