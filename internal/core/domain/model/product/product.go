// Package product holds the read-only projection of a catalog item.
// Products are owned by the external catalog and never persisted here.
package product

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned by Validate for a nil or zero Product.
var ErrProductIsNotConstructed = errs.NewValueIsRequiredError("Product must be created via NewProduct")

// Product is the catalog item an order line refers to: its id and the unit
// price at the moment it was fetched.
type Product struct {
	id    kernel.UUID
	price kernel.Money

	isConstructed bool
}

// NewProduct requires a valid id. The price is already a non-negative Money.
func NewProduct(id kernel.UUID, price kernel.Money) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, errors.Join(errs.NewValueIsInvalidError("product id"), err)
	}
	return &Product{id: id, price: price, isConstructed: true}, nil
}

// Validate returns ErrProductIsNotConstructed unless p was built by NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the catalog identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Price is the unit price captured when the product was fetched.
func (p *Product) Price() kernel.Money {
	return p.price
}
