package customer

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError("Customer must be created via NewCustomer")

// Reserved walk-in customer. The migrations seed it with exactly these values.
const (
	DefaultID    = "6ee54a46-007f-4e4c-9fe8-1a13eadf7fd1"
	DefaultCpf   = "00000000191"
	DefaultEmail = "cliente.padrao@padrao.com"
	DefaultName  = "Cliente Padrão"
)

// Customer is immutable once constructed.
type Customer struct {
	id    kernel.UUID
	name  Name
	email Email
	cpf   Cpf

	isConstructed bool
}

// NewCustomer validates every field and reports all violations joined together.
//
// Parameters:
//   - id: identifier of the customer (must be valid UUID)
//   - name, email, cpf: raw values, validated through NewName, NewEmail and NewCpf
//
// Example:
//
//	c, err := customer.NewCustomer(kernel.NewUUID(), "Ana", "ana@mail.com", "529.982.247-25")
func NewCustomer(id kernel.UUID, name, email, cpf string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setCpf(cpf),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// NewDefaultCustomer builds the reserved walk-in customer.
func NewDefaultCustomer() *Customer {
	id, _ := kernel.UUIDFromString(DefaultID)
	c, err := NewCustomer(id, DefaultName, DefaultEmail, DefaultCpf)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate returns ErrCustomerIsNotConstructed unless c was built by
// NewCustomer or NewDefaultCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the display name.
func (c *Customer) Name() Name {
	return c.name
}

// Email returns the contact address.
func (c *Customer) Email() Email {
	return c.email
}

// Cpf returns the taxpayer number, unique across customers.
func (c *Customer) Cpf() Cpf {
	return c.cpf
}

// IsDefault reports whether c is the reserved walk-in customer.
func (c *Customer) IsDefault() bool {
	return c.cpf.String() == DefaultCpf
}

// IsEqual compares customers by identity only.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(value string) error {
	name, err := NewName(value)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(value string) error {
	email, err := NewEmail(value)
	if err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setCpf(value string) error {
	cpf, err := NewCpf(value)
	if err != nil {
		return err
	}
	c.cpf = cpf
	return nil
}
