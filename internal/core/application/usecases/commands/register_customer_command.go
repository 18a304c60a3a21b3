package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand carries the raw registration form. Fields are
// validated by the handler so that bad input ends up as a logical failure.
type RegisterCustomerCommand struct {
	name  string
	email string
	cpf   string

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(name, email, cpf string) RegisterCustomerCommand {
	return RegisterCustomerCommand{name: name, email: email, cpf: cpf, guard: guard.NewConstructorGuard()}
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) Name() string  { return c.name }
func (c RegisterCustomerCommand) Email() string { return c.email }
func (c RegisterCustomerCommand) Cpf() string   { return c.cpf }
