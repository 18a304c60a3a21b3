package commands

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/customer"
	"orders/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand opens an order for the customer identified by cpf.
// A blank cpf selects the default walk-in customer.
type StartOrderCommand struct {
	cpf string

	guard guard.ConstructorGuard
}

func NewStartOrderCommand(cpf string) StartOrderCommand {
	if strings.TrimSpace(cpf) == "" {
		cpf = customer.DefaultCpf
	}
	return StartOrderCommand{cpf: cpf, guard: guard.NewConstructorGuard()}
}

func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

func (c StartOrderCommand) Cpf() string {
	return c.cpf
}
