package commands

import (
	"context"

	"orders/internal/core/application/presenters"
	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
)

// RegisterCustomerCommandHandler registers a new customer.
//
// Logical failures:
//   - any field is invalid
//   - the cpf or the email is already registered
//   - the data source reports that nothing was stored
//
// A conflict raised by the data source itself (a concurrent registration
// slipping past the checks) is an internal failure.
type RegisterCustomerCommandHandler struct {
	customers ports.CustomerGateway
}

func NewRegisterCustomerCommandHandler(customers ports.CustomerGateway) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{customers: customers}
}

func (h *RegisterCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterCustomerCommand,
) result.Result[presenters.CustomerDTO] {
	if err := cmd.Validate(); err != nil {
		return result.InternalFailure[presenters.CustomerDTO](err)
	}

	c, err := customer.NewCustomer(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Cpf())
	if err != nil {
		return result.FromError[presenters.CustomerDTO](err)
	}

	existing, err := h.customers.FindByCpf(ctx, c.Cpf())
	if err != nil {
		return result.InternalFailure[presenters.CustomerDTO](err)
	}
	if existing != nil {
		return result.LogicalFailuref[presenters.CustomerDTO]("a customer is already registered with cpf %s", c.Cpf())
	}

	existing, err = h.customers.FindByEmail(ctx, c.Email())
	if err != nil {
		return result.InternalFailure[presenters.CustomerDTO](err)
	}
	if existing != nil {
		return result.LogicalFailuref[presenters.CustomerDTO]("a customer is already registered with email %s", c.Email())
	}

	ok, err := h.customers.Register(ctx, c)
	if err != nil {
		return result.InternalFailure[presenters.CustomerDTO](err)
	}
	if !ok {
		return result.LogicalFailure[presenters.CustomerDTO]("customer could not be registered")
	}

	return result.Success(presenters.Customer(c))
}
