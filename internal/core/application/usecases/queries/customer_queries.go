package queries

import (
	"context"
	"errors"

	"orders/internal/core/application/presenters"
	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrFindCustomerByCpfQueryIsNotConstructed = errors.New(
	"FindCustomerByCpfQuery must be created via NewFindCustomerByCpfQuery constructor",
)

type FindCustomerByCpfQuery struct {
	cpf string

	guard guard.ConstructorGuard
}

func NewFindCustomerByCpfQuery(cpf string) FindCustomerByCpfQuery {
	return FindCustomerByCpfQuery{cpf: cpf, guard: guard.NewConstructorGuard()}
}

func (q FindCustomerByCpfQuery) Validate() error {
	return q.guard.Validate(ErrFindCustomerByCpfQueryIsNotConstructed)
}

func (q FindCustomerByCpfQuery) Cpf() string {
	return q.cpf
}

// FindCustomerByCpfQueryHandler looks a customer up by cpf. A missing
// customer is a logical failure.
type FindCustomerByCpfQueryHandler struct {
	customers ports.CustomerGateway
}

func NewFindCustomerByCpfQueryHandler(customers ports.CustomerGateway) FindCustomerByCpfQueryHandler {
	return FindCustomerByCpfQueryHandler{customers: customers}
}

func (h *FindCustomerByCpfQueryHandler) Handle(
	ctx context.Context,
	q FindCustomerByCpfQuery,
) result.Result[presenters.CustomerDTO] {
	if err := q.Validate(); err != nil {
		return result.InternalFailure[presenters.CustomerDTO](err)
	}

	cpf, err := customer.NewCpf(q.Cpf())
	if err != nil {
		return result.FromError[presenters.CustomerDTO](err)
	}

	return findCustomer(ctx, h.customers, cpf)
}

// GetDefaultCustomerQueryHandler returns the reserved walk-in customer.
type GetDefaultCustomerQueryHandler struct {
	customers ports.CustomerGateway
}

func NewGetDefaultCustomerQueryHandler(customers ports.CustomerGateway) GetDefaultCustomerQueryHandler {
	return GetDefaultCustomerQueryHandler{customers: customers}
}

func (h *GetDefaultCustomerQueryHandler) Handle(ctx context.Context) result.Result[presenters.CustomerDTO] {
	cpf, err := customer.NewCpf(customer.DefaultCpf)
	if err != nil {
		return result.InternalFailure[presenters.CustomerDTO](err)
	}

	return findCustomer(ctx, h.customers, cpf)
}

func findCustomer(
	ctx context.Context,
	customers ports.CustomerGateway,
	cpf customer.Cpf,
) result.Result[presenters.CustomerDTO] {
	c, err := customers.FindByCpf(ctx, cpf)
	if err != nil {
		return result.InternalFailure[presenters.CustomerDTO](err)
	}
	if c == nil {
		return result.FromError[presenters.CustomerDTO](errs.NewObjectNotFoundError("customer with cpf", cpf))
	}

	return result.Success(presenters.Customer(c))
}
