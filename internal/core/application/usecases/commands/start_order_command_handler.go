package commands

import (
	"context"

	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// StartOrderCommandHandler creates an empty Started order and returns its id.
type StartOrderCommandHandler struct {
	customers ports.CustomerGateway
	orders    ports.OrderGateway
}

func NewStartOrderCommandHandler(customers ports.CustomerGateway, orders ports.OrderGateway) StartOrderCommandHandler {
	return StartOrderCommandHandler{customers: customers, orders: orders}
}

func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) result.Result[string] {
	if err := cmd.Validate(); err != nil {
		return result.InternalFailure[string](err)
	}

	cpf, err := customer.NewCpf(cmd.Cpf())
	if err != nil {
		return result.FromError[string](err)
	}

	c, err := h.customers.FindByCpf(ctx, cpf)
	if err != nil {
		return result.InternalFailure[string](err)
	}
	if c == nil {
		return result.FromError[string](errs.NewObjectNotFoundError("customer with cpf", cpf))
	}

	o, err := order.NewOrder(kernel.NewUUID(), c, order.Now())
	if err != nil {
		return result.FromError[string](err)
	}

	ok, err := h.orders.Register(ctx, o)
	if err != nil {
		return result.InternalFailure[string](err)
	}
	if !ok {
		return result.LogicalFailure[string]("order could not be created")
	}

	return result.Success(o.ID().String())
}
