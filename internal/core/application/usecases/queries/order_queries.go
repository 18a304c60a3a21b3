package queries

import (
	"context"
	"errors"
	"slices"
	"strings"

	"orders/internal/core/application/presenters"
	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrGetLatestCustomerOrderQueryIsNotConstructed = errors.New(
		"GetLatestCustomerOrderQuery must be created via NewGetLatestCustomerOrderQuery constructor",
	)
)

type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID string) GetOrderQuery {
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

type GetOrderQueryHandler struct {
	orders ports.OrderGateway
}

func NewGetOrderQueryHandler(orders ports.OrderGateway) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h *GetOrderQueryHandler) Handle(ctx context.Context, q GetOrderQuery) result.Result[presenters.OrderDTO] {
	if err := q.Validate(); err != nil {
		return result.InternalFailure[presenters.OrderDTO](err)
	}

	id, err := kernel.UUIDFromString(q.OrderID())
	if err != nil {
		return result.FromError[presenters.OrderDTO](err)
	}

	o, err := h.orders.FindByID(ctx, id)
	if err != nil {
		return result.InternalFailure[presenters.OrderDTO](err)
	}
	if o == nil {
		return result.FromError[presenters.OrderDTO](errs.NewObjectNotFoundError("order", id))
	}

	return result.Success(presenters.Order(o))
}

// GetLatestCustomerOrderQuery selects the newest order of a customer. A blank
// cpf selects the default customer.
type GetLatestCustomerOrderQuery struct {
	cpf string

	guard guard.ConstructorGuard
}

func NewGetLatestCustomerOrderQuery(cpf string) GetLatestCustomerOrderQuery {
	if strings.TrimSpace(cpf) == "" {
		cpf = customer.DefaultCpf
	}
	return GetLatestCustomerOrderQuery{cpf: cpf, guard: guard.NewConstructorGuard()}
}

func (q GetLatestCustomerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestCustomerOrderQueryIsNotConstructed)
}

func (q GetLatestCustomerOrderQuery) Cpf() string {
	return q.cpf
}

type GetLatestCustomerOrderQueryHandler struct {
	customers ports.CustomerGateway
	orders    ports.OrderGateway
}

func NewGetLatestCustomerOrderQueryHandler(
	customers ports.CustomerGateway,
	orders ports.OrderGateway,
) GetLatestCustomerOrderQueryHandler {
	return GetLatestCustomerOrderQueryHandler{customers: customers, orders: orders}
}

func (h *GetLatestCustomerOrderQueryHandler) Handle(
	ctx context.Context,
	q GetLatestCustomerOrderQuery,
) result.Result[presenters.OrderDTO] {
	if err := q.Validate(); err != nil {
		return result.InternalFailure[presenters.OrderDTO](err)
	}

	cpf, err := customer.NewCpf(q.Cpf())
	if err != nil {
		return result.FromError[presenters.OrderDTO](err)
	}

	c, err := h.customers.FindByCpf(ctx, cpf)
	if err != nil {
		return result.InternalFailure[presenters.OrderDTO](err)
	}
	if c == nil {
		return result.FromError[presenters.OrderDTO](errs.NewObjectNotFoundError("customer with cpf", cpf))
	}

	orders, err := h.orders.FindByCustomer(ctx, c.ID())
	if err != nil {
		return result.InternalFailure[presenters.OrderDTO](err)
	}
	if len(orders) == 0 {
		return result.LogicalFailuref[presenters.OrderDTO]("customer with cpf %s has no orders", cpf)
	}

	latest := slices.MaxFunc(orders, func(a, b *order.Order) int {
		return a.CreatedAt().Time().Compare(b.CreatedAt().Time())
	})
	return result.Success(presenters.Order(latest))
}

// ListOrdersAwaitingPaymentQueryHandler lists orders closed but not yet paid.
type ListOrdersAwaitingPaymentQueryHandler struct {
	orders ports.OrderGateway
}

func NewListOrdersAwaitingPaymentQueryHandler(orders ports.OrderGateway) ListOrdersAwaitingPaymentQueryHandler {
	return ListOrdersAwaitingPaymentQueryHandler{orders: orders}
}

func (h *ListOrdersAwaitingPaymentQueryHandler) Handle(ctx context.Context) result.Result[[]presenters.OrderDTO] {
	orders, err := h.orders.FindByStatus(ctx, order.AwaitingPayment)
	if err != nil {
		return result.InternalFailure[[]presenters.OrderDTO](err)
	}
	return result.Success(presenters.Orders(orders))
}

// ListActiveOrdersQueryHandler lists the kitchen board: Ready first, then
// InPreparation, then Received; newest first within a status.
type ListActiveOrdersQueryHandler struct {
	orders ports.OrderGateway
}

func NewListActiveOrdersQueryHandler(orders ports.OrderGateway) ListActiveOrdersQueryHandler {
	return ListActiveOrdersQueryHandler{orders: orders}
}

func (h *ListActiveOrdersQueryHandler) Handle(ctx context.Context) result.Result[[]presenters.OrderDTO] {
	active := order.ActiveStatuses()
	orders, err := h.orders.FindByStatus(ctx, active...)
	if err != nil {
		return result.InternalFailure[[]presenters.OrderDTO](err)
	}

	orders = slices.DeleteFunc(orders, func(o *order.Order) bool {
		return !slices.Contains(active, o.Status())
	})
	slices.SortStableFunc(orders, func(a, b *order.Order) int {
		if a.Status() != b.Status() {
			return int(b.Status()) - int(a.Status())
		}
		return b.CreatedAt().Time().Compare(a.CreatedAt().Time())
	})
	return result.Success(presenters.Orders(orders))
}
