package ports

import (
	"context"

	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
)

// CustomerGateway exposes customer persistence in domain terms.
// Finders return (nil, nil) when nothing matches.
type CustomerGateway interface {
	Register(ctx context.Context, c *customer.Customer) (bool, error)
	FindByCpf(ctx context.Context, cpf customer.Cpf) (*customer.Customer, error)
	FindByEmail(ctx context.Context, email customer.Email) (*customer.Customer, error)
	FindByID(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

// OrderGateway exposes order persistence in domain terms.
// FindByID returns (nil, nil) when the order does not exist.
type OrderGateway interface {
	Register(ctx context.Context, o *order.Order) (bool, error)
	FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error)
	FindByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
	FindByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
	UpdateStatus(ctx context.Context, o *order.Order) (bool, error)
	UpdateItems(ctx context.Context, o *order.Order) (bool, error)
}

// ProductGateway fetches catalog products wrapped in a result, so a missing
// product and an unreachable catalog are handled the same way by callers.
type ProductGateway interface {
	Fetch(ctx context.Context, id kernel.UUID) result.Result[*product.Product]
}

// PaymentGateway asks the payment provider to charge an order.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, o *order.Order) result.Result[PaymentReceipt]
}
