package ports

import (
	"context"

	"orders/internal/core/application/result"

	"github.com/google/uuid"
)

// CustomerDataSource is the persistence collaborator for customers.
// Lookups return (nil, nil) when nothing matches.
type CustomerDataSource interface {
	// InsertCustomer stores a new customer. It fails with errs.ConflictError
	// when a customer with the same cpf and email already exists.
	InsertCustomer(ctx context.Context, record CustomerRecord) (bool, error)

	FindCustomerByCpf(ctx context.Context, cpf string) (*CustomerRecord, error)
	FindCustomerByEmail(ctx context.Context, email string) (*CustomerRecord, error)
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*CustomerRecord, error)
}

// OrderDataSource is the persistence collaborator for orders and their items.
// Lookups return (nil, nil) when nothing matches.
type OrderDataSource interface {
	// InsertOrder stores a new order together with its items.
	InsertOrder(ctx context.Context, record OrderRecord) (bool, error)

	FindOrderByID(ctx context.Context, id uuid.UUID) (*OrderRecord, error)
	FindOrdersByCustomerID(ctx context.Context, customerID uuid.UUID) ([]OrderRecord, error)

	// FindOrdersByStatus returns orders whose status is any of statuses.
	FindOrdersByStatus(ctx context.Context, statuses ...int) ([]OrderRecord, error)

	// UpdateOrderStatus reports false when the order does not exist.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status int) (bool, error)

	// ReplaceOrderItems reconciles the stored items with items by id in one
	// transaction. It fails with errs.ConflictError when the order does not exist.
	ReplaceOrderItems(ctx context.Context, orderID uuid.UUID, items []OrderItemRecord) (bool, error)
}

// ProductAPI is the product catalog collaborator. A missing product is a
// logical failure; transport problems are internal failures.
type ProductAPI interface {
	GetProduct(ctx context.Context, id uuid.UUID) result.Result[ProductRecord]
}

// PaymentAPI is the payment provider collaborator.
type PaymentAPI interface {
	CreatePayment(ctx context.Context, request PaymentRequest) result.Result[PaymentReceipt]
}
