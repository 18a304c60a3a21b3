package commands_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/memory"
	"orders/internal/core/application/gateways"
	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerGateway struct{ mock.Mock }

func (m *MockCustomerGateway) Register(ctx context.Context, c *customer.Customer) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerGateway) FindByCpf(ctx context.Context, cpf customer.Cpf) (*customer.Customer, error) {
	args := m.Called(ctx, cpf)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerGateway) FindByEmail(ctx context.Context, email customer.Email) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerGateway) FindByID(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) Register(ctx context.Context, o *order.Order) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderGateway) FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderGateway) FindByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderGateway) FindByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderGateway) UpdateStatus(ctx context.Context, o *order.Order) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderGateway) UpdateItems(ctx context.Context, o *order.Order) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreatePayment(ctx context.Context, o *order.Order) result.Result[ports.PaymentReceipt] {
	args := m.Called(ctx, o)
	return args.Get(0).(result.Result[ports.PaymentReceipt])
}

// catalog is an in-memory ProductGateway.
type catalog map[kernel.UUID]*product.Product

func (c catalog) Fetch(_ context.Context, id kernel.UUID) result.Result[*product.Product] {
	p, ok := c[id]
	if !ok {
		return result.LogicalFailure[*product.Product]("404 Not Found")
	}
	return result.Success(p)
}

func (c catalog) add(t *testing.T, price string) *product.Product {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), m)
	require.NoError(t, err)
	c[p.ID()] = p
	return p
}

// fixture wires the real gateways to a seeded in-memory store.
type fixture struct {
	store     *memory.Store
	customers *gateways.CustomerGateway
	orders    *gateways.OrderGateway
	products  catalog
}

func newFixture() fixture {
	store := memory.NewSeededStore()
	return fixture{
		store:     store,
		customers: gateways.NewCustomerGateway(store),
		orders:    gateways.NewOrderGateway(store),
		products:  catalog{},
	}
}

// storeOrder persists an order in the given status holding one item per price.
func (f fixture) storeOrder(t *testing.T, status order.Status, prices ...string) *order.Order {
	t.Helper()
	items := make([]order.Item, 0, len(prices))
	for _, price := range prices {
		item, err := order.NewItem(kernel.NewUUID(), f.products.add(t, price), 1, "")
		require.NoError(t, err)
		items = append(items, item)
	}

	createdAt, err := order.NewCreatedAt(time.Now().Add(-time.Minute))
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), createdAt, status, customer.NewDefaultCustomer(), items)
	require.NoError(t, err)

	ok, err := f.orders.Register(t.Context(), o)
	require.NoError(t, err)
	require.True(t, ok)
	return o
}

func (f fixture) reload(t *testing.T, o *order.Order) *order.Order {
	t.Helper()
	found, err := f.orders.FindByID(t.Context(), o.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	return found
}
