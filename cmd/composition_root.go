package cmd

import (
	"orders/internal/adapters/in/http"
	"orders/internal/adapters/out/httpclient"
	"orders/internal/adapters/out/paymentapi"
	"orders/internal/adapters/out/postgres/customerrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/productapi"
	"orders/internal/core/application/gateways"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot owns the gateways and builds every use case handler.
type CompositionRoot struct {
	customers ports.CustomerGateway
	orders    ports.OrderGateway
	products  ports.ProductGateway
	payments  ports.PaymentGateway
	logger    *zap.Logger
}

// NewCompositionRoot wires gorm-backed data sources and the HTTP API clients.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	productAPI := productapi.NewClient(
		httpclient.NewExecutor("product-api", cfg.ProductAPIURL, cfg.ProductAPITimeout, logger))

	var payments ports.PaymentGateway
	if cfg.PaymentAPIEnabled {
		paymentAPI := paymentapi.NewClient(
			httpclient.NewExecutor("payment-api", cfg.PaymentAPIURL, cfg.PaymentAPITimeout, logger))
		payments = gateways.NewPaymentGateway(paymentAPI)
	}

	return NewCompositionRootWith(
		customerrepo.NewGormCustomerDataSource(gormDB),
		orderrepo.NewGormOrderDataSource(gormDB),
		productAPI,
		payments,
		logger,
	)
}

// NewCompositionRootWith wires the given collaborators. A nil payments
// gateway disables the payment integration.
func NewCompositionRootWith(
	customerData ports.CustomerDataSource,
	orderData ports.OrderDataSource,
	productAPI ports.ProductAPI,
	payments ports.PaymentGateway,
	logger *zap.Logger,
) CompositionRoot {
	return CompositionRoot{
		customers: gateways.NewCustomerGateway(customerData),
		orders:    gateways.NewOrderGateway(orderData),
		products:  gateways.NewProductGateway(productAPI),
		payments:  payments,
		logger:    logger,
	}
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.customers)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.customers, c.orders)
}

func (c *CompositionRoot) CreateUpdateOrderItemsCommandHandler() commands.UpdateOrderItemsCommandHandler {
	return commands.NewUpdateOrderItemsCommandHandler(c.orders, c.products)
}

func (c *CompositionRoot) CreateCloseOrderForPaymentCommandHandler() commands.CloseOrderForPaymentCommandHandler {
	return commands.NewCloseOrderForPaymentCommandHandler(c.orders, c.payments)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateStartPreparationCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewStartPreparationCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateCompletePreparationCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewCompletePreparationCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewFinishOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateFindCustomerByCpfQueryHandler() queries.FindCustomerByCpfQueryHandler {
	return queries.NewFindCustomerByCpfQueryHandler(c.customers)
}

func (c *CompositionRoot) CreateGetDefaultCustomerQueryHandler() queries.GetDefaultCustomerQueryHandler {
	return queries.NewGetDefaultCustomerQueryHandler(c.customers)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetLatestCustomerOrderQueryHandler() queries.GetLatestCustomerOrderQueryHandler {
	return queries.NewGetLatestCustomerOrderQueryHandler(c.customers, c.orders)
}

func (c *CompositionRoot) CreateListOrdersAwaitingPaymentQueryHandler() queries.ListOrdersAwaitingPaymentQueryHandler {
	return queries.NewListOrdersAwaitingPaymentQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListActiveOrdersQueryHandler() queries.ListActiveOrdersQueryHandler {
	return queries.NewListActiveOrdersQueryHandler(c.orders)
}

// CreateHTTPServer builds the API server over every handler.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		RegisterCustomer:          c.CreateRegisterCustomerCommandHandler(),
		StartOrder:                c.CreateStartOrderCommandHandler(),
		UpdateOrderItems:          c.CreateUpdateOrderItemsCommandHandler(),
		CloseOrderForPayment:      c.CreateCloseOrderForPaymentCommandHandler(),
		ConfirmPayment:            c.CreateConfirmPaymentCommandHandler(),
		StartPreparation:          c.CreateStartPreparationCommandHandler(),
		CompletePreparation:       c.CreateCompletePreparationCommandHandler(),
		FinishOrder:               c.CreateFinishOrderCommandHandler(),
		FindCustomerByCpf:         c.CreateFindCustomerByCpfQueryHandler(),
		GetDefaultCustomer:        c.CreateGetDefaultCustomerQueryHandler(),
		GetOrder:                  c.CreateGetOrderQueryHandler(),
		GetLatestCustomerOrder:    c.CreateGetLatestCustomerOrderQueryHandler(),
		ListOrdersAwaitingPayment: c.CreateListOrdersAwaitingPaymentQueryHandler(),
		ListActiveOrders:          c.CreateListActiveOrdersQueryHandler(),
	}, c.logger)
}
