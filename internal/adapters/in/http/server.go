// Package http exposes the order use cases over a JSON REST API.
package http

import (
	"net/http"

	"orders/internal/core/application/presenters"
	"orders/internal/core/application/result"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups every use case the API can reach.
type Handlers struct {
	RegisterCustomer     commands.RegisterCustomerCommandHandler
	StartOrder           commands.StartOrderCommandHandler
	UpdateOrderItems     commands.UpdateOrderItemsCommandHandler
	CloseOrderForPayment commands.CloseOrderForPaymentCommandHandler
	ConfirmPayment       commands.AdvanceOrderCommandHandler
	StartPreparation     commands.AdvanceOrderCommandHandler
	CompletePreparation  commands.AdvanceOrderCommandHandler
	FinishOrder          commands.AdvanceOrderCommandHandler

	FindCustomerByCpf         queries.FindCustomerByCpfQueryHandler
	GetDefaultCustomer        queries.GetDefaultCustomerQueryHandler
	GetOrder                  queries.GetOrderQueryHandler
	GetLatestCustomerOrder    queries.GetLatestCustomerOrderQueryHandler
	ListOrdersAwaitingPayment queries.ListOrdersAwaitingPaymentQueryHandler
	ListActiveOrders          queries.ListActiveOrdersQueryHandler
}

// Server implements servers.ServerInterface on top of the use case handlers.
type Server struct {
	h      Handlers
	logger *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{h: handlers, logger: logger}
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var body servers.NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd := commands.NewRegisterCustomerCommand(body.Name, body.Email, body.Cpf)
	res := s.h.RegisterCustomer.Handle(ctx.Request().Context(), cmd)
	return respond(ctx, s.logger, http.StatusCreated, result.Map(res, toCustomer))
}

// GetDefaultCustomer handles GET /api/v1/customers/default.
func (s *Server) GetDefaultCustomer(ctx echo.Context) error {
	res := s.h.GetDefaultCustomer.Handle(ctx.Request().Context())
	return respond(ctx, s.logger, http.StatusOK, result.Map(res, toCustomer))
}

// FindCustomerByCpf handles GET /api/v1/customers/{cpf}.
func (s *Server) FindCustomerByCpf(ctx echo.Context, cpf string) error {
	res := s.h.FindCustomerByCpf.Handle(ctx.Request().Context(), queries.NewFindCustomerByCpfQuery(cpf))
	return respond(ctx, s.logger, http.StatusOK, result.Map(res, toCustomer))
}

// StartOrder handles POST /api/v1/orders. Without cpf the order belongs to
// the default customer.
func (s *Server) StartOrder(ctx echo.Context, params servers.StartOrderParams) error {
	res := s.h.StartOrder.Handle(ctx.Request().Context(), commands.NewStartOrderCommand(deref(params.Cpf)))
	return respond(ctx, s.logger, http.StatusCreated, result.Map(res, func(id string) servers.StartedOrder {
		return servers.StartedOrder{OrderId: id}
	}))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	res := s.h.GetOrder.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(orderID))
	return respond(ctx, s.logger, http.StatusOK, result.Map(res, toOrder))
}

// GetLatestCustomerOrder handles GET /api/v1/orders/latest.
func (s *Server) GetLatestCustomerOrder(ctx echo.Context, params servers.GetLatestCustomerOrderParams) error {
	q := queries.NewGetLatestCustomerOrderQuery(deref(params.Cpf))
	res := s.h.GetLatestCustomerOrder.Handle(ctx.Request().Context(), q)
	return respond(ctx, s.logger, http.StatusOK, result.Map(res, toOrder))
}

// ListOrdersAwaitingPayment handles GET /api/v1/orders/awaiting-payment.
func (s *Server) ListOrdersAwaitingPayment(ctx echo.Context) error {
	res := s.h.ListOrdersAwaitingPayment.Handle(ctx.Request().Context())
	return respond(ctx, s.logger, http.StatusOK, result.Map(res, toOrders))
}

// ListActiveOrders handles GET /api/v1/orders/active.
func (s *Server) ListActiveOrders(ctx echo.Context) error {
	res := s.h.ListActiveOrders.Handle(ctx.Request().Context())
	return respond(ctx, s.logger, http.StatusOK, result.Map(res, toOrders))
}

// UpdateOrderItems handles PUT /api/v1/orders/{orderId}/items.
func (s *Server) UpdateOrderItems(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateOrderItems
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	changes := make([]commands.ItemChange, 0, len(body.Items))
	for _, item := range body.Items {
		changes = append(changes, commands.ItemChange{
			ItemID:    deref(item.ItemId),
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
			Note:      deref(item.Note),
		})
	}

	cmd := commands.NewUpdateOrderItemsCommand(orderID, changes)
	res := s.h.UpdateOrderItems.Handle(ctx.Request().Context(), cmd)
	return respond(ctx, s.logger, http.StatusOK, result.Map(res, toOrder))
}

// CloseOrderForPayment handles POST /api/v1/orders/{orderId}/checkout.
func (s *Server) CloseOrderForPayment(ctx echo.Context, orderID servers.OrderId) error {
	res := s.h.CloseOrderForPayment.Handle(ctx.Request().Context(), commands.NewOrderIDCommand(orderID))
	return respond(ctx, s.logger, http.StatusOK, result.Map(res, toPayment))
}

// ConfirmPayment handles POST /api/v1/orders/{orderId}/payment-confirmation.
func (s *Server) ConfirmPayment(ctx echo.Context, orderID servers.OrderId) error {
	return s.advance(ctx, &s.h.ConfirmPayment, orderID)
}

// StartPreparation handles POST /api/v1/orders/{orderId}/preparation.
func (s *Server) StartPreparation(ctx echo.Context, orderID servers.OrderId) error {
	return s.advance(ctx, &s.h.StartPreparation, orderID)
}

// CompletePreparation handles POST /api/v1/orders/{orderId}/completion.
func (s *Server) CompletePreparation(ctx echo.Context, orderID servers.OrderId) error {
	return s.advance(ctx, &s.h.CompletePreparation, orderID)
}

// FinishOrder handles POST /api/v1/orders/{orderId}/finish.
func (s *Server) FinishOrder(ctx echo.Context, orderID servers.OrderId) error {
	return s.advance(ctx, &s.h.FinishOrder, orderID)
}

func (s *Server) advance(ctx echo.Context, h *commands.AdvanceOrderCommandHandler, orderID string) error {
	res := h.Handle(ctx.Request().Context(), commands.NewOrderIDCommand(orderID))
	return respond(ctx, s.logger, http.StatusNoContent, res)
}

func toCustomer(c presenters.CustomerDTO) servers.Customer {
	return servers.Customer{Id: c.ID, Name: c.Name, Email: c.Email, Cpf: c.Cpf}
}

func toOrder(o presenters.OrderDTO) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, servers.OrderItem{
			Id:        item.ID,
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
			Note:      item.Note,
			UnitPrice: item.UnitPrice,
			Value:     item.Value,
		})
	}

	return servers.Order{
		Id:        o.ID,
		CreatedAt: o.CreatedAt,
		Status:    o.Status,
		Customer:  toCustomer(o.Customer),
		Items:     items,
		Total:     o.Total,
	}
}

func toOrders(orders []presenters.OrderDTO) []servers.Order {
	out := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toPayment(p presenters.PaymentDTO) servers.Payment {
	return servers.Payment{OrderId: p.OrderID, Total: p.Total, Status: p.Status, QrCode: p.QRCode}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
