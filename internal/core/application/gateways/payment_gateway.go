package gateways

import (
	"context"

	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

type PaymentGateway struct {
	api ports.PaymentAPI
}

func NewPaymentGateway(api ports.PaymentAPI) *PaymentGateway {
	return &PaymentGateway{api: api}
}

var _ ports.PaymentGateway = (*PaymentGateway)(nil)

func (g *PaymentGateway) CreatePayment(ctx context.Context, o *order.Order) result.Result[ports.PaymentReceipt] {
	return g.api.CreatePayment(ctx, PaymentRequestFromOrder(o))
}
