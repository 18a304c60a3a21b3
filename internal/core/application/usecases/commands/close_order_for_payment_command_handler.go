package commands

import (
	"context"

	"orders/internal/core/application/presenters"
	"orders/internal/core/application/result"
	"orders/internal/core/ports"
)

// CloseOrderForPaymentCommandHandler moves a Started order to AwaitingPayment
// and asks the payment provider for a charge.
//
// The status is persisted before the provider is called. When the call fails
// the order stays in AwaitingPayment; nothing is rolled back.
//
// A nil payments gateway disables the integration: the order is closed and
// the returned payment carries an empty QR code.
type CloseOrderForPaymentCommandHandler struct {
	orders   ports.OrderGateway
	payments ports.PaymentGateway
}

func NewCloseOrderForPaymentCommandHandler(
	orders ports.OrderGateway,
	payments ports.PaymentGateway,
) CloseOrderForPaymentCommandHandler {
	return CloseOrderForPaymentCommandHandler{orders: orders, payments: payments}
}

func (h *CloseOrderForPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd OrderIDCommand,
) result.Result[presenters.PaymentDTO] {
	if err := cmd.Validate(); err != nil {
		return result.InternalFailure[presenters.PaymentDTO](err)
	}

	o, failure, ok := loadOrder[presenters.PaymentDTO](ctx, h.orders, cmd.OrderID())
	if !ok {
		return failure
	}

	if err := o.CloseForPayment(); err != nil {
		return result.FromError[presenters.PaymentDTO](err)
	}

	updated, err := h.orders.UpdateStatus(ctx, o)
	if err != nil {
		return result.InternalFailure[presenters.PaymentDTO](err)
	}
	if !updated {
		return result.LogicalFailuref[presenters.PaymentDTO]("status of order %s could not be updated", o.ID())
	}

	if h.payments == nil {
		return result.Success(presenters.Payment(o, nil))
	}

	payment := h.payments.CreatePayment(ctx, o)
	if !payment.IsSuccess() {
		return result.Recast[ports.PaymentReceipt, presenters.PaymentDTO](payment)
	}

	receipt := payment.Data()
	return result.Success(presenters.Payment(o, &receipt))
}
