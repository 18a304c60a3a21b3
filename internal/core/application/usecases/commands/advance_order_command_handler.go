package commands

import (
	"context"

	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// AdvanceOrderCommandHandler applies one guarded status transition and
// persists the new status. It backs payment confirmation and the kitchen
// steps; see the New*CommandHandler constructors below.
type AdvanceOrderCommandHandler struct {
	orders  ports.OrderGateway
	advance func(*order.Order) error
}

// NewConfirmPaymentCommandHandler moves AwaitingPayment to Received.
func NewConfirmPaymentCommandHandler(orders ports.OrderGateway) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{orders: orders, advance: (*order.Order).ConfirmPayment}
}

// NewStartPreparationCommandHandler moves Received to InPreparation.
func NewStartPreparationCommandHandler(orders ports.OrderGateway) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{orders: orders, advance: (*order.Order).StartPreparation}
}

// NewCompletePreparationCommandHandler moves InPreparation to Ready.
func NewCompletePreparationCommandHandler(orders ports.OrderGateway) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{orders: orders, advance: (*order.Order).CompletePreparation}
}

// NewFinishOrderCommandHandler moves any order to Finished.
func NewFinishOrderCommandHandler(orders ports.OrderGateway) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{orders: orders, advance: (*order.Order).Finish}
}

func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd OrderIDCommand) result.Result[result.Empty] {
	if err := cmd.Validate(); err != nil {
		return result.InternalFailure[result.Empty](err)
	}

	o, failure, ok := loadOrder[result.Empty](ctx, h.orders, cmd.OrderID())
	if !ok {
		return failure
	}

	if err := h.advance(o); err != nil {
		return result.FromError[result.Empty](err)
	}

	updated, err := h.orders.UpdateStatus(ctx, o)
	if err != nil {
		return result.InternalFailure[result.Empty](err)
	}
	if !updated {
		return result.LogicalFailuref[result.Empty]("status of order %s could not be updated", o.ID())
	}

	return result.Done()
}
