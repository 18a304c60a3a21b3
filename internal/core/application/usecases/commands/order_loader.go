package commands

import (
	"context"

	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// loadOrder parses rawID and loads the order. When ok is false, failure is
// the result the caller must return.
func loadOrder[T any](
	ctx context.Context,
	orders ports.OrderGateway,
	rawID string,
) (o *order.Order, failure result.Result[T], ok bool) {
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return nil, result.FromError[T](err), false
	}

	o, err = orders.FindByID(ctx, id)
	if err != nil {
		return nil, result.InternalFailure[T](err), false
	}
	if o == nil {
		return nil, result.FromError[T](errs.NewObjectNotFoundError("order", id)), false
	}

	return o, failure, true
}
