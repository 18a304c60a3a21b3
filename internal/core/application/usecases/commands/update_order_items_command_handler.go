package commands

import (
	"context"
	"strings"

	"orders/internal/core/application/presenters"
	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// UpdateOrderItemsCommandHandler rebuilds the item list of a Started order.
//
// Logical failures:
//   - the order does not exist or is no longer Started
//   - an item id is malformed or does not belong to the order
//   - a referenced product does not exist in the catalog
//   - an item is invalid (quantity, note)
//
// Each product is fetched again, so kept items pick up the current price.
type UpdateOrderItemsCommandHandler struct {
	orders   ports.OrderGateway
	products ports.ProductGateway
}

func NewUpdateOrderItemsCommandHandler(
	orders ports.OrderGateway,
	products ports.ProductGateway,
) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{orders: orders, products: products}
}

func (h *UpdateOrderItemsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderItemsCommand,
) result.Result[presenters.OrderDTO] {
	if err := cmd.Validate(); err != nil {
		return result.InternalFailure[presenters.OrderDTO](err)
	}

	o, failure, ok := loadOrder[presenters.OrderDTO](ctx, h.orders, cmd.OrderID())
	if !ok {
		return failure
	}

	if !o.IsEditable() {
		return result.LogicalFailuref[presenters.OrderDTO](
			"order must be %s to update its items, but it is %s", order.Started, o.Status(),
		)
	}

	changes := cmd.Items()
	items := make([]order.Item, 0, len(changes))
	for _, change := range changes {
		item, res, ok := h.buildItem(ctx, o, change)
		if !ok {
			return res
		}
		items = append(items, item)
	}

	if err := o.ReplaceItems(items); err != nil {
		return result.FromError[presenters.OrderDTO](err)
	}

	updated, err := h.orders.UpdateItems(ctx, o)
	if err != nil {
		return result.InternalFailure[presenters.OrderDTO](err)
	}
	if !updated {
		return result.LogicalFailuref[presenters.OrderDTO]("items of order %s could not be updated", o.ID())
	}

	return result.Success(presenters.Order(o))
}

func (h *UpdateOrderItemsCommandHandler) buildItem(
	ctx context.Context,
	o *order.Order,
	change ItemChange,
) (order.Item, result.Result[presenters.OrderDTO], bool) {
	itemID := kernel.NewUUID()
	if strings.TrimSpace(change.ItemID) != "" {
		id, err := kernel.UUIDFromString(change.ItemID)
		if err != nil {
			return order.Item{}, result.FromError[presenters.OrderDTO](err), false
		}
		if _, exists := o.FindItem(id); !exists {
			return order.Item{}, result.LogicalFailuref[presenters.OrderDTO](
				"item %s does not belong to order %s", id, o.ID(),
			), false
		}
		itemID = id
	}

	productID, err := kernel.UUIDFromString(change.ProductID)
	if err != nil {
		return order.Item{}, result.FromError[presenters.OrderDTO](err), false
	}

	fetched := h.products.Fetch(ctx, productID)
	switch {
	case fetched.IsLogicalFailure():
		return order.Item{}, result.LogicalFailuref[presenters.OrderDTO](
			"product %s does not exist: %s", productID, fetched.Message(),
		), false
	case !fetched.IsSuccess():
		return order.Item{}, result.InternalFailure[presenters.OrderDTO](fetched.Fault()), false
	}

	item, err := order.NewItem(itemID, fetched.Data(), change.Quantity, change.Note)
	if err != nil {
		return order.Item{}, result.FromError[presenters.OrderDTO](err), false
	}
	return item, result.Result[presenters.OrderDTO]{}, true
}
