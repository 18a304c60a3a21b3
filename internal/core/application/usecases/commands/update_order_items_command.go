package commands

import (
	"errors"
	"slices"

	"orders/internal/pkg/guard"
)

var ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
	"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
)

// ItemChange is one line of the desired item list. ItemID is empty for new
// items; a non-empty ItemID must name an item already on the order.
type ItemChange struct {
	ItemID    string
	ProductID string
	Quantity  int
	Note      string
}

// UpdateOrderItemsCommand replaces the item list of an order. Items of the
// order that are not listed are removed.
type UpdateOrderItemsCommand struct {
	orderID string
	items   []ItemChange

	guard guard.ConstructorGuard
}

func NewUpdateOrderItemsCommand(orderID string, items []ItemChange) UpdateOrderItemsCommand {
	return UpdateOrderItemsCommand{
		orderID: orderID,
		items:   slices.Clone(items),
		guard:   guard.NewConstructorGuard(),
	}
}

func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

func (c UpdateOrderItemsCommand) OrderID() string {
	return c.orderID
}

func (c UpdateOrderItemsCommand) Items() []ItemChange {
	return slices.Clone(c.items)
}
