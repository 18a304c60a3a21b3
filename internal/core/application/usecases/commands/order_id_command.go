package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrOrderIDCommandIsNotConstructed = errors.New(
	"OrderIDCommand must be created via NewOrderIDCommand constructor",
)

// OrderIDCommand targets a single order by id. It is shared by checkout and
// every status transition.
type OrderIDCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewOrderIDCommand(orderID string) OrderIDCommand {
	return OrderIDCommand{orderID: orderID, guard: guard.NewConstructorGuard()}
}

func (c OrderIDCommand) Validate() error {
	return c.guard.Validate(ErrOrderIDCommandIsNotConstructed)
}

func (c OrderIDCommand) OrderID() string {
	return c.orderID
}
