package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of one customer transaction.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a constructed customer
//   - Creation date is never the zero time
//   - Status is always one of the defined statuses
//   - Total is the sum of the item values and is never set directly
//
// Item replacement is not gated by status here; callers decide when an
// order is editable (see IsEditable).
type Order struct {
	id        kernel.UUID
	createdAt CreatedAt
	customer  *customer.Customer
	status    Status
	items     []Item

	isConstructed bool
}

// NewOrder starts a new order for c with no items.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), c, order.Now())
func NewOrder(id kernel.UUID, c *customer.Customer, createdAt CreatedAt) (*Order, error) {
	return RestoreOrder(id, createdAt, Started, c, nil)
}

// RestoreOrder rebuilds an order from persisted or transported state.
func RestoreOrder(
	id kernel.UUID,
	createdAt CreatedAt,
	status Status,
	c *customer.Customer,
	items []Item,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCreatedAt(createdAt),
		o.setStatus(status),
		o.setCustomer(c),
		o.ReplaceItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate returns ErrOrderIsNotConstructed unless o was built by NewOrder
// or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity only.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CreatedAt returns the moment the order was started.
func (o *Order) CreatedAt() CreatedAt {
	return o.createdAt
}

// Customer returns the customer the order belongs to.
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the item list.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// FindItem looks an item up by id.
func (o *Order) FindItem(id kernel.UUID) (Item, bool) {
	for _, item := range o.items {
		if item.ID().IsEqual(id) {
			return item, true
		}
	}
	return Item{}, false
}

// Total is the sum of all item values.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Value())
	}
	return total
}

// IsEditable reports whether items may still be changed.
func (o *Order) IsEditable() bool {
	return o.status == Started
}

// ReplaceItems swaps the whole item list. Item ids must be unique.
func (o *Order) ReplaceItems(items []Item) error {
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.ID().Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item %s appears more than once", item.ID()),
			)
		}
		seen[item.ID()] = struct{}{}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// CloseForPayment moves a Started order with a positive total to AwaitingPayment.
//
// Returns an error when:
//   - the order has no items
//   - the total is not greater than zero
//   - the order is not Started
func (o *Order) CloseForPayment() error {
	if len(o.items) == 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"items",
			errors.New("order must have at least one item to be closed for payment"),
		)
	}

	if total := o.Total(); !total.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("order total %s must be greater than zero to be closed for payment", total),
		)
	}

	return o.transition(o.status.CloseForPayment)
}

// ConfirmPayment moves an AwaitingPayment order to Received.
func (o *Order) ConfirmPayment() error {
	return o.transition(o.status.ConfirmPayment)
}

// StartPreparation moves a Received order to InPreparation.
func (o *Order) StartPreparation() error {
	return o.transition(o.status.StartPreparation)
}

// CompletePreparation moves an InPreparation order to Ready.
func (o *Order) CompletePreparation() error {
	return o.transition(o.status.CompletePreparation)
}

// Finish moves the order to Finished from any status.
func (o *Order) Finish() error {
	return o.transition(o.status.Finish)
}

func (o *Order) transition(next func() (Status, error)) error {
	status, err := next()
	if err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCreatedAt(createdAt CreatedAt) error {
	if err := createdAt.Validate(); err != nil {
		return err
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCustomer(c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customer = c
	return nil
}
