package gateways

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerToRecord converts a customer into its persistence shape.
func CustomerToRecord(c *customer.Customer) ports.CustomerRecord {
	return ports.CustomerRecord{
		ID:    c.ID().Bytes(),
		Name:  c.Name().String(),
		Email: c.Email().String(),
		Cpf:   c.Cpf().String(),
	}
}

// CustomerFromRecord rebuilds a customer, validating every field again. A
// record that fails validation is reported as an errs.CorruptRecordError.
func CustomerFromRecord(r ports.CustomerRecord) (*customer.Customer, error) {
	c, err := restoreCustomer(r)
	if err != nil {
		return nil, errs.NewCorruptRecordError("customer", r.ID, err)
	}
	return c, nil
}

func restoreCustomer(r ports.CustomerRecord) (*customer.Customer, error) {
	id, err := kernel.UUIDFrom(r.ID)
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(id, r.Name, r.Email, r.Cpf)
}

// OrderToRecord converts an order, its customer and its items.
func OrderToRecord(o *order.Order) ports.OrderRecord {
	items := o.Items()
	records := make([]ports.OrderItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, ItemToRecord(item))
	}

	return ports.OrderRecord{
		ID:        o.ID().Bytes(),
		CreatedAt: o.CreatedAt().Time(),
		Status:    o.Status().Code(),
		Customer:  CustomerToRecord(o.Customer()),
		Items:     records,
	}
}

func ItemToRecord(item order.Item) ports.OrderItemRecord {
	return ports.OrderItemRecord{
		ID:        item.ID().Bytes(),
		ProductID: item.Product().ID().Bytes(),
		UnitPrice: item.Product().Price().Decimal(),
		Quantity:  item.Quantity().Int(),
		Note:      item.Note(),
		Value:     item.Value().Decimal(),
	}
}

// OrderFromRecord rebuilds an order. Item values are recomputed from the
// captured unit price and quantity; the stored value is not trusted. A record
// that fails validation is reported as an errs.CorruptRecordError.
func OrderFromRecord(r ports.OrderRecord) (*order.Order, error) {
	o, err := restoreOrder(r)
	if err != nil {
		return nil, errs.NewCorruptRecordError("order", r.ID, err)
	}
	return o, nil
}

func restoreOrder(r ports.OrderRecord) (*order.Order, error) {
	id, err := kernel.UUIDFrom(r.ID)
	if err != nil {
		return nil, err
	}

	c, err := restoreCustomer(r.Customer)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", r.Customer.ID, err)
	}

	items := make([]order.Item, 0, len(r.Items))
	var itemErrs []error
	for _, ir := range r.Items {
		item, err := restoreItem(ir)
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("item %s: %w", ir.ID, err))
			continue
		}
		items = append(items, item)
	}
	if err = errors.Join(itemErrs...); err != nil {
		return nil, err
	}

	createdAt, err := order.RestoreCreatedAt(r.CreatedAt)
	if err != nil {
		return nil, err
	}

	status, err := order.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, createdAt, status, c, items)
}

func restoreItem(r ports.OrderItemRecord) (order.Item, error) {
	id, err := kernel.UUIDFrom(r.ID)
	if err != nil {
		return order.Item{}, err
	}

	p, err := productFrom(r.ProductID, r.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(id, p, r.Quantity, r.Note)
}

// ProductFromRecord builds the domain projection of a catalog product. The
// price is rounded half away from zero to cents, the precision orders are
// stored with, so the captured price never changes on reload.
func ProductFromRecord(r ports.ProductRecord) (*product.Product, error) {
	return productFrom(r.ID, r.Price.Round(2))
}

func productFrom(rawID uuid.UUID, price decimal.Decimal) (*product.Product, error) {
	id, err := kernel.UUIDFrom(rawID)
	if err != nil {
		return nil, err
	}
	money, err := kernel.NewMoney(price)
	if err != nil {
		return nil, err
	}
	return product.NewProduct(id, money)
}

// PaymentRequestFromOrder builds the payload sent to the payment provider.
func PaymentRequestFromOrder(o *order.Order) ports.PaymentRequest {
	items := o.Items()
	payload := make([]ports.PaymentItem, 0, len(items))
	for _, item := range items {
		payload = append(payload, ports.PaymentItem{
			ItemID: item.ID().String(),
			Value:  item.Value().Decimal(),
		})
	}

	c := o.Customer()
	return ports.PaymentRequest{
		OrderID: o.ID().String(),
		Customer: ports.PaymentCustomer{
			ID:    c.ID().String(),
			Name:  c.Name().String(),
			Email: c.Email().String(),
		},
		Items: payload,
	}
}
