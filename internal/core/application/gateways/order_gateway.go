package gateways

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

type OrderGateway struct {
	dataSource ports.OrderDataSource
}

func NewOrderGateway(dataSource ports.OrderDataSource) *OrderGateway {
	return &OrderGateway{dataSource: dataSource}
}

var _ ports.OrderGateway = (*OrderGateway)(nil)

func (g *OrderGateway) Register(ctx context.Context, o *order.Order) (bool, error) {
	return g.dataSource.InsertOrder(ctx, OrderToRecord(o))
}

func (g *OrderGateway) FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	record, err := g.dataSource.FindOrderByID(ctx, id.Bytes())
	if err != nil || record == nil {
		return nil, err
	}
	return OrderFromRecord(*record)
}

func (g *OrderGateway) FindByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	return convertOrders(g.dataSource.FindOrdersByCustomerID(ctx, customerID.Bytes()))
}

func (g *OrderGateway) FindByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	codes := make([]int, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, s.Code())
	}
	return convertOrders(g.dataSource.FindOrdersByStatus(ctx, codes...))
}

func (g *OrderGateway) UpdateStatus(ctx context.Context, o *order.Order) (bool, error) {
	return g.dataSource.UpdateOrderStatus(ctx, o.ID().Bytes(), o.Status().Code())
}

func (g *OrderGateway) UpdateItems(ctx context.Context, o *order.Order) (bool, error) {
	record := OrderToRecord(o)
	return g.dataSource.ReplaceOrderItems(ctx, record.ID, record.Items)
}

func convertOrders(records []ports.OrderRecord, err error) ([]*order.Order, error) {
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(records))
	for _, r := range records {
		o, err := OrderFromRecord(r)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
