package gateways

import (
	"context"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
)

type CustomerGateway struct {
	dataSource ports.CustomerDataSource
}

func NewCustomerGateway(dataSource ports.CustomerDataSource) *CustomerGateway {
	return &CustomerGateway{dataSource: dataSource}
}

var _ ports.CustomerGateway = (*CustomerGateway)(nil)

func (g *CustomerGateway) Register(ctx context.Context, c *customer.Customer) (bool, error) {
	return g.dataSource.InsertCustomer(ctx, CustomerToRecord(c))
}

func (g *CustomerGateway) FindByCpf(ctx context.Context, cpf customer.Cpf) (*customer.Customer, error) {
	return g.convert(g.dataSource.FindCustomerByCpf(ctx, cpf.String()))
}

func (g *CustomerGateway) FindByEmail(ctx context.Context, email customer.Email) (*customer.Customer, error) {
	return g.convert(g.dataSource.FindCustomerByEmail(ctx, email.String()))
}

func (g *CustomerGateway) FindByID(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return g.convert(g.dataSource.FindCustomerByID(ctx, id.Bytes()))
}

func (g *CustomerGateway) convert(record *ports.CustomerRecord, err error) (*customer.Customer, error) {
	if err != nil || record == nil {
		return nil, err
	}
	return CustomerFromRecord(*record)
}
