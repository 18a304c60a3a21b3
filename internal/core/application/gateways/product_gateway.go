package gateways

import (
	"context"

	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/ports"
)

type ProductGateway struct {
	api ports.ProductAPI
}

func NewProductGateway(api ports.ProductAPI) *ProductGateway {
	return &ProductGateway{api: api}
}

var _ ports.ProductGateway = (*ProductGateway)(nil)

// Fetch passes catalog failures through. A catalog record that does not form
// a valid product is an internal failure.
func (g *ProductGateway) Fetch(ctx context.Context, id kernel.UUID) result.Result[*product.Product] {
	res := g.api.GetProduct(ctx, id.Bytes())
	if !res.IsSuccess() {
		return result.Recast[ports.ProductRecord, *product.Product](res)
	}

	p, err := ProductFromRecord(res.Data())
	if err != nil {
		return result.InternalFailure[*product.Product](err)
	}
	return result.Success(p)
}
