// Package productapi reads products from the catalog service.
package productapi

import (
	"context"
	"net/http"

	"orders/internal/adapters/out/httpclient"
	"orders/internal/core/application/result"
	"orders/internal/core/ports"

	"github.com/google/uuid"
)

var _ ports.ProductAPI = (*Client)(nil)

type Client struct {
	executor *httpclient.Executor
}

func NewClient(executor *httpclient.Executor) *Client {
	return &Client{executor: executor}
}

// GetProduct calls GET /products/{id}. A 404 is a logical failure.
func (c *Client) GetProduct(ctx context.Context, id uuid.UUID) result.Result[ports.ProductRecord] {
	return httpclient.Execute[ports.ProductRecord](ctx, c.executor, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/products/" + id.String(),
	})
}
