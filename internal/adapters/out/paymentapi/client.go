// Package paymentapi requests payments from the payment provider.
package paymentapi

import (
	"context"
	"net/http"

	"orders/internal/adapters/out/httpclient"
	"orders/internal/core/application/result"
	"orders/internal/core/ports"
)

var _ ports.PaymentAPI = (*Client)(nil)

type Client struct {
	executor *httpclient.Executor
}

func NewClient(executor *httpclient.Executor) *Client {
	return &Client{executor: executor}
}

// CreatePayment calls POST /payments and returns the provider's receipt.
func (c *Client) CreatePayment(ctx context.Context, request ports.PaymentRequest) result.Result[ports.PaymentReceipt] {
	return httpclient.Execute[ports.PaymentReceipt](ctx, c.executor, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/payments",
		Body:   request,
	})
}
