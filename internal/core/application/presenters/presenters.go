// Package presenters shapes domain entities into the DTOs returned by use cases.
package presenters

import (
	"time"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

type CustomerDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Cpf   string `json:"cpf"`
}

type OrderItemDTO struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Note      string  `json:"note"`
	UnitPrice string `json:"unitPrice"`
	Value     string `json:"value"`
}

type OrderDTO struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Status    int            `json:"status"`
	Customer  CustomerDTO    `json:"customer"`
	Items     []OrderItemDTO `json:"items"`
	Total     string         `json:"total"`
}

// PaymentDTO is returned when an order is closed for payment. QRCode is
// empty when the payment integration is disabled.
type PaymentDTO struct {
	OrderID string `json:"orderId"`
	Total   string `json:"total"`
	Status  int    `json:"status"`
	QRCode  string `json:"qrCode"`
}

func Customer(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    c.ID().String(),
		Name:  c.Name().String(),
		Email: c.Email().String(),
		Cpf:   c.Cpf().String(),
	}
}

func Order(o *order.Order) OrderDTO {
	items := o.Items()
	dtos := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, OrderItemDTO{
			ID:        item.ID().String(),
			ProductID: item.Product().ID().String(),
			Quantity:  item.Quantity().Int(),
			Note:      item.Note(),
			UnitPrice: item.Product().Price().String(),
			Value:     item.Value().String(),
		})
	}

	return OrderDTO{
		ID:        o.ID().String(),
		CreatedAt: o.CreatedAt().Time(),
		Status:    o.Status().Code(),
		Customer:  Customer(o.Customer()),
		Items:     dtos,
		Total:     o.Total().String(),
	}
}

func Orders(orders []*order.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, Order(o))
	}
	return dtos
}

// Payment combines the closed order with the provider receipt, if any.
func Payment(o *order.Order, receipt *ports.PaymentReceipt) PaymentDTO {
	dto := PaymentDTO{
		OrderID: o.ID().String(),
		Total:   o.Total().String(),
		Status:  o.Status().Code(),
	}
	if receipt != nil {
		dto.QRCode = receipt.QRCode
	}
	return dto
}
