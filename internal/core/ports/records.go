package ports

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Records are the shapes exchanged with persistence and external APIs.
// Only the gateways convert between records and domain entities.
type (
	CustomerRecord struct {
		ID    uuid.UUID
		Name  string
		Email string
		Cpf   string
	}

	OrderRecord struct {
		ID        uuid.UUID
		CreatedAt time.Time
		Status    int
		Customer  CustomerRecord
		Items     []OrderItemRecord
	}

	OrderItemRecord struct {
		ID        uuid.UUID
		ProductID uuid.UUID
		UnitPrice decimal.Decimal
		Quantity  int
		Note      string
		Value     decimal.Decimal
	}

	// ProductRecord is the catalog representation of a product.
	ProductRecord struct {
		ID          uuid.UUID       `json:"id"`
		Category    string          `json:"category"`
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Price       decimal.Decimal `json:"price"`
	}

	// PaymentRequest is sent to the payment provider when an order is closed.
	PaymentRequest struct {
		OrderID  string          `json:"orderId"`
		Customer PaymentCustomer `json:"customer"`
		Items    []PaymentItem   `json:"items"`
	}

	PaymentCustomer struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	PaymentItem struct {
		ItemID string          `json:"itemId"`
		Value  decimal.Decimal `json:"value"`
	}

	// PaymentReceipt is the provider's answer; QRCode is shown to the customer.
	PaymentReceipt struct {
		ID     string          `json:"id"`
		QRCode string          `json:"qrCode"`
		Total  decimal.Decimal `json:"total"`
	}
)
