// Package orderrepo stores orders and their items in Postgres through gorm.
package orderrepo

import (
	"time"

	"orders/internal/adapters/out/postgres/customerrepo"
	"orders/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row shape of the orders table. Customer and Items are
// loaded through preloads and never written by cascade from here.
type OrderDTO struct {
	ID         uuid.UUID                `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time                `gorm:"not null"`
	Status     int                      `gorm:"type:smallint;not null;index:ix_orders_status"`
	CustomerID uuid.UUID                `gorm:"type:uuid;not null;index:ix_orders_customer_id"`
	Customer   customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID"`
	Items      []ItemDTO                `gorm:"foreignKey:OrderID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the row shape of the order_items table. Position keeps the
// order in which items were submitted.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index:ix_order_items_order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	Note      string          `gorm:"size:500;not null"`
	Value     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position  int             `gorm:"not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromRecord(record ports.OrderRecord) OrderDTO {
	items := make([]ItemDTO, 0, len(record.Items))
	for i, item := range record.Items {
		items = append(items, itemFromRecord(record.ID, i, item))
	}

	return OrderDTO{
		ID:         record.ID,
		CreatedAt:  record.CreatedAt.UTC(),
		Status:     record.Status,
		CustomerID: record.Customer.ID,
		Items:      items,
	}
}

func itemFromRecord(orderID uuid.UUID, position int, item ports.OrderItemRecord) ItemDTO {
	return ItemDTO{
		ID:        item.ID,
		OrderID:   orderID,
		ProductID: item.ProductID,
		UnitPrice: item.UnitPrice,
		Quantity:  item.Quantity,
		Note:      item.Note,
		Value:     item.Value,
		Position:  position,
	}
}

func toRecord(dto OrderDTO) ports.OrderRecord {
	items := make([]ports.OrderItemRecord, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, ports.OrderItemRecord{
			ID:        item.ID,
			ProductID: item.ProductID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Note:      item.Note,
			Value:     item.Value,
		})
	}

	customer := dto.Customer.ToRecord()
	customer.ID = dto.CustomerID

	return ports.OrderRecord{
		ID:        dto.ID,
		CreatedAt: dto.CreatedAt,
		Status:    dto.Status,
		Customer:  customer,
		Items:     items,
	}
}
