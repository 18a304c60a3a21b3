package orderrepo

import (
	"context"
	"errors"

	"orders/internal/adapters/out/postgres"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.OrderDataSource = (*GormOrderDataSource)(nil)

// GormOrderDataSource implements ports.OrderDataSource using GORM.
type GormOrderDataSource struct {
	db *gorm.DB
}

func NewGormOrderDataSource(db *gorm.DB) *GormOrderDataSource {
	return &GormOrderDataSource{db: db}
}

// InsertOrder stores the order row and its items. A missing customer is a conflict.
func (r *GormOrderDataSource) InsertOrder(ctx context.Context, record ports.OrderRecord) (bool, error) {
	dto := fromRecord(record)
	res := r.db.WithContext(ctx).Omit("Customer").Create(&dto)
	if res.Error != nil {
		return false, postgres.TranslateError("order", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *GormOrderDataSource) FindOrderByID(ctx context.Context, id uuid.UUID) (*ports.OrderRecord, error) {
	var dto OrderDTO
	if err := r.preloaded(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	record := toRecord(dto)
	return &record, nil
}

func (r *GormOrderDataSource) FindOrdersByCustomerID(ctx context.Context, customerID uuid.UUID) ([]ports.OrderRecord, error) {
	return r.find(ctx, "customer_id = ?", customerID)
}

func (r *GormOrderDataSource) FindOrdersByStatus(ctx context.Context, statuses ...int) ([]ports.OrderRecord, error) {
	if len(statuses) == 0 {
		return []ports.OrderRecord{}, nil
	}
	return r.find(ctx, "status IN ?", statuses)
}

// UpdateOrderStatus reports false when no row matched id.
func (r *GormOrderDataSource) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ReplaceOrderItems updates kept rows, inserts new ones and deletes the rest.
func (r *GormOrderDataSource) ReplaceOrderItems(
	ctx context.Context,
	orderID uuid.UUID,
	items []ports.OrderItemRecord,
) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner OrderDTO
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").First(&owner, "id = ?", orderID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewConflictError("order", "order "+orderID.String()+" does not exist")
		}
		if err != nil {
			return err
		}

		var stored []uuid.UUID
		if err := tx.Model(&ItemDTO{}).Where("order_id = ?", orderID).Pluck("id", &stored).Error; err != nil {
			return err
		}
		existing := make(map[uuid.UUID]struct{}, len(stored))
		for _, id := range stored {
			existing[id] = struct{}{}
		}

		kept := make([]uuid.UUID, 0, len(items))
		for i, item := range items {
			dto := itemFromRecord(orderID, i, item)
			kept = append(kept, dto.ID)

			if _, ok := existing[dto.ID]; ok {
				if err := updateItem(tx, dto); err != nil {
					return err
				}
				continue
			}
			if err := tx.Create(&dto).Error; err != nil {
				return postgres.TranslateError("order item", err)
			}
		}

		removal := tx.Where("order_id = ?", orderID)
		if len(kept) > 0 {
			removal = removal.Where("id NOT IN ?", kept)
		}
		return removal.Delete(&ItemDTO{}).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func updateItem(tx *gorm.DB, dto ItemDTO) error {
	return tx.Model(&ItemDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"product_id": dto.ProductID,
		"unit_price": dto.UnitPrice,
		"quantity":   dto.Quantity,
		"note":       dto.Note,
		"value":      dto.Value,
		"position":   dto.Position,
	}).Error
}

func (r *GormOrderDataSource) find(ctx context.Context, query string, args ...any) ([]ports.OrderRecord, error) {
	var dtos []OrderDTO
	if err := r.preloaded(ctx).Where(query, args...).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]ports.OrderRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toRecord(dto))
	}
	return records, nil
}

func (r *GormOrderDataSource) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}
