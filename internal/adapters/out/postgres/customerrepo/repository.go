package customerrepo

import (
	"context"
	"errors"

	"orders/internal/adapters/out/postgres"
	"orders/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ports.CustomerDataSource = (*GormCustomerDataSource)(nil)

// GormCustomerDataSource implements ports.CustomerDataSource using GORM.
type GormCustomerDataSource struct {
	db *gorm.DB
}

func NewGormCustomerDataSource(db *gorm.DB) *GormCustomerDataSource {
	return &GormCustomerDataSource{db: db}
}

// InsertCustomer fails with errs.ConflictError when the cpf and email pair is taken.
func (r *GormCustomerDataSource) InsertCustomer(ctx context.Context, record ports.CustomerRecord) (bool, error) {
	dto := FromRecord(record)
	res := r.db.WithContext(ctx).Create(&dto)
	if res.Error != nil {
		return false, postgres.TranslateError("customer", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *GormCustomerDataSource) FindCustomerByCpf(ctx context.Context, cpf string) (*ports.CustomerRecord, error) {
	return r.first(ctx, "cpf = ?", cpf)
}

func (r *GormCustomerDataSource) FindCustomerByEmail(ctx context.Context, email string) (*ports.CustomerRecord, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *GormCustomerDataSource) FindCustomerByID(ctx context.Context, id uuid.UUID) (*ports.CustomerRecord, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormCustomerDataSource) first(ctx context.Context, query string, arg any) (*ports.CustomerRecord, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).Where(query, arg).Order("id").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	record := dto.ToRecord()
	return &record, nil
}
