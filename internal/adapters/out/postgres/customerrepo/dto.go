// Package customerrepo stores customers in Postgres through gorm.
package customerrepo

import (
	"orders/internal/core/ports"

	"github.com/google/uuid"
)

// CustomerDTO is the row shape of the customers table.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"size:255;not null"`
	Email string    `gorm:"size:255;not null;uniqueIndex:ux_customers_cpf_email,priority:2"`
	Cpf   string    `gorm:"type:char(11);not null;uniqueIndex:ux_customers_cpf_email,priority:1"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func FromRecord(record ports.CustomerRecord) CustomerDTO {
	return CustomerDTO{
		ID:    record.ID,
		Name:  record.Name,
		Email: record.Email,
		Cpf:   record.Cpf,
	}
}

func (dto CustomerDTO) ToRecord() ports.CustomerRecord {
	return ports.CustomerRecord{
		ID:    dto.ID,
		Name:  dto.Name,
		Email: dto.Email,
		Cpf:   dto.Cpf,
	}
}
