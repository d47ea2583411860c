// Package productrepo provides data transfer objects and mapping functions for
// product persistence, including the catalogue image stored alongside the row.
package productrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Price is stored as numeric to keep exact decimal arithmetic end to end.
type ProductDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name             string          `gorm:"type:varchar(255);not null"`
	Category         string          `gorm:"type:varchar(255);not null"`
	Price            decimal.Decimal `gorm:"type:numeric;not null"`
	Stock            int             `gorm:"type:int;not null"`
	Active           bool            `gorm:"not null"`
	Image            []byte          `gorm:"type:bytea"`
	ImageContentType string          `gorm:"type:varchar(128)"`
	CreatedAt        time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(product *product.Product) ProductDTO {
	return ProductDTO{
		ID:               product.ID().Bytes(),
		Name:             product.Name(),
		Category:         product.Category(),
		Price:            product.Price().Amount(),
		Stock:            product.Stock(),
		Active:           product.IsActive(),
		Image:            product.Image(),
		ImageContentType: product.ImageContentType(),
		CreatedAt:        product.CreatedAt(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Category, price, dto.Stock,
		dto.Active, dto.Image, dto.ImageContentType, dto.CreatedAt)
}
