// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order is stored as a header row plus one row per line
// item snapshot, and is always loaded and restored as a whole aggregate.
package orderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The total is stored redundantly for reporting queries; the domain recomputes
// it from the line items on restore.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PlacedBy      string          `gorm:"type:varchar(255);not null"`
	PaymentMethod int             `gorm:"type:int;not null"`
	Status        int             `gorm:"type:int;not null;index"`
	Total         decimal.Decimal `gorm:"type:numeric;not null"`
	PlacedAt      time.Time       `gorm:"not null;index"`
	Items         []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting line item snapshots.
// Product name and unit price are frozen copies taken at placement time.
type OrderItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for line item entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the header row together with all line item snapshots.
func fromDomain(order *order.Order) OrderDTO {
	orderID := order.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(order.Items()))

	for _, item := range order.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     orderID,
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		CustomerID:    order.CustomerID().Bytes(),
		PlacedBy:      order.PlacedBy(),
		PaymentMethod: int(order.PaymentMethod()),
		Status:        int(order.Status()),
		Total:         order.Total().Amount(),
		PlacedAt:      order.PlacedAt(),
		Items:         items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, dto.PlacedBy,
		order.PaymentMethod(dto.PaymentMethod), order.Status(dto.Status),
		dto.PlacedAt, items)
}

// itemToDomain converts a line item DTO to its domain snapshot.
func itemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, dto.ProductName, dto.Quantity, unitPrice)
}
