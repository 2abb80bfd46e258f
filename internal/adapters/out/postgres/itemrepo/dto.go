// Package itemrepo persists the item catalog. The catalog is the
// authoritative source of item names and prices for order resolution.
package itemrepo

import (
	"foodorder/internal/core/domain/model/item"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for catalog items.
type ItemDTO struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name  string          `gorm:"size:30"`
	Price decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(aggregate *item.Item) ItemDTO {
	return ItemDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Price: aggregate.Price().Decimal(),
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, dto.Name, price)
}
