// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and the relational
// schema of the orders and order_lines tables.
package orderrepo

import (
	"sort"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The monetary total is stored as numeric so sums computed in
// SQL agree exactly with totals computed by the aggregate.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;index"`
	Date          time.Time       `gorm:"index"`
	Total         decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status        int             `gorm:"index"`
	PaymentMethod int
	PaymentStatus int
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one priced order line. Lines are owned by their
// order and replaced wholesale whenever the aggregate's line set changes.
// Position keys the line within its order, so the stored sequence matches
// the aggregate's and the same item may appear on several lines.
type OrderLineDTO struct {
	OrderID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position int             `gorm:"primaryKey"`
	ItemID   uuid.UUID       `gorm:"type:uuid;index"`
	Name     string          `gorm:"size:30"`
	Price    decimal.Decimal `gorm:"type:numeric(14,2)"`
	Quantity int
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation,
// lines included.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for i, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:  aggregate.ID().Bytes(),
			Position: i,
			ItemID:   line.ItemID().Bytes(),
			Name:     line.Name(),
			Price:    line.Price().Decimal(),
			Quantity: line.Quantity(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		Date:          aggregate.Date(),
		Total:         aggregate.Total().Decimal(),
		Status:        int(aggregate.Status()),
		PaymentMethod: int(aggregate.PaymentMethod()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		Lines:         lineDTOs,
	}
}

// toDomain converts a database DTO to an order aggregate using
// RestoreOrder, trusting the stored total.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Lines, func(i, j int) bool {
		return dto.Lines[i].Position < dto.Lines[j].Position
	})

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		itemID, lineErr := kernel.UUIDFromBytes(lineDTO.ItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		price, lineErr := kernel.NewMoneyFromDecimal(lineDTO.Price)
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLine(itemID, lineDTO.Name, price, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	total, err := kernel.NewMoneyFromDecimal(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		lines,
		dto.Date,
		total,
		order.Status(dto.Status),
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
	)
}
