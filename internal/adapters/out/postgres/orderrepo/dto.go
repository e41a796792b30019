// Package orderrepo persists order aggregates in the orders table.
package orderrepo

import (
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. current_process_id is a weak reference: it is
// not a foreign key and may point at a deleted process.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNo          string     `gorm:"size:30;not null;uniqueIndex"`
	ProductName      string     `gorm:"size:200;not null"`
	Quantity         int        `gorm:"not null;check:chk_orders_quantity,quantity >= 0"`
	DueDate          time.Time  `gorm:"type:date;not null;index"`
	CurrentProcessID *uuid.UUID `gorm:"type:uuid;index"`
	Status           int        `gorm:"not null;index"`
	CreatedAt        time.Time  `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var currentProcessID *uuid.UUID
	if id := o.CurrentProcess(); id != nil {
		raw := id.Bytes()
		currentProcessID = &raw
	}

	return OrderDTO{
		ID:               o.ID().Bytes(),
		OrderNo:          o.OrderNo(),
		ProductName:      o.ProductName(),
		Quantity:         o.Quantity(),
		DueDate:          o.DueDate(),
		CurrentProcessID: currentProcessID,
		Status:           int(o.Status()),
		CreatedAt:        o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentProcessID *kernel.UUID
	if dto.CurrentProcessID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.CurrentProcessID)[:])
		if pErr != nil {
			return nil, pErr
		}
		currentProcessID = &pID
	}

	return order.RestoreOrder(
		id,
		dto.OrderNo,
		dto.ProductName,
		dto.Quantity,
		dto.DueDate,
		currentProcessID,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
