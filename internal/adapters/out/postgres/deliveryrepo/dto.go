// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery ledger persistence. This package implements the repository pattern
// for the delivery domain aggregate, handling the conversion between domain
// entities and database representations.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"

	"subscriptions/internal/core/domain/model/delivery"
	"subscriptions/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting delivery ledger
// entries. CreatedAt is set by GORM on insert and orders the ledger for the
// round-robin rotation seed.
type DeliveryDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	AgentID      *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryDate time.Time  `gorm:"not null;index"`
	Status       int        `gorm:"type:int;not null;index"`
	Description  string     `gorm:"type:varchar(255);not null"`
	IsRecurring  bool       `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
// Maps all entry attributes including the optional agent assignment.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return DeliveryDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		AgentID:      agentID,
		DeliveryDate: aggregate.DeliveryDate(),
		Status:       int(aggregate.Status()),
		Description:  aggregate.Description(),
		IsRecurring:  aggregate.IsRecurring(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete entry including status and agent assignment using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	return delivery.RestoreDelivery(
		id,
		customerID,
		agentID,
		dto.DeliveryDate,
		delivery.Status(dto.Status),
		dto.Description,
		dto.IsRecurring,
	)
}
