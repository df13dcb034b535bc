// Package planrepo provides data transfer objects and mapping functions for
// subscription plan persistence.
package planrepo

import (
	"github.com/google/uuid"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/plan"
)

// PlanDTO represents the database structure for persisting subscription plans.
// Prices are stored in cents to avoid floating point rounding.
type PlanDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	PriceCents int64     `gorm:"type:bigint;not null"`
	Duration   string    `gorm:"type:varchar(64);not null"`
}

// TableName specifies the database table name for plan entities.
// Overrides GORM's default naming convention to use "plans".
func (PlanDTO) TableName() string {
	return "plans"
}

// fromDomain converts a plan domain aggregate to its database representation.
func fromDomain(aggregate *plan.Plan) PlanDTO {
	return PlanDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		PriceCents: aggregate.PriceCents(),
		Duration:   aggregate.Duration(),
	}
}

// toDomain converts a database DTO to a plan domain aggregate using RestorePlan.
func toDomain(dto PlanDTO) (*plan.Plan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return plan.RestorePlan(id, dto.Name, dto.PriceCents, dto.Duration)
}
