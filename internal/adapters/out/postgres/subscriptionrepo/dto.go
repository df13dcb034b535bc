// Package subscriptionrepo provides data transfer objects and mapping functions
// for subscription persistence. This package implements the repository pattern
// for the subscription domain aggregate, handling the conversion between domain
// entities and database representations.
package subscriptionrepo

import (
	"time"

	"github.com/google/uuid"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/subscription"
)

// SubscriptionDTO represents the database structure for persisting subscription
// aggregates. Pause history rows are kept in a child table linked by foreign key.
type SubscriptionDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartDate        time.Time  `gorm:"not null"`
	EndDate          time.Time  `gorm:"not null;index"`
	Status           int        `gorm:"type:int;not null;index"`
	NextDeliveryDate *time.Time
	PausedAt         *time.Time
	ResumedAt        *time.Time
	Pauses           []PauseDTO `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for subscription entities.
// Overrides GORM's default naming convention to use "subscriptions".
func (SubscriptionDTO) TableName() string {
	return "subscriptions"
}

// PauseDTO represents the database structure for persisting pause history rows.
// Links to the subscription via foreign key. An open pause has a NULL resume date.
type PauseDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SubscriptionID uuid.UUID  `gorm:"type:uuid;not null;index"`
	PauseDate      time.Time  `gorm:"not null"`
	ResumeDate     *time.Time
}

// TableName specifies the database table name for pause history entities.
// Overrides GORM's default naming convention to use "subscription_pauses".
func (PauseDTO) TableName() string {
	return "subscription_pauses"
}

// fromDomain converts a subscription domain aggregate to its database representation.
// Maps all aggregate state including the full pause history.
func fromDomain(aggregate *subscription.Subscription) SubscriptionDTO {
	subscriptionID := aggregate.ID().Bytes()
	pauses := make([]PauseDTO, 0, len(aggregate.Pauses()))

	for _, p := range aggregate.Pauses() {
		pauses = append(pauses, PauseDTO{
			ID:             p.ID().Bytes(),
			SubscriptionID: subscriptionID,
			PauseDate:      p.PauseDate(),
			ResumeDate:     p.ResumeDate(),
		})
	}

	return SubscriptionDTO{
		ID:               subscriptionID,
		CustomerID:       aggregate.CustomerID().Bytes(),
		PlanID:           aggregate.PlanID().Bytes(),
		StartDate:        aggregate.StartDate(),
		EndDate:          aggregate.EndDate(),
		Status:           int(aggregate.Status()),
		NextDeliveryDate: aggregate.NextDeliveryDate(),
		PausedAt:         aggregate.PausedAt(),
		ResumedAt:        aggregate.ResumedAt(),
		Pauses:           pauses,
	}
}

// toDomain converts a database DTO to a subscription domain aggregate.
// Reconstructs the complete aggregate including its pause history using
// RestoreSubscription, which re-checks the aggregate invariants.
func toDomain(dto SubscriptionDTO) (*subscription.Subscription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	planID, err := kernel.UUIDFromBytes(dto.PlanID[:])
	if err != nil {
		return nil, err
	}

	pauses := make([]*subscription.Pause, 0, len(dto.Pauses))
	for _, pauseDto := range dto.Pauses {
		p, pauseErr := pauseToDomain(pauseDto)
		if pauseErr != nil {
			return nil, pauseErr
		}
		pauses = append(pauses, p)
	}

	return subscription.RestoreSubscription(
		id,
		customerID,
		planID,
		dto.StartDate,
		dto.EndDate,
		subscription.Status(dto.Status),
		dto.NextDeliveryDate,
		dto.PausedAt,
		dto.ResumedAt,
		pauses,
	)
}

// pauseToDomain converts a pause history DTO to a domain entity.
func pauseToDomain(dto PauseDTO) (*subscription.Pause, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return subscription.RestorePause(id, dto.PauseDate, dto.ResumeDate)
}
