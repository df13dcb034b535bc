package subscriptionrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/subscription"
	"subscriptions/internal/pkg/errs"
)

// GormSubscriptionRepository implements SubscriptionRepository using GORM.
type GormSubscriptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSubscriptionRepository creates a new GORM subscription repository.
func NewGormSubscriptionRepository(db *gorm.DB, tracker aggregateTracker) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new subscription to the database.
func (r *GormSubscriptionRepository) Add(ctx context.Context, aggregate *subscription.Subscription) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing subscription with its pause history to the database.
func (r *GormSubscriptionRepository) Update(ctx context.Context, aggregate *subscription.Subscription) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update the pause rows
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a subscription by ID with its pause history.
// The row stays locked until the surrounding transaction ends, serializing
// concurrent state changes on the same subscription.
func (r *GormSubscriptionRepository) Get(ctx context.Context, id kernel.UUID) (*subscription.Subscription, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubscriptionDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Preload("Pauses").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subscription", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves the customer's current subscription, locked like Get.
// When several rows exist the most recently started one is returned.
func (r *GormSubscriptionRepository) GetByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
) (*subscription.Subscription, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto SubscriptionDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Preload("Pauses").
		Order("start_date DESC").
		First(&dto, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subscription by customer", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveEndedBy retrieves all active subscriptions whose end date is at or
// before the given moment. Rows are locked so the expiry sweep does not race
// with customer actions on the same subscription.
func (r *GormSubscriptionRepository) GetAllActiveEndedBy(
	ctx context.Context,
	moment time.Time,
) ([]*subscription.Subscription, error) {
	var dtos []SubscriptionDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Preload("Pauses").
		Where("status = ? AND end_date <= ?", int(subscription.Active), moment).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	aggregates := make([]*subscription.Subscription, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, s)
	}

	return aggregates, nil
}
