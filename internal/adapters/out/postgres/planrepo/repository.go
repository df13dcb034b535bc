package planrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/plan"
	"subscriptions/internal/pkg/errs"
)

// GormPlanRepository implements PlanRepository using GORM.
type GormPlanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPlanRepository creates a new GORM plan repository.
func NewGormPlanRepository(db *gorm.DB, tracker aggregateTracker) *GormPlanRepository {
	return &GormPlanRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new plan to the database.
func (r *GormPlanRepository) Add(ctx context.Context, aggregate *plan.Plan) error {
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

// Get retrieves a plan by ID.
func (r *GormPlanRepository) Get(ctx context.Context, id kernel.UUID) (*plan.Plan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PlanDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("plan", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all plans ordered by name.
func (r *GormPlanRepository) GetAll(ctx context.Context) ([]*plan.Plan, error) {
	var dtos []PlanDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	plans := make([]*plan.Plan, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	return plans, nil
}
