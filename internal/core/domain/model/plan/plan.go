// Package plan provides the subscription plan entity and its duration semantics.
// Plans are owned by the catalog collaborator and are read-only inputs here: the
// engine resolves a plan's duration descriptor into the calendar span that turns a
// subscription's start date into its end date. A plan referenced by a live
// subscription is treated as immutable; catalog edits never retroactively change
// already computed end dates.
package plan

import (
	"errors"
	"strings"
	"time"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/errs"
	"subscriptions/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a plan without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDurationIsRequired is returned when attempting to create a plan without a duration descriptor.
	ErrDurationIsRequired = errs.NewValueIsRequiredError("duration")
	// ErrPriceIsInvalid is returned when attempting to create a plan with a negative price.
	ErrPriceIsInvalid = errs.NewValueIsInvalidError("price")
	// ErrPlanIsNotConstructed is returned when using an improperly initialized Plan.
	ErrPlanIsNotConstructed = errors.New("Plan must be created via NewPlan or RestorePlan constructor")
)

// Plan represents a named subscription plan with a price and a duration descriptor.
//
// The duration descriptor is free text maintained by the catalog ("daily",
// "weekly", "monthly", with arbitrary casing and surrounding words); Span resolves
// it by case-insensitive substring matching rather than an enum so catalog entries
// like "Monthly premium" keep working. Unrecognized descriptors fall back to one
// month.
type Plan struct {
	// id uniquely identifies the plan
	id kernel.UUID
	// name is the human-readable plan name
	name string
	// priceCents is the plan price in integer minor units
	priceCents int64
	// duration is the free-text duration descriptor
	duration string
	// guard ensures the plan was properly constructed
	guard guard.ConstructorGuard
}

// NewPlan creates a new Plan with the specified parameters.
//
// Validation rules:
//   - id must be a valid UUID
//   - name and duration must be non-empty
//   - priceCents must not be negative
//
// All violations are aggregated into one joined error.
func NewPlan(id kernel.UUID, name string, priceCents int64, duration string) (*Plan, error) {
	p := &Plan{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPriceCents(priceCents),
		p.setDuration(duration),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePlan reconstructs a Plan from persistent storage.
// It applies the same validation as NewPlan.
func RestorePlan(id kernel.UUID, name string, priceCents int64, duration string) (*Plan, error) {
	return NewPlan(id, name, priceCents, duration)
}

// Validate ensures the Plan instance was properly constructed through a constructor.
func (p *Plan) Validate() error {
	if p == nil {
		return ErrPlanIsNotConstructed
	}
	return p.guard.Validate(ErrPlanIsNotConstructed)
}

// ID returns the plan's unique identifier.
func (p *Plan) ID() kernel.UUID {
	return p.id
}

// Name returns the human-readable plan name.
func (p *Plan) Name() string {
	return p.name
}

// PriceCents returns the plan price in integer minor units.
func (p *Plan) PriceCents() int64 {
	return p.priceCents
}

// Duration returns the free-text duration descriptor.
func (p *Plan) Duration() string {
	return p.duration
}

// Span resolves the plan's duration descriptor into a calendar span and returns
// the instant one span after from.
//
// Resolution is case-insensitive substring matching on the descriptor:
//   - contains "daily"   -> from + 1 day
//   - contains "weekly"  -> from + 7 days
//   - contains "monthly" -> from + 1 month
//   - anything else      -> from + 1 month
//
// Spans are calendar-based (time.AddDate), so a monthly span from Jan 31 follows
// Go's normalization rules rather than a fixed number of hours.
func (p *Plan) Span(from time.Time) time.Time {
	descriptor := strings.ToLower(p.duration)

	switch {
	case strings.Contains(descriptor, "daily"):
		return from.AddDate(0, 0, 1)
	case strings.Contains(descriptor, "weekly"):
		return from.AddDate(0, 0, 7)
	case strings.Contains(descriptor, "monthly"):
		return from.AddDate(0, 1, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

func (p *Plan) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Plan) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Plan) setPriceCents(priceCents int64) error {
	if priceCents < 0 {
		return ErrPriceIsInvalid
	}
	p.priceCents = priceCents
	return nil
}

func (p *Plan) setDuration(duration string) error {
	if duration == "" {
		return ErrDurationIsRequired
	}
	p.duration = duration
	return nil
}
