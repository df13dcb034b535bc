package subscription

import (
	"errors"
	"time"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/errs"
	"subscriptions/internal/pkg/guard"
)

var (
	// ErrPauseIsNotConstructed is returned when using an improperly initialized Pause.
	ErrPauseIsNotConstructed = errors.New("Pause must be created via NewPause or RestorePause constructor")
	// ErrPauseAlreadyClosed is returned when closing a pause that already has a resume date.
	ErrPauseAlreadyClosed = errors.New("pause is already closed")
)

// Pause is one row of the subscription's pause-history audit trail.
// A pause with a nil resume date is "open": the subscription is currently paused
// under it. Rows are append-only; the only permitted mutation is closing the open
// row when the matching resume arrives.
type Pause struct {
	// id uniquely identifies the pause-history row
	id kernel.UUID
	// pauseDate is when the pause began
	pauseDate time.Time
	// resumeDate is when the pause ended (nil while the pause is open)
	resumeDate *time.Time
	// guard ensures the pause was properly constructed
	guard guard.ConstructorGuard
}

// NewPause creates an open pause starting at pauseDate.
func NewPause(id kernel.UUID, pauseDate time.Time) (*Pause, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if pauseDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("pauseDate")
	}

	return &Pause{
		id:        id,
		pauseDate: pauseDate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestorePause reconstructs a pause-history row from persistent storage,
// open or closed depending on resumeDate.
func RestorePause(id kernel.UUID, pauseDate time.Time, resumeDate *time.Time) (*Pause, error) {
	p, err := NewPause(id, pauseDate)
	if err != nil {
		return nil, err
	}

	p.resumeDate = resumeDate
	return p, nil
}

// Validate ensures the Pause instance was properly constructed through a constructor.
func (p *Pause) Validate() error {
	if p == nil {
		return ErrPauseIsNotConstructed
	}
	return p.guard.Validate(ErrPauseIsNotConstructed)
}

// ID returns the pause-history row's unique identifier.
func (p *Pause) ID() kernel.UUID {
	return p.id
}

// PauseDate returns when the pause began.
func (p *Pause) PauseDate() time.Time {
	return p.pauseDate
}

// ResumeDate returns when the pause ended, or nil while the pause is open.
func (p *Pause) ResumeDate() *time.Time {
	return p.resumeDate
}

// IsOpen reports whether the pause has not been closed by a resume yet.
func (p *Pause) IsOpen() bool {
	return p.resumeDate == nil
}

// close records the resume that ends this pause.
// Only the owning aggregate closes pauses; history rows are never reopened.
func (p *Pause) close(resumeDate time.Time) error {
	if !p.IsOpen() {
		return ErrPauseAlreadyClosed
	}

	p.resumeDate = &resumeDate
	return nil
}
