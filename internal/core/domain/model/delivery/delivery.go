// Package delivery provides the delivery ledger entry aggregate.
//
// A ledger entry is one scheduled or attempted delivery tied to a customer and,
// once assigned, an agent. The subscription engine creates Pending entries when
// a subscription starts or resumes and deletes its own still-Pending entries
// when one pauses; entries that progressed past Pending belong to the delivery
// workflow and are never touched by the engine.
package delivery

import (
	"errors"
	"time"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/errs"
	"subscriptions/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New(
		"Delivery must be created via NewDelivery or RestoreDelivery constructor",
	)
	// ErrDescriptionIsRequired is returned when attempting to create a delivery without an item description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrDeliveryDateIsRequired is returned when attempting to create a delivery without a delivery date.
	ErrDeliveryDateIsRequired = errs.NewValueIsRequiredError("deliveryDate")
	// ErrAgentIsRequired is returned when starting a delivery that has no assigned agent.
	ErrAgentIsRequired = errs.NewValueIsRequiredError("agent must be assigned before the delivery starts")
)

// Delivery represents one delivery ledger entry.
//
// The agent assignment is advisory: an entry may be created unassigned when no
// agent currently accepts assignments, so the schedule is never blocked by a
// temporary absence of agents.
type Delivery struct {
	// id uniquely identifies the ledger entry
	id kernel.UUID

	// customerID is the customer the delivery is for
	customerID kernel.UUID

	// agentID is the assigned agent (nil until assigned)
	agentID *kernel.UUID

	// deliveryDate is the scheduled date of the delivery
	deliveryDate time.Time

	// status is the current state in the delivery lifecycle
	status Status

	// description names the delivered item(s)
	description string

	// isRecurring marks entries scheduled by the subscription engine
	isRecurring bool

	// guard ensures the delivery was properly constructed
	guard guard.ConstructorGuard
}

// NewDelivery creates a Pending ledger entry.
//
// Parameters:
//   - id: unique identifier for the entry
//   - customerID: the customer the delivery is for
//   - agentID: the assigned agent, or nil for an unassigned entry
//   - deliveryDate: the scheduled delivery date (must be non-zero)
//   - description: the item description (must be non-empty)
//   - isRecurring: true for entries scheduled by the subscription engine
func NewDelivery(
	id, customerID kernel.UUID,
	agentID *kernel.UUID,
	deliveryDate time.Time,
	description string,
	isRecurring bool,
) (*Delivery, error) {
	d := &Delivery{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCustomerID(customerID),
		d.setAgentID(agentID),
		d.setDeliveryDate(deliveryDate),
		d.setDescription(description),
	); err != nil {
		return nil, err
	}

	d.isRecurring = isRecurring
	return d, nil
}

// RestoreDelivery reconstructs a ledger entry from persistent storage.
func RestoreDelivery(
	id, customerID kernel.UUID,
	agentID *kernel.UUID,
	deliveryDate time.Time,
	status Status,
	description string,
	isRecurring bool,
) (*Delivery, error) {
	d, err := NewDelivery(id, customerID, agentID, deliveryDate, description, isRecurring)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the ledger entry's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// CustomerID returns the customer the delivery is for.
func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

// Agent returns the assigned agent's ID, or nil if unassigned.
func (d *Delivery) Agent() *kernel.UUID {
	return d.agentID
}

// DeliveryDate returns the scheduled delivery date.
func (d *Delivery) DeliveryDate() time.Time {
	return d.deliveryDate
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// Description returns the item description.
func (d *Delivery) Description() string {
	return d.description
}

// IsRecurring reports whether the entry was scheduled by the subscription engine.
func (d *Delivery) IsRecurring() bool {
	return d.isRecurring
}

// Assign assigns or reassigns the delivery to an agent.
// Only Pending deliveries can be (re)assigned.
func (d *Delivery) Assign(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if d.status != Pending {
		return errs.NewInvalidTransitionError("assign", d.status.String())
	}

	d.agentID = &agentID
	return nil
}

// Start marks the delivery as picked up by its agent.
// The delivery must be Pending and have an assigned agent.
func (d *Delivery) Start() error {
	if d.agentID == nil {
		return ErrAgentIsRequired
	}

	newStatus, err := d.status.Start()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Complete marks the delivery as delivered.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Fail marks the delivery attempt as failed.
func (d *Delivery) Fail() error {
	newStatus, err := d.status.Fail()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Cancel calls the delivery off before pickup.
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	d.customerID = customerID
	return nil
}

func (d *Delivery) setAgentID(agentID *kernel.UUID) error {
	if agentID == nil {
		return nil
	}
	if err := agentID.Validate(); err != nil {
		return err
	}
	d.agentID = agentID
	return nil
}

func (d *Delivery) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return ErrDeliveryDateIsRequired
	}
	d.deliveryDate = deliveryDate
	return nil
}

func (d *Delivery) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	d.description = description
	return nil
}
