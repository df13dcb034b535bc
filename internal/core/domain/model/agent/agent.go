// Package agent provides the delivery agent entity as seen by the subscription
// engine. The agent directory is owned by another collaborator; this core only
// reads agents to pick assignment targets for newly scheduled deliveries and to
// expose availability/identity to the live-location channel.
package agent

import (
	"errors"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/errs"
	"subscriptions/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent constructor")
)

// Agent represents a delivery worker eligible for assignment.
// Agents that opted out of assignment notifications are skipped by the
// round-robin policy but remain visible to the live-location collaborator.
type Agent struct {
	// id uniquely identifies the agent
	id kernel.UUID
	// name is the human-readable agent name
	name string
	// acceptsAssignment marks whether the agent takes new delivery assignments
	acceptsAssignment bool
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewAgent creates a new Agent with the specified parameters.
// The agent ID must be a valid UUID and the name must be non-empty.
func NewAgent(id kernel.UUID, name string, acceptsAssignment bool) (*Agent, error) {
	a := &Agent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
	); err != nil {
		return nil, err
	}

	a.acceptsAssignment = acceptsAssignment
	return a, nil
}

// RestoreAgent reconstructs an Agent from persistent storage.
// It applies the same validation as NewAgent.
func RestoreAgent(id kernel.UUID, name string, acceptsAssignment bool) (*Agent, error) {
	return NewAgent(id, name, acceptsAssignment)
}

// Validate ensures the Agent instance was properly constructed through a constructor.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by their unique identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the human-readable agent name.
func (a *Agent) Name() string {
	return a.name
}

// AcceptsAssignment reports whether the agent takes new delivery assignments.
func (a *Agent) AcceptsAssignment() bool {
	return a.acceptsAssignment
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}
