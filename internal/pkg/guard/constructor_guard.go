// Package guard provides the constructor-guard pattern used by commands, queries,
// and domain objects to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object was not
// created through its constructor and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a struct and
// set it via NewConstructorGuard inside the constructor; a zero-value struct will then
// fail Validate, which distinguishes constructed instances from accidental zero values.
//
// Example:
//
//	type PauseSubscriptionCommand struct {
//	    subscriptionID kernel.UUID
//	    guard          guard.ConstructorGuard
//	}
//
//	func NewPauseSubscriptionCommand(id kernel.UUID) (PauseSubscriptionCommand, error) {
//	    ...
//	    return PauseSubscriptionCommand{subscriptionID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PauseSubscriptionCommand) Validate() error {
//	    return c.guard.Validate(ErrPauseSubscriptionCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}

	if validationError == nil {
		return ErrDefaultConstructorGuard
	}

	return validationError
}
