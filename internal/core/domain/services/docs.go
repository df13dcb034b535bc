// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the subscription delivery system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DeliveryDispatcher: A domain service for assigning agents to delivery ledger
//     entries using round-robin rotation
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
