package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewSubscription is the request body for creating a subscription.
type NewSubscription struct {
	CustomerID uuid.UUID `json:"customer_id"`
	PlanID     uuid.UUID `json:"plan_id"`
}

// SubscriptionCreated is the response body for a created subscription.
type SubscriptionCreated struct {
	ID uuid.UUID `json:"id"`
}

// PauseWindow is one entry of a subscription's pause history.
// An open pause has no resume date.
type PauseWindow struct {
	PauseDate  time.Time  `json:"pause_date"`
	ResumeDate *time.Time `json:"resume_date,omitempty"`
}

// CustomerSubscription is the response body for a customer's subscription view.
type CustomerSubscription struct {
	ID               uuid.UUID     `json:"id"`
	PlanID           uuid.UUID     `json:"plan_id"`
	PlanName         string        `json:"plan_name"`
	Status           string        `json:"status"`
	StartDate        time.Time     `json:"start_date"`
	EndDate          time.Time     `json:"end_date"`
	NextDeliveryDate *time.Time    `json:"next_delivery_date,omitempty"`
	PauseHistory     []PauseWindow `json:"pause_history"`
}

// PendingDelivery is one pending ledger entry in the delivery schedule view.
type PendingDelivery struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	AgentID      *uuid.UUID `json:"agent_id,omitempty"`
	AgentName    *string    `json:"agent_name,omitempty"`
	DeliveryDate time.Time  `json:"delivery_date"`
	Description  string     `json:"description"`
	IsRecurring  bool       `json:"is_recurring"`
}

// Agent is one assignable agent in the rotation pool view.
type Agent struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
