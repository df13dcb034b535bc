package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/subscription"
	"subscriptions/internal/pkg/errs"
)

// GetCustomerSubscriptionQueryHandler retrieves a customer's subscription view
// from the database. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type GetCustomerSubscriptionQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerSubscriptionQueryHandler creates a handler for subscription view queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerSubscriptionQueryHandler(db *gorm.DB) GetCustomerSubscriptionQueryHandler {
	return GetCustomerSubscriptionQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's subscription.
// Returns errs.ErrObjectNotFound when the customer never subscribed.
// Pause history rows are ordered oldest first.
func (h GetCustomerSubscriptionQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerSubscriptionQuery,
) (GetCustomerSubscriptionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerSubscriptionQueryResponse{}, err
	}

	var response GetCustomerSubscriptionQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.plan_id,
			p.name,
			s.status,
			s.start_date,
			s.end_date,
			s.next_delivery_date
		FROM subscriptions s
		JOIN plans p ON p.id = s.plan_id
		WHERE s.customer_id = ?
		ORDER BY s.start_date DESC
		LIMIT 1
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return GetCustomerSubscriptionQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetCustomerSubscriptionQueryResponse{}, err
		}
		return GetCustomerSubscriptionQueryResponse{},
			errs.NewObjectNotFoundError("subscription", query.CustomerID().String())
	}

	var (
		id               uuid.UUID
		planID           uuid.UUID
		status           int
		nextDeliveryDate sql.NullTime
	)

	err = rows.Scan(
		&id,
		&planID,
		&response.PlanName,
		&status,
		&response.StartDate,
		&response.EndDate,
		&nextDeliveryDate,
	)
	if err != nil {
		return GetCustomerSubscriptionQueryResponse{}, err
	}

	subscriptionID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCustomerSubscriptionQueryResponse{}, err
	}
	response.ID = subscriptionID

	subscriptionPlanID, err := kernel.UUIDFromBytes(planID[:])
	if err != nil {
		return GetCustomerSubscriptionQueryResponse{}, err
	}
	response.PlanID = subscriptionPlanID

	response.Status = subscription.Status(status).String()
	if nextDeliveryDate.Valid {
		next := nextDeliveryDate.Time
		response.NextDeliveryDate = &next
	}

	if err = rows.Close(); err != nil {
		return GetCustomerSubscriptionQueryResponse{}, err
	}

	response.PauseHistory, err = h.pauseHistory(ctx, response.ID)
	if err != nil {
		return GetCustomerSubscriptionQueryResponse{}, err
	}

	return response, nil
}

func (h GetCustomerSubscriptionQueryHandler) pauseHistory(
	ctx context.Context,
	subscriptionID kernel.UUID,
) ([]PauseHistoryItem, error) {
	history := make([]PauseHistoryItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			pause_date,
			resume_date
		FROM subscription_pauses
		WHERE subscription_id = ?
		ORDER BY pause_date
	`, subscriptionID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item PauseHistoryItem
		var resumeDate sql.NullTime

		if err = rows.Scan(&item.PauseDate, &resumeDate); err != nil {
			return nil, err
		}

		if resumeDate.Valid {
			resumed := resumeDate.Time
			item.ResumeDate = &resumed
		}
		history = append(history, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
