package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"subscriptions/internal/core/domain/model/delivery"
	"subscriptions/internal/core/domain/model/kernel"
)

// GetPendingDeliveriesQueryHandler retrieves pending ledger entries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetPendingDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingDeliveriesQueryHandler creates a handler for pending delivery queries.
// Requires a GORM database connection for query execution.
func NewGetPendingDeliveriesQueryHandler(db *gorm.DB) GetPendingDeliveriesQueryHandler {
	return GetPendingDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending ledger entries.
// Returns a slice of read models sorted by delivery date.
func (h GetPendingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingDeliveriesQuery,
) ([]GetPendingDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetPendingDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.customer_id,
			d.agent_id,
			a.name,
			d.delivery_date,
			d.description,
			d.is_recurring
		FROM deliveries d
		LEFT JOIN agents a ON a.id = d.agent_id
		WHERE d.status = ?
		ORDER BY d.delivery_date
	`, int(delivery.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetPendingDeliveriesQueryResponse
		var (
			id         uuid.UUID
			customerID uuid.UUID
			agentID    uuid.NullUUID
			agentName  sql.NullString
		)

		err = rows.Scan(
			&id,
			&customerID,
			&agentID,
			&agentName,
			&entry.DeliveryDate,
			&entry.Description,
			&entry.IsRecurring,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		entryCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.CustomerID = entryCustomerID

		if agentID.Valid {
			entryAgentID, idErr := kernel.UUIDFromBytes(agentID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.AgentID = &entryAgentID
		}
		if agentName.Valid {
			name := agentName.String
			entry.AgentName = &name
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
