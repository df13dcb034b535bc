package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"subscriptions/internal/core/domain/model/kernel"
)

// GetAssignableAgentsQueryHandler retrieves the assignable agent pool from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAssignableAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignableAgentsQueryHandler creates a handler for agent pool queries.
// Requires a GORM database connection for query execution.
func NewGetAssignableAgentsQueryHandler(db *gorm.DB) GetAssignableAgentsQueryHandler {
	return GetAssignableAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all assignable agents.
// Returns a slice of agent read models sorted by identifier, matching the
// round-robin rotation order.
func (h GetAssignableAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignableAgentsQuery,
) ([]GetAssignableAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]GetAssignableAgentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM agents
		WHERE accepts_assignment
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var agent GetAssignableAgentsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &agent.Name); err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		agent.ID = agentID

		agents = append(agents, agent)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
