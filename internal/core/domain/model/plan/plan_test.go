package plan_test

import (
	"testing"
	"time"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid plan with all valid parameters", func(t *testing.T) {
		p, err := plan.NewPlan(validID, "Monthly", 49900, "monthly")

		require.NoError(t, err)
		assert.NotNil(t, p)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Monthly", p.Name())
		assert.Equal(t, int64(49900), p.PriceCents())
		assert.Equal(t, "monthly", p.Duration())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := plan.NewPlan(invalidID, "Monthly", 49900, "monthly")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := plan.NewPlan(validID, "", 49900, "monthly")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, plan.ErrNameIsRequired)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		p, err := plan.NewPlan(validID, "Monthly", -100, "monthly")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, plan.ErrPriceIsInvalid)
	})

	t.Run("should fail with empty duration", func(t *testing.T) {
		p, err := plan.NewPlan(validID, "Monthly", 49900, "")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, plan.ErrDurationIsRequired)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := plan.NewPlan(invalidID, "", -1, "")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "price")
	})
}

func TestPlan_Validate(t *testing.T) {
	t.Run("zero value plan fails validation", func(t *testing.T) {
		var p plan.Plan
		assert.ErrorIs(t, p.Validate(), plan.ErrPlanIsNotConstructed)
	})

	t.Run("nil plan fails validation", func(t *testing.T) {
		var p *plan.Plan
		assert.ErrorIs(t, p.Validate(), plan.ErrPlanIsNotConstructed)
	})
}

func TestPlan_Span(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		duration string
		expected time.Time
	}{
		{"daily plan", "daily", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"weekly plan", "weekly", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
		{"monthly plan", "monthly", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"mixed case descriptor", "Daily delivery", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"descriptor with surrounding words", "Monthly premium", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"uppercase descriptor", "WEEKLY", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
		{"unknown descriptor defaults to monthly", "fortnightly", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := plan.NewPlan(kernel.NewUUID(), "Test", 1000, tc.duration)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, p.Span(start))
		})
	}

	t.Run("monthly span from end of month follows calendar normalization", func(t *testing.T) {
		p, err := plan.NewPlan(kernel.NewUUID(), "Monthly", 1000, "monthly")
		require.NoError(t, err)

		from := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), p.Span(from))
	})
}

func TestRestorePlan(t *testing.T) {
	t.Run("restores a persisted plan", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := plan.RestorePlan(id, "Weekly", 12900, "weekly")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
	})
}
