package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subscriptions/internal/core/application/usecases/commands"
	"subscriptions/internal/core/domain/model/kernel"
)

func TestNewSubscribeCommand(t *testing.T) {
	subscriptionID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	planID := kernel.NewUUID()

	cmd, err := commands.NewSubscribeCommand(subscriptionID, customerID, planID)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, subscriptionID, cmd.SubscriptionID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, planID, cmd.PlanID())
}

func TestNewSubscribeCommandValidationErrors(t *testing.T) {
	valid := kernel.NewUUID()

	tests := []struct {
		name           string
		subscriptionID kernel.UUID
		customerID     kernel.UUID
		planID         kernel.UUID
	}{
		{"empty subscription id", kernel.UUID{}, valid, valid},
		{"empty customer id", valid, kernel.UUID{}, valid},
		{"empty plan id", valid, valid, kernel.UUID{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := commands.NewSubscribeCommand(test.subscriptionID, test.customerID, test.planID)
			require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		})
	}
}

func TestSubscribeCommandNotConstructed(t *testing.T) {
	cmd := commands.SubscribeCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrSubscribeCommandIsNotConstructed)
}
