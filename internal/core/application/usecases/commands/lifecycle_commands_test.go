package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subscriptions/internal/core/application/usecases/commands"
	"subscriptions/internal/core/domain/model/kernel"
)

func TestNewPauseSubscriptionCommand(t *testing.T) {
	subscriptionID := kernel.NewUUID()

	cmd, err := commands.NewPauseSubscriptionCommand(subscriptionID)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, subscriptionID, cmd.SubscriptionID())

	_, err = commands.NewPauseSubscriptionCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	empty := commands.PauseSubscriptionCommand{}
	require.ErrorIs(t, empty.Validate(), commands.ErrPauseSubscriptionCommandIsNotConstructed)
}

func TestNewResumeSubscriptionCommand(t *testing.T) {
	subscriptionID := kernel.NewUUID()

	cmd, err := commands.NewResumeSubscriptionCommand(subscriptionID)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, subscriptionID, cmd.SubscriptionID())

	_, err = commands.NewResumeSubscriptionCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	empty := commands.ResumeSubscriptionCommand{}
	require.ErrorIs(t, empty.Validate(), commands.ErrResumeSubscriptionCommandIsNotConstructed)
}

func TestNewCancelSubscriptionCommand(t *testing.T) {
	subscriptionID := kernel.NewUUID()

	cmd, err := commands.NewCancelSubscriptionCommand(subscriptionID)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, subscriptionID, cmd.SubscriptionID())

	_, err = commands.NewCancelSubscriptionCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	empty := commands.CancelSubscriptionCommand{}
	require.ErrorIs(t, empty.Validate(), commands.ErrCancelSubscriptionCommandIsNotConstructed)
}

func TestNewExpireSubscriptionsCommand(t *testing.T) {
	cmd := commands.NewExpireSubscriptionsCommand()
	assert.NoError(t, cmd.Validate())

	empty := commands.ExpireSubscriptionsCommand{}
	require.ErrorIs(t, empty.Validate(), commands.ErrExpireSubscriptionsCommandIsNotConstructed)
}
