package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribelet/kit-service/internal/domain/model"
)

func TestInitializeServices_WithoutDatabase(t *testing.T) {
	services := InitializeServices(testConfig(), nil)
	require.NotNil(t, services)
	t.Cleanup(services.Sessions.Stop)

	assert.NotNil(t, services.Sessions)
	assert.NotNil(t, services.Kits)
	assert.NotNil(t, services.Orders)
	assert.NotNil(t, services.Wizards)
	assert.NotNil(t, services.Teams)
}

func TestInitializeServices_DefaultPricing(t *testing.T) {
	services := InitializeServices(testConfig(), nil)
	t.Cleanup(services.Sessions.Stop)

	sess, err := services.Sessions.Create()
	require.NoError(t, err)

	services.Orders.SetQuantity(sess, model.Size("M"), 2)
	services.Orders.SetQuantity(sess, model.Size("L"), 1)

	totals := services.Orders.Totals(sess)
	assert.Equal(t, 3, totals.TotalItems)
	assert.InDelta(t, 75.0, totals.Subtotal, 0.001)
	assert.InDelta(t, 7.5, totals.Tax, 0.001)
	assert.InDelta(t, 82.5, totals.Total, 0.001)
}

func TestInitializeServices_OfflineTeamDirectory(t *testing.T) {
	services := InitializeServices(testConfig(), nil)
	t.Cleanup(services.Sessions.Stop)

	// The advisory name check stays optimistic without a directory.
	assert.True(t, services.Teams.NameAvailable(context.Background(), "Thunder Bolts"))
}
