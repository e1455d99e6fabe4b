package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribelet/kit-service/internal/circuitbreaker"
	"github.com/tribelet/kit-service/internal/domain/model"
)

// openBreaker returns a breaker already tripped open.
func openBreaker(t *testing.T) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
	})
	_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
	require.True(t, cb.IsOpen())
	return cb
}

func TestTeamRepositoryWithCircuitBreaker_OpenCircuit(t *testing.T) {
	// With the circuit open the underlying repository is never touched,
	// so a nil repo is safe here.
	wrapper := NewTeamRepositoryWithCircuitBreaker(nil, openBreaker(t))
	ctx := context.Background()

	teams, err := wrapper.FindByUser(ctx, "owner@example.com")
	assert.NoError(t, err, "open circuit degrades to an empty team list")
	assert.Nil(t, teams)

	_, err = wrapper.FindByID(ctx, "team-1")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	_, err = wrapper.NameExists(ctx, "Thunder Bolts")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen,
		"name check error propagates so the optimistic fallback applies")
}

func TestOrderRepositoryWithCircuitBreaker_OpenCircuit(t *testing.T) {
	wrapper := NewOrderRepositoryWithCircuitBreaker(nil, openBreaker(t))
	ctx := context.Background()

	assert.NoError(t, wrapper.Save(ctx, &model.OrderPayload{OrderID: "TBL-ABC123XYZ"}),
		"archive writes drop silently when open")

	_, err := wrapper.FindByOrderID(ctx, "TBL-ABC123XYZ")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}
