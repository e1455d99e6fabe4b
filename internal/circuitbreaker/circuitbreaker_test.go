package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
	})

	for i := 0; i < 3; i++ {
		err := cb.Execute(context.Background(), func() error { return errBoom })
		require.ErrorIs(t, err, errBoom)
	}

	assert.Equal(t, StateOpen, cb.State())
	assert.True(t, cb.IsOpen())

	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called, "open circuit must not call the function")
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := New(Config{FailureThreshold: 3, SuccessThreshold: 1, Timeout: time.Minute})

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error { return errBoom })
	}
	require.Equal(t, StateClosed, cb.State())

	err := cb.Execute(context.Background(), func() error { return nil })
	require.NoError(t, err)

	// Two more failures should not reach the threshold of three.
	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error { return errBoom })
	}
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 2,
		Timeout:          10 * time.Millisecond,
		Name:             "recovery",
	})

	_ = cb.Execute(context.Background(), func() error { return errBoom })
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	// First success moves open -> half-open, second closes it.
	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, StateHalfOpen, cb.State())
	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 2,
		Timeout:          10 * time.Millisecond,
	})

	_ = cb.Execute(context.Background(), func() error { return errBoom })
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return errBoom })
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(DefaultConfig())

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Zero(t, stats.FailureCount)

	_ = cb.Execute(context.Background(), func() error { return errBoom })
	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}
