// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/tribelet/kit-service/internal/circuitbreaker"
	"github.com/tribelet/kit-service/internal/domain/model"
)

// TeamRepositoryWithCircuitBreaker wraps TeamRepository with circuit breaker protection.
type TeamRepositoryWithCircuitBreaker struct {
	repo           *TeamRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTeamRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewTeamRepositoryWithCircuitBreaker(repo *TeamRepository, cb *circuitbreaker.CircuitBreaker) *TeamRepositoryWithCircuitBreaker {
	return &TeamRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FindByUser lists a user's teams with circuit breaker protection. An
// open circuit yields an empty list so the selector can still render.
func (r *TeamRepositoryWithCircuitBreaker) FindByUser(ctx context.Context, email string) ([]model.Team, error) {
	var result []model.Team
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByUser(ctx, email)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// FindByID resolves a team with circuit breaker protection.
func (r *TeamRepositoryWithCircuitBreaker) FindByID(ctx context.Context, teamID string) (*model.Team, error) {
	var result *model.Team
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, teamID)
		return cbErr
	})
	return result, err
}

// NameExists checks name availability with circuit breaker protection.
// The error propagates so the caller's optimistic fallback applies.
func (r *TeamRepositoryWithCircuitBreaker) NameExists(ctx context.Context, name string) (bool, error) {
	var result bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.NameExists(ctx, name)
		return cbErr
	})
	return result, err
}

// Save stores a team with circuit breaker protection.
func (r *TeamRepositoryWithCircuitBreaker) Save(ctx context.Context, team model.Team) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, team)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TeamRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// OrderRepositoryWithCircuitBreaker wraps OrderRepository with circuit breaker protection.
type OrderRepositoryWithCircuitBreaker struct {
	repo           *OrderRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrderRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOrderRepositoryWithCircuitBreaker(repo *OrderRepository, cb *circuitbreaker.CircuitBreaker) *OrderRepositoryWithCircuitBreaker {
	return &OrderRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Save archives an order with circuit breaker protection. The archive
// is best-effort, so an open circuit silently drops the write.
func (r *OrderRepositoryWithCircuitBreaker) Save(ctx context.Context, order *model.OrderPayload) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, order)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// FindByOrderID retrieves an archived order with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) FindByOrderID(ctx context.Context, orderID string) (*OrderDocument, error) {
	var result *OrderDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByOrderID(ctx, orderID)
		return cbErr
	})
	return result, err
}

// ListRecent retrieves archived orders with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) ListRecent(ctx context.Context, limit int) ([]OrderDocument, error) {
	var result []OrderDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListRecent(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrderRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
