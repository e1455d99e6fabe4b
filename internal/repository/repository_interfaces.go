// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/tribelet/kit-service/internal/domain/model"
)

// TeamRepositoryInterface defines the interface for team directory operations.
type TeamRepositoryInterface interface {
	FindByUser(ctx context.Context, email string) ([]model.Team, error)
	FindByID(ctx context.Context, teamID string) (*model.Team, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, team model.Team) error
}

// OrderRepositoryInterface defines the interface for the order archive.
type OrderRepositoryInterface interface {
	Save(ctx context.Context, order *model.OrderPayload) error
	FindByOrderID(ctx context.Context, orderID string) (*OrderDocument, error)
	ListRecent(ctx context.Context, limit int) ([]OrderDocument, error)
}
