// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tribelet/kit-service/config"
	"github.com/tribelet/kit-service/internal/circuitbreaker"
	"github.com/tribelet/kit-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	TeamRepo             repository.TeamRepositoryInterface
	OrderRepo            repository.OrderRepositoryInterface
	TeamsCircuitBreaker  *circuitbreaker.CircuitBreaker
	OrdersCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// team directory and order archive repositories, each behind its own
// circuit breaker. Returns nil if the database is disabled or the
// connection fails; the service then runs with those features degraded.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	teamsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-teams",
	})
	ordersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-orders",
	})

	teamRepo := repository.NewTeamRepositoryWithCircuitBreaker(repository.NewTeamRepository(db), teamsCB)
	orderRepo := repository.NewOrderRepositoryWithCircuitBreaker(repository.NewOrderRepository(db), ordersCB)

	return &DatabaseComponents{
		DB:                   db,
		TeamRepo:             teamRepo,
		OrderRepo:            orderRepo,
		TeamsCircuitBreaker:  teamsCB,
		OrdersCircuitBreaker: ordersCB,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close() {
	if d == nil || d.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("MongoDB disconnect failed")
	}
}
