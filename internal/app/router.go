// Package app provides router configuration.
package app

import (
	"github.com/tribelet/kit-service/config"
	"github.com/tribelet/kit-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(
		services.Sessions,
		services.Kits,
		services.Orders,
		services.Wizards,
		services.Teams,
	)

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", dbComponents.DB.HealthCheck)
		healthHandler.RegisterCircuitBreaker("mongodb_teams", dbComponents.TeamsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_orders", dbComponents.OrdersCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		SessionRateLimit:  cfg.Server.SessionRateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		JWTSecret:         cfg.Auth.JWTSecretKey,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
