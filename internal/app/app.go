// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/tribelet/kit-service/config"
	"github.com/tribelet/kit-service/internal/http"
)

// App holds the wired application and the resources it owns.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents
	Database *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Database components are optional; the service runs fully in-memory
	// without them, with the team directory and order archive degraded.
	dbComponents := InitializeDatabase(cfg.Database)

	serviceComponents := InitializeServices(cfg, dbComponents)

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Services: serviceComponents,
		Database: dbComponents,
	}
}

// Close releases resources owned by the application.
func (a *App) Close() {
	if a.Services != nil && a.Services.Sessions != nil {
		a.Services.Sessions.Stop()
	}
	if a.Database != nil {
		a.Database.Close()
	}
}
