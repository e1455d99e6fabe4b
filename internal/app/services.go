// Package app provides service initialization.
package app

import (
	"github.com/tribelet/kit-service/config"
	"github.com/tribelet/kit-service/internal/repository"
	"github.com/tribelet/kit-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Sessions *service.SessionStore
	Kits     service.KitService
	Orders   service.OrderService
	Wizards  service.WizardService
	Teams    service.TeamService
}

// InitializeServices initializes business logic services. Database
// components may be nil, in which case the team directory degrades to
// its offline behavior and placed orders are not archived.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	var teamRepo repository.TeamRepositoryInterface
	var orderRepo repository.OrderRepositoryInterface
	if dbComponents != nil {
		teamRepo = dbComponents.TeamRepo
		orderRepo = dbComponents.OrderRepo
	}

	teams := service.NewTeamService(teamRepo)
	validator := service.NewUploadValidator(cfg.Upload.MaxBytes, cfg.Upload.MaxDimension)
	resolver := service.NewAssetResolver(cfg.Assets.BaseURL)
	compositor := service.NewLayerCompositor(resolver)

	// NewHTTPOrderNotifier returns nil for an empty endpoint; keep the
	// interface nil in that case so order placement skips notification.
	var orderNotifier service.OrderNotifier
	if notifier := service.NewHTTPOrderNotifier(cfg.Notifier.EndpointURL, cfg.Notifier.Timeout); notifier != nil {
		orderNotifier = notifier
	}

	return &ServiceComponents{
		Sessions: service.NewSessionStore(cfg.Session.TTL, cfg.Session.MaxSessions),
		Kits:     service.NewKitService(validator, compositor, teams),
		Orders:   service.NewOrderService(cfg.Pricing.UnitPrice, cfg.Pricing.TaxRate, orderNotifier, orderRepo),
		Wizards:  service.NewWizardService(teams),
		Teams:    teams,
	}
}
