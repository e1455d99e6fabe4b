package http

import (
	"github.com/gin-gonic/gin"
	"github.com/tribelet/kit-service/internal/middleware"
)

// SessionRoutes handles session-scoped route registration: the session
// lifecycle plus every kit, order, and wizard operation under it.
type SessionRoutes struct {
	handler *Handler
}

// NewSessionRoutes creates a new SessionRoutes instance.
func NewSessionRoutes(handler *Handler) *SessionRoutes {
	return &SessionRoutes{handler: handler}
}

// RegisterPublicRoutes registers the session routes.
func (r *SessionRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.register(rg, nil)
}

// RegisterRoutes registers the session routes with per-session rate
// limiting when the config enables it.
func (r *SessionRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	var limiter *middleware.ShardedRateLimiter
	if cfg != nil && cfg.SessionRateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.SessionRateLimit, cfg.RateWindow)
	}
	r.register(rg, limiter)
}

func (r *SessionRoutes) register(rg *gin.RouterGroup, limiter *middleware.ShardedRateLimiter) {
	h := r.handler

	rg.POST("/sessions", h.CreateSession)

	sessions := rg.Group("/sessions/:sessionID")
	if limiter != nil {
		sessions.Use(limiter.SessionRateLimit())
	}

	sessions.GET("", h.GetSession)
	sessions.DELETE("", h.DeleteSession)
	sessions.POST("/reset", h.ResetSession)
	sessions.GET("/layers", h.GetLayers)

	sessions.PUT("/kit-type", h.SetKitType)
	sessions.PUT("/color", h.SetColor)
	sessions.PUT("/emblem", h.SetEmblem)
	sessions.PUT("/design-name", h.SetDesignName)
	sessions.PUT("/team", h.SelectTeam)
	sessions.POST("/team-logo", h.UploadTeamLogo)

	sessions.POST("/placements/:side/image", h.UploadPlacementImage)
	sessions.PUT("/placements/:side/visible", h.SetPlacementVisible)
	sessions.PUT("/placements/:side/scale", h.SetPlacementScale)
	sessions.PUT("/placements/:side/source", h.SetPlacementSource)

	sessions.PUT("/back-print/enabled", h.SetBackPrintEnabled)
	sessions.PUT("/back-print/text", h.SetBackPrintText)
	sessions.PUT("/back-print/font", h.SetBackPrintFont)
	sessions.PUT("/back-print/scale", h.SetBackPrintScale)
	sessions.PUT("/back-print/position", h.SetBackPrintPosition)

	sessions.PUT("/quantities", h.SetQuantity)
	sessions.GET("/totals", h.GetTotals)
	sessions.POST("/order", h.PlaceOrder)

	sessions.GET("/wizard/:flow", h.GetWizardStatus)
	sessions.POST("/wizard/:flow/advance", h.AdvanceWizard)
	sessions.POST("/wizard/:flow/back", h.BackWizard)

	draft := sessions.Group("/team-draft")
	draft.PUT("/prompt", h.SetTeamPrompt)
	draft.PUT("/name-options", h.SetTeamNameOptions)
	draft.PUT("/name", h.ChooseTeamName)
	draft.PUT("/summary", h.SetTeamSummary)
	draft.PUT("/logo-options", h.SetTeamLogoOptions)
	draft.PUT("/logo", h.ChooseTeamLogo)
	draft.GET("/name-check", h.GetNameCheck)
	draft.POST("/confirm", h.ConfirmTeam)
}
