package http

import (
	"github.com/gin-gonic/gin"
)

// TeamRoutes handles team directory route registration.
type TeamRoutes struct {
	handler *Handler
}

// NewTeamRoutes creates a new TeamRoutes instance.
func NewTeamRoutes(handler *Handler) *TeamRoutes {
	return &TeamRoutes{handler: handler}
}

// RegisterPublicRoutes registers the team directory routes.
func (r *TeamRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/teams", r.handler.ListTeams)
	rg.GET("/teams/:teamID", r.handler.GetTeam)
}
