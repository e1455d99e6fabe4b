package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tribelet/kit-service/internal/domain/model"
	"github.com/tribelet/kit-service/internal/service"
)

// ListTeams handles GET /api/teams requests.
//
// @Summary      List a user's teams
// @Description  Returns the teams owned by the given email, newest first. When the directory is unavailable the list is empty rather than an error, so the selector still offers "no-team" and "create-new".
// @Tags         Teams
// @Produce      json
// @Param        email query string true "Owner email"
// @Success      200 {object} dto.SuccessResponse "Teams"
// @Failure      400 {object} dto.ErrorResponse "Missing email"
// @Router       /api/teams [get]
func (h *Handler) ListTeams(c *gin.Context) {
	builder := NewResponseBuilder(c)

	email := c.Query("email")
	if email == "" {
		builder.ErrorWithMessage(http.StatusBadRequest, "email query parameter is required", nil)
		return
	}

	teams, err := h.teams.TeamsByUser(c.Request.Context(), email)
	if err != nil && !errors.Is(err, service.ErrDirectoryNotConfigured) {
		respondError(builder, err)
		return
	}
	if teams == nil {
		teams = []model.Team{}
	}
	builder.SuccessOK(gin.H{"teams": teams})
}

// GetTeam handles GET /api/teams/{teamID} requests.
//
// @Summary      Get a team
// @Tags         Teams
// @Produce      json
// @Param        teamID path string true "Team ID"
// @Success      200 {object} dto.SuccessResponse "Team"
// @Failure      404 {object} dto.ErrorResponse "Team not found"
// @Router       /api/teams/{teamID} [get]
func (h *Handler) GetTeam(c *gin.Context) {
	builder := NewResponseBuilder(c)

	team, err := h.teams.TeamByID(c.Request.Context(), c.Param("teamID"))
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(team)
}
