package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tribelet/kit-service/internal/domain/dto"
	"github.com/tribelet/kit-service/internal/i18n"
	"github.com/tribelet/kit-service/internal/service"
)

// flowKind resolves the :flow path parameter.
func flowKind(c *gin.Context, builder *ResponseBuilder) (service.FlowKind, bool) {
	kind := service.FlowKind(c.Param("flow"))
	if kind != service.FlowKit && kind != service.FlowTeam {
		builder.ErrorWithMessage(http.StatusBadRequest, "flow must be kit or team", nil)
		return "", false
	}
	return kind, true
}

// GetWizardStatus handles GET /api/sessions/{sessionID}/wizard/{flow} requests.
//
// @Summary      Get wizard status
// @Description  Reports the flow position and whether the current step's gate allows advancing, with a reason when it does not.
// @Tags         Wizard
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        flow path string true "Flow" Enums(kit, team)
// @Success      200 {object} dto.SuccessResponse "Step status"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/wizard/{flow} [get]
func (h *Handler) GetWizardStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	kind, ok := flowKind(c, builder)
	if !ok {
		return
	}
	builder.SuccessOK(h.wizards.Status(sess, kind))
}

// AdvanceWizard handles POST /api/sessions/{sessionID}/wizard/{flow}/advance requests.
//
// @Summary      Advance the wizard
// @Description  Moves the flow one step forward if the current step's gate allows. A failed gate answers 412 with the reason.
// @Tags         Wizard
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        flow path string true "Flow" Enums(kit, team)
// @Success      200 {object} dto.SuccessResponse "New step status"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Flow already complete"
// @Failure      412 {object} dto.ErrorResponse "Step gate not satisfied"
// @Router       /api/sessions/{sessionID}/wizard/{flow}/advance [post]
func (h *Handler) AdvanceWizard(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	kind, ok := flowKind(c, builder)
	if !ok {
		return
	}

	status, err := h.wizards.Advance(sess, kind)
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(status)
}

// BackWizard handles POST /api/sessions/{sessionID}/wizard/{flow}/back requests.
//
// @Summary      Step the wizard back
// @Description  Moves the flow one step backward, never below the first step. Going back is always allowed and loses no state.
// @Tags         Wizard
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        flow path string true "Flow" Enums(kit, team)
// @Success      200 {object} dto.SuccessResponse "New step status"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/wizard/{flow}/back [post]
func (h *Handler) BackWizard(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	kind, ok := flowKind(c, builder)
	if !ok {
		return
	}
	builder.SuccessOK(h.wizards.Back(sess, kind))
}

// SetTeamPrompt handles PUT /api/sessions/{sessionID}/team-draft/prompt requests.
//
// @Summary      Describe the team
// @Tags         TeamDraft
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.TeamPromptRequest true "Team description"
// @Success      200 {object} dto.SuccessResponse "Updated draft"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/team-draft/prompt [put]
func (h *Handler) SetTeamPrompt(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.TeamPromptRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.wizards.SetPrompt(sess, req.Prompt)
	builder.SuccessOK(h.draftOf(sess))
}

// SetTeamNameOptions handles PUT /api/sessions/{sessionID}/team-draft/name-options requests.
//
// @Summary      Supply name candidates
// @Tags         TeamDraft
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.TeamNameOptionsRequest true "Name candidates"
// @Success      200 {object} dto.SuccessResponse "Updated draft"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/team-draft/name-options [put]
func (h *Handler) SetTeamNameOptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.TeamNameOptionsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.wizards.SetNameOptions(sess, req.Options)
	builder.SuccessOK(h.draftOf(sess))
}

// ChooseTeamName handles PUT /api/sessions/{sessionID}/team-draft/name requests.
//
// @Summary      Pick the team name
// @Description  Records the picked name and schedules a debounced availability check against the team directory. Rapid re-picks coalesce into one check; its state is readable at the name-check endpoint.
// @Tags         TeamDraft
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.TeamNameChoiceRequest true "Chosen name"
// @Success      200 {object} dto.SuccessResponse "Updated draft"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/team-draft/name [put]
func (h *Handler) ChooseTeamName(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.TeamNameChoiceRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.wizards.ChooseName(sess, req.Name)
	builder.SuccessOK(h.draftOf(sess))
}

// SetTeamSummary handles PUT /api/sessions/{sessionID}/team-draft/summary requests.
//
// @Summary      Record the team summary
// @Tags         TeamDraft
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.TeamSummaryRequest true "Team summary"
// @Success      200 {object} dto.SuccessResponse "Updated draft"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/team-draft/summary [put]
func (h *Handler) SetTeamSummary(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.TeamSummaryRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.wizards.SetSummary(sess, req.Summary)
	builder.SuccessOK(h.draftOf(sess))
}

// SetTeamLogoOptions handles PUT /api/sessions/{sessionID}/team-draft/logo-options requests.
//
// @Summary      Supply logo candidates
// @Tags         TeamDraft
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.TeamLogoOptionsRequest true "Logo candidates"
// @Success      200 {object} dto.SuccessResponse "Updated draft"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/team-draft/logo-options [put]
func (h *Handler) SetTeamLogoOptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.TeamLogoOptionsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.wizards.SetLogoOptions(sess, req.Options)
	builder.SuccessOK(h.draftOf(sess))
}

// ChooseTeamLogo handles PUT /api/sessions/{sessionID}/team-draft/logo requests.
//
// @Summary      Pick the team logo
// @Tags         TeamDraft
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.TeamLogoChoiceRequest true "Chosen logo"
// @Success      200 {object} dto.SuccessResponse "Updated draft"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/team-draft/logo [put]
func (h *Handler) ChooseTeamLogo(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.TeamLogoChoiceRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.wizards.ChooseLogo(sess, req.LogoURL)
	builder.SuccessOK(h.draftOf(sess))
}

// GetNameCheck handles GET /api/sessions/{sessionID}/team-draft/name-check requests.
//
// @Summary      Get the name availability check
// @Description  Returns the debounced availability check state for the picked team name. Directory failures resolve optimistically to available.
// @Tags         TeamDraft
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse "Name check state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/team-draft/name-check [get]
func (h *Handler) GetNameCheck(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	builder.SuccessOK(h.wizards.NameCheckState(sess))
}

// ConfirmTeam handles POST /api/sessions/{sessionID}/team-draft/confirm requests.
//
// @Summary      Finalize team creation
// @Description  Saves the drafted team to the directory and binds it to the kit. Saving is best-effort when the directory is unavailable; the binding still applies so the flow can finish offline.
// @Tags         TeamDraft
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.ConfirmTeamRequest true "Owner email"
// @Success      201 {object} dto.SuccessResponse "Created team and updated state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      412 {object} dto.ErrorResponse "Draft has no name yet"
// @Router       /api/sessions/{sessionID}/team-draft/confirm [post]
func (h *Handler) ConfirmTeam(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.ConfirmTeamRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	team, err := h.wizards.ConfirmTeam(c.Request.Context(), sess, req.Email)
	if err != nil {
		respondError(builder, err)
		return
	}

	locale := i18n.GetLocale(c)
	builder.SuccessCreated(gin.H{
		"message": i18n.GetTranslator().Translate(i18n.SuccessKeyTeamCreated, locale),
		"team":    team,
		"state":   h.stateOf(sess),
	})
}

// draftOf snapshots the team draft under the session lock.
func (h *Handler) draftOf(sess *service.Session) service.TeamDraft {
	sess.Lock()
	defer sess.Unlock()
	return *sess.TeamDraft
}
