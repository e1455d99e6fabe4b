package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tribelet/kit-service/internal/domain/dto"
	"github.com/tribelet/kit-service/internal/domain/model"
	"github.com/tribelet/kit-service/internal/i18n"
)

// placementSide resolves the :side path parameter.
func placementSide(c *gin.Context, builder *ResponseBuilder) (model.PlacementSide, bool) {
	side := model.PlacementSide(c.Param("side"))
	if !side.IsValid() {
		builder.ErrorWithMessage(http.StatusBadRequest, "placement side must be front or back", nil)
		return "", false
	}
	return side, true
}

// readUploadFile reads the "image" part of a multipart upload.
func readUploadFile(c *gin.Context) ([]byte, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, err
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return io.ReadAll(f)
}

// SetKitType handles PUT /api/sessions/{sessionID}/kit-type requests.
//
// @Summary      Select the kit type
// @Description  Selects the garment to customize. "polo" is fully supported; "tshirt" is announced but cannot be customized or ordered yet.
// @Tags         Kit
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.KitTypeRequest true "Kit type"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      400 {object} dto.ErrorResponse "Unknown kit type"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/kit-type [put]
func (h *Handler) SetKitType(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.KitTypeRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.kits.SetKitType(sess, model.KitType(req.KitType)); err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(h.stateOf(sess))
}

// SetColor handles PUT /api/sessions/{sessionID}/color requests.
//
// @Summary      Change the garment color
// @Description  Changes the garment color. Unknown colors fall back to white. An emblem in auto mode re-derives its contrast color from the new garment color.
// @Tags         Kit
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.ColorRequest true "Garment color"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/color [put]
func (h *Handler) SetColor(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.ColorRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	color, _ := model.ParseGarmentColor(req.Color)
	h.kits.SetColor(sess, color)
	builder.SuccessOK(h.stateOf(sess))
}

// SetEmblem handles PUT /api/sessions/{sessionID}/emblem requests.
//
// @Summary      Set the brand emblem color
// @Description  In "auto" mode the emblem color follows the garment contrast rule: black on white garments, white otherwise. "manual" fixes the color until auto is explicitly selected again.
// @Tags         Kit
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.EmblemRequest true "Emblem mode and color"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      400 {object} dto.ErrorResponse "Invalid mode or color"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/emblem [put]
func (h *Handler) SetEmblem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.EmblemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if req.Mode == "manual" {
		if err := h.kits.SetEmblemManual(sess, model.EmblemColor(req.Color)); err != nil {
			respondError(builder, err)
			return
		}
	} else {
		h.kits.SetEmblemAuto(sess)
	}
	builder.SuccessOK(h.stateOf(sess))
}

// UploadPlacementImage handles POST /api/sessions/{sessionID}/placements/{side}/image requests.
//
// @Summary      Upload placement artwork
// @Description  Uploads an image for the front or back placement. Uploads over 2 MiB or 1000x1000 pixels are rejected. If a newer upload for the same slot starts while this one is validating, this one is discarded.
// @Tags         Kit
// @Accept       multipart/form-data
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        side path string true "Placement side" Enums(front, back)
// @Param        image formData file true "Image file"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      400 {object} dto.ErrorResponse "Undecodable image or dimensions exceeded"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Upload superseded by a newer one"
// @Failure      413 {object} dto.ErrorResponse "Image too large"
// @Router       /api/sessions/{sessionID}/placements/{side}/image [post]
func (h *Handler) UploadPlacementImage(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	side, ok := placementSide(c, builder)
	if !ok {
		return
	}

	data, err := readUploadFile(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if _, err := h.kits.AttachPlacementImage(sess, side, data); err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(h.stateOf(sess))
}

// UploadTeamLogo handles POST /api/sessions/{sessionID}/team-logo requests.
//
// @Summary      Upload a team logo
// @Description  Uploads the team logo image, subject to the same limits as placement artwork. Placement slots can then source from it.
// @Tags         Kit
// @Accept       multipart/form-data
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        image formData file true "Image file"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      400 {object} dto.ErrorResponse "Undecodable image or dimensions exceeded"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      413 {object} dto.ErrorResponse "Image too large"
// @Router       /api/sessions/{sessionID}/team-logo [post]
func (h *Handler) UploadTeamLogo(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}

	data, err := readUploadFile(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if _, err := h.kits.AttachTeamLogo(sess, data); err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(h.stateOf(sess))
}

// SetPlacementVisible handles PUT /api/sessions/{sessionID}/placements/{side}/visible requests.
//
// @Summary      Toggle a placement slot
// @Tags         Kit
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        side path string true "Placement side" Enums(front, back)
// @Param        request body dto.PlacementVisibleRequest true "Visibility"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/placements/{side}/visible [put]
func (h *Handler) SetPlacementVisible(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	side, ok := placementSide(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.PlacementVisibleRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.kits.SetPlacementVisible(sess, side, *req.Visible)
	builder.SuccessOK(h.stateOf(sess))
}

// SetPlacementScale handles PUT /api/sessions/{sessionID}/placements/{side}/scale requests.
//
// @Summary      Scale a placement slot
// @Description  Sets the placement scale in percent, clamped to 25-100 for the front and 25-150 for the back.
// @Tags         Kit
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        side path string true "Placement side" Enums(front, back)
// @Param        request body dto.PlacementScaleRequest true "Scale percent"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/placements/{side}/scale [put]
func (h *Handler) SetPlacementScale(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	side, ok := placementSide(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.PlacementScaleRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.kits.SetPlacementScale(sess, side, req.ScalePercent)
	builder.SuccessOK(h.stateOf(sess))
}

// SetPlacementSource handles PUT /api/sessions/{sessionID}/placements/{side}/source requests.
//
// @Summary      Switch a slot between team logo and uploaded image
// @Description  Enabling the team logo requires one to be present; otherwise the request fails with a precondition error.
// @Tags         Kit
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        side path string true "Placement side" Enums(front, back)
// @Param        request body dto.UseTeamLogoRequest true "Source selection"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      412 {object} dto.ErrorResponse "No team logo is set"
// @Router       /api/sessions/{sessionID}/placements/{side}/source [put]
func (h *Handler) SetPlacementSource(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	side, ok := placementSide(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.UseTeamLogoRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.kits.UseTeamLogo(sess, side, *req.UseTeamLogo); err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(h.stateOf(sess))
}

// SetBackPrintEnabled handles PUT /api/sessions/{sessionID}/back-print/enabled requests.
//
// @Summary      Toggle the back print
// @Description  Disabling the back print keeps the stored text so re-enabling restores it.
// @Tags         BackPrint
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.BackPrintEnabledRequest true "Enabled flag"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/back-print/enabled [put]
func (h *Handler) SetBackPrintEnabled(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.BackPrintEnabledRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.kits.SetBackPrintEnabled(sess, *req.Enabled)
	builder.SuccessOK(h.stateOf(sess))
}

// SetBackPrintText handles PUT /api/sessions/{sessionID}/back-print/text requests.
//
// @Summary      Set the back-print text
// @Description  Stores text up to 20 characters; longer input is rejected and leaves state unchanged. Text over three words is stored but suppressed from the preview and the order until corrected.
// @Tags         BackPrint
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.BackPrintTextRequest true "Text"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      400 {object} dto.ErrorResponse "Text too long"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/back-print/text [put]
func (h *Handler) SetBackPrintText(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.BackPrintTextRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.kits.SetBackPrintText(sess, *req.Text); err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(h.stateOf(sess))
}

// SetBackPrintFont handles PUT /api/sessions/{sessionID}/back-print/font requests.
//
// @Summary      Select the back-print typeface
// @Tags         BackPrint
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.BackPrintFontRequest true "Font"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      400 {object} dto.ErrorResponse "Unknown font"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/back-print/font [put]
func (h *Handler) SetBackPrintFont(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.BackPrintFontRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.kits.SetBackPrintFont(sess, model.BackPrintFont(req.Font)); err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(h.stateOf(sess))
}

// SetBackPrintScale handles PUT /api/sessions/{sessionID}/back-print/scale requests.
//
// @Summary      Scale the back-print text
// @Tags         BackPrint
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.BackPrintScaleRequest true "Scale percent, clamped to 25-100"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/back-print/scale [put]
func (h *Handler) SetBackPrintScale(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.BackPrintScaleRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.kits.SetBackPrintScale(sess, req.ScalePercent)
	builder.SuccessOK(h.stateOf(sess))
}

// SetBackPrintPosition handles PUT /api/sessions/{sessionID}/back-print/position requests.
//
// @Summary      Position the back-print text
// @Tags         BackPrint
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.BackPrintPositionRequest true "Vertical position percent, clamped to 0-100"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/back-print/position [put]
func (h *Handler) SetBackPrintPosition(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.BackPrintPositionRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.kits.SetBackPrintPosition(sess, req.PositionPercent)
	builder.SuccessOK(h.stateOf(sess))
}

// SetDesignName handles PUT /api/sessions/{sessionID}/design-name requests.
//
// @Summary      Name the design
// @Tags         Kit
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.DesignNameRequest true "Design name"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/design-name [put]
func (h *Handler) SetDesignName(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.DesignNameRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.kits.SetDesignName(sess, req.Name)
	builder.SuccessOK(h.stateOf(sess))
}

// SelectTeam handles PUT /api/sessions/{sessionID}/team requests.
//
// @Summary      Pick a team for the kit
// @Description  Accepts a team ID, "no-team" to clear the binding, or "create-new" to request the team creation flow. Binding a team populates the logo, switches the front placement to it, and enables the back print with the uppercased team name.
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.TeamSelectRequest true "Team selection"
// @Success      200 {object} dto.SuccessResponse "Selection outcome and updated state"
// @Failure      404 {object} dto.ErrorResponse "Session or team not found"
// @Router       /api/sessions/{sessionID}/team [put]
func (h *Handler) SelectTeam(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.TeamSelectRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	selection, err := h.kits.SelectTeam(c.Request.Context(), sess, req.Selection)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{
		"requires_setup": selection.RequiresSetup,
		"team":           selection.Team,
		"state":          h.stateOf(sess),
	})
}
