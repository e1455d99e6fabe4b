package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tribelet/kit-service/internal/domain/model"
	"github.com/tribelet/kit-service/internal/i18n"
	"github.com/tribelet/kit-service/internal/service"
)

// Handler provides HTTP handlers for the kit configuration routes.
type Handler struct {
	sessions *service.SessionStore
	kits     service.KitService
	orders   service.OrderService
	wizards  service.WizardService
	teams    service.TeamService
}

// NewHandler creates a new Handler instance.
func NewHandler(
	sessions *service.SessionStore,
	kits service.KitService,
	orders service.OrderService,
	wizards service.WizardService,
	teams service.TeamService,
) *Handler {
	return &Handler{
		sessions: sessions,
		kits:     kits,
		orders:   orders,
		wizards:  wizards,
		teams:    teams,
	}
}

// SessionState is the full customization state echoed back after every
// mutation, so clients need only one round trip per action.
// @Description Full customization state of one session
type SessionState struct {
	SessionID string            `json:"session_id"`
	Kit       model.KitState    `json:"kit"`
	Order     model.OrderLine   `json:"order"`
	Totals    model.OrderTotals `json:"totals"`
} // @name SessionState

// session resolves the session from the path, answering 404 when it is
// unknown or expired.
func (h *Handler) session(c *gin.Context, builder *ResponseBuilder) (*service.Session, bool) {
	sess, err := h.sessions.Get(c.Param("sessionID"))
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeySessionNotFound, err)
		return nil, false
	}
	return sess, true
}

// stateOf snapshots the session under its lock.
func (h *Handler) stateOf(sess *service.Session) SessionState {
	sess.Lock()
	kit := *sess.Kit
	order := make(model.OrderLine, len(sess.Order))
	for size, qty := range sess.Order {
		order[size] = qty
	}
	sess.Unlock()

	return SessionState{
		SessionID: sess.ID,
		Kit:       kit,
		Order:     order,
		Totals:    h.orders.Totals(sess),
	}
}

// CreateSession handles POST /api/sessions requests.
//
// @Summary      Start a customization session
// @Description  Creates a new session with the default kit state: white polo, auto emblem color, both placements visible at 100% scale, and an empty order.
// @Tags         Sessions
// @Produce      json
// @Success      201 {object} dto.SuccessResponse "Session created"
// @Failure      503 {object} dto.ErrorResponse "Session limit reached"
// @Router       /api/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, err := h.sessions.Create()
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessCreated(h.stateOf(sess))
}

// GetSession handles GET /api/sessions/{sessionID} requests.
//
// @Summary      Get session state
// @Description  Returns the full customization state of a session, including the derived order totals.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse "Session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID} [get]
func (h *Handler) GetSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	builder.SuccessOK(h.stateOf(sess))
}

// ResetSession handles POST /api/sessions/{sessionID}/reset requests.
//
// @Summary      Reset a session
// @Description  Restores a session to its initial state: fresh kit defaults, zeroed quantities, both wizards back at step one, and an empty team draft.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse "Reset session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/reset [post]
func (h *Handler) ResetSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}

	sess.Lock()
	sess.Reset()
	sess.Unlock()
	builder.SuccessOK(h.stateOf(sess))
}

// DeleteSession handles DELETE /api/sessions/{sessionID} requests.
//
// @Summary      End a session
// @Description  Removes the session and all of its state. Deleting an unknown session is not an error.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse "Session removed"
// @Router       /api/sessions/{sessionID} [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sessionID := c.Param("sessionID")
	h.sessions.Delete(sessionID)
	builder.SuccessOK(gin.H{"session_id": sessionID, "deleted": true})
}

// GetLayers handles GET /api/sessions/{sessionID}/layers requests.
//
// @Summary      Get the preview layer stack
// @Description  Computes the ordered layer sequence for the garment preview. Layers are always present in a fixed order; hidden ones are marked not visible.
// @Tags         Preview
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse "Layer stack"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/layers [get]
func (h *Handler) GetLayers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	builder.SuccessOK(gin.H{"layers": h.kits.Layers(sess)})
}
