package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tribelet/kit-service/internal/domain/dto"
	"github.com/tribelet/kit-service/internal/domain/model"
	"github.com/tribelet/kit-service/internal/i18n"
)

// SetQuantity handles PUT /api/sessions/{sessionID}/quantities requests.
//
// @Summary      Set the quantity for a size
// @Description  Updates the quantity for one size of the order line. Negative quantities clamp to zero. The response carries the stored value and the re-derived totals.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.QuantityRequest true "Size and quantity"
// @Success      200 {object} dto.SuccessResponse "Updated session state"
// @Failure      400 {object} dto.ErrorResponse "Unknown size"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/quantities [put]
func (h *Handler) SetQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.QuantityRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	size := model.Size(req.Size)
	if !size.IsValid() {
		builder.ErrorWithMessage(http.StatusBadRequest, "size must be one of XS, S, M, L, XL, XXL", nil)
		return
	}

	h.orders.SetQuantity(sess, size, *req.Quantity)
	builder.SuccessOK(h.stateOf(sess))
}

// GetTotals handles GET /api/sessions/{sessionID}/totals requests.
//
// @Summary      Get order totals
// @Description  Derives the current pricing from the order line: item count, subtotal, tax, and total.
// @Tags         Orders
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse "Order totals"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/sessions/{sessionID}/totals [get]
func (h *Handler) GetTotals(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	builder.SuccessOK(h.orders.Totals(sess))
}

// PlaceOrder handles POST /api/sessions/{sessionID}/order requests.
//
// @Summary      Place the order
// @Description  Validates the order and builds its confirmation payload. The order is accepted once the payload is built; fulfillment notification and archival run best-effort afterwards. Supports idempotency via the Idempotency-Key header so a double-click cannot place two orders.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        sessionID path string true "Session ID"
// @Param        request body dto.PlaceOrderRequest true "Customer details"
// @Success      201 {object} dto.SuccessResponse "Order confirmation"
// @Failure      400 {object} dto.ErrorResponse "Empty order"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Kit type cannot be ordered"
// @Router       /api/sessions/{sessionID}/order [post]
func (h *Handler) PlaceOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sess, ok := h.session(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.PlaceOrderRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	payload, err := h.orders.Place(c.Request.Context(), sess, req.CustomerEmail, req.CustomerName)
	if err != nil {
		respondError(builder, err)
		return
	}

	locale := i18n.GetLocale(c)
	builder.SuccessCreated(gin.H{
		"message": i18n.GetTranslator().Translate(i18n.SuccessKeyOrderPlaced, locale),
		"order":   payload,
	})
}
