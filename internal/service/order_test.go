package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribelet/kit-service/internal/domain/model"
)

var orderIDPattern = regexp.MustCompile(`^TBL-[A-Z0-9]{9}$`)

func newOrderableSession(t *testing.T) *Session {
	t.Helper()
	sess := newSession()
	require.NoError(t, sess.Kit.SetKitType(model.KitPolo))
	return sess
}

func TestOrderService_Totals(t *testing.T) {
	svc := NewOrderService(0, 0, nil, nil)
	sess := newSession()

	tests := []struct {
		name       string
		quantities map[model.Size]int
		items      int
		subtotal   float64
		tax        float64
		total      float64
	}{
		{name: "empty order", quantities: nil},
		{
			name:       "single size",
			quantities: map[model.Size]int{"M": 2},
			items:      2, subtotal: 50.00, tax: 5.00, total: 55.00,
		},
		{
			name:       "mixed sizes",
			quantities: map[model.Size]int{"M": 2, "L": 1},
			items:      3, subtotal: 75.00, tax: 7.50, total: 82.50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess.Order = model.NewOrderLine()
			for size, qty := range tt.quantities {
				svc.SetQuantity(sess, size, qty)
			}

			totals := svc.Totals(sess)
			assert.Equal(t, tt.items, totals.TotalItems)
			assert.InDelta(t, tt.subtotal, totals.Subtotal, 0.001)
			assert.InDelta(t, tt.tax, totals.Tax, 0.001)
			assert.InDelta(t, tt.total, totals.Total, 0.001)
		})
	}
}

func TestOrderService_CustomPricing(t *testing.T) {
	svc := NewOrderService(10.00, 0.20, nil, nil)
	sess := newSession()
	svc.SetQuantity(sess, "S", 5)

	totals := svc.Totals(sess)
	assert.InDelta(t, 50.00, totals.Subtotal, 0.001)
	assert.InDelta(t, 10.00, totals.Tax, 0.001)
	assert.InDelta(t, 60.00, totals.Total, 0.001)
}

func TestOrderService_Place(t *testing.T) {
	svc := NewOrderService(0, 0, nil, nil)
	sess := newOrderableSession(t)
	svc.SetQuantity(sess, "M", 2)

	payload, err := svc.Place(context.Background(), sess, "user@example.com", "Sam Doe")
	require.NoError(t, err)

	assert.Regexp(t, orderIDPattern, payload.OrderID)
	assert.Equal(t, "user@example.com", payload.CustomerEmail)
	assert.Equal(t, model.KitPolo, payload.KitType)
	assert.Equal(t, "white", payload.TeamwearColor)
	assert.Equal(t, "black", payload.EmblemColor)
	assert.Equal(t, 2, payload.Quantities["M"])
	assert.InDelta(t, 55.00, payload.Total, 0.001)
	assert.False(t, payload.FrontImage)
	assert.False(t, payload.BackPrintEnabled)
}

func TestOrderService_Place_EmptyOrder(t *testing.T) {
	svc := NewOrderService(0, 0, nil, nil)
	sess := newOrderableSession(t)

	_, err := svc.Place(context.Background(), sess, "user@example.com", "")
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestOrderService_Place_NotOrderable(t *testing.T) {
	svc := NewOrderService(0, 0, nil, nil)
	sess := newSession()
	require.NoError(t, sess.Kit.SetKitType(model.KitTShirt))
	svc.SetQuantity(sess, "M", 1)

	_, err := svc.Place(context.Background(), sess, "user@example.com", "")
	assert.ErrorIs(t, err, ErrKitNotOrderable)
}

func TestOrderService_Place_BackPrintSuppression(t *testing.T) {
	svc := NewOrderService(0, 0, nil, nil)
	sess := newOrderableSession(t)
	svc.SetQuantity(sess, "M", 1)
	sess.Kit.SetBackPrintEnabled(true)
	require.NoError(t, sess.Kit.SetBackPrintText("ONE TWO THREE FOUR"))

	payload, err := svc.Place(context.Background(), sess, "user@example.com", "")
	require.NoError(t, err)

	// Over-limit text is suppressed from the payload, same as the preview.
	assert.False(t, payload.BackPrintEnabled)
	assert.Empty(t, payload.BackPrintText)

	require.NoError(t, sess.Kit.SetBackPrintText("GO TEAM"))
	payload, err = svc.Place(context.Background(), sess, "user@example.com", "")
	require.NoError(t, err)
	assert.True(t, payload.BackPrintEnabled)
	assert.Equal(t, "GO TEAM", payload.BackPrintText)
}

func TestOrderService_Place_Notifies(t *testing.T) {
	received := make(chan model.OrderPayload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload model.OrderPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewHTTPOrderNotifier(server.URL, 0)
	svc := NewOrderService(0, 0, notifier, nil)
	sess := newOrderableSession(t)
	svc.SetQuantity(sess, "L", 1)

	payload, err := svc.Place(context.Background(), sess, "user@example.com", "")
	require.NoError(t, err)

	notified := <-received
	assert.Equal(t, payload.OrderID, notified.OrderID)
	assert.InDelta(t, payload.Total, notified.Total, 0.001)
}

func TestOrderService_Place_NotifierFailureDoesNotFailOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := NewHTTPOrderNotifier(server.URL, 0)
	svc := NewOrderService(0, 0, notifier, nil)
	sess := newOrderableSession(t)
	svc.SetQuantity(sess, "M", 1)

	_, err := svc.Place(context.Background(), sess, "user@example.com", "")
	assert.NoError(t, err)
}

func TestNewOrderID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewOrderID()
		assert.Regexp(t, orderIDPattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1)
}
