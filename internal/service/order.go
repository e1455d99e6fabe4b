package service

import (
	"context"
	"crypto/rand"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/tribelet/kit-service/internal/domain/model"
	"github.com/tribelet/kit-service/internal/metrics"
	"github.com/tribelet/kit-service/internal/repository"
)

// Default pricing. A single garment price applies across sizes.
const (
	DefaultUnitPrice = 25.00
	DefaultTaxRate   = 0.10
)

// ErrEmptyOrder is returned when an order is placed with no items.
var ErrEmptyOrder = errors.New("order has no items")

// ErrKitNotOrderable is returned when the selected kit type cannot be ordered.
var ErrKitNotOrderable = errors.New("kit type is not orderable")

const orderIDPrefix = "TBL-"
const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const orderIDLength = 9

// OrderService derives pricing and places orders for a session.
type OrderService interface {
	SetQuantity(sess *Session, size model.Size, quantity int) int
	Totals(sess *Session) model.OrderTotals
	Place(ctx context.Context, sess *Session, customerEmail, customerName string) (*model.OrderPayload, error)
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	unitPrice float64
	taxRate   float64
	notifier  OrderNotifier
	orderRepo repository.OrderRepositoryInterface
}

// NewOrderService creates an order service. Notifier and repository are
// optional; placement succeeds locally without them.
func NewOrderService(unitPrice, taxRate float64, notifier OrderNotifier, orderRepo repository.OrderRepositoryInterface) OrderService {
	if unitPrice <= 0 {
		unitPrice = DefaultUnitPrice
	}
	if taxRate < 0 {
		taxRate = DefaultTaxRate
	}
	return &OrderServiceImpl{
		unitPrice: unitPrice,
		taxRate:   taxRate,
		notifier:  notifier,
		orderRepo: orderRepo,
	}
}

// SetQuantity updates the quantity for one size and returns the stored
// value after clamping.
func (s *OrderServiceImpl) SetQuantity(sess *Session, size model.Size, quantity int) int {
	sess.Lock()
	defer sess.Unlock()
	return sess.Order.SetQuantity(size, quantity)
}

// Totals derives pricing for the session's current order line.
func (s *OrderServiceImpl) Totals(sess *Session) model.OrderTotals {
	sess.Lock()
	defer sess.Unlock()
	return s.totalsLocked(sess)
}

func (s *OrderServiceImpl) totalsLocked(sess *Session) model.OrderTotals {
	items := sess.Order.TotalItems()
	subtotal := float64(items) * s.unitPrice
	tax := subtotal * s.taxRate
	return model.OrderTotals{
		TotalItems: items,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      subtotal + tax,
	}
}

// Place validates the order and builds its payload, then hands it to
// the notifier and the archive. Placement is two-phase: the order is
// accepted once the payload is built, and downstream failures are
// logged without failing the request.
func (s *OrderServiceImpl) Place(ctx context.Context, sess *Session, customerEmail, customerName string) (*model.OrderPayload, error) {
	sess.Lock()
	kit := sess.Kit
	totals := s.totalsLocked(sess)

	if !kit.KitType.Orderable() {
		sess.Unlock()
		metrics.RecordOrder("rejected")
		return nil, ErrKitNotOrderable
	}
	if totals.TotalItems == 0 {
		sess.Unlock()
		metrics.RecordOrder("rejected")
		return nil, ErrEmptyOrder
	}

	payload := s.buildPayload(sess, totals, customerEmail, customerName)
	sess.Unlock()

	metrics.RecordOrder("placed")
	log.Info().
		Str("order_id", payload.OrderID).
		Int("total_items", payload.Quantities.TotalItems()).
		Float64("total", payload.Total).
		Msg("Order placed")

	if s.notifier != nil {
		if err := s.notifier.NotifyOrder(ctx, payload); err != nil {
			log.Error().Err(err).Str("order_id", payload.OrderID).Msg("Order notification failed")
		}
	}
	if s.orderRepo != nil {
		if err := s.orderRepo.Save(ctx, payload); err != nil {
			log.Error().Err(err).Str("order_id", payload.OrderID).Msg("Order archive failed")
		}
	}

	return payload, nil
}

// buildPayload snapshots the kit state into an order payload. Back-print
// text over the word limit is suppressed from the payload the same way
// it is suppressed from the preview. Callers must hold the session lock.
func (s *OrderServiceImpl) buildPayload(sess *Session, totals model.OrderTotals, customerEmail, customerName string) *model.OrderPayload {
	kit := sess.Kit

	quantities := make(model.OrderLine, len(sess.Order))
	for size, qty := range sess.Order {
		quantities[size] = qty
	}

	payload := &model.OrderPayload{
		OrderID:       NewOrderID(),
		CustomerEmail: customerEmail,
		CustomerName:  customerName,

		KitType:       kit.KitType,
		TeamwearColor: string(kit.Color),
		EmblemColor:   string(kit.Emblem.Resolve(kit.Color)),
		TeamName:      kit.TeamName,
		DesignName:    kit.DesignName,

		FrontImage:        kit.Front.Visible && !kit.EffectiveImage(model.PlacementFront).IsEmpty(),
		BackImage:         kit.Back.Visible && !kit.EffectiveImage(model.PlacementBack).IsEmpty(),
		BackPrintEnabled:  kit.BackPrint.RenderVisible(),
		BackPrintPosition: kit.BackPrint.PositionPercent,

		Quantities: quantities,
		Subtotal:   totals.Subtotal,
		Tax:        totals.Tax,
		Total:      totals.Total,
	}
	if payload.BackPrintEnabled {
		payload.BackPrintText = kit.BackPrint.Text
	}
	return payload
}

// NewOrderID generates an order reference: "TBL-" followed by nine
// random uppercase alphanumerics.
func NewOrderID() string {
	buf := make([]byte, orderIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; fall back
		// to a fixed suffix rather than panic on an order.
		return orderIDPrefix + "000000000"
	}
	for i, b := range buf {
		buf[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}
	return orderIDPrefix + string(buf)
}
