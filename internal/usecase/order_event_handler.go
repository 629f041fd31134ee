package usecase

import (
	"context"
	"errors"
	"fmt"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"
	"slices"
	"time"

	"go.uber.org/zap"
)

var ErrInvalidOrderStatus = errors.New("invalid order status transition")

// OrderEventHandler applies order status changes requested by the payment
// facade. Transitions are checked against the configured pipeline: a status
// listed in the pipeline may only move to one of its listed successors.
// Statuses absent from the pipeline, or an empty pipeline, are unrestricted.
type OrderEventHandler struct {
	orders   interfaces.IOrderRepository
	pipeline map[string][]string
	logger   *zap.Logger
	now      func() time.Time
}

var _ interfaces.IOrderEventHandler = (*OrderEventHandler)(nil)

func NewOrderEventHandler(orders interfaces.IOrderRepository, pipeline map[string][]string, logger *zap.Logger) *OrderEventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderEventHandler{
		orders:   orders,
		pipeline: pipeline,
		logger:   logger.Named("order_events"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (h *OrderEventHandler) HandleOrderStatusChange(ctx context.Context, order *entities.Order, newStatus string, note string) error {
	if err := h.validateTransition(order.Status, newStatus); err != nil {
		h.logger.Warn("order status change rejected",
			zap.String("order_number", order.Number),
			zap.String("from", order.Status),
			zap.String("to", newStatus),
		)
		return err
	}

	updated, err := h.orders.UpdateStatus(ctx, order.Number, newStatus, entities.OrderNote{
		Type:      entities.OrderNoteTypeSystem,
		Message:   note,
		CreatedAt: h.now(),
	})
	if err != nil {
		return err
	}
	if updated.Number == "" {
		return fmt.Errorf("%w: order %s", ErrOrderNotFound, order.Number)
	}

	h.logger.Info("order status changed",
		zap.String("order_number", order.Number),
		zap.String("from", order.Status),
		zap.String("to", newStatus),
	)
	*order = updated
	return nil
}

func (h *OrderEventHandler) validateTransition(from, to string) error {
	if from == to || len(h.pipeline) == 0 {
		return nil
	}
	allowed, ok := h.pipeline[from]
	if !ok {
		return nil
	}
	if !slices.Contains(allowed, to) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidOrderStatus, from, to)
	}
	return nil
}
