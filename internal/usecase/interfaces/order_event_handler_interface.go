package interfaces

import (
	"context"
	"mollie_checkout/internal/domain/entities"
)

// IOrderEventHandler applies a validated order status transition and records
// an audit note. On success order.Status holds the new status.
type IOrderEventHandler interface {
	HandleOrderStatusChange(ctx context.Context, order *entities.Order, newStatus string, note string) error
}
