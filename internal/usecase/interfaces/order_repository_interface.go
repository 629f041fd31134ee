package interfaces

import (
	"context"
	"mollie_checkout/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for orders.
//
// Lookups return a zero Order (empty Number) and a nil error when nothing matches.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByNumber(ctx context.Context, number string) (entities.Order, error)
	UpdateStatus(ctx context.Context, number string, status string, note entities.OrderNote) (entities.Order, error)
}
