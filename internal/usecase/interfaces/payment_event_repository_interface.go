package interfaces

import (
	"context"
	"mollie_checkout/internal/domain/entities"
)

// IPaymentEventRepository persists the payment audit trail. Rows are never
// updated or deleted.
type IPaymentEventRepository interface {
	GetOrCreateEventType(ctx context.Context, name string) (entities.PaymentEventType, error)
	CreateEvent(ctx context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error)
	CreateEventQuantity(ctx context.Context, q entities.PaymentEventQuantity) (entities.PaymentEventQuantity, error)
	ExistsForReference(ctx context.Context, reference, eventType string) (bool, error)
}
