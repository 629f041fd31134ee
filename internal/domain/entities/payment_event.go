package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentEventType is keyed by name; the facade names event types after the
// order status at the moment the event is recorded.

type PaymentEventType struct {
	Name string `json:"name"`
}

// PaymentEvent is an append-only audit row; one is written per status update.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference-index): reference

type PaymentEvent struct {
	ID          string          `json:"id"`
	EventType   string          `json:"event_type"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference"`
	OrderNumber string          `json:"order_number"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PaymentEventQuantity links an event to an order line and its quantity.
type PaymentEventQuantity struct {
	ID       string `json:"id"`
	EventID  string `json:"event_id"`
	LineID   string `json:"line_id"`
	Quantity int    `json:"quantity"`
}
