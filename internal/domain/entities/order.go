package entities

import "time"

// Order is the local order a Mollie payment is taken for.
//
// Storage model (DynamoDB):
//   - PK: number
//
// Lines are embedded in the order item; sources live in their own table because
// they are looked up by (source_type, reference) when a webhook arrives.

type Order struct {
	Number    string      `json:"number"`
	Status    string      `json:"status"`
	Currency  string      `json:"currency"`
	Lines     []OrderLine `json:"lines"`
	Notes     []OrderNote `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type OrderLine struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// OrderNote is the audit message written alongside a status change.
type OrderNote struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

const OrderNoteTypeSystem = "System"
