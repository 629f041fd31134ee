package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceType identifies where money for an order comes from.
//
// Codes are composed from the Mollie method: "mollie" or "mollie[<method>]".
// The name is only written when the type is first created.

type SourceType struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Source is one payment attempt against an order, identified by
// (source type, reference) where reference is the Mollie payment id.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_number-index): order_number
//   - GSI2 (type_reference-index): type_reference ("<code>#<reference>")

type Source struct {
	ID             string              `json:"id"`
	OrderNumber    string              `json:"order_number"`
	SourceTypeCode string              `json:"source_type_code"`
	Reference      string              `json:"reference"`
	Currency       string              `json:"currency"`
	AmountDebited  decimal.Decimal     `json:"amount_debited"`
	Transactions   []SourceTransaction `json:"transactions,omitempty"`
}

type SourceTransaction struct {
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

const TransactionTypeDebit = "Debit"
