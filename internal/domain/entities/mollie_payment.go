package entities

import (
	"encoding/json"
	"time"
)

// MolliePaymentStatus is the raw status string reported by the Mollie API.

type MolliePaymentStatus string

const (
	MolliePaymentStatusOpen       MolliePaymentStatus = "open"
	MolliePaymentStatusPending    MolliePaymentStatus = "pending"
	MolliePaymentStatusAuthorized MolliePaymentStatus = "authorized"
	MolliePaymentStatusPaid       MolliePaymentStatus = "paid"
	MolliePaymentStatusCanceled   MolliePaymentStatus = "canceled"
	MolliePaymentStatusExpired    MolliePaymentStatus = "expired"
	MolliePaymentStatusFailed     MolliePaymentStatus = "failed"
)

// StatusCode is the local classification of a Mollie payment. Every gateway
// status collapses into exactly one of these four codes.

type StatusCode string

const (
	StatusCodePaid      StatusCode = "Paid"
	StatusCodePending   StatusCode = "Pending"
	StatusCodeOpen      StatusCode = "Open"
	StatusCodeCancelled StatusCode = "Cancelled"
)

var StatusCodes = []StatusCode{StatusCodePaid, StatusCodePending, StatusCodeOpen, StatusCodeCancelled}

const SequenceTypeFirst = "first"

type Amount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

// MolliePayment mirrors the subset of the Mollie payment resource this service reads.
type MolliePayment struct {
	ID           string              `json:"id"`
	Mode         string              `json:"mode,omitempty"`
	Amount       Amount              `json:"amount"`
	Description  string              `json:"description"`
	Method       string              `json:"method,omitempty"`
	Status       MolliePaymentStatus `json:"status"`
	Metadata     json.RawMessage     `json:"metadata,omitempty"`
	CustomerID   string              `json:"customerId,omitempty"`
	SequenceType string              `json:"sequenceType,omitempty"`
	RedirectURL  string              `json:"redirectUrl,omitempty"`
	WebhookURL   string              `json:"webhookUrl,omitempty"`
	CreatedAt    *time.Time          `json:"createdAt,omitempty"`
	PaidAt       *time.Time          `json:"paidAt,omitempty"`
	Links        PaymentLinks        `json:"_links"`
}

type PaymentLinks struct {
	Checkout *Link `json:"checkout,omitempty"`
}

type Link struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

// IsPaid matches the gateway client's notion of "paid": a paidAt timestamp is
// set, which stays true for payments that were later refunded.
func (p MolliePayment) IsPaid() bool {
	return p.PaidAt != nil || p.Status == MolliePaymentStatusPaid
}

func (p MolliePayment) IsPending() bool {
	return p.Status == MolliePaymentStatusPending
}

func (p MolliePayment) IsOpen() bool {
	return p.Status == MolliePaymentStatusOpen
}

func (p MolliePayment) CheckoutURL() string {
	if p.Links.Checkout == nil {
		return ""
	}
	return p.Links.Checkout.Href
}

// OrderNumber extracts metadata.order_nr. Missing or malformed metadata yields "".
func (p MolliePayment) OrderNumber() string {
	if len(p.Metadata) == 0 {
		return ""
	}
	var meta map[string]json.RawMessage
	if err := json.Unmarshal(p.Metadata, &meta); err != nil {
		return ""
	}
	raw, ok := meta["order_nr"]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// MollieCustomer is the subset of the customer resource returned on creation.
type MollieCustomer struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
