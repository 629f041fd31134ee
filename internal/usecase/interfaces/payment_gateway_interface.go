package interfaces

import (
	"context"
	"fmt"
	"mollie_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts the Mollie payments API.
//
// Errors are returned as-is so callers see transport failures unchanged; API
// rejections surface as *GatewayError.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (entities.MolliePayment, error)
	GetPayment(ctx context.Context, paymentID string) (entities.MolliePayment, error)
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (entities.MollieCustomer, error)
}

// CreatePaymentRequest is the body of POST /payments.
type CreatePaymentRequest struct {
	Amount       entities.Amount `json:"amount"`
	Description  string          `json:"description"`
	RedirectURL  string          `json:"redirectUrl"`
	WebhookURL   string          `json:"webhookUrl"`
	Metadata     map[string]any  `json:"metadata,omitempty"`
	Method       string          `json:"method,omitempty"`
	CustomerID   string          `json:"customerId,omitempty"`
	SequenceType string          `json:"sequenceType,omitempty"`
}

// CreateCustomerRequest is the body of POST /customers.
type CreateCustomerRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// GatewayError is Mollie's problem+json error body.
type GatewayError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Field  string `json:"field,omitempty"`
}

func (e *GatewayError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("mollie: %d %s: %s (field %s)", e.Status, e.Title, e.Detail, e.Field)
	}
	return fmt.Sprintf("mollie: %d %s: %s", e.Status, e.Title, e.Detail)
}
