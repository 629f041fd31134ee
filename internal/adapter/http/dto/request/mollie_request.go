package request

import (
	"errors"
	"mollie_checkout/internal/usecase"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// CreatePaymentRequest starts a Mollie checkout for an existing order.
//
// total accepts a JSON string ("12.30") or number (12.3).
type CreatePaymentRequest struct {
	OrderNumber string          `json:"order_number" binding:"required"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency" binding:"required,len=3"`
	Method      string          `json:"method"`
	Description string          `json:"description"`
	RedirectURL string          `json:"redirect_url"`
}

func (r CreatePaymentRequest) ToInput() (usecase.CreatePaymentInput, error) {
	if !r.Total.IsPositive() {
		return usecase.CreatePaymentInput{}, ErrInvalidAmount
	}
	return usecase.CreatePaymentInput{
		OrderNumber: strings.TrimSpace(r.OrderNumber),
		Total:       r.Total,
		Currency:    strings.ToUpper(r.Currency),
		Method:      strings.TrimSpace(r.Method),
		Description: r.Description,
		RedirectURL: strings.TrimSpace(r.RedirectURL),
	}, nil
}

type FirstRecurringPaymentRequest struct {
	CustomerID  string          `json:"customer_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency" binding:"required,len=3"`
	Description string          `json:"description"`
	RedirectURL string          `json:"redirect_url" binding:"required"`
}

func (r FirstRecurringPaymentRequest) ToInput() (usecase.FirstRecurringPaymentInput, error) {
	if !r.Amount.IsPositive() {
		return usecase.FirstRecurringPaymentInput{}, ErrInvalidAmount
	}
	return usecase.FirstRecurringPaymentInput{
		Amount:      r.Amount,
		Currency:    strings.ToUpper(r.Currency),
		CustomerID:  strings.TrimSpace(r.CustomerID),
		Description: r.Description,
		RedirectURL: strings.TrimSpace(r.RedirectURL),
	}, nil
}

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

// WebhookRequest is the form Mollie posts on every status change. It only
// carries the payment id; the status is always re-fetched.
type WebhookRequest struct {
	ID string `form:"id" binding:"required"`
}

type GetOrderQuery struct {
	OrderNumber string `form:"order_number"`
	Method      string `form:"method"`
}
