package response

import (
	"mollie_checkout/internal/domain/entities"
	"time"
)

type PaymentResponse struct {
	PaymentID   string `json:"payment_id"`
	CheckoutURL string `json:"checkout_url,omitempty"`
}

type CheckoutURLResponse struct {
	PaymentID   string `json:"payment_id"`
	CheckoutURL string `json:"checkout_url"`
}

type CustomerResponse struct {
	CustomerID string `json:"customer_id"`
}

type WebhookResponse struct {
	PaymentID  string `json:"payment_id"`
	StatusCode string `json:"status_code"`
}

type OrderLineResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

type OrderNoteResponse struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderResponse struct {
	OrderNumber string              `json:"order_number"`
	Status      string              `json:"status"`
	Currency    string              `json:"currency"`
	Lines       []OrderLineResponse `json:"lines"`
	Notes       []OrderNoteResponse `json:"notes"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	resp := OrderResponse{
		OrderNumber: o.Number,
		Status:      o.Status,
		Currency:    o.Currency,
		Lines:       make([]OrderLineResponse, 0, len(o.Lines)),
		Notes:       make([]OrderNoteResponse, 0, len(o.Notes)),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	for _, l := range o.Lines {
		resp.Lines = append(resp.Lines, OrderLineResponse{ID: l.ID, Title: l.Title, Quantity: l.Quantity})
	}
	for _, n := range o.Notes {
		resp.Notes = append(resp.Notes, OrderNoteResponse{Type: n.Type, Message: n.Message, CreatedAt: n.CreatedAt})
	}
	return resp
}
