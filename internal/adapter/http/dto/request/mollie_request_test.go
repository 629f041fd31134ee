package request

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreatePaymentRequest_ToInput(t *testing.T) {
	var r CreatePaymentRequest
	if err := json.Unmarshal([]byte(`{"order_number":" 100023 ","total":"12.3","currency":"eur","method":" ideal "}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.OrderNumber != "100023" || in.Currency != "EUR" || in.Method != "ideal" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if !in.Total.Equal(decimal.RequireFromString("12.3")) {
		t.Fatalf("unexpected total: %s", in.Total)
	}

	var numeric CreatePaymentRequest
	if err := json.Unmarshal([]byte(`{"order_number":"1","total":10.5,"currency":"EUR"}`), &numeric); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !numeric.Total.Equal(decimal.RequireFromString("10.5")) {
		t.Fatalf("unexpected numeric total: %s", numeric.Total)
	}

	_, err = CreatePaymentRequest{OrderNumber: "1", Currency: "EUR"}.ToInput()
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestFirstRecurringPaymentRequest_ToInput(t *testing.T) {
	r := FirstRecurringPaymentRequest{
		CustomerID:  " cst_1 ",
		Amount:      decimal.RequireFromString("0.01"),
		Currency:    "eur",
		RedirectURL: " /subscriptions/done/ ",
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.CustomerID != "cst_1" || in.Currency != "EUR" || in.RedirectURL != "/subscriptions/done/" {
		t.Fatalf("unexpected input: %+v", in)
	}

	r.Amount = decimal.NewFromInt(-1)
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
