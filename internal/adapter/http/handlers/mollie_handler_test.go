package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mollie_checkout/internal/adapter/http/handlers/mocks"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase"
	"mollie_checkout/internal/usecase/interfaces"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newMollieRouter(h *MollieHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/mollie/webhook", h.Webhook)
	r.POST("/v1/mollie/payments", h.CreatePayment)
	r.POST("/v1/mollie/payments/first", h.CreateFirstRecurringPayment)
	r.GET("/v1/mollie/payments/:payment_id/checkout-url", h.GetCheckoutURL)
	r.POST("/v1/mollie/customers", h.CreateCustomer)
	r.GET("/v1/mollie/orders/:payment_id", h.GetOrder)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMollieHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		w := postForm(r, "/v1/mollie/webhook", url.Values{})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success records status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		var recorded []entities.StatusCode
		h := NewMollieHandler(facade, zap.NewNop(), func(code entities.StatusCode) { recorded = append(recorded, code) })
		r := newMollieRouter(h)

		facade.EXPECT().UpdatePaymentStatus(gomock.Any(), "tr_1").Return(entities.StatusCodePaid, nil)

		w := postForm(r, "/v1/mollie/webhook", url.Values{"id": {"tr_1"}})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["payment_id"] != "tr_1" || body["status_code"] != string(entities.StatusCodePaid) {
			t.Fatalf("unexpected body: %v", body)
		}
		if len(recorded) != 1 || recorded[0] != entities.StatusCodePaid {
			t.Fatalf("unexpected recorded statuses: %v", recorded)
		}
	})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"order not found", usecase.ErrOrderNotFound, http.StatusNotFound},
		{"multiple orders", fmt.Errorf("wrapped: %w", usecase.ErrMultipleOrdersFound), http.StatusConflict},
		{"not takeable", usecase.ErrPaymentNotTakeable, http.StatusUnprocessableEntity},
		{"pipeline rejected", usecase.ErrInvalidOrderStatus, http.StatusConflict},
		{"unknown payment", &interfaces.GatewayError{Status: http.StatusNotFound, Title: "Not Found"}, http.StatusNotFound},
		{"gateway unavailable", &interfaces.GatewayError{Status: http.StatusServiceUnavailable}, http.StatusBadGateway},
		{"mapping missing", usecase.ErrStatusMappingMissing, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			facade := mocks.NewMockIPaymentFacade(ctrl)
			recorded := 0
			h := NewMollieHandler(facade, zap.NewNop(), func(entities.StatusCode) { recorded++ })
			r := newMollieRouter(h)

			facade.EXPECT().UpdatePaymentStatus(gomock.Any(), "tr_1").Return(entities.StatusCode(""), tc.err)

			w := postForm(r, "/v1/mollie/webhook", url.Values{"id": {"tr_1"}})
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			if recorded != 0 {
				t.Fatalf("failed updates must not be recorded")
			}
		})
	}
}

func TestMollieHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		w := postJSON(r, "/v1/mollie/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non positive total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		w := postJSON(r, "/v1/mollie/payments", `{"order_number":"100023","total":"0","currency":"EUR"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		facade.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreatePaymentInput) (string, string, error) {
			if in.OrderNumber != "100023" || in.Currency != "EUR" || !in.Total.Equal(decimal.RequireFromString("12.345")) {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "tr_1", "https://www.mollie.com/checkout/tr_1", nil
		})

		w := postJSON(r, "/v1/mollie/payments", `{"order_number":"100023","total":"12.345","currency":"eur"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "tr_1" || body["checkout_url"] != "https://www.mollie.com/checkout/tr_1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("no checkout link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		facade.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return("tr_1", "", nil)

		w := postJSON(r, "/v1/mollie/payments", `{"order_number":"100023","total":10,"currency":"EUR"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "checkout_url") {
			t.Fatalf("checkout_url must be omitted: %s", w.Body.String())
		}
	})

	t.Run("gateway rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		facade.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return("", "", &interfaces.GatewayError{Status: http.StatusUnprocessableEntity, Field: "amount.value"})

		w := postJSON(r, "/v1/mollie/payments", `{"order_number":"100023","total":10,"currency":"EUR"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestMollieHandler_CreateFirstRecurringPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing redirect url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		w := postJSON(r, "/v1/mollie/payments/first", `{"customer_id":"cst_1","amount":"1.00","currency":"EUR"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		facade.EXPECT().CreateFirstRecurringPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.FirstRecurringPaymentInput) (string, error) {
			if in.CustomerID != "cst_1" || in.RedirectURL != "https://shop.example.com/thanks" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "tr_first", nil
		})

		w := postJSON(r, "/v1/mollie/payments/first", `{"customer_id":"cst_1","amount":"1.00","currency":"EUR","redirect_url":"https://shop.example.com/thanks"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"payment_id":"tr_first"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMollieHandler_GetCheckoutURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		facade.EXPECT().GetPaymentURL(gomock.Any(), "tr_1").Return("https://www.mollie.com/checkout/tr_1", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/mollie/payments/tr_1/checkout-url", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		facade.EXPECT().GetPaymentURL(gomock.Any(), "tr_x").Return("", &interfaces.GatewayError{Status: http.StatusNotFound})

		req := httptest.NewRequest(http.MethodGet, "/v1/mollie/payments/tr_x/checkout-url", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMollieHandler_CreateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		w := postJSON(r, "/v1/mollie/customers", `{"name":"Jane","email":"not-an-email"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		facade.EXPECT().CreateCustomer(gomock.Any(), "Jane", "jane@example.com").Return("cst_1", nil)

		w := postJSON(r, "/v1/mollie/customers", `{"name":"Jane","email":"jane@example.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"customer_id":"cst_1"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMollieHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("by order number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		facade.EXPECT().GetOrder(gomock.Any(), "tr_1", "100023", "ideal").Return(&entities.Order{Number: "100023", Status: "Pending", Currency: "EUR"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/mollie/orders/tr_1?order_number=100023&method=ideal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"order_number":"100023"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		facade := mocks.NewMockIPaymentFacade(ctrl)
		r := newMollieRouter(NewMollieHandler(facade, zap.NewNop(), nil))

		facade.EXPECT().GetOrder(gomock.Any(), "tr_1", "", "").Return(nil, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/mollie/orders/tr_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapMollieError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{usecase.ErrInvalidPaymentID, http.StatusBadRequest},
		{usecase.ErrInvalidRedirectURL, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentAmount, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapMollieError(tc.err).HTTPStatus; got != tc.want {
			t.Fatalf("mapMollieError(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
