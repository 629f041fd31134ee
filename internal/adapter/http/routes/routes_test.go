package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mollie_checkout/internal/config"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestGetRoutes_SeededMemoryStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	seedFile := filepath.Join(t.TempDir(), "seed.json")
	seed := `{
		"orders": [{"number": "100023", "status": "Pending", "currency": "EUR",
			"lines": [{"id": "1", "title": "Mug", "quantity": 2}]}],
		"sources": [{"order_number": "100023", "source_type_code": "mollie",
			"reference": "tr_mock1", "currency": "EUR"}]
	}`
	if err := os.WriteFile(seedFile, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	cfg := config.Config{
		Mollie:        config.MollieConfig{MockMode: true, MockStatus: "paid"},
		Site:          config.SiteConfig{Domain: "shop.example.com", OrderViewPath: "/accounts/orders/{order_number}/"},
		StatusMapping: config.DefaultStatusMapping(),
		StoreBackend:  config.StoreMemory,
		StoreSeedFile: seedFile,
	}
	cleanup, err := getRoutes(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()

	req := httptest.NewRequest(http.MethodPost, "/v1/mollie/payments",
		bytes.NewBufferString(`{"order_number":"100023","total":"12.30","currency":"EUR"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create payment: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var created map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created["payment_id"] != "tr_mock1" {
		t.Fatalf("unexpected payment: %v", created)
	}

	form := url.Values{"id": {"tr_mock1"}}
	req = httptest.NewRequest(http.MethodPost, "/v1/mollie/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("webhook: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"status_code":"Paid"`) {
		t.Fatalf("unexpected webhook body: %s", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/mollie/orders/tr_mock1?order_number=100023", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"Paid"`) {
		t.Fatalf("unexpected order: %d %s", w.Code, w.Body.String())
	}
}

func TestNewMemoryStores_BadSeed(t *testing.T) {
	_, err := newMemoryStores(context.Background(), filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())
	if err == nil {
		t.Fatalf("expected error for missing seed file")
	}
}
