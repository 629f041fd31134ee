package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"mollie_checkout/internal/config"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	defaultTimeout   = 15 * time.Second
	mockCheckoutBase = "https://www.mollie.com/checkout/select-method/"
)

// MollieGateway talks to the Mollie v2 REST API. In mock mode it keeps
// payments and customers in memory and never leaves the process.
type MollieGateway struct {
	client *resty.Client
	logger *zap.Logger

	mockMode   bool
	mockStatus entities.MolliePaymentStatus
	mu         sync.Mutex
	seq        int
	payments   map[string]entities.MolliePayment
}

var _ interfaces.IPaymentGateway = (*MollieGateway)(nil)

func NewMollieGateway(cfg config.MollieConfig, logger *zap.Logger) (*MollieGateway, error) {
	logger = logger.Named("mollie_gateway")
	if cfg.MockMode {
		logger.Info("mock mode enabled", zap.String("mock_status", cfg.MockStatus))
		return &MollieGateway{
			logger:     logger,
			mockMode:   true,
			mockStatus: entities.MolliePaymentStatus(cfg.MockStatus),
			payments:   make(map[string]entities.MolliePayment),
		}, nil
	}

	if cfg.APIKey == "" {
		logger.Error("missing MOLLIE_API_KEY")
		return nil, config.ErrMissingMollieAPIKey
	}

	client := resty.New().
		SetBaseURL(cfg.APIURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Accept", "application/json").
		SetTimeout(defaultTimeout)
	logger.Info("Mollie client initialized", zap.String("api_url", cfg.APIURL))

	return &MollieGateway{client: client, logger: logger}, nil
}

func (g *MollieGateway) CreatePayment(ctx context.Context, req interfaces.CreatePaymentRequest) (entities.MolliePayment, error) {
	if g.mockMode {
		return g.mockCreatePayment(req)
	}

	var payment entities.MolliePayment
	if err := g.do(ctx, http.MethodPost, "/payments", nil, req, &payment); err != nil {
		g.logger.Error("create payment failed", zap.Error(err))
		return entities.MolliePayment{}, err
	}
	g.logger.Info("create payment success", zap.String("payment_id", payment.ID), zap.String("status", string(payment.Status)))
	return payment, nil
}

func (g *MollieGateway) GetPayment(ctx context.Context, paymentID string) (entities.MolliePayment, error) {
	if g.mockMode {
		return g.mockGetPayment(paymentID)
	}

	var payment entities.MolliePayment
	path := map[string]string{"paymentId": paymentID}
	if err := g.do(ctx, http.MethodGet, "/payments/{paymentId}", path, nil, &payment); err != nil {
		g.logger.Error("get payment failed", zap.String("payment_id", paymentID), zap.Error(err))
		return entities.MolliePayment{}, err
	}
	return payment, nil
}

func (g *MollieGateway) CreateCustomer(ctx context.Context, req interfaces.CreateCustomerRequest) (entities.MollieCustomer, error) {
	if g.mockMode {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.seq++
		return entities.MollieCustomer{ID: fmt.Sprintf("cst_mock%d", g.seq), Name: req.Name, Email: req.Email}, nil
	}

	var customer entities.MollieCustomer
	if err := g.do(ctx, http.MethodPost, "/customers", nil, req, &customer); err != nil {
		g.logger.Error("create customer failed", zap.Error(err))
		return entities.MollieCustomer{}, err
	}
	return customer, nil
}

// do sends one request. Path params are escaped into their path segment.
// Transport errors are returned unchanged; non-2xx responses become
// *interfaces.GatewayError.
func (g *MollieGateway) do(ctx context.Context, method, path string, pathParams map[string]string, body, result any) error {
	apiErr := &interfaces.GatewayError{}
	r := g.client.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetResult(result).
		SetError(apiErr)
	if body != nil {
		r.SetBody(body)
	}

	resp, err := r.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode()
		}
		if apiErr.Title == "" {
			apiErr.Title = http.StatusText(resp.StatusCode())
		}
		return apiErr
	}
	return nil
}

func (g *MollieGateway) mockCreatePayment(req interfaces.CreatePaymentRequest) (entities.MolliePayment, error) {
	var metadata json.RawMessage
	if req.Metadata != nil {
		b, err := json.Marshal(req.Metadata)
		if err != nil {
			return entities.MolliePayment{}, err
		}
		metadata = b
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	id := fmt.Sprintf("tr_mock%d", g.seq)
	now := time.Now().UTC()
	payment := entities.MolliePayment{
		ID:           id,
		Mode:         "test",
		Amount:       req.Amount,
		Description:  req.Description,
		Method:       req.Method,
		Status:       entities.MolliePaymentStatusOpen,
		Metadata:     metadata,
		CustomerID:   req.CustomerID,
		SequenceType: req.SequenceType,
		RedirectURL:  req.RedirectURL,
		WebhookURL:   req.WebhookURL,
		CreatedAt:    &now,
		Links: entities.PaymentLinks{
			Checkout: &entities.Link{Href: mockCheckoutBase + id, Type: "text/html"},
		},
	}
	g.payments[id] = payment
	g.logger.Info("mock create payment", zap.String("payment_id", id))
	return payment, nil
}

// mockGetPayment reports every known payment with the configured mock status.
func (g *MollieGateway) mockGetPayment(paymentID string) (entities.MolliePayment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	payment, ok := g.payments[paymentID]
	if !ok {
		return entities.MolliePayment{}, &interfaces.GatewayError{
			Status: http.StatusNotFound,
			Title:  "Not Found",
			Detail: fmt.Sprintf("No payment exists with token %s.", paymentID),
		}
	}
	payment.Status = g.mockStatus
	if g.mockStatus == entities.MolliePaymentStatusPaid && payment.PaidAt == nil {
		paidAt := time.Now().UTC()
		payment.PaidAt = &paidAt
		payment.Links.Checkout = nil
	}
	g.payments[paymentID] = payment
	return payment, nil
}
