package usecase

import (
	"context"
	"errors"
	"fmt"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrMultipleOrdersFound  = errors.New("multiple orders found for transaction")
	ErrPaymentNotTakeable   = errors.New("unable to take payment")
	ErrStatusMappingMissing = errors.New("status code missing from status mapping")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidOrderNumber   = errors.New("invalid order number")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidRedirectURL   = errors.New("invalid redirect url")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
)

const (
	statusChangeNote               = "Mollie payment update"
	defaultFirstPaymentDescription = "First payment"
	orderNumberPlaceholder         = "{order_number}"

	sourceTypeCode = "mollie"
	sourceTypeName = "Mollie"
)

// PaymentSuccessListener is notified after a paid Mollie payment has been
// debited on its source. Errors are logged and never abort the caller.
type PaymentSuccessListener func(ctx context.Context, order entities.Order, paymentID string) error

// IPaymentFacade is the surface used by the HTTP handlers.
type IPaymentFacade interface {
	CreatePayment(ctx context.Context, in CreatePaymentInput) (string, error)
	CreateCheckout(ctx context.Context, in CreatePaymentInput) (paymentID, checkoutURL string, err error)
	CreateCustomer(ctx context.Context, name, email string) (string, error)
	CreateFirstRecurringPayment(ctx context.Context, in FirstRecurringPaymentInput) (string, error)
	GetPaymentURL(ctx context.Context, paymentID string) (string, error)
	GetOrder(ctx context.Context, paymentID, orderNumber, method string) (*entities.Order, error)
	UpdatePaymentStatus(ctx context.Context, paymentID string) (entities.StatusCode, error)
}

type CreatePaymentInput struct {
	OrderNumber string
	Total       decimal.Decimal
	Currency    string
	Method      string
	Description string
	// RedirectURL is a path on this site; empty means the order view page.
	RedirectURL string
}

type FirstRecurringPaymentInput struct {
	Amount      decimal.Decimal
	Currency    string
	CustomerID  string
	Description string
	RedirectURL string
}

// FacadeConfig carries the settings the facade reads once at construction.
type FacadeConfig struct {
	HTTPS              bool
	Domain             string
	OrderViewPath      string
	WebhookPath        string
	StatusMapping      map[entities.StatusCode]string
	DedupPaymentEvents bool
}

type PaymentFacadeDeps struct {
	Gateway      interfaces.IPaymentGateway
	Orders       interfaces.IOrderRepository
	Sources      interfaces.ISourceRepository
	SourceTypes  interfaces.ISourceTypeRepository
	Events       interfaces.IPaymentEventRepository
	EventHandler interfaces.IOrderEventHandler
}

// PaymentFacade translates Mollie payments into order, source and payment
// event updates.
type PaymentFacade struct {
	gateway      interfaces.IPaymentGateway
	orders       interfaces.IOrderRepository
	sources      interfaces.ISourceRepository
	sourceTypes  interfaces.ISourceTypeRepository
	events       interfaces.IPaymentEventRepository
	eventHandler interfaces.IOrderEventHandler

	cfg       FacadeConfig
	protocol  string
	listeners []PaymentSuccessListener
	logger    *zap.Logger

	now   func() time.Time
	newID func() string
}

var _ IPaymentFacade = (*PaymentFacade)(nil)

func NewPaymentFacade(deps PaymentFacadeDeps, cfg FacadeConfig, logger *zap.Logger) *PaymentFacade {
	if logger == nil {
		logger = zap.NewNop()
	}
	protocol := "http"
	if cfg.HTTPS {
		protocol = "https"
	}
	return &PaymentFacade{
		gateway:      deps.Gateway,
		orders:       deps.Orders,
		sources:      deps.Sources,
		sourceTypes:  deps.SourceTypes,
		events:       deps.Events,
		eventHandler: deps.EventHandler,
		cfg:          cfg,
		protocol:     protocol,
		logger:       logger.Named("facade"),
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}

// RegisterListener appends l; listeners run in registration order.
func (f *PaymentFacade) RegisterListener(l PaymentSuccessListener) {
	f.listeners = append(f.listeners, l)
}

func (f *PaymentFacade) CreatePayment(ctx context.Context, in CreatePaymentInput) (string, error) {
	payment, err := f.createOrderPayment(ctx, in)
	if err != nil {
		return "", err
	}
	return payment.ID, nil
}

// CreateCheckout is CreatePayment plus the hosted checkout URL from the
// create response. The URL is empty when Mollie sent no checkout link.
func (f *PaymentFacade) CreateCheckout(ctx context.Context, in CreatePaymentInput) (string, string, error) {
	payment, err := f.createOrderPayment(ctx, in)
	if err != nil {
		return "", "", err
	}
	return payment.ID, payment.CheckoutURL(), nil
}

func (f *PaymentFacade) createOrderPayment(ctx context.Context, in CreatePaymentInput) (entities.MolliePayment, error) {
	orderNumber := strings.TrimSpace(in.OrderNumber)
	if orderNumber == "" {
		return entities.MolliePayment{}, ErrInvalidOrderNumber
	}
	f.logger.Info("create payment start", zap.String("order_number", orderNumber), zap.String("method", in.Method))

	redirectPath := in.RedirectURL
	if redirectPath == "" {
		redirectPath = f.orderViewPath(orderNumber)
	}
	description := in.Description
	if description == "" {
		description = defaultDescription(orderNumber)
	}

	payment, err := f.gateway.CreatePayment(ctx, interfaces.CreatePaymentRequest{
		Amount:      toAmount(in.Total, in.Currency),
		Description: description,
		RedirectURL: f.createURL(redirectPath),
		WebhookURL:  f.webhookURL(),
		Metadata:    map[string]any{"order_nr": orderNumber},
		Method:      in.Method,
	})
	if err != nil {
		f.logger.Error("create payment failed", zap.String("order_number", orderNumber), zap.Error(err))
		return entities.MolliePayment{}, err
	}
	f.logger.Info("create payment success", zap.String("order_number", orderNumber), zap.String("payment_id", payment.ID))
	return payment, nil
}

func (f *PaymentFacade) CreateCustomer(ctx context.Context, name, email string) (string, error) {
	customer, err := f.gateway.CreateCustomer(ctx, interfaces.CreateCustomerRequest{Name: name, Email: email})
	if err != nil {
		f.logger.Error("create customer failed", zap.Error(err))
		return "", err
	}
	f.logger.Info("create customer success", zap.String("customer_id", customer.ID))
	return customer.ID, nil
}

// CreateFirstRecurringPayment starts a recurring mandate. Unlike CreatePayment it
// carries no order metadata.
func (f *PaymentFacade) CreateFirstRecurringPayment(ctx context.Context, in FirstRecurringPaymentInput) (string, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return "", ErrInvalidCustomerID
	}
	if strings.TrimSpace(in.RedirectURL) == "" {
		return "", ErrInvalidRedirectURL
	}
	description := in.Description
	if description == "" {
		description = defaultFirstPaymentDescription
	}

	payment, err := f.gateway.CreatePayment(ctx, interfaces.CreatePaymentRequest{
		Amount:       toAmount(in.Amount, in.Currency),
		Description:  description,
		RedirectURL:  f.createURL(in.RedirectURL),
		WebhookURL:   f.webhookURL(),
		CustomerID:   customerID,
		SequenceType: entities.SequenceTypeFirst,
	})
	if err != nil {
		f.logger.Error("create first recurring payment failed", zap.String("customer_id", customerID), zap.Error(err))
		return "", err
	}
	f.logger.Info("create first recurring payment success", zap.String("customer_id", customerID), zap.String("payment_id", payment.ID))
	return payment.ID, nil
}

// GetPaymentURL returns the hosted checkout URL of a payment.
func (f *PaymentFacade) GetPaymentURL(ctx context.Context, paymentID string) (string, error) {
	payment, err := f.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return "", err
	}
	return payment.CheckoutURL(), nil
}

// GetOrder resolves by order number when one is given, otherwise by the
// source matching (source type for method, paymentID).
func (f *PaymentFacade) GetOrder(ctx context.Context, paymentID, orderNumber, method string) (*entities.Order, error) {
	if orderNumber != "" {
		order, err := f.orders.GetByNumber(ctx, orderNumber)
		if err != nil {
			return nil, err
		}
		if order.Number == "" {
			return nil, fmt.Errorf("%w: order %s for transaction %s", ErrOrderNotFound, orderNumber, paymentID)
		}
		return &order, nil
	}

	sourceType, err := f.DeriveSourceType(ctx, method)
	if err != nil {
		return nil, err
	}
	sources, err := f.sources.ListByTypeAndReference(ctx, sourceType.Code, paymentID)
	if err != nil {
		return nil, err
	}

	numbers := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		numbers[s.OrderNumber] = struct{}{}
	}
	if len(numbers) == 0 {
		return nil, fmt.Errorf("%w: transaction %s", ErrOrderNotFound, paymentID)
	}
	if len(numbers) > 1 {
		return nil, fmt.Errorf("%w: transaction %s matches %d orders", ErrMultipleOrdersFound, paymentID, len(numbers))
	}

	order, err := f.orders.GetByNumber(ctx, sources[0].OrderNumber)
	if err != nil {
		return nil, err
	}
	if order.Number == "" {
		return nil, fmt.Errorf("%w: transaction %s", ErrOrderNotFound, paymentID)
	}
	return &order, nil
}

// UpdatePaymentStatus re-fetches the payment from Mollie and brings the local
// order in line with it. Every call records a payment event, including for
// statuses that did not change since the previous notification.
func (f *PaymentFacade) UpdatePaymentStatus(ctx context.Context, paymentID string) (entities.StatusCode, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return "", ErrInvalidPaymentID
	}
	f.logger.Info("update payment status start", zap.String("payment_id", paymentID))

	payment, err := f.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		f.logger.Error("fetching payment failed", zap.String("payment_id", paymentID), zap.Error(err))
		return "", err
	}
	amount, err := decimal.NewFromString(payment.Amount.Value)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidPaymentAmount, payment.Amount.Value, err)
	}
	method := payment.Method

	order, err := f.GetOrder(ctx, paymentID, payment.OrderNumber(), method)
	if err != nil {
		f.logger.Warn("resolving order failed", zap.String("payment_id", paymentID), zap.Error(err))
		return "", err
	}

	statusCode := classifyPayment(payment)
	if statusCode == entities.StatusCodePaid {
		if err := f.CompleteOrder(ctx, order, amount, paymentID, statusCode, method); err != nil {
			f.logger.Error("complete order failed", zap.String("payment_id", paymentID), zap.String("order_number", order.Number), zap.Error(err))
			return "", err
		}
	}

	if err := f.UpdateOrderStatus(ctx, order, statusCode); err != nil {
		f.logger.Error("update order status failed", zap.String("payment_id", paymentID), zap.String("order_number", order.Number), zap.Error(err))
		return "", err
	}
	if err := f.RecordPaymentEvent(ctx, order, amount, paymentID); err != nil {
		f.logger.Error("record payment event failed", zap.String("payment_id", paymentID), zap.String("order_number", order.Number), zap.Error(err))
		return "", err
	}

	f.logger.Info("update payment status success",
		zap.String("payment_id", paymentID),
		zap.String("order_number", order.Number),
		zap.String("status_code", string(statusCode)),
		zap.String("order_status", order.Status),
	)
	return statusCode, nil
}

// CompleteOrder debits the order's source for reference and notifies the
// payment-success listeners.
func (f *PaymentFacade) CompleteOrder(ctx context.Context, order *entities.Order, amount decimal.Decimal, reference string, statusCode entities.StatusCode, method string) error {
	sourceType, err := f.DeriveSourceType(ctx, method)
	if err != nil {
		return err
	}
	source, err := f.sources.GetForOrder(ctx, order.Number, sourceType.Code, reference)
	if err != nil {
		return err
	}
	if source.ID == "" {
		return fmt.Errorf("%w: order %s has no %s source for transaction %s", ErrPaymentNotTakeable, order.Number, sourceType.Code, reference)
	}

	if _, err := f.sources.Debit(ctx, source.ID, amount, reference, string(statusCode)); err != nil {
		return err
	}
	f.logger.Info("source debited",
		zap.String("order_number", order.Number),
		zap.String("source_id", source.ID),
		zap.String("amount", amount.String()),
	)

	f.notifyPaymentSuccess(ctx, *order, reference)
	return nil
}

// UpdateOrderStatus maps statusCode through the configured table. A missing
// entry is a configuration error and is never defaulted.
func (f *PaymentFacade) UpdateOrderStatus(ctx context.Context, order *entities.Order, statusCode entities.StatusCode) error {
	newStatus, ok := f.cfg.StatusMapping[statusCode]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStatusMappingMissing, statusCode)
	}
	return f.eventHandler.HandleOrderStatusChange(ctx, order, newStatus, statusChangeNote)
}

// RecordPaymentEvent writes one payment event typed by the order's current
// status, plus one quantity row per order line. All lines are assumed to be
// part of the payment.
func (f *PaymentFacade) RecordPaymentEvent(ctx context.Context, order *entities.Order, amount decimal.Decimal, reference string) error {
	eventType, err := f.events.GetOrCreateEventType(ctx, order.Status)
	if err != nil {
		return err
	}

	if f.cfg.DedupPaymentEvents {
		exists, err := f.events.ExistsForReference(ctx, reference, eventType.Name)
		if err != nil {
			return err
		}
		if exists {
			f.logger.Info("payment event deduplicated", zap.String("reference", reference), zap.String("event_type", eventType.Name))
			return nil
		}
	}

	event, err := f.events.CreateEvent(ctx, entities.PaymentEvent{
		ID:          f.newID(),
		EventType:   eventType.Name,
		Amount:      amount,
		Reference:   reference,
		OrderNumber: order.Number,
		CreatedAt:   f.now(),
	})
	if err != nil {
		return err
	}

	for _, line := range order.Lines {
		if _, err := f.events.CreateEventQuantity(ctx, entities.PaymentEventQuantity{
			ID:       f.newID(),
			EventID:  event.ID,
			LineID:   line.ID,
			Quantity: line.Quantity,
		}); err != nil {
			return err
		}
	}
	return nil
}

// DeriveSourceType get-or-creates "mollie" or "mollie[<method>]".
func (f *PaymentFacade) DeriveSourceType(ctx context.Context, method string) (entities.SourceType, error) {
	code, name := sourceTypeFor(method)
	return f.sourceTypes.GetOrCreate(ctx, code, name)
}

func (f *PaymentFacade) notifyPaymentSuccess(ctx context.Context, order entities.Order, paymentID string) {
	for i, listener := range f.listeners {
		f.sendRobust(ctx, i, listener, order, paymentID)
	}
}

func (f *PaymentFacade) sendRobust(ctx context.Context, idx int, listener PaymentSuccessListener, order entities.Order, paymentID string) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("payment success listener panicked",
				zap.Int("listener", idx),
				zap.String("payment_id", paymentID),
				zap.Any("panic", r),
			)
		}
	}()
	if err := listener(ctx, order, paymentID); err != nil {
		f.logger.Error("payment success listener failed",
			zap.Int("listener", idx),
			zap.String("payment_id", paymentID),
			zap.Error(err),
		)
	}
}

func (f *PaymentFacade) createURL(path string) string {
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	return fmt.Sprintf("%s://%s%s", f.protocol, f.cfg.Domain, path)
}

func (f *PaymentFacade) webhookURL() string {
	return f.createURL(f.cfg.WebhookPath)
}

func (f *PaymentFacade) orderViewPath(orderNumber string) string {
	return strings.ReplaceAll(f.cfg.OrderViewPath, orderNumberPlaceholder, url.PathEscape(orderNumber))
}

func classifyPayment(p entities.MolliePayment) entities.StatusCode {
	switch {
	case p.IsPaid():
		return entities.StatusCodePaid
	case p.IsPending():
		return entities.StatusCodePending
	case p.IsOpen():
		return entities.StatusCodeOpen
	default:
		return entities.StatusCodeCancelled
	}
}

func sourceTypeFor(method string) (code, name string) {
	if method == "" {
		return sourceTypeCode, sourceTypeName
	}
	return fmt.Sprintf("%s[%s]", sourceTypeCode, method), fmt.Sprintf("%s[%s]", sourceTypeName, method)
}

func defaultDescription(orderNumber string) string {
	return fmt.Sprintf("Order %s", orderNumber)
}

// toAmount renders value with exactly two decimals, rounding half to even.
func toAmount(value decimal.Decimal, currency string) entities.Amount {
	return entities.Amount{Currency: currency, Value: value.StringFixedBank(2)}
}
