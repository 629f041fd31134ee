package handlers

import (
	"errors"
	request "mollie_checkout/internal/adapter/http/dto/request"
	response "mollie_checkout/internal/adapter/http/dto/response"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase"
	"mollie_checkout/internal/usecase/interfaces"
	"mollie_checkout/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidAmount  = pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be positive", http.StatusBadRequest)
)

// StatusRecorder observes the classified status of every processed webhook.
type StatusRecorder func(entities.StatusCode)

// MollieHandler exposes the payment facade over HTTP: checkout creation for
// the storefront and the webhook Mollie calls on status changes.
type MollieHandler struct {
	facade       usecase.IPaymentFacade
	logger       *zap.Logger
	recordStatus StatusRecorder
}

func NewMollieHandler(facade usecase.IPaymentFacade, logger *zap.Logger, recordStatus StatusRecorder) *MollieHandler {
	if recordStatus == nil {
		recordStatus = func(entities.StatusCode) {}
	}
	return &MollieHandler{facade: facade, logger: logger.Named("mollie_handler"), recordStatus: recordStatus}
}

// Webhook godoc
// @Summary      Mollie payment webhook
// @Description  Re-fetches the payment from Mollie and updates the matching order.
// @Tags         mollie
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id  formData  string  true  "Mollie payment id"
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /mollie/webhook [post]
func (h *MollieHandler) Webhook(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBind(&payload); err != nil {
		h.logger.Warn("webhook without payment id", zap.Error(err))
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	code, err := h.facade.UpdatePaymentStatus(c.Request.Context(), payload.ID)
	if err != nil {
		h.logger.Error("webhook failed", zap.String("payment_id", payload.ID), zap.Error(err))
		h.abort(c, err)
		return
	}
	h.recordStatus(code)
	h.logger.Info("webhook processed", zap.String("payment_id", payload.ID), zap.String("status_code", string(code)))

	c.JSON(http.StatusOK, response.WebhookResponse{PaymentID: payload.ID, StatusCode: string(code)})
}

// CreatePayment godoc
// @Summary      Create a Mollie payment for an order
// @Tags         mollie
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreatePaymentRequest  true  "Payment"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /mollie/payments [post]
func (h *MollieHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidAmount.HTTPStatus, errInvalidAmount.ToHTTPError())
		return
	}

	paymentID, checkoutURL, err := h.facade.CreateCheckout(c.Request.Context(), in)
	if err != nil {
		h.abort(c, err)
		return
	}
	if checkoutURL == "" {
		h.logger.Warn("created payment has no checkout link", zap.String("payment_id", paymentID))
	}

	c.JSON(http.StatusCreated, response.PaymentResponse{PaymentID: paymentID, CheckoutURL: checkoutURL})
}

// CreateFirstRecurringPayment godoc
// @Summary      Create the first payment of a recurring mandate
// @Tags         mollie
// @Accept       json
// @Produce      json
// @Param        payload  body      request.FirstRecurringPaymentRequest  true  "First payment"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /mollie/payments/first [post]
func (h *MollieHandler) CreateFirstRecurringPayment(c *gin.Context) {
	var payload request.FirstRecurringPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidAmount.HTTPStatus, errInvalidAmount.ToHTTPError())
		return
	}

	paymentID, err := h.facade.CreateFirstRecurringPayment(c.Request.Context(), in)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.PaymentResponse{PaymentID: paymentID})
}

// GetCheckoutURL godoc
// @Summary      Get the hosted checkout URL of a payment
// @Tags         mollie
// @Produce      json
// @Param        payment_id  path      string  true  "Mollie payment id"
// @Success      200         {object}  response.CheckoutURLResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /mollie/payments/{payment_id}/checkout-url [get]
func (h *MollieHandler) GetCheckoutURL(c *gin.Context) {
	paymentID := c.Param("payment_id")
	checkoutURL, err := h.facade.GetPaymentURL(c.Request.Context(), paymentID)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CheckoutURLResponse{PaymentID: paymentID, CheckoutURL: checkoutURL})
}

// CreateCustomer godoc
// @Summary      Create a Mollie customer
// @Tags         mollie
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateCustomerRequest  true  "Customer"
// @Success      201      {object}  response.CustomerResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /mollie/customers [post]
func (h *MollieHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	customerID, err := h.facade.CreateCustomer(c.Request.Context(), payload.Name, payload.Email)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.CustomerResponse{CustomerID: customerID})
}

// GetOrder godoc
// @Summary      Resolve the order a Mollie payment belongs to
// @Tags         mollie
// @Produce      json
// @Param        payment_id    path      string  true   "Mollie payment id"
// @Param        order_number  query     string  false  "Order number; skips the source lookup"
// @Param        method        query     string  false  "Mollie method used to pick the source type"
// @Success      200           {object}  response.OrderResponse
// @Failure      404           {object}  pkg.HTTPError
// @Failure      409           {object}  pkg.HTTPError
// @Router       /mollie/orders/{payment_id} [get]
func (h *MollieHandler) GetOrder(c *gin.Context) {
	var query request.GetOrderQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	order, err := h.facade.GetOrder(c.Request.Context(), c.Param("payment_id"), query.OrderNumber, query.Method)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(*order))
}

func (h *MollieHandler) abort(c *gin.Context, err error) {
	appErr := mapMollieError(err)
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapMollieError(err error) *pkg.AppError {
	var gwErr *interfaces.GatewayError
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidRedirectURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMultipleOrdersFound):
		return pkg.NewDomainErrorSimple("MULTIPLE_ORDERS_FOUND", "Transaction matches more than one order", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Order cannot move to the requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotTakeable):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_TAKEABLE", "Unable to take payment", http.StatusUnprocessableEntity)
	case errors.As(err, &gwErr) && gwErr.Status == http.StatusNotFound:
		return pkg.NewDomainError("PAYMENT_NOT_FOUND", "Payment not found", err, http.StatusNotFound)
	case errors.As(err, &gwErr), errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
