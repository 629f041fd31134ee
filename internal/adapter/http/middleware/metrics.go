package middleware

import (
	"context"
	"mollie_checkout/internal/domain/entities"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	molliePaymentUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mollie_payment_updates_total",
			Help: "Webhook-driven payment status updates by classified status code",
		},
		[]string{"status_code"},
	)

	molliePaymentsSucceededTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mollie_payments_succeeded_total",
			Help: "Paid Mollie payments debited on their order",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(molliePaymentUpdatesTotal)
	prometheus.MustRegister(molliePaymentsSucceededTotal)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

func RecordPaymentStatus(code entities.StatusCode) {
	molliePaymentUpdatesTotal.WithLabelValues(string(code)).Inc()
}

// CountPaymentSuccess matches usecase.PaymentSuccessListener.
func CountPaymentSuccess(_ context.Context, _ entities.Order, _ string) error {
	molliePaymentsSucceededTotal.Inc()
	return nil
}
