package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"mollie_checkout/internal/config"
	"mollie_checkout/internal/domain/entities"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const EventTypePaymentSuccessful = "payment_successful"

// PaymentSuccessEvent is the Kafka message emitted once a Mollie payment has
// been debited on its order.
//
// Listeners run before the order status is moved, so PreviousOrderStatus is
// the status the order had when the payment came in.
type PaymentSuccessEvent struct {
	EventType           string    `json:"event_type"`
	PaymentID           string    `json:"payment_id"`
	OrderNumber         string    `json:"order_number"`
	PreviousOrderStatus string    `json:"previous_order_status"`
	OccurredAt          time.Time `json:"occurred_at"`
}

func InitProducer(cfg config.KafkaConfig, logger *zap.Logger) (sarama.SyncProducer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer([]string{cfg.Broker}, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Info("Kafka producer initialized", zap.String("broker", cfg.Broker))
	return producer, nil
}

// PaymentPublisher forwards payment-success notifications to Kafka. Its
// OnPaymentSuccess method is registered as a facade listener.
type PaymentPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
	now      func() time.Time
}

func NewPaymentPublisher(producer sarama.SyncProducer, topic string, logger *zap.Logger) *PaymentPublisher {
	return &PaymentPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.Named("kafka"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (p *PaymentPublisher) OnPaymentSuccess(ctx context.Context, order entities.Order, paymentID string) error {
	eventJSON, err := json.Marshal(PaymentSuccessEvent{
		EventType:           EventTypePaymentSuccessful,
		PaymentID:           paymentID,
		OrderNumber:         order.Number,
		PreviousOrderStatus: order.Status,
		OccurredAt:          p.now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka message headers
	carrier := make(saramaHeaderCarrier, 0)
	otel.GetTextMapPropagator().Inject(ctx, &carrier)

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(order.Number),
		Value:   sarama.ByteEncoder(eventJSON),
		Headers: []sarama.RecordHeader(carrier),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	traceID := ""
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}
	p.logger.Info("payment event published",
		zap.String("trace_id", traceID),
		zap.String("topic", p.topic),
		zap.String("payment_id", paymentID),
		zap.String("order_number", order.Number),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

// saramaHeaderCarrier adapts Kafka record headers to propagation.TextMapCarrier.
type saramaHeaderCarrier []sarama.RecordHeader

func (c saramaHeaderCarrier) Get(key string) string {
	for _, h := range c {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *saramaHeaderCarrier) Set(key, value string) {
	*c = append(*c, sarama.RecordHeader{
		Key:   []byte(key),
		Value: []byte(value),
	})
}

func (c saramaHeaderCarrier) Keys() []string {
	keys := make([]string, len(c))
	for i, h := range c {
		keys[i] = string(h.Key)
	}
	return keys
}
