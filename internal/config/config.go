package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"mollie_checkout/internal/domain/entities"
	"os"
	"strconv"
	"strings"
)

const (
	// WebhookPath is the fixed route Mollie posts status notifications to.
	WebhookPath = "/v1/mollie/webhook"

	defaultPort          = 8080
	defaultMollieAPIURL  = "https://api.mollie.com/v2"
	defaultOrderViewPath = "/accounts/orders/{order_number}/"
	defaultMockStatus    = "paid"

	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

var (
	ErrMissingMollieAPIKey     = errors.New("missing MOLLIE_API_KEY")
	ErrMissingSiteDomain       = errors.New("missing SITE_DOMAIN")
	ErrIncompleteStatusMapping = errors.New("MOLLIE_STATUS_MAPPING must map Paid, Pending, Open and Cancelled")
	ErrUnknownStoreBackend     = errors.New("STORE_BACKEND must be dynamodb or memory")
	ErrSeedWithoutMemoryStore  = errors.New("STORE_SEED_FILE requires STORE_BACKEND=memory")
)

// Config is read once at startup and treated as immutable afterwards.
type Config struct {
	Port int

	Mollie MollieConfig
	Site   SiteConfig

	// StatusMapping translates a classified Mollie status into an order status.
	StatusMapping map[entities.StatusCode]string
	// OrderPipeline lists the allowed next statuses per order status. Empty means unrestricted.
	OrderPipeline map[string][]string
	// DedupPaymentEvents skips recording a payment event when one already exists
	// for the same (reference, event type). Off by default.
	DedupPaymentEvents bool

	// StoreBackend is "dynamodb" (default) or "memory".
	StoreBackend string
	// StoreSeedFile is a JSON file of orders and sources loaded into the
	// memory backend at startup.
	StoreSeedFile string

	DynamoDB DynamoDBConfig
	Kafka    KafkaConfig
	Tracing  TracingConfig
}

type MollieConfig struct {
	APIKey     string
	APIURL     string
	HTTPS      bool
	MockMode   bool
	MockStatus string
}

type SiteConfig struct {
	Domain string
	// OrderViewPath is the customer "view order" route; {order_number} is substituted.
	OrderViewPath string
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string

	OrdersTable                 string
	SourcesTable                string
	SourceTypesTable            string
	PaymentEventTypesTable      string
	PaymentEventsTable          string
	PaymentEventQuantitiesTable string
}

type KafkaConfig struct {
	Broker       string
	PaymentTopic string
}

type TracingConfig struct {
	ServiceName    string
	JaegerEndpoint string
}

// Load builds the configuration from the environment (.env is loaded by cmd/api).
func Load() (Config, error) {
	cfg := Config{
		Port: defaultPort,
		Mollie: MollieConfig{
			APIKey:     strings.TrimSpace(os.Getenv("MOLLIE_API_KEY")),
			APIURL:     getenvDefault("MOLLIE_API_URL", defaultMollieAPIURL),
			HTTPS:      parseBool(os.Getenv("MOLLIE_HTTPS")),
			MockMode:   parseBool(os.Getenv("PAYMENT_GATEWAY_MOCK")) || parseBool(os.Getenv("MOLLIE_MOCK")),
			MockStatus: getenvDefault("MOLLIE_MOCK_STATUS", defaultMockStatus),
		},
		Site: SiteConfig{
			Domain:        strings.TrimSpace(os.Getenv("SITE_DOMAIN")),
			OrderViewPath: getenvDefault("ORDER_VIEW_PATH", defaultOrderViewPath),
		},
		StatusMapping:      DefaultStatusMapping(),
		DedupPaymentEvents: parseBool(os.Getenv("PAYMENT_EVENT_DEDUP")),
		StoreBackend:       strings.ToLower(getenvDefault("STORE_BACKEND", StoreDynamoDB)),
		StoreSeedFile:      strings.TrimSpace(os.Getenv("STORE_SEED_FILE")),
		DynamoDB: DynamoDBConfig{
			Region:                      getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:                    os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:                 getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:             getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			OrdersTable:                 getenvDefault("ORDERS_TABLE", "orders"),
			SourcesTable:                getenvDefault("SOURCES_TABLE", "payment_sources"),
			SourceTypesTable:            getenvDefault("SOURCE_TYPES_TABLE", "payment_source_types"),
			PaymentEventTypesTable:      getenvDefault("PAYMENT_EVENT_TYPES_TABLE", "payment_event_types"),
			PaymentEventsTable:          getenvDefault("PAYMENT_EVENTS_TABLE", "payment_events"),
			PaymentEventQuantitiesTable: getenvDefault("PAYMENT_EVENT_QUANTITIES_TABLE", "payment_event_quantities"),
		},
		Kafka: KafkaConfig{
			Broker:       os.Getenv("KAFKA_BROKER"),
			PaymentTopic: getenvDefault("KAFKA_PAYMENT_TOPIC", "payment-events"),
		},
		Tracing: TracingConfig{
			ServiceName:    getenvDefault("OTEL_SERVICE_NAME", "mollie-checkout"),
			JaegerEndpoint: os.Getenv("JAEGER_ENDPOINT"),
		},
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if !cfg.Mollie.MockMode && cfg.Mollie.APIKey == "" {
		return Config{}, ErrMissingMollieAPIKey
	}
	if cfg.Site.Domain == "" {
		return Config{}, ErrMissingSiteDomain
	}
	if cfg.StoreBackend != StoreDynamoDB && cfg.StoreBackend != StoreMemory {
		return Config{}, ErrUnknownStoreBackend
	}
	if cfg.StoreSeedFile != "" && cfg.StoreBackend != StoreMemory {
		return Config{}, ErrSeedWithoutMemoryStore
	}

	if raw := strings.TrimSpace(os.Getenv("MOLLIE_STATUS_MAPPING")); raw != "" {
		mapping, err := ParseStatusMapping(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.StatusMapping = mapping
	}

	if raw := strings.TrimSpace(os.Getenv("ORDER_STATUS_PIPELINE")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg.OrderPipeline); err != nil {
			return Config{}, fmt.Errorf("invalid ORDER_STATUS_PIPELINE: %w", err)
		}
	}

	return cfg, nil
}

// DefaultStatusMapping is used when MOLLIE_STATUS_MAPPING is not set.
func DefaultStatusMapping() map[entities.StatusCode]string {
	return map[entities.StatusCode]string{
		entities.StatusCodePaid:      "Paid",
		entities.StatusCodePending:   "Pending",
		entities.StatusCodeOpen:      "Pending",
		entities.StatusCodeCancelled: "Cancelled",
	}
}

// ParseStatusMapping decodes a JSON object such as
// {"Paid":"Being processed","Pending":"Pending","Open":"Pending","Cancelled":"Cancelled"}
// and rejects mappings that do not cover every status code.
func ParseStatusMapping(raw string) (map[entities.StatusCode]string, error) {
	var decoded map[string]string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("invalid MOLLIE_STATUS_MAPPING: %w", err)
	}

	mapping := make(map[entities.StatusCode]string, len(decoded))
	for k, v := range decoded {
		mapping[entities.StatusCode(k)] = v
	}
	for _, code := range entities.StatusCodes {
		if strings.TrimSpace(mapping[code]) == "" {
			return nil, fmt.Errorf("%w: missing %s", ErrIncompleteStatusMapping, code)
		}
	}
	return mapping, nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
