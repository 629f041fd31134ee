package routes

import (
	"context"
	"errors"
	"log"
	_ "mollie_checkout/docs" // This will be auto-generated
	"mollie_checkout/internal/adapter/http/handlers"
	"mollie_checkout/internal/adapter/http/middleware"
	"mollie_checkout/internal/adapter/persistence/inmemory"
	repository2 "mollie_checkout/internal/adapter/persistence/repository"
	"mollie_checkout/internal/config"
	"mollie_checkout/internal/infrastructure/database"
	"mollie_checkout/internal/infrastructure/messaging"
	"mollie_checkout/internal/infrastructure/payments"
	"mollie_checkout/internal/usecase"
	"mollie_checkout/internal/usecase/interfaces"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

var router = gin.New()

const shutdownTimeout = 5 * time.Second

type stores struct {
	orders      interfaces.IOrderRepository
	sources     interfaces.ISourceRepository
	sourceTypes interfaces.ISourceTypeRepository
	events      interfaces.IPaymentEventRepository
}

// Run will start the server
func Run() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	shutdownTracing, err := middleware.InitTracing(cfg.Tracing.ServiceName, cfg.Tracing.JaegerEndpoint)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Failed to shutdown tracing", zap.Error(err))
		}
	}()

	setMiddlewares(cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", middleware.PrometheusHandler())

	cleanup, err := getRoutes(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
	defer cleanup()

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start REST server", zap.Error(err))
		}
	}()
	logger.Info("Mollie checkout service started", zap.Int("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

// getRoutes wires the payment facade and mounts the API. The returned func
// releases the Kafka producer, if one was opened.
func getRoutes(ctx context.Context, cfg config.Config, logger *zap.Logger) (func(), error) {
	st, err := newStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	gateway, err := payments.NewMollieGateway(cfg.Mollie, logger)
	if err != nil {
		return nil, err
	}

	facade := usecase.NewPaymentFacade(usecase.PaymentFacadeDeps{
		Gateway:      gateway,
		Orders:       st.orders,
		Sources:      st.sources,
		SourceTypes:  st.sourceTypes,
		Events:       st.events,
		EventHandler: usecase.NewOrderEventHandler(st.orders, cfg.OrderPipeline, logger),
	}, usecase.FacadeConfig{
		HTTPS:              cfg.Mollie.HTTPS,
		Domain:             cfg.Site.Domain,
		OrderViewPath:      cfg.Site.OrderViewPath,
		WebhookPath:        config.WebhookPath,
		StatusMapping:      cfg.StatusMapping,
		DedupPaymentEvents: cfg.DedupPaymentEvents,
	}, logger)
	facade.RegisterListener(middleware.CountPaymentSuccess)

	cleanup := func() {}
	if cfg.Kafka.Broker != "" {
		producer, err := messaging.InitProducer(cfg.Kafka, logger)
		if err != nil {
			return nil, err
		}
		publisher := messaging.NewPaymentPublisher(producer, cfg.Kafka.PaymentTopic, logger)
		facade.RegisterListener(publisher.OnPaymentSuccess)
		cleanup = func() {
			if err := producer.Close(); err != nil {
				logger.Error("Failed to close Kafka producer", zap.Error(err))
			}
		}
	}

	mollieHandler := handlers.NewMollieHandler(facade, logger, middleware.RecordPaymentStatus)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMollieRoutes(v1, mollieHandler)

	return cleanup, nil
}

func newStores(ctx context.Context, cfg config.Config, logger *zap.Logger) (stores, error) {
	if cfg.StoreBackend == config.StoreMemory {
		return newMemoryStores(ctx, cfg.StoreSeedFile, logger)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, logger)
	if err != nil {
		return stores{}, err
	}
	return stores{
		orders:      repository2.NewOrderDynamoRepository(ddb, cfg.DynamoDB.OrdersTable),
		sources:     repository2.NewSourceDynamoRepository(ddb, cfg.DynamoDB.SourcesTable),
		sourceTypes: repository2.NewSourceTypeDynamoRepository(ddb, cfg.DynamoDB.SourceTypesTable),
		events: repository2.NewPaymentEventDynamoRepository(ddb, repository2.PaymentEventTables{
			EventTypes: cfg.DynamoDB.PaymentEventTypesTable,
			Events:     cfg.DynamoDB.PaymentEventsTable,
			Quantities: cfg.DynamoDB.PaymentEventQuantitiesTable,
		}),
	}, nil
}

func newMemoryStores(ctx context.Context, seedFile string, logger *zap.Logger) (stores, error) {
	logger.Warn("using in-memory stores; data is lost on restart")
	orders, sources := inmemory.NewOrderRepository(), inmemory.NewSourceRepository()
	st := stores{
		orders:      orders,
		sources:     sources,
		sourceTypes: inmemory.NewSourceTypeRepository(),
		events:      inmemory.NewPaymentEventRepository(),
	}
	if seedFile == "" {
		return st, nil
	}

	seed, err := inmemory.LoadSeedFile(seedFile)
	if err != nil {
		return stores{}, err
	}
	if err := seed.Apply(ctx, orders, sources); err != nil {
		return stores{}, err
	}
	logger.Info("in-memory stores seeded",
		zap.String("file", seedFile),
		zap.Int("orders", len(seed.Orders)),
		zap.Int("sources", len(seed.Sources)),
	)
	return st, nil
}

func setMiddlewares(cfg config.Config, logger *zap.Logger) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())
}
