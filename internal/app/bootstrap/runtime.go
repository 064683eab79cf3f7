package bootstrap

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/medibook/booking-platform/internal/api/router"
	"github.com/medibook/booking-platform/internal/availability"
	"github.com/medibook/booking-platform/internal/bookings"
	appconfig "github.com/medibook/booking-platform/internal/config"
	"github.com/medibook/booking-platform/internal/directory"
	"github.com/medibook/booking-platform/internal/events"
	"github.com/medibook/booking-platform/internal/http/handlers"
	"github.com/medibook/booking-platform/internal/observability/metrics"
	"github.com/medibook/booking-platform/internal/users"
	"github.com/medibook/booking-platform/pkg/logging"
)

// Runtime is the wired application: stores, ledger, service, and the HTTP
// handler. The API server and the Lambda entrypoint both build one of these
// so their behavior cannot drift apart.
type Runtime struct {
	Cfg    *appconfig.Config
	Logger *logging.Logger

	Redis    *redis.Client
	Doctors  directory.Repository
	Users    users.Repository
	Bookings bookings.Store
	Ledger   *availability.Ledger
	Service  *bookings.Service

	Handler http.Handler
}

// Build wires the runtime from configuration. The AWS config is passed in so
// callers control credential loading and endpoint overrides.
func Build(ctx context.Context, cfg *appconfig.Config, awsCfg aws.Config, logger *logging.Logger) (*Runtime, error) {
	if cfg == nil {
		return nil, errors.New("bootstrap: config required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	redisClient := buildRedisClient(ctx, cfg, logger)
	if redisClient == nil {
		return nil, errors.New("bootstrap: availability ledger requires redis (set REDIS_ADDR)")
	}

	var (
		doctorRepo directory.Repository
		userRepo   users.Repository
		store      bookings.Store
	)
	if cfg.UseMemoryStores {
		logger.Warn("using in-memory stores; data will not survive a restart")
		doctorRepo = directory.NewInMemoryRepository()
		userRepo = users.NewInMemoryRepository()
		store = bookings.NewInMemoryStore()
	} else {
		dynamoClient := dynamodb.NewFromConfig(awsCfg)
		doctorRepo = directory.NewDynamoStore(dynamoClient, cfg.DoctorsTable, cfg.SpecialtiesTable, logger)
		userRepo = users.NewDynamoStore(dynamoClient, cfg.UsersTable, logger)
		store = bookings.NewDynamoStore(dynamoClient, cfg.BookingsTable, logger)
	}

	var publisher *events.Publisher
	switch {
	case cfg.UseMemoryQueue:
		publisher = events.NewPublisher(events.NewMemoryQueue(), logger)
	case cfg.BookingEventsURL != "":
		sqsClient := sqs.NewFromConfig(awsCfg)
		publisher = events.NewPublisher(events.NewSQSQueue(sqsClient, cfg.BookingEventsURL), logger)
	default:
		logger.Info("booking event feed disabled")
	}

	ledger := availability.NewLedger(redisClient, doctorRepo, logger)
	svc := bookings.NewService(store, doctorRepo, ledger, publisher, logger)

	registry := prometheus.NewRegistry()
	bookingMetrics := metrics.NewBookingMetrics(registry)

	handler := router.New(&router.Config{
		Logger:              logger,
		AuthHandler:         handlers.NewAuthHandler(userRepo, cfg.AuthJWTSecret, cfg.TokenTTL, logger),
		DirectoryHandler:    handlers.NewDirectoryHandler(doctorRepo, logger),
		AvailabilityHandler: handlers.NewAvailabilityHandler(ledger, bookingMetrics, logger),
		BookingsHandler:     handlers.NewBookingsHandler(svc, userRepo, bookingMetrics, logger),
		AuthSecret:          cfg.AuthJWTSecret,
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		WriteRateLimit:      5,
		WriteRateBurst:      10,
	})

	return &Runtime{
		Cfg:      cfg,
		Logger:   logger,
		Redis:    redisClient,
		Doctors:  doctorRepo,
		Users:    userRepo,
		Bookings: store,
		Ledger:   ledger,
		Service:  svc,
		Handler:  handler,
	}, nil
}

// Close releases runtime resources.
func (r *Runtime) Close() error {
	if r == nil || r.Redis == nil {
		return nil
	}
	return r.Redis.Close()
}

// buildRedisClient returns a configured Redis client or nil when no address
// is set. A failed ping is logged but not fatal; the ledger surfaces errors
// per request.
func buildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *redis.Client {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping failed", "addr", cfg.RedisAddr, "error", err)
	}
	return client
}
