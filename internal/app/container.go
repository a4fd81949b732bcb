package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/lamkn06/delivery-ops/internal/cache"
	"github.com/lamkn06/delivery-ops/internal/config"
	usersgw "github.com/lamkn06/delivery-ops/internal/gateway/users"
	"github.com/lamkn06/delivery-ops/internal/http/handlers"
	"github.com/lamkn06/delivery-ops/internal/http/middleware/ratelimit"
	"github.com/lamkn06/delivery-ops/internal/http/pprofserver"
	"github.com/lamkn06/delivery-ops/internal/http/router"
	"github.com/lamkn06/delivery-ops/internal/logx"
	"github.com/lamkn06/delivery-ops/internal/metrics"
	"github.com/lamkn06/delivery-ops/internal/repository"
	"github.com/lamkn06/delivery-ops/internal/service/delivery"
	"github.com/lamkn06/delivery-ops/internal/service/driver"
	"github.com/lamkn06/delivery-ops/internal/service/orders"
	"github.com/lamkn06/delivery-ops/internal/service/pricing"
	"github.com/lamkn06/delivery-ops/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
	worker    bool
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// ForWorker switches the builder to the worker wiring: no HTTP layer,
// plus the order event consumer.
func (b *ContainerBuilder) ForWorker() *ContainerBuilder {
	b.worker = true
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerCache(container); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if b.worker {
		if err := registerKafkaConsumer(container); err != nil {
			return nil, fmt.Errorf("kafka: %w", err)
		}
		return container, nil
	}
	if err := registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the HTTP service container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds and returns the worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().ForWorker().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerMetrics(container *dig.Container) error {
	provide := func(name string, provider any) error {
		if err := container.Provide(provider, dig.Name(name)); err != nil {
			return fmt.Errorf("provide %s: %w", name, err)
		}
		return nil
	}
	counters := map[string]any{
		"rate_limit_exceeded_total": func() prometheus.Counter {
			return registered(metrics.NewRateLimitExceededTotal())
		},
		"gateway_retries_total": func() prometheus.Counter {
			return registered(metrics.NewGatewayRetriesTotal())
		},
		"delivery_snapshot_hits_total": func() prometheus.Counter {
			return registered(metrics.NewSnapshotHitsTotal())
		},
		"delivery_snapshot_misses_total": func() prometheus.Counter {
			return registered(metrics.NewSnapshotMissesTotal())
		},
		"delivery_status_events_published_total": func() prometheus.Counter {
			return registered(metrics.NewStatusEventsPublishedTotal())
		},
		"delivery_status_transitions_total": func() *prometheus.CounterVec {
			return registered(metrics.NewStatusTransitionsTotal())
		},
		"order_events_total": func() *prometheus.CounterVec {
			return registered(metrics.NewOrderEventsTotal())
		},
	}
	for name, provider := range counters {
		if err := provide(name, provider); err != nil {
			return err
		}
	}
	return nil
}

type snapshotCacheIn struct {
	dig.In
	Client *redis.Client
	Cfg    *config.Config
	Logger logx.Logger
	Hits   prometheus.Counter `name:"delivery_snapshot_hits_total"`
	Misses prometheus.Counter `name:"delivery_snapshot_misses_total"`
}

func registerCache(container *dig.Container) error {
	return provideAll(container,
		func(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
			return cache.NewClient(ctx, cfg.Redis)
		},
		func(in snapshotCacheIn) *cache.DeliveryCache {
			return cache.NewDeliveryCache(in.Client, in.Cfg.Redis.SnapshotTTL, in.Logger, in.Hits, in.Misses)
		},
	)
}

type usersGatewayIn struct {
	dig.In
	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

func registerGateway(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) *usersgw.HTTPGateway {
			return usersgw.NewHTTPGateway(cfg.Users.BaseURL, 5*time.Second)
		},
		func(in usersGatewayIn, gw *usersgw.HTTPGateway) *usersgw.RetryingGateway {
			return usersgw.NewRetryingGateway(gw, in.Logger, in.Retries, usersgw.RetryConfig{
				MaxAttempts: in.Cfg.Users.MaxAttempts,
				BaseDelay:   in.Cfg.Users.BaseDelay,
				MaxDelay:    in.Cfg.Users.MaxDelay,
			})
		},
		usersgw.NewNameResolver,
	)
}

type statusProducerIn struct {
	dig.In
	Cfg       *config.Config
	Logger    logx.Logger
	Published prometheus.Counter `name:"delivery_status_events_published_total"`
}

type deliveryServiceIn struct {
	dig.In
	Repo        *repository.DeliveryRepo
	Cache       *cache.DeliveryCache
	Producer    *kafka.StatusProducer
	Resolver    *usersgw.NameResolver `optional:"true"`
	Transitions *prometheus.CounterVec `name:"delivery_status_transitions_total"`
	Cfg         *config.Config
	Logger      logx.Logger
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewDeliveryRepo,
		repository.NewDriverRepo,
		repository.NewPricingRepo,
		func(in statusProducerIn) (*kafka.StatusProducer, error) {
			return kafka.NewStatusProducer(in.Cfg.Kafka.Brokers, in.Cfg.Kafka.StatusTopic, in.Published, in.Logger)
		},
		func(in deliveryServiceIn) *delivery.Service {
			return delivery.NewService(
				in.Repo, in.Cache, in.Producer, in.Resolver, in.Transitions,
				in.Cfg.Delivery.OperationTimeout, in.Logger,
			)
		},
		func(repo *repository.DriverRepo, cfg *config.Config, logger logx.Logger) *driver.Service {
			return driver.NewService(repo, cfg.Delivery.OperationTimeout, logger)
		},
		func(repo *repository.PricingRepo, cfg *config.Config, logger logx.Logger) *pricing.Service {
			return pricing.NewService(repo, cfg.Delivery.OperationTimeout, logger)
		},
	)
}

type processorIn struct {
	dig.In
	Repo   *repository.DeliveryRepo
	Fees   *pricing.Service
	Cache  *cache.DeliveryCache
	Events *prometheus.CounterVec `name:"order_events_total"`
	Logger logx.Logger
}

func registerKafkaConsumer(container *dig.Container) error {
	return provideAll(container,
		func(in processorIn) *orders.Processor {
			return orders.NewProcessor(in.Repo, in.Fees, in.Cache, in.Events, in.Logger)
		},
		func(cfg *config.Config, p *orders.Processor, logger logx.Logger) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.OrdersTopic, p.Handle, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewDeliveryUsecase,
		handlers.NewDeliveryHandler,
		handlers.NewDriverUsecase,
		handlers.NewDriverHandler,
		handlers.NewQuoteUsecase,
		handlers.NewQuoteHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
	)
}

type routerIn struct {
	dig.In
	Logger    logx.Logger
	Base      *handlers.Handlers
	Delivery  *handlers.DeliveryHandler
	Driver    *handlers.DriverHandler
	Quote     *handlers.QuoteHandler
	RateLimit *ratelimit.Middleware
	Cfg       *config.Config
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:    in.Logger,
		Base:      in.Base,
		Delivery:  in.Delivery,
		Driver:    in.Driver,
		Quote:     in.Quote,
		RateLimit: in.RateLimit,
		JWTSecret: in.Cfg.Auth.Secret,
		Pprof:     pprofserver.Config{User: in.Cfg.Pprof.User, Pass: in.Cfg.Pprof.Pass},
	})
}
