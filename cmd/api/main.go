package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/eventbook/internal/auth"
	"github.com/geocoder89/eventbook/internal/cache"
	"github.com/geocoder89/eventbook/internal/config"
	"github.com/geocoder89/eventbook/internal/db"
	"github.com/geocoder89/eventbook/internal/domain/booking"
	httpx "github.com/geocoder89/eventbook/internal/http"
	"github.com/geocoder89/eventbook/internal/http/handlers"
	"github.com/geocoder89/eventbook/internal/observability"
	"github.com/geocoder89/eventbook/internal/redisclient"
	"github.com/geocoder89/eventbook/internal/repo/memory"
	"github.com/geocoder89/eventbook/internal/repo/postgres"
	"github.com/geocoder89/eventbook/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/ulule/limiter/v3"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

// tokens are issued out of band, the api only verifies them
const accessTokenTTL = time.Hour

type eventsStore interface {
	service.EventsRepository
	booking.EventLookup
}

func main() {
	// Load the config set up
	cfg := config.Load()

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("api stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	if cfg.OTelEnabled {
		shutdown, err := observability.InitTracer(ctx, observability.TracerConfig{
			ServiceName: "eventbook-api",
			Env:         cfg.Env,
			Endpoint:    cfg.OTelEndpoint,
			SampleRatio: cfg.OTelSampleRatio,
		})
		if err != nil {
			return fmt.Errorf("init tracer: %w", err)
		}
		defer func() {
			sctx, cancel := config.WithTimeout(5 * time.Second)
			defer cancel()
			_ = shutdown(sctx)
		}()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	prom := observability.NewProm(reg)

	checks := map[string]handlers.CheckFunc{}

	var (
		eventsRepo   eventsStore
		bookingsRepo service.BookingsRepository
	)

	switch cfg.Storage {
	case config.StorageMemory:
		eventsRepo = memory.NewEventsRepo()
		bookingsRepo = memory.NewBookingsRepo()
		log.Warn("using in-memory storage, records are lost on restart")

	case config.StoragePostgres:
		pool, err := db.NewPool(ctx, cfg.DBURL, int32(cfg.DBMaxConns))
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("db migrate: %w", err)
		}

		eventsRepo = postgres.NewEventsRepo(pool, prom)
		bookingsRepo = postgres.NewBookingsRepo(pool, prom)
		checks["db"] = pool.Ping

	default:
		return fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}

	var (
		readCache      cache.Store = cache.NewMemory(cfg.CacheTTL)
		rateLimitStore limiter.Store
	)

	if cfg.RedisAddr != "" {
		rc := redisclient.New(redisclient.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rc.Close()

		if err := rc.Ping(ctx); err != nil {
			// reads fall through to storage until redis is back
			log.Warn("redis unreachable at startup", "addr", cfg.RedisAddr, "err", err)
		}

		readCache = cache.NewRedis(rc.Raw(), cfg.CacheTTL, log)
		checks["redis"] = rc.Ping

		store, err := redisstore.NewStoreWithOptions(rc.Raw(), limiter.StoreOptions{
			Prefix:   "eventbook:ratelimit",
			MaxRetry: 3,
		})
		if err != nil {
			return fmt.Errorf("rate limit store: %w", err)
		}
		rateLimitStore = store
	}

	router := httpx.NewRouter(httpx.RouterDeps{
		Env:                cfg.Env,
		Log:                log,
		Events:             service.NewEvents(eventsRepo, prom, log),
		Bookings:           service.NewBookings(bookingsRepo, eventsRepo, prom, log),
		Cache:              readCache,
		Checks:             checks,
		Tokens:             auth.NewManager(cfg.JWTSecret, accessTokenTTL),
		Prom:               prom,
		Gatherer:           reg,
		Tracing:            cfg.OTelEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		BookingRateLimit:   cfg.BookingRateLimit,
		RateLimitStore:     rateLimitStore,
		MaxBodyBytes:       cfg.MaxBodyBytes,
	})

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env, "storage", cfg.Storage)

		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown
	log.Info("server shutting down")

	sctx, cancel := config.WithTimeout(10 * time.Second)
	defer cancel()

	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("shutdown complete")

	return nil
}
