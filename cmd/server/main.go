package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/hazelbrook/saffron/internal"
	"github.com/hazelbrook/saffron/internal/email"
	"github.com/hazelbrook/saffron/internal/handler/api"
	"github.com/hazelbrook/saffron/internal/middleware"
	"github.com/hazelbrook/saffron/internal/repository"
	"github.com/hazelbrook/saffron/internal/router"
	"github.com/hazelbrook/saffron/internal/routes"
	"github.com/hazelbrook/saffron/internal/service"
	"github.com/hazelbrook/saffron/internal/shipping"
	"github.com/hazelbrook/saffron/internal/telemetry"
	"github.com/hazelbrook/saffron/internal/worker"
)

func run() error {
	ctx := context.Background()

	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return fmt.Errorf("parse TAX_RATE: %w", err)
	}

	// Initialize Sentry error tracking
	sentryCleanup, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	defer sentryCleanup()

	// Run migrations through database/sql, then open the pgx pool the
	// application uses for queries.
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close migration connection: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("create connection pool: %w", err)
	}
	defer pool.Close()

	store := repository.NewStore(pool)

	// Initialize supporting services
	shippingProvider := shipping.NewCatalogProvider(store)

	sender := email.NewSMTPSenderFromConfig(&email.SMTPConfig{
		Host:     cfg.Email.Host,
		Port:     int(cfg.Email.Port),
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
		FromName: cfg.Email.FromName,
	})
	notifier := email.NewNotifier(sender, cfg.Email.From, cfg.Email.FromName)

	bizMetrics := telemetry.NewBusinessMetrics("saffron")

	// Initialize domain services
	orderService := service.NewOrderService(store, shippingProvider, notifier, bizMetrics, logger, taxRate)
	productService := service.NewProductService(store, bizMetrics, logger)
	userService := service.NewUserService(store, notifier, bizMetrics, logger)
	analyticsService := service.NewAnalyticsService(store, bizMetrics, logger)

	// Start the background scheduler for inventory sweeps and nightly rollups
	sched := worker.NewScheduler(analyticsService, worker.Config{RollupHourUTC: 2}, logger)
	go func() {
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler stopped", "error", err)
		}
	}()

	// Initialize handlers
	deps := routes.APIDeps{
		ProductHandler:   api.NewProductHandler(productService, logger),
		OrderHandler:     api.NewOrderHandler(orderService, logger),
		AccountHandler:   api.NewAccountHandler(userService, logger),
		AnalyticsHandler: api.NewAnalyticsHandler(analyticsService, logger),
		ShippingHandler:  api.NewShippingHandler(shippingProvider, logger),
	}

	// Initialize middleware
	httpMetrics := middleware.NewMetrics("saffron")

	securityConfig := middleware.DefaultSecurityHeadersConfig()
	if cfg.Env == "dev" {
		securityConfig.HSTSMaxAge = 0
	}

	defaultRateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	authRateLimiter := middleware.NewRateLimiter(middleware.StrictRateLimiterConfig())

	// Create router and register routes
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		middleware.WithRequestLogger(logger),
		httpMetrics.Middleware,
		middleware.SecurityHeaders(securityConfig),
		middleware.MaxBodySize(middleware.MaxJSONBody),
		middleware.Timeout(middleware.RequestTimeout),
		defaultRateLimiter.Middleware,
		router.Logger(logger),
	)

	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		promhttp.Handler().ServeHTTP(w, req)
	})
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterAPIRoutes(r, deps)

	// Credential endpoints get a stricter rate limit
	authRouter := r.Group(authRateLimiter.Middleware)
	routes.RegisterAuthRoutes(authRouter, deps)

	logger.Info("Starting server",
		"port", cfg.Port,
		"env", cfg.Env,
	)
	return http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), r)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
