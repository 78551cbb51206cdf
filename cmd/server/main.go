// Package main starts the avoqado-web API: rate lookups, plan tiers, the website
// assistant and the demo request form.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"avoqado-web/internal/config"
	"avoqado-web/internal/database"
	"avoqado-web/internal/handlers"
	"avoqado-web/internal/middleware"
	"avoqado-web/internal/repositories"
	"avoqado-web/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run SQL migrations and seeds, then exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	if *migrateOnly {
		if err := runMigrations(cfg); err != nil {
			slog.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

func runMigrations(cfg *config.Config) error {
	sqlDB, err := database.OpenMigrationDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	runner := database.NewMigrationRunner(sqlDB, cfg.Database.SeedDatabase)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}
	if err := runner.RunMigrations(); err != nil {
		return err
	}
	return runner.LoadSeeds()
}

func newAIClient(ctx context.Context, cfg config.AIConfig) services.AIClientInterface {
	if !cfg.Enabled() {
		slog.Warn("no AI API key configured, the assistant will answer from local knowledge only")
		return nil
	}

	if cfg.Provider == config.AIProviderGemini {
		client, err := services.NewGenAIClient(ctx, cfg)
		if err != nil {
			slog.Error("failed to create Gemini client, AI answers disabled", "error", err)
			return nil
		}
		return client
	}

	return services.NewOpenAIClient(cfg)
}

func run(ctx context.Context, cfg *config.Config) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	leadRepo := repositories.NewLeadRepository(db.DB)

	rateService := services.NewRateService(metrics)
	planService := services.NewPlanService(rateService)

	aiClient := newAIClient(ctx, cfg.AI)
	breakerConfig := services.DefaultCircuitBreakerConfig("ai")
	breakerConfig.MaxFailures = cfg.AI.BreakerMaxFailures
	breakerConfig.ResetTimeout = cfg.AI.BreakerResetTimeout
	breaker := services.NewCircuitBreaker(breakerConfig, metrics)

	chatService := services.NewChatService(rateService, aiClient, breaker, metrics, cfg.Chat)
	leadService := services.NewLeadService(leadRepo, metrics, cfg.Contact, slog.Default())

	aiProvider := ""
	if aiClient != nil {
		aiProvider = aiClient.Provider()
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
	}))
	e.Use(echomiddleware.BodyLimit(cfg.Security.BodyLimit))

	limiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Run(ctx)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handlers.RegisterRoutes(e, handlers.Handlers{
		Health:  handlers.NewHealthCheckHandler(db, aiProvider),
		Pricing: handlers.NewPricingHandler(rateService, planService),
		Chat:    handlers.NewChatHandler(chatService, cfg.Chat.MaxMessageLength),
		Contact: handlers.NewContactHandler(leadService),
	}, limiter.Middleware())

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "env", cfg.Server.Environment, "ai", aiProvider)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
