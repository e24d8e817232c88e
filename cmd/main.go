package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sflix-catalog-service/internal/catalog"
	"sflix-catalog-service/internal/config"
	"sflix-catalog-service/internal/database"
	"sflix-catalog-service/internal/gemini"
	"sflix-catalog-service/internal/handler"
	"sflix-catalog-service/internal/middleware"
	"sflix-catalog-service/internal/repository"
	"sflix-catalog-service/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL for the audit log (optional)
	var (
		auditLog    service.AuditLog
		auditReader handler.AuditReader
	)
	if cfg.DB.Enabled {
		db, err := database.NewPostgres(ctx, cfg.DB)
		if err != nil {
			slog.Error("failed to connect to PostgreSQL", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		repo := repository.NewRecommendationRepository(db)
		auditLog, auditReader = repo, repo
	} else {
		slog.Info("DB_HOST not set, recommendation audit log disabled")
	}

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache and rate limiting", "error", err)
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// Catalog
	store, err := catalog.NewStore()
	if err != nil {
		slog.Error("failed to create catalog", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Recommendation gateway
	geminiClient := gemini.NewClient(cfg.Gemini)
	if !geminiClient.Configured() {
		slog.Warn("API_KEY not set, recommendations disabled")
	}
	recs := service.NewRecommendationService(geminiClient, service.NewRedisCache(rdb), auditLog, cfg.Recommendation)
	feed := service.NewFeedService(store, recs)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SFLIX Catalog Service",
		ServerHeader: "SFLIX-Catalog",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: handler.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger docs
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger.yaml not found, swagger UI will be unavailable", "error", err)
	} else {
		handler.RegisterSwagger(app, swaggerYAML)
	}

	limiter := middleware.NewRateLimiter(rdb, "recommendations", cfg.RateLimit.Max, cfg.RateLimit.WindowSeconds)
	handler.RegisterRoutes(app, handler.Handlers{
		Titles:          handler.NewTitleHandler(store),
		Feed:            handler.NewFeedHandler(ctx, feed),
		Recommendations: handler.NewRecommendationHandler(store, recs, auditReader),
		Profiles:        handler.NewProfileHandler(store),
		Session:         handler.NewSessionHandler(store),
	}, limiter.Handler())

	// Initial generated rows
	go feed.LoadDynamicRows(ctx)

	// Start server
	addr := ":" + cfg.Port
	go func() {
		slog.Info("starting catalog service", "addr", addr)
		if err := app.Listen(addr); err != nil {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	slog.Info("shutting down catalog service...")

	if err := app.Shutdown(); err != nil {
		slog.Error("error shutting down HTTP server", "error", err)
	}
	slog.Info("HTTP server stopped")
}
