package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	json "github.com/goccy/go-json"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	analyticsHttp "castboard/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "castboard/internal/analytics/adapters/postgres"
	"castboard/internal/analytics/adapters/rediscache"
	analyticsPorts "castboard/internal/analytics/core/ports"
	analyticsUsecase "castboard/internal/analytics/core/usecase"

	eventsHttp "castboard/internal/events/adapters/http/fiber"
	eventsRepoPg "castboard/internal/events/adapters/postgres"
	eventsUsecase "castboard/internal/events/core/usecase"

	templatesHttp "castboard/internal/templates/adapters/http/fiber"
	"castboard/internal/templates/adapters/memory"
	templatesUsecase "castboard/internal/templates/core/usecase"

	"castboard/internal/writing/adapters/gateway"
	writingHttp "castboard/internal/writing/adapters/http/fiber"
	writingUsecase "castboard/internal/writing/core/usecase"

	"castboard/internal/auth"
	"castboard/internal/config"
	"castboard/internal/logging"
	"castboard/internal/middleware"

	_ "castboard/docs"
)

// @title Castboard API
// @version 1.0
// @description Podcast analytics, AI writing assistant and template catalog for content creators.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", false).Fatal().Err(err).Msg("failed to load config")
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Pretty)

	// DB connection
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open postgres")
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping postgres")
	}

	// Optional snapshot cache
	var snapshotCache analyticsPorts.SnapshotCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to ping redis")
		}
		snapshotCache = rediscache.NewSnapshotCache(redisClient, cfg.Redis.SnapshotTTL)
	}

	// Adapter-level DB wrappers
	eventsDB := eventsRepoPg.NewSQLDB(db)
	analyticsDB := analyticsRepoPg.NewSQLDB(db)

	// Repositories and sources
	eventRepository := eventsRepoPg.NewEventRepository(eventsDB)
	eventReader := analyticsRepoPg.NewEventReader(analyticsDB)
	episodeReader := analyticsRepoPg.NewEpisodeReader(analyticsDB)
	templateCatalog := memory.NewCatalog()
	completer := gateway.NewClient(gateway.Config{
		URL:              cfg.Gateway.URL,
		APIKey:           cfg.Gateway.APIKey,
		Model:            cfg.Gateway.Model,
		Timeout:          cfg.Gateway.Timeout,
		RequestsPerMin:   cfg.Gateway.RequestsPerMin,
		BreakerThreshold: cfg.Gateway.BreakerThreshold,
	})

	// Usecases
	storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepository)
	getOverviewUC := analyticsUsecase.NewGetOverviewUseCase(eventReader, episodeReader, snapshotCache)
	getAudienceUC := analyticsUsecase.NewGetAudienceUseCase(eventReader, episodeReader)
	getPerformanceUC := analyticsUsecase.NewGetPerformanceUseCase(eventReader, episodeReader)
	generateContentUC := writingUsecase.NewGenerateContentUseCase(completer)
	generateSEOUC := writingUsecase.NewGenerateSEOUseCase(completer)
	listTemplatesUC := templatesUsecase.NewListTemplatesUseCase(templateCatalog)
	getTemplateUC := templatesUsecase.NewGetTemplateUseCase(templateCatalog)

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.Leeway)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	app.Use(middleware.RequestLog(logger))
	app.Use(middleware.Metrics())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// events endpoints (called by player clients, no user token)
	eventsHandler := eventsHttp.NewEventHandler(storeEventUC)
	app.Post("/events", eventsHandler.CreateEvent)
	app.Post("/events/bulk", eventsHandler.BulkCreateEvents)

	authed := app.Group("/", middleware.RequireAuth(jwtService))

	// analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(getOverviewUC, getAudienceUC, getPerformanceUC)
	authed.Get("/analytics/overview", analyticsHandler.GetOverview)
	authed.Get("/analytics/audience", analyticsHandler.GetAudience)
	authed.Get("/analytics/performance", analyticsHandler.GetPerformance)

	// writing endpoints
	writingHandler := writingHttp.NewWritingHandler(generateContentUC, generateSEOUC)
	authed.Post("/writing/generate", writingHandler.GenerateContent)
	authed.Post("/writing/seo", writingHandler.GenerateSEO)

	// template endpoints
	templateHandler := templatesHttp.NewTemplateHandler(listTemplatesUC, getTemplateUC)
	authed.Get("/templates", templateHandler.ListTemplates)
	authed.Get("/templates/industries", templateHandler.ListIndustries)
	authed.Get("/templates/:id", templateHandler.GetTemplate)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			logger.Error().Err(err).Msg("fiber stopped")
		}
	}()

	logger.Info().Str("addr", cfg.Server.Addr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("fiber shutdown error")
	}

	logger.Info().Msg("server exiting")
}
