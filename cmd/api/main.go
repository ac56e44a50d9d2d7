package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialapi/docs"
	"socialapi/internal/auth"
	"socialapi/internal/cache"
	"socialapi/internal/config"
	"socialapi/internal/database"
	"socialapi/internal/database/migration"
	"socialapi/internal/event"
	handlers "socialapi/internal/http/handler"
	"socialapi/internal/http/middleware"
	"socialapi/internal/logging"
	"socialapi/internal/mail"
	"socialapi/internal/model"
	"socialapi/internal/otel"
	"socialapi/internal/repository/postgres"
	"socialapi/internal/service"
	"socialapi/internal/storage"
)

const (
	// bodyLimit leaves room for multipart framing around a 10 MiB image.
	bodyLimit       = model.ImageMaxSize + 1<<20
	shutdownTimeout = 15 * time.Second
)

// @title Social API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.Location())
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server_exited", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing_shutdown_failed", "error", err.Error())
		}
	}()

	// PostgreSQL connection pool via database/sql, retried until the server answers
	db, err := database.NewPostgres(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	// Reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO, logger)
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()
	likes := cache.NewRedisLikeStore(rdb)

	var mailer mail.Mailer = mail.NewLogMailer(logger)
	if cfg.SMTP.Host != "" {
		smtpMailer, err := mail.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			return fmt.Errorf("init smtp mailer: %w", err)
		}
		mailer = smtpMailer
	}

	tokens, err := auth.NewJWTIssuer(cfg.JWT)
	if err != nil {
		return fmt.Errorf("init jwt issuer: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Name),
	)

	dispatcher, err := event.NewDispatcher(cfg.Events, logger, reg)
	if err != nil {
		return fmt.Errorf("init event dispatcher: %w", err)
	}

	// Repositories and services
	tx := database.NewTransactor(db)
	memberRepo := postgres.NewMemberPostgres(db)
	postRepo := postgres.NewPostPostgres(db)
	commentRepo := postgres.NewCommentPostgres(db)
	followRepo := postgres.NewFollowPostgres(db)
	friendshipRepo := postgres.NewFriendshipPostgres(db)
	collectionRepo := postgres.NewCollectionPostgres(db)
	imageRepo := postgres.NewImagePostgres(db)
	eventRepo := postgres.NewMemberEventPostgres(db)

	imageSvc := service.NewImageService(objStore, imageRepo, cfg.MinIO.PresignExpiry)
	eventSvc := service.NewMemberEventService(tx, eventRepo)
	deps := handlers.Deps{
		DB:          db,
		Tokens:      tokens,
		Members:     service.NewMemberService(tx, dispatcher, memberRepo, imageRepo, objStore, auth.NewBcryptHasher(0), tokens, logger),
		Posts:       service.NewPostService(tx, dispatcher, postRepo, memberRepo, imageRepo, imageSvc, likes, logger),
		Comments:    service.NewCommentService(tx, dispatcher, commentRepo, postRepo, memberRepo),
		Follows:     service.NewFollowService(tx, dispatcher, followRepo, memberRepo),
		Friendships: service.NewFriendshipService(tx, dispatcher, friendshipRepo, memberRepo),
		Collections: service.NewCollectionService(tx, collectionRepo, postRepo),
		Images:      imageSvc,
		Events:      eventSvc,
	}

	service.NewListeners(service.ListenerDeps{
		Tx:          tx,
		Mailer:      mailer,
		BaseURL:     cfg.BaseURL,
		Follows:     followRepo,
		Friendships: friendshipRepo,
		Comments:    commentRepo,
		Posts:       postRepo,
		Events:      eventSvc,
		Likes:       likes,
		Store:       objStore,
		Logger:      logger,
	}).Register(dispatcher)
	dispatcher.Start()

	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("init http metrics: %w", err)
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(bodyLimit),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(logger))
	app.Use(metrics.Handler())
	if limiter.Enabled() {
		limiter.StartCleanup(ctx, time.Minute)
		app.Use(limiter.Handler())
	} else {
		logger.Info("rate_limit_disabled")
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, deps)

	addr := ":" + cfg.Port
	listenErr := make(chan error, 1)
	go func() {
		logger.Info("server_started", "addr", addr)
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http: %w", err))
	}
	// Requests are drained, so no new events can arrive.
	if err := dispatcher.Close(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("drain events: %w", err))
	}
	return errors.Join(errs...)
}
