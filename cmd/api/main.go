package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/parokitomang/content-service/internal/api/http"
	"github.com/parokitomang/content-service/internal/api/http/handlers"
	"github.com/parokitomang/content-service/internal/auth"
	"github.com/parokitomang/content-service/internal/config"
	"github.com/parokitomang/content-service/internal/events"
	"github.com/parokitomang/content-service/internal/observability"
	"github.com/parokitomang/content-service/internal/persistence"
	"github.com/parokitomang/content-service/internal/repository"
	"github.com/parokitomang/content-service/internal/service"
	"github.com/parokitomang/content-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Admin.HashedAtBoot {
		logger.Warn("ADMIN_PASSWORD was provided in plaintext and hashed at startup; prefer ADMIN_PASSWORD_HASH")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	sliderRepo := repository.NewSliderRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	credentials := auth.NewStaticCredentialStore(cfg.Admin.Email, cfg.Admin.PasswordHash)
	authService := service.NewAuthService(*cfg, credentials)
	authMiddleware := auth.NewMiddleware(authService.TokenManager())

	contentService := service.NewContentService(*cfg, service.ContentDependencies{
		SliderRepo: sliderRepo,
		MenuRepo:   menuRepo,
		Cache:      redis,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Content:        handlers.NewContentHandler(contentService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
