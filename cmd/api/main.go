package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/book-registry/internal/api/http"
	"github.com/spec-kit/book-registry/internal/api/http/handlers"
	"github.com/spec-kit/book-registry/internal/auth"
	"github.com/spec-kit/book-registry/internal/config"
	"github.com/spec-kit/book-registry/internal/events"
	"github.com/spec-kit/book-registry/internal/observability"
	"github.com/spec-kit/book-registry/internal/persistence"
	"github.com/spec-kit/book-registry/internal/repository"
	"github.com/spec-kit/book-registry/internal/service"
	"github.com/spec-kit/book-registry/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, cfg.Postgres, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	authorRepo := repository.NewAuthorRepository(pool)
	bookRepo := repository.NewBookRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	limiter := service.NewRedisLoginLimiter(redis, logger, cfg.Throttle.MaxLoginFailures, cfg.Throttle.Window())

	authService := service.NewAuthService(cfg.Auth, userRepo, limiter)
	accountService := service.NewAccountService(userRepo, dispatcher, cfg.Auth.BcryptCost)
	authorService := service.NewAuthorService(authorRepo, dispatcher)
	bookService := service.NewBookService(bookRepo, authorRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(accountService),
		Authors:        handlers.NewAuthorsHandler(authorService),
		Books:          handlers.NewBooksHandler(bookService),
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
