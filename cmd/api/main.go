package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/wellness-service/internal/api/http"
	"github.com/spec-kit/wellness-service/internal/api/http/handlers"
	"github.com/spec-kit/wellness-service/internal/classifier"
	"github.com/spec-kit/wellness-service/internal/config"
	"github.com/spec-kit/wellness-service/internal/events"
	"github.com/spec-kit/wellness-service/internal/observability"
	"github.com/spec-kit/wellness-service/internal/persistence"
	"github.com/spec-kit/wellness-service/internal/repository"
	"github.com/spec-kit/wellness-service/internal/riskstate"
	"github.com/spec-kit/wellness-service/internal/service"
	"github.com/spec-kit/wellness-service/internal/worker"
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
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	assessmentRepo := repository.NewAssessmentRepository(pool)
	moodRepo := repository.NewMoodLogRepository(pool)
	alertRepo := repository.NewAlertRepository(pool)

	emotionClient := classifier.NewClient(cfg.Classifier)
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	var stateStore riskstate.Store
	if cfg.Risk.DedupMode == config.DedupTransition {
		stateStore = riskstate.NewRedisStore(redis.Client)
	} else {
		stateStore = riskstate.NewMemoryStore()
	}

	userService := service.NewUserService(userRepo)
	chatService := service.NewChatService(service.ChatDependencies{
		UserRepo:   userRepo,
		MoodRepo:   moodRepo,
		Classifier: emotionClient,
		Dispatcher: dispatcher,
		Metrics:    metrics,
	}, logger)
	riskService := service.NewRiskService(cfg.Risk, service.RiskDependencies{
		UserRepo:       userRepo,
		AssessmentRepo: assessmentRepo,
		AlertRepo:      alertRepo,
		StateStore:     stateStore,
		Dispatcher:     dispatcher,
	}, logger)
	insightsService := service.NewInsightsService(userRepo, moodRepo)
	importService := service.NewImportService(assessmentRepo, dispatcher, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, emotionClient),
		Users:    handlers.NewUsersHandler(userService),
		Chat:     handlers.NewChatHandler(chatService),
		Risk:     handlers.NewRiskHandler(riskService),
		Insights: handlers.NewInsightsHandler(insightsService),
		Import:   handlers.NewImportHandler(importService),
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
