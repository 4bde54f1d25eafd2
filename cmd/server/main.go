package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/careerhub-dev/careerhub/internal/adapters/http/handler"
	"github.com/careerhub-dev/careerhub/internal/adapters/repository/badgerdb"
	"github.com/careerhub-dev/careerhub/internal/core/application"
	"github.com/careerhub-dev/careerhub/internal/core/assistant"
	"github.com/careerhub-dev/careerhub/internal/core/cv"
	"github.com/careerhub-dev/careerhub/internal/core/dashboard"
	"github.com/careerhub-dev/careerhub/internal/core/event"
	"github.com/careerhub-dev/careerhub/internal/core/job"
	"github.com/careerhub-dev/careerhub/internal/core/onboarding"
	"github.com/careerhub-dev/careerhub/internal/core/post"
	"github.com/careerhub-dev/careerhub/internal/core/settings"
	"github.com/careerhub-dev/careerhub/internal/core/user"
	"github.com/careerhub-dev/careerhub/internal/platform/config"
	"github.com/careerhub-dev/careerhub/internal/platform/server"
	"github.com/careerhub-dev/careerhub/internal/platform/store"
	"github.com/careerhub-dev/careerhub/internal/platform/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	kv, err := store.Open(store.Config{
		Path:           cfg.Storage.Path,
		InMemory:       cfg.Storage.InMemory,
		SyncWrites:     cfg.Storage.SyncWrites,
		GCInterval:     cfg.Storage.GCInterval,
		GCDiscardRatio: cfg.Storage.GCDiscardRatio,
		Logger:         logger,
	})
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Error("failed to close store", slog.String("error", err.Error()))
		}
	}()

	userRepo := badgerdb.NewUserRepository(kv)
	jobRepo := badgerdb.NewJobRepository(kv)
	savedJobsRepo := badgerdb.NewSavedJobsRepository(kv)
	applicationRepo := badgerdb.NewApplicationRepository(kv)
	postRepo := badgerdb.NewPostRepository(kv)
	eventRepo := badgerdb.NewEventRepository(kv)
	cvRepo := badgerdb.NewCVRepository(kv)
	settingsRepo := badgerdb.NewSettingsRepository(kv)

	userSvc := user.NewService(userRepo, nil)
	onboardingSvc, err := onboarding.NewService(ctx, userRepo, nil)
	if err != nil {
		log.Fatalf("failed to initialize onboarding: %v", err)
	}
	jobSvc := job.NewService(jobRepo, savedJobsRepo, userRepo, nil)
	applicationSvc := application.NewService(applicationRepo, jobRepo, userRepo, nil)
	postSvc := post.NewService(postRepo, userRepo, nil)
	eventSvc := event.NewService(eventRepo, userRepo, nil)
	cvSvc := cv.NewService(cvRepo, nil)
	settingsSvc := settings.NewService(settingsRepo)
	dashboardSvc := dashboard.NewService(jobRepo, applicationRepo, eventSvc)
	assistantSvc := assistant.NewService(eventSvc)

	metrics := telemetry.NewMetrics()

	router := handler.NewRouter(handler.Handlers{
		Onboarding:  handler.NewOnboardingHandler(onboardingSvc),
		User:        handler.NewUserHandler(userSvc),
		Job:         handler.NewJobHandler(jobSvc),
		Application: handler.NewApplicationHandler(applicationSvc),
		Post:        handler.NewPostHandler(postSvc),
		Event:       handler.NewEventHandler(eventSvc),
		CV:          handler.NewCVHandler(cvSvc),
		Settings:    handler.NewSettingsHandler(settingsSvc, userRepo),
		Dashboard:   handler.NewDashboardHandler(dashboardSvc),
		Assistant:   handler.NewAssistantHandler(assistantSvc),
	}, handler.RouterConfig{
		Logger:  logger,
		Metrics: metrics,
	})

	httpServer := server.New(cfg.Server.ListenAddr, router, cfg.Server.ShutdownTimeout)

	logger.Info("HTTP server listening", slog.String("addr", cfg.Server.ListenAddr))

	if err := httpServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
