package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/smart-helpdesk/helpdesk/internal/agent"
	apihttp "github.com/smart-helpdesk/helpdesk/internal/api/http"
	"github.com/smart-helpdesk/helpdesk/internal/api/http/handlers"
	"github.com/smart-helpdesk/helpdesk/internal/auth"
	"github.com/smart-helpdesk/helpdesk/internal/config"
	"github.com/smart-helpdesk/helpdesk/internal/events"
	"github.com/smart-helpdesk/helpdesk/internal/observability"
	"github.com/smart-helpdesk/helpdesk/internal/persistence"
	"github.com/smart-helpdesk/helpdesk/internal/repository"
	"github.com/smart-helpdesk/helpdesk/internal/service"
	"github.com/smart-helpdesk/helpdesk/internal/worker"
)

const migrationsDir = "migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := persistence.NewPostgresPool(rootCtx, cfg.Postgres)
	if err != nil {
		logger.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(rootCtx, pool, migrationsDir, logger); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
	}

	redisClient, err := persistence.NewRedisClient(rootCtx, cfg.Redis)
	if err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()

	userRepo := repository.NewUserRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	articleRepo := repository.NewArticleRepository(pool)
	suggestionRepo := repository.NewSuggestionRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	auditService := service.NewAuditService(auditRepo, logger)
	settingsService := service.NewSettingsService(settingsRepo,
		persistence.NewRedisSettingsCache(redisClient), logger)
	kbService := service.NewKBService(articleRepo, logger)
	authService := service.NewAuthService(*cfg, userRepo)

	triageService := service.NewTriageService(service.TriageDependencies{
		TicketRepo:     ticketRepo,
		SuggestionRepo: suggestionRepo,
		ArticleRepo:    articleRepo,
		Settings:       settingsService,
		Audit:          auditService,
		Provider:       agent.NewStubProvider(),
		Dispatcher:     dispatcher,
		Logger:         logger,
	})

	triageQueue := worker.NewTriageQueue(triageService, logger, cfg.Triage.QueueBuffer)
	triageQueue.Start(rootCtx, cfg.Triage.Workers)

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		Audit:      auditService,
		Triage:     triageQueue,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	notifications := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notifications.RegisterHandlers()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.App.RequestTimeout(),
		WriteTimeout: cfg.App.RequestTimeout(),
		ErrorHandler: apihttp.NewErrorHandler(logger, metrics),
	})
	apihttp.RegisterMiddlewares(app, logger, metrics)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	apihttp.RegisterRoutes(app, apihttp.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App),
		Users:   handlers.NewUsersHandler(authService),
		Tickets: handlers.NewTicketsHandler(ticketService, auditService),
		KB:      handlers.NewKBHandler(kbService),
		Agent:   handlers.NewAgentHandler(triageService),
		Config:  handlers.NewConfigHandler(settingsService),
		Audit:   handlers.NewAuditHandler(auditService),
		Auth:    authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))

	<-rootCtx.Done()
	logger.Info("shutting down")

	if err := app.Shutdown(); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	triageQueue.Wait()
	logger.Info("shutdown complete")
}
