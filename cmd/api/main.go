package main

import (
	"go.uber.org/zap"

	"taskhub/internal/config"
	"taskhub/internal/db"
	"taskhub/internal/handler"
	"taskhub/internal/httpserver"
	"taskhub/internal/redisclient"
	"taskhub/internal/repository"
	"taskhub/internal/service"
	"taskhub/internal/session"
)

func main() {
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := redisclient.New(cfg.Redis)
	if err != nil {
		logger.Fatal("redis initialization failed", zap.Error(err))
	}
	defer rdb.Close()

	sessions := session.NewStore(rdb)

	// Repositories
	userRepo := repository.NewUserRepository(pool, logger)
	projectRepo := repository.NewProjectRepository(pool, logger)
	taskRepo := repository.NewTaskRepository(pool, logger)
	workRequestRepo := repository.NewWorkRequestRepository(pool, logger)

	// Services
	authService := service.NewAuthService(userRepo, sessions, cfg.JWT.Secret, logger)
	generator, err := service.NewGeminiGenerator(cfg.Gemini)
	if err != nil {
		logger.Fatal("gemini client initialization failed", zap.Error(err))
	}
	reportService := service.NewReportService(projectRepo, taskRepo, generator, logger)
	dashboardService := service.NewDashboardService(userRepo, taskRepo, logger)
	calendarService := service.NewCalendarService(taskRepo, logger)
	notionService := service.NewNotionService(cfg.Notion, logger)

	// Handlers
	handlers := httpserver.Handlers{
		Auth:        handler.NewAuthHandler(authService, logger),
		User:        handler.NewUserHandler(userRepo, logger),
		Project:     handler.NewProjectHandler(projectRepo, taskRepo, userRepo, logger),
		Task:        handler.NewTaskHandler(taskRepo, projectRepo, userRepo, logger),
		Report:      handler.NewReportHandler(reportService, logger),
		Dashboard:   handler.NewDashboardHandler(dashboardService, calendarService, logger),
		Stats:       handler.NewStatsHandler(taskRepo, logger),
		WorkRequest: handler.NewWorkRequestHandler(workRequestRepo, logger),
		Notion:      handler.NewNotionHandler(notionService, logger),
		Admin:       handler.NewAdminHandler(pool, logger),
	}

	router := httpserver.NewRouter(handlers, sessions, cfg.JWT.Secret, pool, rdb)

	logger.Info("starting api server", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
