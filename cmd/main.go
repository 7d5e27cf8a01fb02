package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/disaster_portal/internal/config"
	v1 "github.com/shenikar/disaster_portal/internal/handler/http/v1"
	"github.com/shenikar/disaster_portal/internal/repository"
	"github.com/shenikar/disaster_portal/internal/service"
	"github.com/shenikar/disaster_portal/internal/webhook"
	"github.com/shenikar/disaster_portal/pkg/logger"
	"github.com/shenikar/disaster_portal/pkg/postgres"
	redisclient "github.com/shenikar/disaster_portal/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/disaster_portal/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Disaster Management Portal API
// @version 1.0
// @description Citizen incident reporting and disaster portal API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis необязателен: без него счетчик считается в бд, а вебхуки отключены
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Хранилище отправленных сообщений
	var reportRepo service.ReportRepository
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		reportRepo = repository.NewReportRepository(dbpool, redisClient)
	} else {
		log.Warn("DATABASE_URL is not set, submitted reports are kept in memory")
		reportRepo = repository.NewMemoryReportRepository()
	}

	// Издатель и воркер вебхуков
	var publisher webhook.Publisher
	var webhookWorker *webhook.Worker
	if redisClient != nil {
		publisher = webhook.NewRedisPublisher(redisClient)
		webhookWorker = webhook.NewWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	}

	// Инициализация сервисов
	dispatcher := service.NewReportDispatcher(reportRepo, publisher, log)
	reportService := service.NewReportService(cfg, dispatcher, log)
	if err := reportService.Start(cfg.SessionPurgeSchedule); err != nil {
		log.Fatalf("Failed to start session purge: %v", err)
	}
	portalService := service.NewPortalService(reportRepo, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(reportService, portalService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(log), v1.CORSMiddleware(cfg))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Открытые формы закрываются, ожидающие отправки отменяются
	reportService.Stop()

	cancel()
	if webhookWorker != nil {
		select {
		case <-webhookWorker.Done():
		case <-shutdownCtx.Done():
			log.Warn("Webhook worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}
