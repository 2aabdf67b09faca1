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

	"github.com/shenikar/urban_incident_system/internal/config"
	"github.com/shenikar/urban_incident_system/internal/detection"
	v1 "github.com/shenikar/urban_incident_system/internal/handler/http/v1"
	"github.com/shenikar/urban_incident_system/internal/metrics"
	"github.com/shenikar/urban_incident_system/internal/repository"
	"github.com/shenikar/urban_incident_system/internal/service"
	"github.com/shenikar/urban_incident_system/internal/storage"
	"github.com/shenikar/urban_incident_system/internal/webhook"
	"github.com/shenikar/urban_incident_system/pkg/logger"
	minioclient "github.com/shenikar/urban_incident_system/pkg/minio"
	"github.com/shenikar/urban_incident_system/pkg/postgres"
	redisclient "github.com/shenikar/urban_incident_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/urban_incident_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Urban Incident System API
// @version 1.0
// @description Citizen incident reporting with AI photo classification and geospatial heatmaps.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// verifyDetection проверяет ключ сервиса распознавания. Ошибка не мешает старту.
func verifyDetection(ctx context.Context, client *detection.Client, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	creds, err := client.VerifyCredentials(ctx)
	if err != nil {
		log.WithError(err).Warn("Detection service credentials could not be verified")
		return
	}
	log.WithField("client_id", creds.Client.ClientID).Info("Detection service credentials verified")
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

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Объектное хранилище
	minioClient, err := minioclient.NewMinioClient(cfg.StorageEndpoint, cfg.StorageAccessKey, cfg.StorageSecretKey, cfg.StorageRegion, cfg.StorageUseSSL)
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}
	store := storage.NewStore(minioClient, cfg.PublicStorageURL(), log)

	// Клиент сервиса распознавания
	detector := detection.NewClient(detection.Config{
		BaseURL:   cfg.DetectionBaseURL,
		APIKey:    cfg.DetectionAPIKey,
		ClientID:  cfg.DetectionClientID,
		Timeout:   cfg.DetectionTimeout,
		RateLimit: cfg.DetectionRateLimit,
		RateBurst: cfg.DetectionRateBurst,
	})
	verifyDetection(ctx, detector, log)

	// Метрики
	m := metrics.New()

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisEventPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.CacheTTL)
	districtRepo := repository.NewDistrictRepository(dbpool)
	analysisRepo := repository.NewAnalysisRepository(dbpool, redisClient, cfg.CacheTTL)
	userRepo := repository.NewUserRepository(dbpool)

	// Инициализация сервисов
	resolver := service.NewSpatialResolver(districtRepo, log)
	incidentService := service.NewIncidentService(incidentRepo, resolver, detector, store, webhookPublisher, m, log, cfg)
	heatmapService := service.NewHeatmapService(analysisRepo, webhookPublisher, m, log, cfg)
	userService := service.NewUserService(userRepo, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, heatmapService, userService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(m.Handler()))

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	// Конвейер инцидента может ждать распознавания до таймаута опроса
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.DetectionPollTimeout+5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
