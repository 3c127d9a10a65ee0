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
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/snowshield/snow_shield_api/internal/config"
	"github.com/snowshield/snow_shield_api/internal/events"
	v1 "github.com/snowshield/snow_shield_api/internal/handler/http/v1"
	"github.com/snowshield/snow_shield_api/internal/observability"
	"github.com/snowshield/snow_shield_api/internal/repository"
	"github.com/snowshield/snow_shield_api/internal/service"
	"github.com/snowshield/snow_shield_api/internal/storage"
	"github.com/snowshield/snow_shield_api/internal/weather"
	"github.com/snowshield/snow_shield_api/internal/webhook"
	"github.com/snowshield/snow_shield_api/pkg/logger"
	"github.com/snowshield/snow_shield_api/pkg/postgres"
	redisclient "github.com/snowshield/snow_shield_api/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/snowshield/snow_shield_api/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Snow Shield API
// @version 1.0
// @description Snow hazard incident reporting and zone warning API.
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
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
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

	// Метрики Prometheus
	metrics := observability.NewMetrics()

	// Локальное хранилище фотографий
	photoStore, err := storage.NewLocalStore(cfg.StorageDir, cfg.StoragePublicURL)
	if err != nil {
		log.Fatalf("Failed to init photo storage: %v", err)
	}

	// Поток доменных событий: Kafka, если настроены брокеры
	var bus events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg, log)
		defer kafkaPublisher.Close()
		bus = kafkaPublisher
		log.Info("Kafka event publisher enabled")
	} else {
		bus = events.NewNopPublisher()
		log.Info("Kafka brokers not configured, event publishing disabled")
	}

	// Инициализация издателя вебхуков
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWorker(redisClient, log, cfg, metrics)
	webhookWorker.Start(ctx)

	clock := clockwork.NewRealClock()

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	warningRepo := repository.NewWarningRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool)

	// Клиент погодного API
	weatherClient := weather.NewClient(cfg, redisClient, log, metrics)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, photoStore, alertPublisher, bus, log, cfg, metrics, clock)
	warningService := service.NewWarningService(warningRepo, alertPublisher, bus, log, metrics, clock)
	userService := service.NewUserService(userRepo, log, cfg, clock)
	weatherService := service.NewWeatherService(weatherClient, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, warningService, userService, weatherService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Загруженные фотографии отдаются как статика
	router.Static("/uploads", cfg.StorageDir)

	// Метрики и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
