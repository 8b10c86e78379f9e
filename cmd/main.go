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

	"github.com/shenikar/bodycam_dashboard/internal/config"
	v1 "github.com/shenikar/bodycam_dashboard/internal/handler/http/v1"
	"github.com/shenikar/bodycam_dashboard/internal/mapview"
	"github.com/shenikar/bodycam_dashboard/internal/metrics"
	"github.com/shenikar/bodycam_dashboard/internal/repository"
	"github.com/shenikar/bodycam_dashboard/internal/service"
	"github.com/shenikar/bodycam_dashboard/internal/supabase"
	"github.com/shenikar/bodycam_dashboard/internal/webhook"
	"github.com/shenikar/bodycam_dashboard/pkg/logger"
	"github.com/shenikar/bodycam_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/bodycam_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/bodycam_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Body-cam Incident Dashboard API
// @version 1.0
// @description Backend for the body-camera incident map, complaint form and sign-in.
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
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
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

	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	collector, err := metrics.New()
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Пресеты карты; без файла используется вид по умолчанию
	views, err := mapview.Load(cfg.MapViewsFile)
	if err != nil {
		log.Fatalf("Failed to load map views from %s: %v", cfg.MapViewsFile, err)
	}
	log.WithField("views", len(views.Views())).Info("Map views loaded")

	remote, err := supabase.New(supabase.Config{
		URL:     cfg.SupabaseURL,
		AnonKey: cfg.SupabaseAnonKey,
		Timeout: cfg.RemoteTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create remote store client: %v", err)
	}

	// Очередь оповещений и её воркер
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)
	alertWorker := webhook.NewAlertWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	// Репозитории
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.IncidentCacheTTL)
	idempotency := repository.NewIdempotencyStore(redisClient, cfg.IdempotencyTTL)

	// Сервисы
	incidentService := service.NewIncidentService(incidentRepo, log, views, alertPublisher, collector)
	complaintService := service.NewComplaintService(remote, idempotency, log, collector, cfg.RemoteTimeout)
	authService := service.NewAuthService(remote, log, collector, cfg.RemoteTimeout)

	handler := v1.NewHandler(incidentService, complaintService, authService, log, cfg)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), collector.Middleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(collector.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

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

	// останавливаем воркер оповещений до закрытия Redis
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
