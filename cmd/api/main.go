package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/observability/metrics"
	"go-portfolio-backend/internal/repository/postgres"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact-form relay backend for the portfolio site.
// @host            localhost:5000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "env", cfg.Env)

	// 3. Setup Database (optional: without it submissions are accepted but
	// not persisted, matching the best-effort durability contract)
	var contactRepo domain.ContactRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			// Keep serving: the contact form still validates and notifies
			logger.Log.Error("Failed to connect to database, running without persistence", "error", err)
		} else {
			defer dbPool.Close()
			contactRepo = postgres.NewContactRepository(dbPool)
		}
	}

	// 4. Setup Redis (optional: rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Metrics
	contactMetrics := metrics.NewContactMetrics(prometheus.DefaultRegisterer)

	// 6. Setup Notifier: SendGrid first, Gmail SMTP as fallback
	primary := email.NewSendGridSender(email.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
	})
	secondary := email.NewGmailSender(email.GmailConfig{
		Host:     cfg.GmailHost,
		Port:     cfg.GmailPort,
		Username: cfg.GmailUser,
		Password: cfg.GmailAppPassword,
	})
	notifier := email.NewNotifier(cfg.ContactEmailTo, logger.Log, primary, secondary,
		email.WithAttemptTimeout(10*time.Second),
		email.WithAttemptObserver(func(provider, outcome string, kind email.FailureKind) {
			contactMetrics.ObserveNotification(provider, outcome, string(kind))
		}),
	)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(contactRepo, notifier, validate, contactMetrics)
	healthUC := usecase.NewHealthUsecase()

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   contactUC,
		HealthUC:    healthUC,
		ContactRepo: contactRepo,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
