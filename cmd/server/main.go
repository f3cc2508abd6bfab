package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "toolcrib-backend/internal/api/http"
	"toolcrib-backend/internal/config"
	"toolcrib-backend/internal/logger"
	"toolcrib-backend/internal/repository/postgres"
	"toolcrib-backend/internal/security"
	"toolcrib-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Tool Crib Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize Email Service
	emailSvc := service.NewSendGridService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)

	// Initialize Services
	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	toolSvc := service.NewToolService(store.ToolRepository, timeout)
	workerSvc := service.NewWorkerService(store.UserRepository, timeout)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.ToolRepository,
		store.UserRepository,
		workerSvc,
		emailSvc,
		timeout,
	)
	ratingSvc := service.NewRatingService(
		store.RatingRepository,
		store.ReservationRepository,
		store.ToolRepository,
		store.UserRepository,
		emailSvc,
		timeout,
	)
	reportSvc := service.NewReportService(
		store.ReservationRepository,
		store.ToolRepository,
		store.UserRepository,
		timeout,
	)
	alertSvc := service.NewAlertService(store.AlertRepository, timeout)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, timeout)

	// Set up HTTP server
	server := httpapi.NewServer(
		toolSvc,
		reservationSvc,
		ratingSvc,
		workerSvc,
		reportSvc,
		alertSvc,
		authSvc,
		tokenManager,
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), server.Router()); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
