package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dondr1/lastminparty/internal/config"
	"github.com/dondr1/lastminparty/internal/database"
	"github.com/dondr1/lastminparty/internal/job"
	"github.com/dondr1/lastminparty/internal/metrics"
	"github.com/dondr1/lastminparty/internal/repository"
	"github.com/dondr1/lastminparty/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting LastMinParty API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
	)

	// Initialize database; a failed startup connection is retried in the
	// background so the pod survives a database restart
	dbConfig := database.Config{
		DSN:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, retrying in background", zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
		for db == nil {
			time.Sleep(time.Second)
			db = database.GetDB()
		}
	}
	logger.Info("Database connected successfully")

	if err := database.AutoMigrate(db); err != nil {
		logger.Warn("Failed to run database migrations", zap.Error(err))
	} else {
		logger.Info("Database migrations completed")
	}

	// Initialize redis; the profile cache and submit guard degrade
	// gracefully without it
	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Warn("Failed to connect to redis, caching and submit guard disabled", zap.Error(err))
		redisClient = nil
	} else {
		logger.Info("Redis connected successfully")
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	database.RegisterMetricsCallbacks(db, m)
	statsDone := database.StartDBStatsCollector(db, m)
	defer close(statsDone)

	businessCollector := metrics.NewBusinessMetricsCollector(db, m, logger)
	businessCollector.Start()
	defer businessCollector.Stop()
	logger.Info("Metrics initialized")

	// Schedule the participant reconcile job
	reconcileJob := job.NewReconcileJob(
		repository.NewHostDecisionRepository(db),
		repository.NewParticipantRepository(db),
		m,
		logger,
	)
	scheduler := cron.New()
	if _, err := scheduler.AddJob(cfg.App.ReconcileSchedule, reconcileJob); err != nil {
		logger.Error("Failed to schedule reconcile job",
			zap.String("schedule", cfg.App.ReconcileSchedule),
			zap.Error(err))
	} else {
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info("Reconcile job scheduled", zap.String("schedule", cfg.App.ReconcileSchedule))
	}

	// Setup router with all dependencies
	r := router.Setup(cfg, db, redisClient, m, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("LastMinParty API started successfully", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(db); err != nil {
		logger.Error("Failed to close database", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close redis", zap.Error(err))
		}
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
