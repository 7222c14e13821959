package main

import (
	"alcyxob/gymflow/internal/api"
	"alcyxob/gymflow/internal/config"
	"alcyxob/gymflow/internal/events"
	"alcyxob/gymflow/internal/logging"
	"alcyxob/gymflow/internal/repository/mongo"
	"alcyxob/gymflow/internal/service"
	"alcyxob/gymflow/internal/storage"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title GymFlow API
// @version 1.0
// @description API for managing gyms, trainers, members, exercises, workout plans and sessions.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Info("Server exiting.")
}

func run(cfg config.Config, logger *zap.Logger) error {
	logger.Info("Starting GymFlow server...", zap.String("address", cfg.Server.Address), zap.String("mode", cfg.Server.Mode))
	ctx := context.Background()

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(ctx, cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("could not connect to MongoDB: %w", err)
	}
	defer func() {
		logger.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.Info("Database connection established.", zap.String("database", cfg.Database.Name))

	// --- Ensure Indexes ---
	// The unique partial index on sessions backs the one-active-session rule,
	// so startup waits for it.
	indexCtx, cancelIndexes := context.WithTimeout(ctx, time.Minute)
	err = mongo.EnsureIndexes(indexCtx, appDB)
	cancelIndexes()
	if err != nil {
		return fmt.Errorf("could not create indexes: %w", err)
	}

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		fileStorage, err = storage.NewS3Storage(ctx, cfg.S3, logger)
		if err != nil {
			return fmt.Errorf("could not initialize S3 storage: %w", err)
		}
	} else {
		logger.Warn("S3 bucket not configured; trainer media endpoints are disabled")
	}

	// --- Initialize Event Publisher ---
	var publisher events.Publisher = events.NewLogPublisher(logger)
	if cfg.RabbitMQ.Enabled {
		publisher, err = events.NewRabbitMQPublisher(events.RabbitMQOptions{
			URI:                  cfg.RabbitMQ.URI,
			Exchange:             cfg.RabbitMQ.Exchange,
			NotificationExchange: cfg.RabbitMQ.NotificationExchange,
		}, logger)
		if err != nil {
			return fmt.Errorf("could not connect to RabbitMQ: %w", err)
		}
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", zap.Error(err))
		}
	}()

	// --- Initialize Repositories ---
	gymRepo := mongo.NewMongoGymRepository(appDB)
	trainerRepo := mongo.NewMongoTrainerRepository(appDB)
	memberRepo := mongo.NewMongoMemberRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	planRepo := mongo.NewMongoWorkoutPlanRepository(appDB)
	sessionRepo := mongo.NewMongoWorkoutSessionRepository(appDB)

	// --- Initialize Services ---
	services := api.Services{
		Gyms:            service.NewGymService(gymRepo, logger),
		Trainers:        service.NewTrainerService(trainerRepo, gymRepo, fileStorage, logger),
		MemberCommands:  service.NewMemberCommands(memberRepo, publisher, logger),
		MemberQueries:   service.NewMemberQueries(memberRepo),
		Exercises:       service.NewExerciseService(exerciseRepo, trainerRepo, logger),
		WorkoutPlans:    service.NewWorkoutPlanService(planRepo, memberRepo, trainerRepo, exerciseRepo, publisher, logger),
		WorkoutSessions: service.NewWorkoutSessionService(sessionRepo, planRepo, publisher, logger),
	}

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(api.Recovery(logger), api.RequestLogger(logger.Named("http")))
	api.SetupRoutes(router, logger, services)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		logger.Info("Shutting down server...", zap.String("signal", sig.String()))
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
