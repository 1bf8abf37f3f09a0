// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/trailer-loading-service/config"
	"github.com/guttosm/trailer-loading-service/internal/circuitbreaker"
	"github.com/guttosm/trailer-loading-service/internal/middleware"
	"github.com/guttosm/trailer-loading-service/internal/repository"
	"github.com/guttosm/trailer-loading-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	PlansRepo           repository.PlansRepositoryInterface
	PlanService         service.PlanService
	LoggingService      service.LoggingService
	PlansCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
	UserRepo            repository.UserRepositoryInterface
	TokenRepo           repository.TokenRepositoryInterface
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	plansCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-plans",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	// Request and audit entries go through the buffered sink so that
	// logging never spawns a goroutine per request.
	middleware.InitLogSink(loggingService, middleware.DefaultLogSinkConfig())

	plansRepo := repository.NewPlansRepository(db)
	plansRepoWithCB := repository.NewPlansRepositoryWithCircuitBreaker(plansRepo, plansCB)
	planService := service.NewPlanService(plansRepoWithCB)

	// Initialize auth repositories
	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	return &DatabaseComponents{
		PlansRepo:           plansRepoWithCB,
		PlanService:         planService,
		LoggingService:      loggingService,
		PlansCircuitBreaker: plansCB,
		LogsCircuitBreaker:  logsCB,
		UserRepo:            userRepo,
		TokenRepo:           tokenRepo,
	}
}
