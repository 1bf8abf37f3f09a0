// Package app provides router configuration.
package app

import (
	"github.com/guttosm/trailer-loading-service/config"
	"github.com/guttosm/trailer-loading-service/internal/http"
	"github.com/guttosm/trailer-loading-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var planService service.PlanService
	var loggingService service.LoggingService
	if dbComponents != nil {
		planService = dbComponents.PlanService
		loggingService = dbComponents.LoggingService
	}

	var handlerOpts []http.HandlerOption
	if planService != nil {
		handlerOpts = append(handlerOpts, http.WithPlanService(planService))
	}
	handler := http.NewHandler(services.Optimizer, handlerOpts...)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.PlansCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_plans", dbComponents.PlansCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		ScenarioService:   services.Scenarios,
		PlanService:       planService,
		AuthService:       authService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
