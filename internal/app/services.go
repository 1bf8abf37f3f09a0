// Package app provides service initialization.
package app

import (
	"github.com/guttosm/trailer-loading-service/config"
	"github.com/guttosm/trailer-loading-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Optimizer service.Optimizer
	Scenarios service.ScenarioService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.CacheConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Size, cfg.TTL))
	}

	optimizer := service.NewOptimizerService(opts...)

	return &ServiceComponents{
		Optimizer: optimizer,
		Scenarios: service.NewScenarioService(),
	}
}
