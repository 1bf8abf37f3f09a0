package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/trailer-loading-service/internal/service"
)

// LoadingRoutes handles loading plan route registration.
type LoadingRoutes struct {
	handler          *Handler
	scenariosHandler *ScenariosHandler
	plansHandler     *PlansHandler
}

// NewLoadingRoutes creates a new LoadingRoutes instance.
func NewLoadingRoutes(optimizer service.Optimizer, scenarios service.ScenarioService, plans service.PlanService) *LoadingRoutes {
	var opts []HandlerOption
	if plans != nil {
		opts = append(opts, WithPlanService(plans))
	}
	handler := NewHandler(optimizer, opts...)

	var scenariosHandler *ScenariosHandler
	if scenarios != nil {
		scenariosHandler = NewScenariosHandler(scenarios)
	}

	var plansHandler *PlansHandler
	if plans != nil {
		plansHandler = NewPlansHandler(plans)
	}

	return &LoadingRoutes{
		handler:          handler,
		scenariosHandler: scenariosHandler,
		plansHandler:     plansHandler,
	}
}

// RegisterPublicRoutes registers public loading routes (when auth is disabled).
func (r *LoadingRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", r.handler.OptimizeLoad)

	if r.scenariosHandler != nil {
		rg.GET("/scenarios", r.scenariosHandler.ListScenarios)
		rg.GET("/scenarios/:id", r.scenariosHandler.GetScenario)
	}

	if r.plansHandler != nil {
		rg.GET("/plans/history", r.plansHandler.PlanHistory)
		rg.GET("/plans/:id", r.plansHandler.GetPlan)
	}
}

// RegisterProtectedRoutes registers loading routes behind JWT auth.
// The scenario catalog stays public so the demo UI works without a login.
func (r *LoadingRoutes) RegisterProtectedRoutes(public, protected *gin.RouterGroup) {
	protected.POST("/optimize", r.handler.OptimizeLoad)

	if r.scenariosHandler != nil {
		public.GET("/scenarios", r.scenariosHandler.ListScenarios)
		public.GET("/scenarios/:id", r.scenariosHandler.GetScenario)
	}

	if r.plansHandler != nil {
		protected.GET("/plans/history", r.plansHandler.PlanHistory)
		protected.GET("/plans/:id", r.plansHandler.GetPlan)
	}
}

// GetHandler returns the underlying loading handler.
func (r *LoadingRoutes) GetHandler() *Handler {
	return r.handler
}
