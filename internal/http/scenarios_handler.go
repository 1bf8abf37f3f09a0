package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trailer-loading-service/internal/i18n"
	"github.com/guttosm/trailer-loading-service/internal/service"
)

// ScenariosHandler provides HTTP handlers for the demo scenario catalog.
type ScenariosHandler struct {
	scenarios service.ScenarioService
}

// NewScenariosHandler creates a new ScenariosHandler instance.
func NewScenariosHandler(scenarios service.ScenarioService) *ScenariosHandler {
	return &ScenariosHandler{scenarios: scenarios}
}

// ListScenarios handles GET /api/scenarios requests.
//
// @Summary      List demo scenarios
// @Description  Returns the built-in demo scenarios (small, medium, impossible) that can be fed directly to the optimize endpoint
// @Tags         Scenarios
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Scenario catalog"
// @Router       /api/scenarios [get]
func (h *ScenariosHandler) ListScenarios(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.scenarios.List())
}

// GetScenario handles GET /api/scenarios/:id requests.
//
// @Summary      Get a demo scenario
// @Description  Returns a single demo scenario by id
// @Tags         Scenarios
// @Accept       json
// @Produce      json
// @Param        id path string true "Scenario id (small, medium, impossible)"
// @Success      200 {object} dto.SuccessResponse "Scenario"
// @Failure      404 {object} dto.ErrorResponse "Unknown scenario id"
// @Router       /api/scenarios/{id} [get]
func (h *ScenariosHandler) GetScenario(c *gin.Context) {
	builder := NewResponseBuilder(c)

	scenario, ok := h.scenarios.Get(c.Param("id"))
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyScenarioNotFound, nil)
		return
	}

	builder.SuccessOK(scenario)
}
