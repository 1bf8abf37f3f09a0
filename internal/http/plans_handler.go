package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trailer-loading-service/internal/domain/dto"
	"github.com/guttosm/trailer-loading-service/internal/i18n"
	"github.com/guttosm/trailer-loading-service/internal/service"
)

// PlansHandler provides HTTP handlers for loading plan history routes.
type PlansHandler struct {
	plans service.PlanService
}

// NewPlansHandler creates a new PlansHandler instance.
func NewPlansHandler(plans service.PlanService) *PlansHandler {
	return &PlansHandler{plans: plans}
}

// PlanHistory handles GET /api/plans/history requests.
//
// @Summary      List recent loading plans
// @Description  Returns recently persisted loading plans, newest first
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Plan history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/plans/history [get]
func (h *PlansHandler) PlanHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	records, err := h.plans.History(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(records)
}

// GetPlan handles GET /api/plans/:id requests.
//
// @Summary      Get a persisted loading plan
// @Description  Returns a single persisted loading plan by its id
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        id path string true "Plan id"
// @Success      200 {object} dto.SuccessResponse "Loading plan record"
// @Failure      400 {object} dto.ErrorResponse "Invalid plan id"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Plan not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/plans/{id} [get]
func (h *PlansHandler) GetPlan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	record, err := h.plans.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if record == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyPlanNotFound, nil)
		return
	}

	builder.SuccessOK(record)
}
