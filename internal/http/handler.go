package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trailer-loading-service/internal/domain/dto"
	"github.com/guttosm/trailer-loading-service/internal/domain/model"
	"github.com/guttosm/trailer-loading-service/internal/i18n"
	"github.com/guttosm/trailer-loading-service/internal/middleware"
	"github.com/guttosm/trailer-loading-service/internal/service"
)

// Handler provides HTTP handlers for loading plan routes.
type Handler struct {
	optimizer service.Optimizer
	plans     service.PlanService
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPlanService attaches a plan history service so that computed
// plans are persisted asynchronously.
func WithPlanService(plans service.PlanService) HandlerOption {
	return func(h *Handler) {
		h.plans = plans
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(optimizer service.Optimizer, opts ...HandlerOption) *Handler {
	h := &Handler{
		optimizer: optimizer,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// OptimizeLoad handles POST /api/optimize requests.
//
// @Summary      Compute a loading plan
// @Description  Computes a layered loading plan for the given trailer and box inventory. Boxes are sorted by volume and placed layer by layer using a maximal-rectangles heuristic; when a box cannot fit it is reported in the unplaced list. All dimensions in the response are in centimeters.
// @Tags         Loading
// @Accept       json
// @Produce      json
// @Param        request body dto.OptimizeRequest true "Trailer and box inventory"
// @Success      200 {object} dto.SuccessResponse "Computed loading plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/optimize [post]
func (h *Handler) OptimizeLoad(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.OptimizeRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "optimize", "Loading plan requested", map[string]interface{}{
				"box_types":        len(req.Boxes),
				"stacking_enabled": req.Stacking.Enabled,
			})
		}
	}

	plan, err := h.optimizer.Optimize(*req)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
			return
		}
		var invariantErr *service.InvariantError
		if errors.As(err, &invariantErr) {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	h.recordPlan(c, *req, plan)

	builder.SuccessOK(plan)
}

// recordPlan persists the computed plan asynchronously. History is
// non-critical, so failures are swallowed.
func (h *Handler) recordPlan(c *gin.Context, req dto.OptimizeRequest, plan model.LoadingPlan) {
	if h.plans == nil {
		return
	}

	requester := requesterFrom(c)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _ = h.plans.Record(ctx, req, plan, requester)
	}()
}

// requesterFrom pulls the authenticated dispatcher identity out of the
// gin context. Fields stay empty when auth is disabled.
func requesterFrom(c *gin.Context) model.Requester {
	var r model.Requester
	if email, exists := c.Get("user_email"); exists {
		if s, ok := email.(string); ok {
			r.Email = s
		}
	}
	if depot, exists := c.Get("user_depot"); exists {
		if s, ok := depot.(string); ok {
			r.Depot = s
		}
	}
	return r
}
