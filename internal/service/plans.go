package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/trailer-loading-service/internal/domain/dto"
	"github.com/guttosm/trailer-loading-service/internal/domain/model"
	"github.com/guttosm/trailer-loading-service/internal/repository"
)

// PlanService manages the persisted history of optimization runs.
type PlanService interface {
	Record(ctx context.Context, req dto.OptimizeRequest, plan model.LoadingPlan, requester model.Requester) (*repository.PlanRecord, error)
	GetByID(ctx context.Context, id string) (*repository.PlanRecord, error)
	History(ctx context.Context, limit int) ([]repository.PlanRecord, error)
}

// PlanServiceImpl implements PlanService backed by the plans repository.
type PlanServiceImpl struct {
	repo repository.PlansRepositoryInterface
}

// NewPlanService creates a new plan history service.
func NewPlanService(repo repository.PlansRepositoryInterface) *PlanServiceImpl {
	return &PlanServiceImpl{repo: repo}
}

// Record persists one optimization run. A nil repository (history
// disabled) is a no-op.
func (s *PlanServiceImpl) Record(ctx context.Context, req dto.OptimizeRequest, plan model.LoadingPlan, requester model.Requester) (*repository.PlanRecord, error) {
	if s.repo == nil {
		return nil, nil
	}

	units := 0
	for _, b := range req.Boxes {
		units += b.Quantity
	}

	trailer, _, _, _ := req.ToModel()
	record := &repository.PlanRecord{
		RequestDigest: requestDigest(req),
		Trailer:       trailer.Normalized(),
		BoxTypes:      len(req.Boxes),
		BoxUnits:      units,
		Plan:          plan,
		RequestedBy:   requester.Email,
		Depot:         requester.Depot,
	}
	return s.repo.Save(ctx, record)
}

// GetByID returns one stored plan record by its hex id, or nil when the
// id is unknown.
func (s *PlanServiceImpl) GetByID(ctx context.Context, id string) (*repository.PlanRecord, error) {
	if s.repo == nil {
		return nil, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &dto.ValidationError{Field: "id", Message: "must be a valid object id"}
	}
	return s.repo.GetByID(ctx, oid)
}

// History returns the most recent optimization runs, newest first.
func (s *PlanServiceImpl) History(ctx context.Context, limit int) ([]repository.PlanRecord, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.List(ctx, limit)
}
