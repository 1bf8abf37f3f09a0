package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/trailer-loading-service/internal/domain/dto"
	"github.com/guttosm/trailer-loading-service/internal/domain/model"
	"github.com/guttosm/trailer-loading-service/internal/mocks"
	"github.com/guttosm/trailer-loading-service/internal/repository"
)

func TestPlanService_Record(t *testing.T) {
	repo := new(mocks.MockPlansRepositoryInterface)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(r *repository.PlanRecord) bool {
		return r.BoxTypes == 1 && r.BoxUnits == 5 && r.RequestDigest != "" &&
			r.RequestedBy == "dispatcher@freightco.test" && r.Depot == "lyon-sud"
	})).Return(&repository.PlanRecord{ID: primitive.NewObjectID()}, nil)

	svc := NewPlanService(repo)
	req := optimizeRequest()
	plan, err := NewOptimizerService().Optimize(req)
	require.NoError(t, err)

	requester := model.Requester{Email: "dispatcher@freightco.test", Depot: "lyon-sud"}
	record, err := svc.Record(context.Background(), req, plan, requester)

	require.NoError(t, err)
	require.NotNil(t, record)
	repo.AssertExpectations(t)
}

func TestPlanService_RecordWithoutRepository(t *testing.T) {
	svc := NewPlanService(nil)

	record, err := svc.Record(context.Background(), optimizeRequest(), planFixture(0.1), model.Requester{})

	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestPlanService_GetByID(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(mocks.MockPlansRepositoryInterface)
	repo.On("GetByID", mock.Anything, id).Return(&repository.PlanRecord{ID: id}, nil)

	svc := NewPlanService(repo)

	record, err := svc.GetByID(context.Background(), id.Hex())

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, id, record.ID)
}

func TestPlanService_GetByID_InvalidID(t *testing.T) {
	svc := NewPlanService(new(mocks.MockPlansRepositoryInterface))

	_, err := svc.GetByID(context.Background(), "not-an-object-id")

	var vErr *dto.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestPlanService_History(t *testing.T) {
	repo := new(mocks.MockPlansRepositoryInterface)
	repo.On("List", mock.Anything, 20).Return([]repository.PlanRecord{{}, {}}, nil)

	svc := NewPlanService(repo)

	records, err := svc.History(context.Background(), 20)

	require.NoError(t, err)
	assert.Len(t, records, 2)
}
