// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/trailer-loading-service/internal/repository"
)

type MockPlansRepositoryInterface struct {
	mock.Mock
}

func (m *MockPlansRepositoryInterface) Save(ctx context.Context, record *repository.PlanRecord) (*repository.PlanRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PlanRecord), args.Error(1)
}

func (m *MockPlansRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*repository.PlanRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PlanRecord), args.Error(1)
}

func (m *MockPlansRepositoryInterface) List(ctx context.Context, limit int) ([]repository.PlanRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PlanRecord), args.Error(1)
}

func (m *MockPlansRepositoryInterface) CountByFits(ctx context.Context, fits bool) (int64, error) {
	args := m.Called(ctx, fits)
	return args.Get(0).(int64), args.Error(1)
}
