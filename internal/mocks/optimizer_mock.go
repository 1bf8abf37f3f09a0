// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/trailer-loading-service/internal/domain/dto"
	"github.com/guttosm/trailer-loading-service/internal/domain/model"
)

type MockOptimizer struct {
	mock.Mock
}

func (m *MockOptimizer) Optimize(req dto.OptimizeRequest) (model.LoadingPlan, error) {
	args := m.Called(req)
	return args.Get(0).(model.LoadingPlan), args.Error(1)
}

func (m *MockOptimizer) InvalidateCache() {
	m.Called()
}
