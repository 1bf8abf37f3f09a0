package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/trailer-loading-service/internal/domain/model"
)

func TestCheckPlan_ValidPlan(t *testing.T) {
	plan := Plan(Request{
		Trailer: trailer(300, 200, 180),
		Boxes: []model.BoxType{
			box("A", 60, 40, 40, 10, true),
			box("B", 80, 60, 50, 8, true),
		},
		Stacking:              model.Stacking{Enabled: true, MaxLayers: 3},
		GlobalRotationAllowed: true,
	})

	assert.NoError(t, CheckPlan(plan, trailer(300, 200, 180)))
}

func TestCheckPlan_DetectsOverlap(t *testing.T) {
	plan := model.LoadingPlan{
		Layers: []model.Layer{{
			LayerIndex: 1,
			Placements: []model.Placement{
				{SKU: "A", X: 0, Y: 0, Length: 50, Width: 50, Height: 20},
				{SKU: "B", X: 30, Y: 30, Length: 50, Width: 50, Height: 20},
			},
		}},
	}

	err := CheckPlan(plan, trailer(200, 200, 100))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
}

func TestCheckPlan_DetectsOutOfBounds(t *testing.T) {
	tests := []struct {
		name      string
		placement model.Placement
	}{
		{"negative x", model.Placement{SKU: "A", X: -1, Length: 10, Width: 10, Height: 10}},
		{"exceeds length", model.Placement{SKU: "A", X: 195, Length: 10, Width: 10, Height: 10}},
		{"exceeds width", model.Placement{SKU: "A", Y: 195, Length: 10, Width: 10, Height: 10}},
		{"exceeds height", model.Placement{SKU: "A", Z: 95, Length: 10, Width: 10, Height: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := model.LoadingPlan{
				Layers: []model.Layer{{LayerIndex: 1, Placements: []model.Placement{tt.placement}}},
			}
			assert.Error(t, CheckPlan(plan, trailer(200, 200, 100)))
		})
	}
}

func TestCheckPlan_ToleratesRoundedCoordinates(t *testing.T) {
	plan := model.LoadingPlan{
		Layers: []model.Layer{{
			LayerIndex: 1,
			Placements: []model.Placement{
				{SKU: "A", X: 0, Y: 0, Length: 100.0004, Width: 50, Height: 20},
			},
		}},
	}

	assert.NoError(t, CheckPlan(plan, trailer(100, 50, 20)))
}
