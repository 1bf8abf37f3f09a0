package service

import (
	"github.com/guttosm/trailer-loading-service/internal/domain/model"
)

// ScenarioService serves the predefined demo scenarios exposed by the
// API for the frontend's quick-start buttons.
type ScenarioService interface {
	List() []model.Scenario
	Get(id string) (model.Scenario, bool)
}

// ScenarioServiceImpl implements ScenarioService over a fixed in-memory
// catalog.
type ScenarioServiceImpl struct {
	scenarios []model.Scenario
	byID      map[string]model.Scenario
}

// NewScenarioService creates a ScenarioService with the built-in demo
// catalog.
func NewScenarioService() *ScenarioServiceImpl {
	scenarios := demoScenarios()
	byID := make(map[string]model.Scenario, len(scenarios))
	for _, sc := range scenarios {
		byID[sc.ID] = sc
	}
	return &ScenarioServiceImpl{scenarios: scenarios, byID: byID}
}

// List returns all demo scenarios in catalog order.
func (s *ScenarioServiceImpl) List() []model.Scenario {
	out := make([]model.Scenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

// Get returns the scenario with the given id.
func (s *ScenarioServiceImpl) Get(id string) (model.Scenario, bool) {
	sc, ok := s.byID[id]
	return sc, ok
}

func demoScenarios() []model.Scenario {
	return []model.Scenario{
		{
			ID:          "small",
			Name:        "Petit chargement",
			Description: "A small trailer with two box types that all fit",
			Trailer:     model.Trailer{Length: 200, Width: 150, Height: 150, Unit: model.UnitCentimeters},
			Boxes: []model.BoxType{
				{SKU: "BOX-A", Length: 40, Width: 30, Height: 30, Quantity: 5, RotationAllowed: true},
				{SKU: "BOX-B", Length: 50, Width: 40, Height: 25, Quantity: 3, RotationAllowed: true},
			},
			Stacking:              model.Stacking{Enabled: true, MaxLayers: 3},
			GlobalRotationAllowed: true,
		},
		{
			ID:          "medium",
			Name:        "Chargement moyen",
			Description: "A mid-size trailer with pallets and crates",
			Trailer:     model.Trailer{Length: 600, Width: 240, Height: 250, Unit: model.UnitCentimeters},
			Boxes: []model.BoxType{
				{SKU: "PALLET-A", Length: 120, Width: 80, Height: 100, Quantity: 8, RotationAllowed: true},
				{SKU: "PALLET-B", Length: 100, Width: 100, Height: 80, Quantity: 6, RotationAllowed: true},
				{SKU: "CRATE-S", Length: 60, Width: 40, Height: 50, Quantity: 10, RotationAllowed: true},
			},
			Stacking:              model.Stacking{Enabled: true, MaxLayers: 2},
			GlobalRotationAllowed: true,
		},
		{
			ID:          "impossible",
			Name:        "Chargement impossible",
			Description: "More volume than the trailer can hold, some boxes stay unplaced",
			Trailer:     model.Trailer{Length: 300, Width: 200, Height: 200, Unit: model.UnitCentimeters},
			Boxes: []model.BoxType{
				{SKU: "LARGE-1", Length: 100, Width: 80, Height: 100, Quantity: 10, RotationAllowed: true},
				{SKU: "LARGE-2", Length: 90, Width: 70, Height: 90, Quantity: 8, RotationAllowed: true},
				{SKU: "MEDIUM", Length: 60, Width: 50, Height: 60, Quantity: 15, RotationAllowed: true},
			},
			Stacking:              model.Stacking{Enabled: true, MaxLayers: 3},
			GlobalRotationAllowed: true,
		},
	}
}
