package model

// Scenario is a predefined demo request that can be loaded by the
// frontend to showcase the optimizer without typing dimensions by hand.
//
// @Description Predefined demo scenario
type Scenario struct {
	// ID is the scenario's stable identifier
	ID string `json:"id" example:"small"`
	// Name is a human-readable label
	Name string `json:"name" example:"Petit chargement"`
	// Description explains what the scenario demonstrates
	Description string `json:"description,omitempty"`
	// Trailer dimensions for the scenario
	Trailer Trailer `json:"trailer"`
	// Boxes inventory for the scenario
	Boxes []BoxType `json:"boxes"`
	// Stacking configuration for the scenario
	Stacking Stacking `json:"stacking"`
	// GlobalRotationAllowed gates rotation for every box type
	GlobalRotationAllowed bool `json:"global_rotation_allowed"`
}
