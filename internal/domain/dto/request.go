// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"

	"github.com/guttosm/trailer-loading-service/internal/domain/model"
)

// OptimizeRequest represents the JSON request body for the loading
// optimization endpoint.
//
// Dimensions may be given in centimeters or meters; they are normalized
// to centimeters before packing. Structural validation is performed with
// gin's binding tags, cross-field rules with Validate.
//
// @Description Request to compute a layered loading plan for a trailer
// @Example {"trailer": {"length": 200, "width": 150, "height": 150, "unit": "cm"}, "boxes": [{"sku": "BOX-A", "length": 40, "width": 30, "height": 30, "quantity": 5, "rotation_allowed": true}], "stacking": {"enabled": true, "max_layers": 3}, "global_rotation_allowed": true}
type OptimizeRequest struct {
	// Trailer holds the loading volume dimensions and their unit.
	Trailer TrailerRequest `json:"trailer" binding:"required"`
	// Boxes is the inventory of box types to place. Must not be empty.
	Boxes []BoxRequest `json:"boxes" binding:"required,min=1,dive"`
	// Stacking configures vertical layering.
	Stacking StackingRequest `json:"stacking"`
	// GlobalRotationAllowed gates rotation for every box type.
	GlobalRotationAllowed *bool `json:"global_rotation_allowed"`
} // @name OptimizeRequest

// TrailerRequest carries trailer dimensions in the request unit.
type TrailerRequest struct {
	// Length of the trailer interior. Must be greater than 0.
	Length float64 `json:"length" binding:"required,gt=0" example:"200"`
	// Width of the trailer interior. Must be greater than 0.
	Width float64 `json:"width" binding:"required,gt=0" example:"150"`
	// Height of the trailer interior. Must be greater than 0.
	Height float64 `json:"height" binding:"required,gt=0" example:"150"`
	// Unit is "cm" or "m". Defaults to "cm".
	Unit string `json:"unit" binding:"omitempty,oneof=cm m" example:"cm"`
} // @name TrailerRequest

// BoxRequest carries one box type of the inventory.
type BoxRequest struct {
	// SKU identifies the box type within the request.
	SKU string `json:"sku" binding:"required" example:"BOX-A"`
	// Length of the box footprint. Must be greater than 0.
	Length float64 `json:"length" binding:"required,gt=0" example:"40"`
	// Width of the box footprint. Must be greater than 0.
	Width float64 `json:"width" binding:"required,gt=0" example:"30"`
	// Height of the box. Must be greater than 0.
	Height float64 `json:"height" binding:"required,gt=0" example:"30"`
	// Quantity of identical units. Zero-quantity types are ignored.
	Quantity int `json:"quantity" binding:"min=0" example:"5"`
	// RotationAllowed permits swapping length and width for this type.
	RotationAllowed *bool `json:"rotation_allowed"`
} // @name BoxRequest

// StackingRequest configures vertical layering for a request.
type StackingRequest struct {
	// Enabled allows building more than one layer.
	Enabled bool `json:"enabled" example:"true"`
	// MaxLayers caps the layer count. Must be between 1 and 3.
	MaxLayers int `json:"max_layers" binding:"omitempty,min=1,max=3" example:"3"`
} // @name StackingRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrEmptyBoxes is returned when the box list is missing or empty.
	ErrEmptyBoxes = &ValidationError{
		Field:   "boxes",
		Message: "at least one box type is required",
	}
	// ErrInvalidUnit is returned for units other than cm or m.
	ErrInvalidUnit = &ValidationError{
		Field:   "trailer.unit",
		Message: "must be \"cm\" or \"m\"",
	}
	// ErrInvalidMaxLayers is returned when max_layers is out of range.
	ErrInvalidMaxLayers = &ValidationError{
		Field:   "stacking.max_layers",
		Message: "must be between 1 and 3",
	}
)

// Validate performs custom validation on the request beyond binding tags.
// Returns an error if validation fails, nil otherwise.
func (r *OptimizeRequest) Validate() error {
	if r.Trailer.Length <= 0 || r.Trailer.Width <= 0 || r.Trailer.Height <= 0 {
		return &ValidationError{Field: "trailer", Message: "dimensions must be positive"}
	}
	if r.Trailer.Unit != "" && r.Trailer.Unit != model.UnitCentimeters && r.Trailer.Unit != model.UnitMeters {
		return ErrInvalidUnit
	}
	if len(r.Boxes) == 0 {
		return ErrEmptyBoxes
	}
	for i, b := range r.Boxes {
		if b.SKU == "" {
			return &ValidationError{Field: fmt.Sprintf("boxes[%d].sku", i), Message: "is required"}
		}
		if b.Length <= 0 || b.Width <= 0 || b.Height <= 0 {
			return &ValidationError{Field: fmt.Sprintf("boxes[%d]", i), Message: "dimensions must be positive"}
		}
		if b.Quantity < 0 {
			return &ValidationError{Field: fmt.Sprintf("boxes[%d].quantity", i), Message: "must not be negative"}
		}
	}
	if r.Stacking.MaxLayers < 0 || r.Stacking.MaxLayers > 3 {
		return ErrInvalidMaxLayers
	}
	return nil
}

// ToModel converts the request to domain types, applying defaults:
// unit "cm", per-box rotation allowed, global rotation allowed, and
// max_layers 3.
func (r *OptimizeRequest) ToModel() (model.Trailer, []model.BoxType, model.Stacking, bool) {
	unit := r.Trailer.Unit
	if unit == "" {
		unit = model.UnitCentimeters
	}
	trailer := model.Trailer{
		Length: r.Trailer.Length,
		Width:  r.Trailer.Width,
		Height: r.Trailer.Height,
		Unit:   unit,
	}

	boxes := make([]model.BoxType, 0, len(r.Boxes))
	for _, b := range r.Boxes {
		rotation := true
		if b.RotationAllowed != nil {
			rotation = *b.RotationAllowed
		}
		boxes = append(boxes, model.BoxType{
			SKU:             b.SKU,
			Length:          b.Length,
			Width:           b.Width,
			Height:          b.Height,
			Quantity:        b.Quantity,
			RotationAllowed: rotation,
		})
	}

	maxLayers := r.Stacking.MaxLayers
	if maxLayers == 0 {
		maxLayers = 3
	}
	stacking := model.Stacking{Enabled: r.Stacking.Enabled, MaxLayers: maxLayers}

	globalRotation := true
	if r.GlobalRotationAllowed != nil {
		globalRotation = *r.GlobalRotationAllowed
	}

	return trailer, boxes, stacking, globalRotation
}
