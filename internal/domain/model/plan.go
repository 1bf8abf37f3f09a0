// Package model defines the core domain entities for the trailer loading service.
package model

// Unit names accepted for trailer and box dimensions.
const (
	UnitCentimeters = "cm"
	UnitMeters      = "m"
)

// Trailer represents the rectangular loading volume of a trailer.
//
// @Description Trailer dimensions with their linear unit
// @Example {"length": 13.6, "width": 2.45, "height": 2.7, "unit": "m"}
type Trailer struct {
	// Length is the trailer interior length
	Length float64 `json:"length" example:"13.6"`
	// Width is the trailer interior width
	Width float64 `json:"width" example:"2.45"`
	// Height is the trailer interior height
	Height float64 `json:"height" example:"2.7"`
	// Unit is the linear unit of the dimensions, "cm" or "m"
	Unit string `json:"unit" example:"m"`
}

// Normalized returns a copy of the trailer with all dimensions in
// centimeters. Meters are scaled by 100; centimeters pass through.
func (t Trailer) Normalized() Trailer {
	if t.Unit != UnitMeters {
		out := t
		out.Unit = UnitCentimeters
		return out
	}
	return Trailer{
		Length: t.Length * 100,
		Width:  t.Width * 100,
		Height: t.Height * 100,
		Unit:   UnitCentimeters,
	}
}

// Volume returns length * width * height in the trailer's current unit.
func (t Trailer) Volume() float64 {
	return t.Length * t.Width * t.Height
}

// BoxType describes one kind of box in the inventory to load.
//
// @Description Box type with dimensions, quantity and rotation permission
// @Example {"sku": "PAL-120", "length": 120, "width": 80, "height": 95, "quantity": 12, "rotation_allowed": true}
type BoxType struct {
	// SKU identifies the box type within a request
	SKU string `json:"sku" example:"PAL-120"`
	// Length is the box footprint length
	Length float64 `json:"length" example:"120"`
	// Width is the box footprint width
	Width float64 `json:"width" example:"80"`
	// Height is the box height
	Height float64 `json:"height" example:"95"`
	// Quantity is the number of identical units to place
	Quantity int `json:"quantity" example:"12"`
	// RotationAllowed permits swapping length and width for this type
	RotationAllowed bool `json:"rotation_allowed" example:"true"`
}

// Normalized returns a copy of the box with dimensions converted from the
// given unit to centimeters.
func (b BoxType) Normalized(unit string) BoxType {
	if unit != UnitMeters {
		return b
	}
	out := b
	out.Length *= 100
	out.Width *= 100
	out.Height *= 100
	return out
}

// UnitVolume returns the volume of a single unit of this box type.
func (b BoxType) UnitVolume() float64 {
	return b.Length * b.Width * b.Height
}

// Stacking configures how layers may be stacked vertically.
//
// @Description Stacking configuration
// @Example {"enabled": true, "max_layers": 3}
type Stacking struct {
	// Enabled allows building more than one layer
	Enabled bool `json:"enabled" example:"true"`
	// MaxLayers caps the number of layers when stacking is enabled
	MaxLayers int `json:"max_layers" example:"3"`
}

// Placement is one box unit positioned inside the trailer. Dimensions are
// the ones actually used, after any rotation, in centimeters.
//
// @Description Placed box with position and post-rotation dimensions
type Placement struct {
	// SKU of the placed box type
	SKU string `json:"sku" example:"PAL-120"`
	// X position of the box origin along the trailer length
	X float64 `json:"x" example:"0"`
	// Y position of the box origin along the trailer width
	Y float64 `json:"y" example:"0"`
	// Z position of the box base, the z_base of its layer
	Z float64 `json:"z" example:"0"`
	// Length of the box as placed
	Length float64 `json:"l" example:"120"`
	// Width of the box as placed
	Width float64 `json:"w" example:"80"`
	// Height of the box
	Height float64 `json:"h" example:"95"`
	// Rotated is true when length and width were swapped
	Rotated bool `json:"rotated" example:"false"`
}

// Volume returns the volume occupied by the placement.
func (p Placement) Volume() float64 {
	return p.Length * p.Width * p.Height
}

// Layer is one horizontal slab of placements at a fixed base height.
//
// @Description Layer of placements with its base height and realized height
type Layer struct {
	// LayerIndex is 1-based and increases with height
	LayerIndex int `json:"layer_index" example:"1"`
	// ZBase is the cumulative height of all layers below
	ZBase float64 `json:"z_base" example:"0"`
	// LayerHeight is the tallest box placed in this layer
	LayerHeight float64 `json:"layer_height" example:"95"`
	// Placements in packer insertion order
	Placements []Placement `json:"placements"`
}

// UnplacedItem reports box units that no layer could accommodate.
//
// @Description Unplaced box type with residual quantity
type UnplacedItem struct {
	// SKU of the box type
	SKU string `json:"sku" example:"PAL-240"`
	// Quantity is the residual unplaced count
	Quantity int `json:"qty" example:"3"`
}

// PlanStats aggregates volume and count statistics for a loading plan.
//
// @Description Summary statistics of a loading plan
type PlanStats struct {
	// TrailerVolume is the full trailer volume in cubic centimeters
	TrailerVolume float64 `json:"trailer_volume" example:"4500000"`
	// UsedVolume is the summed volume of all placements
	UsedVolume float64 `json:"used_volume" example:"912000"`
	// FillRate is used volume divided by trailer volume
	FillRate float64 `json:"fill_rate" example:"0.2027"`
	// TotalBoxesPlaced counts every placement across layers
	TotalBoxesPlaced int `json:"total_boxes_placed" example:"12"`
	// LayersUsed is the number of non-empty layers built
	LayersUsed int `json:"layers_used" example:"1"`
}

// LoadingPlan is the complete result of one optimization request.
//
// @Description Loading plan with layers, unplaced items and statistics
type LoadingPlan struct {
	// Fits is true when every requested box unit was placed
	Fits bool `json:"fits" example:"true"`
	// Stats summarizes volumes and counts
	Stats PlanStats `json:"stats"`
	// Layers ordered bottom to top
	Layers []Layer `json:"layers"`
	// Unplaced box types with residual quantities, sorted by SKU
	Unplaced []UnplacedItem `json:"unplaced"`
}

// EmptyPlan returns a plan with no placements for a trailer of the given
// volume.
func EmptyPlan(trailerVolume float64) LoadingPlan {
	return LoadingPlan{
		Fits:     false,
		Stats:    PlanStats{TrailerVolume: trailerVolume},
		Layers:   []Layer{},
		Unplaced: []UnplacedItem{},
	}
}
