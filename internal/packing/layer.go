package packing

import (
	"github.com/guttosm/trailer-loading-service/internal/domain/model"
)

// unit is one expanded box instance awaiting placement. The expansion
// index preserves request order for stable sorting.
type unit struct {
	sku           string
	length        float64
	width         float64
	height        float64
	allowRotation bool
	index         int
}

func (u unit) volume() float64 {
	return u.length * u.width * u.height
}

func (u unit) maxFootprintDim() float64 {
	if u.length > u.width {
		return u.length
	}
	return u.width
}

// buildLayer packs as many remaining units as possible into one layer of
// the given footprint. Units taller than maxHeight are skipped and stay
// in the remaining inventory. Returns the layer placements, the realized
// layer height and the units left over.
func buildLayer(footprintLength, footprintWidth, maxHeight, zBase float64, remaining []unit) ([]model.Placement, float64, []unit) {
	packer := newMaxRectsPacker(footprintLength, footprintWidth)

	placements := make([]model.Placement, 0, len(remaining))
	leftover := make([]unit, 0, len(remaining))
	layerHeight := 0.0

	for _, u := range remaining {
		if u.height > maxHeight+dimEpsilon {
			leftover = append(leftover, u)
			continue
		}
		pos, ok := packer.tryPlace(u.length, u.width, u.allowRotation)
		if !ok {
			leftover = append(leftover, u)
			continue
		}
		placements = append(placements, model.Placement{
			SKU:     u.sku,
			X:       pos.X,
			Y:       pos.Y,
			Z:       zBase,
			Length:  pos.Length,
			Width:   pos.Width,
			Height:  u.height,
			Rotated: pos.Rotated,
		})
		if u.height > layerHeight {
			layerHeight = u.height
		}
	}

	return placements, layerHeight, leftover
}
