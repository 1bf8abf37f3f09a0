package packing

import (
	"sort"

	"github.com/guttosm/trailer-loading-service/internal/domain/model"
)

// Request is the validated, unit-normalized input to the planner. All
// dimensions are expected in centimeters; callers normalize before
// invoking Plan.
type Request struct {
	Trailer               model.Trailer
	Boxes                 []model.BoxType
	Stacking              model.Stacking
	GlobalRotationAllowed bool
}

// Plan computes a layered loading plan for the request. It is a pure
// function of its input: no shared state, no mutation of the caller's
// slices, identical input always yields identical output.
func Plan(req Request) model.LoadingPlan {
	trailerVolume := req.Trailer.Volume()

	remaining := expand(req.Boxes, req.GlobalRotationAllowed)
	if len(remaining) == 0 {
		plan := model.EmptyPlan(trailerVolume)
		plan.Fits = true
		return plan
	}

	sortByVolume(remaining)

	maxLayers := 1
	if req.Stacking.Enabled {
		maxLayers = req.Stacking.MaxLayers
	}

	layers := make([]model.Layer, 0, maxLayers)
	currentZ := 0.0

	for len(layers) < maxLayers && len(remaining) > 0 {
		available := req.Trailer.Height - currentZ
		if available <= dimEpsilon {
			break
		}

		placements, layerHeight, leftover := buildLayer(
			req.Trailer.Length, req.Trailer.Width, available, currentZ, remaining)
		if len(placements) == 0 {
			break
		}

		layers = append(layers, model.Layer{
			LayerIndex:  len(layers) + 1,
			ZBase:       currentZ,
			LayerHeight: layerHeight,
			Placements:  placements,
		})
		currentZ += layerHeight
		remaining = leftover
	}

	return assemble(trailerVolume, layers, remaining)
}

// expand flattens box types into individual units, skipping zero-quantity
// types. A unit's effective rotation permission is the AND of its type's
// flag and the global flag.
func expand(boxes []model.BoxType, globalRotation bool) []unit {
	units := make([]unit, 0, len(boxes))
	idx := 0
	for _, b := range boxes {
		allow := b.RotationAllowed && globalRotation
		for i := 0; i < b.Quantity; i++ {
			units = append(units, unit{
				sku:           b.SKU,
				length:        b.Length,
				width:         b.Width,
				height:        b.Height,
				allowRotation: allow,
				index:         idx,
			})
			idx++
		}
	}
	return units
}

// sortByVolume orders units by decreasing volume, then decreasing largest
// footprint dimension, then expansion order. The last key makes the sort
// fully deterministic for same-shaped units.
func sortByVolume(units []unit) {
	sort.SliceStable(units, func(i, j int) bool {
		vi, vj := units[i].volume(), units[j].volume()
		if vi != vj {
			return vi > vj
		}
		di, dj := units[i].maxFootprintDim(), units[j].maxFootprintDim()
		if di != dj {
			return di > dj
		}
		return units[i].index < units[j].index
	})
}

// assemble builds the final plan: unplaced units grouped by SKU in
// ascending order, plus aggregate statistics.
func assemble(trailerVolume float64, layers []model.Layer, remaining []unit) model.LoadingPlan {
	usedVolume := 0.0
	totalPlaced := 0
	for _, layer := range layers {
		for _, p := range layer.Placements {
			usedVolume += p.Volume()
			totalPlaced++
		}
	}

	counts := make(map[string]int, len(remaining))
	for _, u := range remaining {
		counts[u.sku]++
	}
	skus := make([]string, 0, len(counts))
	for sku := range counts {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	unplaced := make([]model.UnplacedItem, 0, len(skus))
	for _, sku := range skus {
		unplaced = append(unplaced, model.UnplacedItem{SKU: sku, Quantity: counts[sku]})
	}

	fillRate := 0.0
	if trailerVolume > 0 {
		fillRate = usedVolume / trailerVolume
	}

	return model.LoadingPlan{
		Fits: len(unplaced) == 0,
		Stats: model.PlanStats{
			TrailerVolume:    trailerVolume,
			UsedVolume:       usedVolume,
			FillRate:         fillRate,
			TotalBoxesPlaced: totalPlaced,
			LayersUsed:       len(layers),
		},
		Layers:   layers,
		Unplaced: unplaced,
	}
}
