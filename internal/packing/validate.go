package packing

import (
	"fmt"

	"github.com/guttosm/trailer-loading-service/internal/domain/model"
)

// checkEpsilon tolerates float rounding when verifying plan geometry.
const checkEpsilon = 0.001

// CheckPlan verifies the geometric invariants of a computed plan against
// the normalized trailer: no two footprints in a layer overlap and every
// placement stays inside the trailer volume. A non-nil error means the
// packer itself is broken, not that the input was bad.
func CheckPlan(plan model.LoadingPlan, trailer model.Trailer) error {
	for _, layer := range plan.Layers {
		if err := checkNoOverlap(layer); err != nil {
			return err
		}
	}
	return checkWithinBounds(plan, trailer)
}

func checkNoOverlap(layer model.Layer) error {
	for i := 0; i < len(layer.Placements); i++ {
		for j := i + 1; j < len(layer.Placements); j++ {
			a, b := layer.Placements[i], layer.Placements[j]
			if footprintsOverlap(a, b) {
				return fmt.Errorf("packer invariant violated: %q and %q overlap in layer %d",
					a.SKU, b.SKU, layer.LayerIndex)
			}
		}
	}
	return nil
}

func footprintsOverlap(a, b model.Placement) bool {
	return a.X < b.X+b.Length-checkEpsilon &&
		a.X+a.Length > b.X+checkEpsilon &&
		a.Y < b.Y+b.Width-checkEpsilon &&
		a.Y+a.Width > b.Y+checkEpsilon
}

func checkWithinBounds(plan model.LoadingPlan, trailer model.Trailer) error {
	for _, layer := range plan.Layers {
		for _, p := range layer.Placements {
			if p.X < -checkEpsilon || p.Y < -checkEpsilon || p.Z < -checkEpsilon ||
				p.X+p.Length > trailer.Length+checkEpsilon ||
				p.Y+p.Width > trailer.Width+checkEpsilon ||
				p.Z+p.Height > trailer.Height+checkEpsilon {
				return fmt.Errorf("packer invariant violated: %q at (%.2f, %.2f, %.2f) exceeds trailer bounds",
					p.SKU, p.X, p.Y, p.Z)
			}
		}
	}
	return nil
}
