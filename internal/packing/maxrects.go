// Package packing implements the layered 3D loading engine: a MaxRects
// free-rectangle packer fills the trailer footprint one horizontal layer
// at a time, and the planner stacks layers until the vertical budget or
// the layer limit is exhausted.
package packing

import "math"

// dimEpsilon guards float comparisons on box and rectangle dimensions.
const dimEpsilon = 1e-9

// Position is the result of a successful 2D placement: the footprint
// origin within the layer plane and the dimensions as actually used.
type Position struct {
	X       float64
	Y       float64
	Length  float64
	Width   float64
	Rotated bool
}

type freeRect struct {
	x, y, w, h float64
}

func (r freeRect) containedIn(o freeRect) bool {
	return r.x >= o.x-dimEpsilon &&
		r.y >= o.y-dimEpsilon &&
		r.x+r.w <= o.x+o.w+dimEpsilon &&
		r.y+r.h <= o.y+o.h+dimEpsilon
}

// maxRectsPacker tracks the unoccupied floor space of a single layer as a
// list of (possibly overlapping) maximal free rectangles. Placements use
// the Best Short Side Fit heuristic.
type maxRectsPacker struct {
	width     float64
	height    float64
	freeRects []freeRect
}

// newMaxRectsPacker creates a packer for a plane of the given size with
// the whole plane free.
func newMaxRectsPacker(width, height float64) *maxRectsPacker {
	return &maxRectsPacker{
		width:     width,
		height:    height,
		freeRects: []freeRect{{x: 0, y: 0, w: width, h: height}},
	}
}

// tryPlace finds room for an l×w footprint, optionally trying the rotated
// (w×l) orientation. Among all candidate free rectangles the one with the
// smallest short-side leftover wins; ties fall to the smallest long-side
// leftover, then to free-rectangle order, which keeps the output
// deterministic for identical input.
func (p *maxRectsPacker) tryPlace(l, w float64, allowRotation bool) (Position, bool) {
	bestShort := math.Inf(1)
	bestLong := math.Inf(1)
	bestIdx := -1
	bestRotated := false

	orientations := [][2]float64{{l, w}}
	if allowRotation && l != w {
		orientations = append(orientations, [2]float64{w, l})
	}

	for _, o := range orientations {
		ol, ow := o[0], o[1]
		for i, fr := range p.freeRects {
			if fr.w < ol-dimEpsilon || fr.h < ow-dimEpsilon {
				continue
			}
			leftoverX := fr.w - ol
			leftoverY := fr.h - ow
			short := math.Min(leftoverX, leftoverY)
			long := math.Max(leftoverX, leftoverY)
			if short < bestShort || (short == bestShort && long < bestLong) {
				bestShort = short
				bestLong = long
				bestIdx = i
				bestRotated = ol != l
			}
		}
	}

	if bestIdx < 0 {
		return Position{}, false
	}

	pl, pw := l, w
	if bestRotated {
		pl, pw = w, l
	}
	placed := freeRect{x: p.freeRects[bestIdx].x, y: p.freeRects[bestIdx].y, w: pl, h: pw}
	p.placeRect(placed)

	return Position{X: placed.x, Y: placed.y, Length: pl, Width: pw, Rotated: bestRotated}, true
}

// placeRect carves the placed footprint out of every free rectangle it
// intersects, then prunes rectangles subsumed by others.
func (p *maxRectsPacker) placeRect(used freeRect) {
	next := make([]freeRect, 0, len(p.freeRects)+4)
	for _, fr := range p.freeRects {
		if !intersects(fr, used) {
			next = append(next, fr)
			continue
		}
		next = appendSplit(next, fr, used)
	}
	p.freeRects = pruneContained(next)
}

func intersects(a, b freeRect) bool {
	return a.x < b.x+b.w-dimEpsilon &&
		a.x+a.w > b.x+dimEpsilon &&
		a.y < b.y+b.h-dimEpsilon &&
		a.y+a.h > b.y+dimEpsilon
}

// appendSplit emits the up-to-four remainder rectangles of fr after
// removing its overlap with used. Degenerate slivers are dropped.
func appendSplit(dst []freeRect, fr, used freeRect) []freeRect {
	// Left remainder, full height of fr.
	if used.x > fr.x {
		dst = appendIfValid(dst, freeRect{x: fr.x, y: fr.y, w: used.x - fr.x, h: fr.h})
	}
	// Right remainder, full height of fr.
	if used.x+used.w < fr.x+fr.w {
		dst = appendIfValid(dst, freeRect{x: used.x + used.w, y: fr.y, w: fr.x + fr.w - (used.x + used.w), h: fr.h})
	}
	// Bottom remainder, full width of fr.
	if used.y > fr.y {
		dst = appendIfValid(dst, freeRect{x: fr.x, y: fr.y, w: fr.w, h: used.y - fr.y})
	}
	// Top remainder, full width of fr.
	if used.y+used.h < fr.y+fr.h {
		dst = appendIfValid(dst, freeRect{x: fr.x, y: used.y + used.h, w: fr.w, h: fr.y + fr.h - (used.y + used.h)})
	}
	return dst
}

func appendIfValid(dst []freeRect, r freeRect) []freeRect {
	if r.w > dimEpsilon && r.h > dimEpsilon {
		dst = append(dst, r)
	}
	return dst
}

// pruneContained drops every free rectangle fully contained in another,
// keeping the earlier of two identical rectangles.
func pruneContained(rects []freeRect) []freeRect {
	kept := make([]freeRect, 0, len(rects))
	for i, r := range rects {
		contained := false
		for j, o := range rects {
			if i == j {
				continue
			}
			if r.containedIn(o) {
				// Identical rectangles keep the first occurrence only.
				if o.containedIn(r) && j > i {
					continue
				}
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, r)
		}
	}
	return kept
}
