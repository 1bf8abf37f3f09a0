package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/guttosm/trailer-loading-service/internal/domain/dto"
	"github.com/guttosm/trailer-loading-service/internal/domain/model"
	"github.com/guttosm/trailer-loading-service/internal/metrics"
	"github.com/guttosm/trailer-loading-service/internal/packing"
	"github.com/guttosm/trailer-loading-service/internal/service/cache"
)

// InvariantError wraps a geometric consistency failure detected after
// packing. It signals a bug in the packer rather than bad input and maps
// to an internal server error at the HTTP layer.
type InvariantError struct {
	Err error
}

func (e *InvariantError) Error() string { return e.Err.Error() }

func (e *InvariantError) Unwrap() error { return e.Err }

// Optimizer defines the interface for loading plan computation.
type Optimizer interface {
	Optimize(req dto.OptimizeRequest) (model.LoadingPlan, error)
	// InvalidateCache clears the plan cache.
	InvalidateCache()
}

// Option configures an OptimizerService.
type Option func(*OptimizerService)

// OptimizerService implements Optimizer on top of the layered MaxRects
// packing engine. Results are deterministic for identical requests, which
// makes them safe to cache by request digest.
type OptimizerService struct {
	cache cache.Cache
}

// NewOptimizerService creates a new OptimizerService with the given options.
func NewOptimizerService(opts ...Option) *OptimizerService {
	s := &OptimizerService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables plan caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *OptimizerService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *OptimizerService) {
		s.cache = c
	}
}

// Optimize validates the request, normalizes all dimensions to
// centimeters, runs the packing engine and returns the rounded plan.
//
// Validation failures return a *dto.ValidationError; a post-packing
// geometry inconsistency returns an *InvariantError.
func (s *OptimizerService) Optimize(req dto.OptimizeRequest) (model.LoadingPlan, error) {
	if err := req.Validate(); err != nil {
		return model.LoadingPlan{}, err
	}

	trailer, boxes, stacking, globalRotation := req.ToModel()
	trailer = trailer.Normalized()
	unit := req.Trailer.Unit
	for i := range boxes {
		boxes[i] = boxes[i].Normalized(unit)
	}

	if err := checkBoxesFit(trailer, boxes, globalRotation); err != nil {
		return model.LoadingPlan{}, err
	}

	key := ""
	if s.cache != nil {
		key = requestDigest(req)
		if plan, ok := s.cache.Get(key); ok {
			return plan, nil
		}
	}

	start := time.Now()
	plan := packing.Plan(packing.Request{
		Trailer:               trailer,
		Boxes:                 boxes,
		Stacking:              stacking,
		GlobalRotationAllowed: globalRotation,
	})
	if err := packing.CheckPlan(plan, trailer); err != nil {
		return model.LoadingPlan{}, &InvariantError{Err: err}
	}

	plan = roundPlan(plan)
	metrics.RecordOptimization(plan.Fits, plan.Stats.FillRate, time.Since(start))

	if s.cache != nil {
		s.cache.Set(key, plan)
	}
	return plan, nil
}

// InvalidateCache clears the plan cache.
func (s *OptimizerService) InvalidateCache() {
	if s.cache != nil {
		if cacheWithClear, ok := s.cache.(interface{ Clear() }); ok {
			cacheWithClear.Clear()
		}
	}
}

// checkBoxesFit rejects any box type that cannot be placed in the trailer
// in any permitted orientation. Zero-quantity types are skipped.
func checkBoxesFit(trailer model.Trailer, boxes []model.BoxType, globalRotation bool) error {
	for _, b := range boxes {
		if b.Quantity == 0 {
			continue
		}
		rotation := b.RotationAllowed && globalRotation
		fitsNormal := b.Length <= trailer.Length && b.Width <= trailer.Width
		fitsRotated := rotation && b.Width <= trailer.Length && b.Length <= trailer.Width
		fitsHeight := b.Height <= trailer.Height
		if fitsHeight && (fitsNormal || fitsRotated) {
			continue
		}
		return &dto.ValidationError{
			Field: "boxes",
			Message: fmt.Sprintf("box %q (%.0fx%.0fx%.0f cm) is too large for trailer (%.0fx%.0fx%.0f cm)",
				b.SKU, b.Length, b.Width, b.Height,
				trailer.Length, trailer.Width, trailer.Height),
		}
	}
	return nil
}

// requestDigest returns a stable cache key for the request. Struct field
// order makes json.Marshal deterministic for identical input.
func requestDigest(req dto.OptimizeRequest) string {
	raw, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// roundPlan rounds coordinates and dimensions to 2 decimals and the fill
// rate to 4, matching the precision the frontend renders.
func roundPlan(plan model.LoadingPlan) model.LoadingPlan {
	for li := range plan.Layers {
		layer := &plan.Layers[li]
		layer.ZBase = round2(layer.ZBase)
		layer.LayerHeight = round2(layer.LayerHeight)
		for pi := range layer.Placements {
			p := &layer.Placements[pi]
			p.X = round2(p.X)
			p.Y = round2(p.Y)
			p.Z = round2(p.Z)
			p.Length = round2(p.Length)
			p.Width = round2(p.Width)
			p.Height = round2(p.Height)
		}
	}
	plan.Stats.TrailerVolume = round2(plan.Stats.TrailerVolume)
	plan.Stats.UsedVolume = round2(plan.Stats.UsedVolume)
	plan.Stats.FillRate = round4(plan.Stats.FillRate)
	return plan
}
