// Package scene derives the per-frame geometry of the ray diagram: the
// three principal rays, the stable world-space viewport, the world-to-canvas
// transform, label placement, and the off-viewport glow indicators. All of
// it is frame-local value data rebuilt from the two slider scalars.
package scene

import (
	"math"

	"optics-bench/internal/config"
	"optics-bench/internal/optics"
	"optics-bench/pkg/geometry"
)

// RayKind identifies one of the three canonical principal rays.
type RayKind int

const (
	RayParallel RayKind = iota // horizontal to the lens, then through the back focal point
	RayCentral                 // straight through the lens centre, undeviated
	RayFocal                   // through the front focal point, then parallel to the axis
)

func (k RayKind) String() string {
	switch k {
	case RayParallel:
		return "parallel"
	case RayCentral:
		return "central"
	case RayFocal:
		return "focal"
	default:
		return "unknown"
	}
}

// Ray is one principal-ray polyline in world coordinates. Points holds the
// forward path (source, lens-plane crossing, far endpoint). ExitSlope is
// the true post-lens slope, computed once and shared by the forward draw
// and the backward extension so the two passes can never disagree.
type Ray struct {
	Kind      RayKind
	Points    []geometry.Point2D
	LensY     float64 // lens-plane intercept
	ExitSlope float64

	// Back holds the dashed backward extension toward the virtual image;
	// empty outside the virtual regime. Traced at ExitSlope, not at any
	// drawing clamp, so the three extensions converge on the physical
	// image point.
	Back []geometry.Point2D
}

// Crossings holds the lens-plane intercepts of the three principal rays.
// Computed once per frame and threaded to both the lens-housing sizing and
// the ray construction, so the two can never diverge.
type Crossings struct {
	Parallel float64
	Central  float64
	Focal    float64
}

// ComputeCrossings derives the lens-plane intercepts from the solution.
// The focal-ray denominator vanishes at d_o = f; inside the near-infinity
// band the intercept is clamped to a multiple of the object height to keep
// the geometry sane. The clamp applies only within the band.
func ComputeCrossings(cfg *config.Config, sol optics.Solution) Crossings {
	h := cfg.ObjectHeight
	c := Crossings{
		Parallel: h,
		Central:  0,
		Focal:    h * sol.FocalLength / (sol.FocalLength - sol.ObjectDistance),
	}
	if sol.Type == optics.AtInfinity {
		limit := cfg.FocalInterceptClamp * h
		c.Focal = geometry.Clamp(c.Focal, -limit, limit)
	}
	return c
}

// MaxAbs returns the largest intercept magnitude.
func (c Crossings) MaxAbs() float64 {
	m := math.Abs(c.Parallel)
	if a := math.Abs(c.Central); a > m {
		m = a
	}
	if a := math.Abs(c.Focal); a > m {
		m = a
	}
	return m
}

// ComputeRays builds the three principal rays. The viewport bounds forward
// ray endpoints only; ray geometry never feeds back into the viewport.
func ComputeRays(cfg *config.Config, sol optics.Solution, cross Crossings, view geometry.Rect) []Ray {
	h := cfg.ObjectHeight
	tip := geometry.Point2D{X: -sol.ObjectDistance, Y: h}

	if sol.Type == optics.AtInfinity {
		// Image at infinity: simplified geometry, all rays exit parallel
		// to the optical axis at their intercept height.
		mk := func(kind RayKind, y float64) Ray {
			return Ray{
				Kind:      kind,
				LensY:     y,
				ExitSlope: 0,
				Points: []geometry.Point2D{
					tip,
					{X: 0, Y: y},
					{X: view.XMax, Y: y},
				},
			}
		}
		return []Ray{
			mk(RayParallel, cross.Parallel),
			mk(RayCentral, cross.Central),
			mk(RayFocal, cross.Focal),
		}
	}

	di := sol.ImageDistance
	imageTip := geometry.Point2D{X: di, Y: sol.Magnification * h}

	// True post-lens slopes: each ray must pass through the image tip.
	build := []struct {
		kind  RayKind
		lensY float64
		slope float64
	}{
		{RayParallel, cross.Parallel, -h / sol.FocalLength},
		{RayCentral, cross.Central, -h / sol.ObjectDistance},
		{RayFocal, cross.Focal, 0},
	}

	rays := make([]Ray, 0, 3)
	for _, b := range build {
		r := Ray{Kind: b.kind, LensY: b.lensY, ExitSlope: b.slope}

		if sol.Type == optics.Real {
			// Converging: forward to the real image point.
			r.Points = []geometry.Point2D{
				tip,
				{X: 0, Y: b.lensY},
				imageTip,
			}
		} else {
			// Diverging: forward along the exit slope to the viewport
			// edge, plus a backward extension to the virtual image.
			endX := view.XMax
			r.Points = []geometry.Point2D{
				tip,
				{X: 0, Y: b.lensY},
				{X: endX, Y: b.lensY + b.slope*endX},
			}
			r.Back = []geometry.Point2D{
				{X: 0, Y: b.lensY},
				{X: di, Y: b.lensY + b.slope*di},
			}
		}
		rays = append(rays, r)
	}
	return rays
}

// LensHalfHeight returns the half-height of the lens glyph: the smallest
// half-extent enclosing every ray lens-plane intercept plus a margin,
// clamped so the glyph cannot grow without bound as rays diverge near the
// singularity.
func LensHalfHeight(cfg *config.Config, cross Crossings) float64 {
	return geometry.Clamp(cross.MaxAbs()+cfg.LensMargin, cfg.LensHalfMin, cfg.LensHalfMax)
}
