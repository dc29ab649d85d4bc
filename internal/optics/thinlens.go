// Package optics provides the pure closed-form math of the visualizer:
// the thin-lens equation, HMD field-of-view formulas, and radial
// distortion mapping. Nothing in this package holds state.
package optics

import (
	"math"
)

// ImageType classifies the image produced by a lens configuration.
type ImageType int

const (
	Real ImageType = iota
	Virtual
	AtInfinity
)

func (t ImageType) String() string {
	switch t {
	case Real:
		return "Real"
	case Virtual:
		return "Virtual"
	case AtInfinity:
		return "At infinity"
	default:
		return "Unknown"
	}
}

// huge is the magnitude beyond which a raw image distance is classified
// as effectively at infinity.
const huge = 1e6

// ImageDistance evaluates the thin-lens equation 1/f = 1/d_o + 1/d_i for
// the image distance. Both f and objectDistance must be positive. The raw
// formula diverges as objectDistance approaches f; callers that care about
// the singularity apply the near-infinity band (NearInfinity) before
// interpreting the result.
func ImageDistance(f, objectDistance float64) float64 {
	return 1 / (1/f - 1/objectDistance)
}

// Magnification returns the lateral magnification for the given image and
// object distances. The sign convention makes real images inverted
// (negative) and virtual images upright (positive).
func Magnification(imageDistance, objectDistance float64) float64 {
	return -imageDistance / objectDistance
}

// ClassifyImage classifies a raw image distance. Non-finite or extremely
// large values are AtInfinity; otherwise positive is Real and the rest
// Virtual. Note this pure classifier does not apply the relative epsilon
// band around d_o = f; that banding is applied by callers to |d_o - f|
// before the thin-lens equation is even evaluated (see Solve).
func ClassifyImage(imageDistance float64) ImageType {
	if math.IsNaN(imageDistance) || math.IsInf(imageDistance, 0) || math.Abs(imageDistance) > huge {
		return AtInfinity
	}
	if imageDistance > 0 {
		return Real
	}
	return Virtual
}

// NearInfinityThreshold returns the half-width of the tolerance band
// around d_o = f inside which the configuration is treated as "at focal
// point". The band combines an absolute floor with a fraction of the
// focal length so that it stays meaningful across the whole slider range.
func NearInfinityThreshold(f, abs, frac float64) float64 {
	return math.Max(abs, frac*f)
}

// Solution is the per-frame derived optical state. RawImageDistance keeps
// the unguarded thin-lens result even inside the near-infinity band, for
// continuity calculations such as backward-ray extension slopes.
type Solution struct {
	FocalLength      float64
	ObjectDistance   float64
	ImageDistance    float64 // +Inf inside the near-infinity band
	RawImageDistance float64
	Magnification    float64
	Type             ImageType
}

// Solve computes the full Solution for a lens configuration. The epsilon
// band |d_o - f| < max(abs, frac*f) is applied before the raw formula is
// interpreted, so the singular region never leaks divergent values into
// ImageDistance or Magnification.
func Solve(f, objectDistance, bandAbs, bandFrac float64) Solution {
	sol := Solution{
		FocalLength:    f,
		ObjectDistance: objectDistance,
	}

	threshold := NearInfinityThreshold(f, bandAbs, bandFrac)
	raw := ImageDistance(f, objectDistance)
	sol.RawImageDistance = raw

	if math.Abs(objectDistance-f) < threshold {
		sol.Type = AtInfinity
		sol.ImageDistance = math.Inf(1)
		sol.Magnification = math.Inf(1)
		return sol
	}

	sol.ImageDistance = raw
	sol.Magnification = Magnification(raw, objectDistance)
	sol.Type = ClassifyImage(raw)
	return sol
}

// Regime returns the user-facing regime label for a solution.
func (s Solution) Regime() string {
	switch s.Type {
	case AtInfinity:
		return "At focal point"
	case Virtual:
		return "HMD (virtual image)"
	default:
		return "Projector (real image)"
	}
}
