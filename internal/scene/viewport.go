package scene

import (
	"optics-bench/internal/config"
	"optics-bench/pkg/geometry"
)

// EyeAnchorX returns the world x position of the eye glyph. In the HMD
// regime (object inside the focal length) the eye backs away with longer
// focal lengths; in the projector regime it sits at a fixed offset.
func EyeAnchorX(cfg *config.Config, f, objectDistance float64) float64 {
	if objectDistance < f {
		if x := cfg.EyeHMDFrac * f; x > cfg.EyeHMDMin {
			return x
		}
		return cfg.EyeHMDMin
	}
	return cfg.EyeProjector
}

// DeriveViewport computes the stable world-space viewport for a frame.
//
// The bounds derive from the display anchor, the eye anchor, both focal
// points, and the (clamped) lens housing, never from the image position.
// That exclusion is what keeps the viewport from chasing the divergent
// image coordinate as d_o approaches f; an image outside the viewport is
// reported through the edge-glow indicators instead.
//
// aspect is the canvas pixel aspect ratio (width/height); the viewport is
// expanded, never cropped, to match it.
func DeriveViewport(cfg *config.Config, f, objectDistance, lensHalf, aspect float64) geometry.Rect {
	eyeX := EyeAnchorX(cfg, f, objectDistance)

	view := geometry.Rect{
		XMin: -objectDistance - cfg.DisplayMargin,
		XMax: eyeX,
		YMin: -(cfg.ObjectHeight + cfg.FocalMargin),
		YMax: cfg.ObjectHeight + cfg.FocalMargin,
	}
	view = view.Include(geometry.Point2D{X: -f - cfg.FocalMargin})
	view = view.Include(geometry.Point2D{X: f + cfg.FocalMargin})
	view = view.Include(geometry.Point2D{Y: lensHalf + cfg.FocalMargin})
	view = view.Include(geometry.Point2D{Y: -(lensHalf + cfg.FocalMargin)})

	// Minimum size, growing symmetrically about the centre.
	if w := view.Width(); w < cfg.MinViewportW {
		view = view.Expand((cfg.MinViewportW-w)/2, 0)
	}
	if h := view.Height(); h < cfg.MinViewportH {
		view = view.Expand(0, (cfg.MinViewportH-h)/2)
	}

	// Fixed padding fractions.
	view = view.Expand(view.Width()*cfg.PadFracX, view.Height()*cfg.PadFracY)

	return matchAspect(view, aspect)
}

// matchAspect expands the viewport on one axis so that its width/height
// ratio equals the canvas aspect ratio. Degenerate aspect values leave the
// viewport untouched.
func matchAspect(view geometry.Rect, aspect float64) geometry.Rect {
	if aspect <= 0 || !view.IsFinite() || view.Height() <= 0 {
		return view
	}
	current := view.Width() / view.Height()
	switch {
	case current < aspect:
		// Too tall for the canvas: widen.
		extra := view.Height()*aspect - view.Width()
		view = view.Expand(extra/2, 0)
	case current > aspect:
		// Too wide: heighten.
		extra := view.Width()/aspect - view.Height()
		view = view.Expand(0, extra/2)
	}
	return view
}
