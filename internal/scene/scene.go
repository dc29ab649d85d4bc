package scene

import (
	"optics-bench/internal/config"
	"optics-bench/internal/optics"
	"optics-bench/pkg/geometry"
)

// Params are the two user-controlled scalars, in millimetres. They are the
// only mutable state in the system; everything else in a Frame is derived.
type Params struct {
	FocalLength    float64
	ObjectDistance float64
}

// Frame is the complete derived state for one rendered frame. It is built
// from scratch on every redraw; nothing is cached across frames.
type Frame struct {
	Params   Params
	Solution optics.Solution

	Crossings Crossings
	Rays      []Ray
	LensHalf  float64

	Viewport geometry.Rect
	World    geometry.AffineTransform // world -> canvas pixels
	CanvasW  int
	CanvasH  int

	// DrawnImageTipY is the image arrow tip with the drawing-only
	// magnification clamp applied. The unclamped physical tip is
	// Solution.Magnification * cfg.ObjectHeight.
	DrawnImageTipY float64
	ImageInView    bool

	Glows []Glow
}

// BuildFrame derives the full frame state for the given parameters and
// canvas size. Pure: same inputs, same frame.
func BuildFrame(cfg *config.Config, p Params, canvasW, canvasH int) Frame {
	sol := optics.Solve(p.FocalLength, p.ObjectDistance, cfg.NearInfinityAbs, cfg.NearInfinityFrac)

	cross := ComputeCrossings(cfg, sol)
	lensHalf := LensHalfHeight(cfg, cross)

	// Aspect of the padded canvas rectangle the viewport maps onto, so the
	// solved transform scales both axes equally.
	aspect := 0.0
	if innerH := float64(canvasH) - 2*canvasPad; innerH > 0 {
		aspect = (float64(canvasW) - 2*canvasPad) / innerH
	}
	view := DeriveViewport(cfg, p.FocalLength, p.ObjectDistance, lensHalf, aspect)

	rays := ComputeRays(cfg, sol, cross, view)

	frame := Frame{
		Params:    p,
		Solution:  sol,
		Crossings: cross,
		Rays:      rays,
		LensHalf:  lensHalf,
		Viewport:  view,
		World:     WorldToCanvas(view, canvasW, canvasH),
		CanvasW:   canvasW,
		CanvasH:   canvasH,
	}

	if sol.Type != optics.AtInfinity {
		clamp := cfg.DrawMagClamp
		m := geometry.Clamp(sol.Magnification, -clamp, clamp)
		frame.DrawnImageTipY = m * cfg.ObjectHeight
		frame.ImageInView = sol.ImageDistance >= view.XMin && sol.ImageDistance <= view.XMax
	}

	frame.Glows = ComputeGlows(sol, view, frame.DrawnImageTipY)
	return frame
}
