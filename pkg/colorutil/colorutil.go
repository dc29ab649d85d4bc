// Package colorutil provides the shared color palette for the optics bench.
package colorutil

import (
	"image/color"
)

// Common colors used throughout the application.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	Gray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Scene palette. Ray colors follow the usual textbook convention; glow
// colors are keyed to image type, not edge (virtual is always purple,
// real is always green).
var (
	Background  = color.RGBA{R: 16, G: 18, B: 26, A: 255}
	Axis        = color.RGBA{R: 90, G: 95, B: 110, A: 255}
	Housing     = color.RGBA{R: 70, G: 78, B: 96, A: 255}
	LensBody    = color.RGBA{R: 110, G: 180, B: 235, A: 255}
	LensGuide   = color.RGBA{R: 70, G: 110, B: 140, A: 255}
	FocalTick   = color.RGBA{R: 220, G: 180, B: 60, A: 255}
	Display     = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	ObjectArrow = color.RGBA{R: 255, G: 200, B: 80, A: 255}
	ImageArrow  = color.RGBA{R: 230, G: 120, B: 230, A: 255}
	EyeGlyph    = color.RGBA{R: 210, G: 210, B: 220, A: 255}

	RayParallel = color.RGBA{R: 255, G: 99, B: 99, A: 255}
	RayCentral  = color.RGBA{R: 99, G: 220, B: 99, A: 255}
	RayFocal    = color.RGBA{R: 99, G: 150, B: 255, A: 255}

	VirtualGlow = color.RGBA{R: 192, G: 96, B: 224, A: 255}
	RealGlow    = color.RGBA{R: 80, G: 220, B: 120, A: 255}

	LabelText   = color.RGBA{R: 230, G: 230, B: 235, A: 255}
	LeaderLine  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	EquationInk = color.RGBA{R: 250, G: 245, B: 200, A: 255}
)

// Lerp linearly interpolates between two colors; t is clamped to [0,1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// WithAlpha returns the color with its alpha channel replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
