package scene

import (
	"fmt"
	"image/color"
	"math"

	"optics-bench/internal/optics"
	"optics-bench/pkg/colorutil"
	"optics-bench/pkg/geometry"
)

// GlowEdge names the viewport edge carrying an off-screen indicator.
type GlowEdge int

const (
	GlowLeft GlowEdge = iota
	GlowRight
	GlowTop
	GlowBottom
)

func (e GlowEdge) String() string {
	switch e {
	case GlowLeft:
		return "left"
	case GlowRight:
		return "right"
	case GlowTop:
		return "top"
	case GlowBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Glow describes one edge indicator: where to draw the gradient strip,
// its color, and the explanatory label. Color is keyed to the image type
// (virtual is always purple, real always green), never to the edge.
type Glow struct {
	Edge  GlowEdge
	Color color.RGBA
	Label string
}

// glowColor maps image type to indicator color.
func glowColor(t optics.ImageType) color.RGBA {
	if t == optics.Virtual {
		return colorutil.VirtualGlow
	}
	return colorutil.RealGlow
}

// ComputeGlows determines which viewport edges need an off-screen image
// indicator. drawnTipY is the magnification-clamped image arrow tip used
// for the vertical checks. An at-infinity solution never glows: there is
// no image point to report.
func ComputeGlows(sol optics.Solution, view geometry.Rect, drawnTipY float64) []Glow {
	if sol.Type == optics.AtInfinity {
		return nil
	}

	distMM := math.Abs(sol.ImageDistance)
	var glows []Glow

	if sol.Type == optics.Virtual && sol.ImageDistance < view.XMin {
		glows = append(glows, Glow{
			Edge:  GlowLeft,
			Color: glowColor(sol.Type),
			Label: fmt.Sprintf("< virtual image %.0f mm", distMM),
		})
	}
	if sol.Type == optics.Real && sol.ImageDistance > view.XMax {
		glows = append(glows, Glow{
			Edge:  GlowRight,
			Color: glowColor(sol.Type),
			Label: fmt.Sprintf("> real image %.0f mm", distMM),
		})
	}
	if drawnTipY > view.YMax {
		glows = append(glows, Glow{
			Edge:  GlowTop,
			Color: glowColor(sol.Type),
			Label: fmt.Sprintf("↑ %s image %.0f mm", typeName(sol.Type), distMM),
		})
	}
	if drawnTipY < view.YMin {
		glows = append(glows, Glow{
			Edge:  GlowBottom,
			Color: glowColor(sol.Type),
			Label: fmt.Sprintf("↓ %s image %.0f mm", typeName(sol.Type), distMM),
		})
	}
	return glows
}

func typeName(t optics.ImageType) string {
	if t == optics.Virtual {
		return "virtual"
	}
	return "real"
}
