package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"optics-bench/internal/config"
	"optics-bench/internal/optics"
	"optics-bench/internal/scene"
	"optics-bench/pkg/colorutil"
	"optics-bench/pkg/geometry"
)

// Renderer rasterises scene frames. It holds no per-frame state; one
// renderer can serve the interactive canvas and the snapshot tool alike.
type Renderer struct {
	cfg *config.Config
}

// New returns a renderer using the given configuration.
func New(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// DrawFrame rasterises a frame into a fresh RGBA buffer. Layers are drawn
// back to front: background, axis, housing, lens, anchors, arrows, rays,
// eye, captions, glows, labels, equation readout.
func (r *Renderer) DrawFrame(frame scene.Frame) *image.RGBA {
	w, h := frame.CanvasW, frame.CanvasH
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	FillRect(img, 0, 0, w-1, h-1, colorutil.Background)

	toPx := func(p geometry.Point2D) (int, int) {
		c := frame.World.Apply(p)
		return int(math.Round(c.X)), int(math.Round(c.Y))
	}

	r.drawAxis(img, frame, toPx)
	r.drawLightArrow(img)
	r.drawHousing(img, frame, toPx)
	r.drawLensGuide(img, frame, toPx)
	r.drawLensBody(img, frame, toPx)
	r.drawFocalTicks(img, frame, toPx)
	r.drawDisplay(img, frame, toPx)
	r.drawObjectArrow(img, frame, toPx)
	r.drawImageArrow(img, frame, toPx)
	r.drawRays(img, frame, toPx)
	r.drawEye(img, frame, toPx)

	placer := scene.NewPlacer()
	r.drawCaption(img, frame)
	r.drawGlows(img, frame, placer)
	r.drawAnchorLabels(img, frame, toPx, placer)
	r.drawEquation(img, frame)

	return img
}

func (r *Renderer) drawAxis(img *image.RGBA, frame scene.Frame, toPx func(geometry.Point2D) (int, int)) {
	x1, y1 := toPx(geometry.Point2D{X: frame.Viewport.XMin, Y: 0})
	x2, y2 := toPx(geometry.Point2D{X: frame.Viewport.XMax, Y: 0})
	DrawLine(img, x1, y1, x2, y2, colorutil.Axis, 1)
}

// drawLightArrow puts the light-direction reminder in the top-left corner.
func (r *Renderer) drawLightArrow(img *image.RGBA) {
	const x, y = 14, 16
	DrawLine(img, x, y, x+34, y, colorutil.Axis, 2)
	DrawArrowhead(img, float64(x+40), float64(y), 1, 0, 7, colorutil.Axis)
	DrawText(img, "LIGHT", x, y+6, colorutil.Axis, 1)
}

// drawHousing draws the device body for the current regime: a display-to-lens
// trapezoid for the projector, a goggles outline toward the eye for the HMD.
func (r *Renderer) drawHousing(img *image.RGBA, frame scene.Frame, toPx func(geometry.Point2D) (int, int)) {
	cfg := r.cfg
	sol := frame.Solution

	if sol.Type == optics.Virtual {
		// HMD: the housing wraps the lens and reaches back toward the eye.
		eyeX := scene.EyeAnchorX(cfg, sol.FocalLength, sol.ObjectDistance)
		poly := worldPolygon(toPx, []geometry.Point2D{
			{X: -sol.ObjectDistance - 6, Y: frame.LensHalf * 0.9},
			{X: 6, Y: frame.LensHalf},
			{X: eyeX * 0.55, Y: frame.LensHalf * 0.45},
			{X: eyeX * 0.55, Y: -frame.LensHalf * 0.45},
			{X: 6, Y: -frame.LensHalf},
			{X: -sol.ObjectDistance - 6, Y: -frame.LensHalf * 0.9},
		})
		StrokePolygon(img, poly, colorutil.Housing, 2)
		return
	}

	// Projector: trapezoid from the display to the lens.
	poly := worldPolygon(toPx, []geometry.Point2D{
		{X: -sol.ObjectDistance - 8, Y: cfg.ObjectHeight + 10},
		{X: 8, Y: frame.LensHalf},
		{X: 8, Y: -frame.LensHalf},
		{X: -sol.ObjectDistance - 8, Y: -(cfg.ObjectHeight + 10)},
	})
	StrokePolygon(img, poly, colorutil.Housing, 2)
}

func worldPolygon(toPx func(geometry.Point2D) (int, int), pts []geometry.Point2D) []geometry.Point2D {
	out := make([]geometry.Point2D, len(pts))
	for i, p := range pts {
		x, y := toPx(p)
		out[i] = geometry.Point2D{X: float64(x), Y: float64(y)}
	}
	return out
}

func (r *Renderer) drawLensGuide(img *image.RGBA, frame scene.Frame, toPx func(geometry.Point2D) (int, int)) {
	x1, y1 := toPx(geometry.Point2D{X: 0, Y: frame.Viewport.YMax})
	x2, y2 := toPx(geometry.Point2D{X: 0, Y: frame.Viewport.YMin})
	DrawDashedLine(img, x1, y1, x2, y2, colorutil.LensGuide, 1, 5, 4)
}

// drawLensBody draws the biconvex lens glyph. The bulge narrows with longer
// focal lengths: a stubby strong lens at the short end of the slider, a
// slim weak one at the long end.
func (r *Renderer) drawLensBody(img *image.RGBA, frame scene.Frame, toPx func(geometry.Point2D) (int, int)) {
	cfg := r.cfg
	f := frame.Solution.FocalLength

	norm := 0.0
	if cfg.FocalMax > cfg.FocalMin {
		norm = geometry.Clamp((f-cfg.FocalMin)/(cfg.FocalMax-cfg.FocalMin), 0, 1)
	}
	bulge := frame.LensHalf * (0.36 - 0.24*norm)

	// Sample the two arcs; a parabolic profile is close enough at glyph size.
	const steps = 16
	pts := make([]geometry.Point2D, 0, 2*steps+2)
	for i := 0; i <= steps; i++ {
		t := float64(i)/float64(steps)*2 - 1 // -1..1 top to bottom
		y := -t * frame.LensHalf
		x := bulge * (1 - t*t)
		pts = append(pts, geometry.Point2D{X: x, Y: y})
	}
	for i := 0; i <= steps; i++ {
		t := float64(i)/float64(steps)*2 - 1 // -1..1 bottom to top
		y := t * frame.LensHalf
		x := -bulge * (1 - t*t)
		pts = append(pts, geometry.Point2D{X: x, Y: y})
	}

	poly := worldPolygon(toPx, pts)
	FillPolygon(img, poly, colorutil.Lerp(colorutil.Background, colorutil.LensBody, 0.35))
	StrokePolygon(img, poly, colorutil.LensBody, 1)
}

func (r *Renderer) drawFocalTicks(img *image.RGBA, frame scene.Frame, toPx func(geometry.Point2D) (int, int)) {
	f := frame.Solution.FocalLength
	for _, fx := range []float64{-f, f} {
		x1, y1 := toPx(geometry.Point2D{X: fx, Y: 6})
		x2, y2 := toPx(geometry.Point2D{X: fx, Y: -6})
		DrawLine(img, x1, y1, x2, y2, colorutil.FocalTick, 2)
	}
}

// drawDisplay draws the emitting surface glyph behind the object arrow.
func (r *Renderer) drawDisplay(img *image.RGBA, frame scene.Frame, toPx func(geometry.Point2D) (int, int)) {
	h := r.cfg.ObjectHeight
	do := frame.Solution.ObjectDistance
	x1, y1 := toPx(geometry.Point2D{X: -do, Y: h + 6})
	x2, y2 := toPx(geometry.Point2D{X: -do, Y: -(h + 6)})
	DrawLine(img, x1-4, y1, x2-4, y2, colorutil.Display, 3)
}

func (r *Renderer) drawObjectArrow(img *image.RGBA, frame scene.Frame, toPx func(geometry.Point2D) (int, int)) {
	do := frame.Solution.ObjectDistance
	h := r.cfg.ObjectHeight
	x1, y1 := toPx(geometry.Point2D{X: -do, Y: 0})
	x2, y2 := toPx(geometry.Point2D{X: -do, Y: h})
	DrawLine(img, x1, y1, x2, y2, colorutil.ObjectArrow, 2)
	DrawArrowhead(img, float64(x2), float64(y2), 0, -1, 8, colorutil.ObjectArrow)
}

// drawImageArrow draws the image arrow when it lies inside the viewport.
// The height uses the drawing clamp; virtual images get a dashed shaft.
func (r *Renderer) drawImageArrow(img *image.RGBA, frame scene.Frame, toPx func(geometry.Point2D) (int, int)) {
	sol := frame.Solution
	if sol.Type == optics.AtInfinity || !frame.ImageInView {
		return
	}
	x1, y1 := toPx(geometry.Point2D{X: sol.ImageDistance, Y: 0})
	x2, y2 := toPx(geometry.Point2D{X: sol.ImageDistance, Y: frame.DrawnImageTipY})
	if sol.Type == optics.Virtual {
		DrawDashedLine(img, x1, y1, x2, y2, colorutil.ImageArrow, 2, 5, 4)
	} else {
		DrawLine(img, x1, y1, x2, y2, colorutil.ImageArrow, 2)
	}
	dir := -1.0
	if frame.DrawnImageTipY < 0 {
		dir = 1.0
	}
	DrawArrowhead(img, float64(x2), float64(y2), 0, dir, 8, colorutil.ImageArrow)
}

func rayColor(kind scene.RayKind) color.RGBA {
	switch kind {
	case scene.RayParallel:
		return colorutil.RayParallel
	case scene.RayCentral:
		return colorutil.RayCentral
	default:
		return colorutil.RayFocal
	}
}

func (r *Renderer) drawRays(img *image.RGBA, frame scene.Frame, toPx func(geometry.Point2D) (int, int)) {
	for _, ray := range frame.Rays {
		col := rayColor(ray.Kind)
		for i := 0; i+1 < len(ray.Points); i++ {
			x1, y1 := toPx(ray.Points[i])
			x2, y2 := toPx(ray.Points[i+1])
			DrawLine(img, x1, y1, x2, y2, col, 2)
		}
		if len(ray.Back) == 2 {
			x1, y1 := toPx(ray.Back[0])
			x2, y2 := toPx(ray.Back[1])
			DrawDashedLine(img, x1, y1, x2, y2, col, 1, 6, 5)
		}
	}
}

// drawEye draws the eye glyph. In the HMD regime the pupil faces the lens.
func (r *Renderer) drawEye(img *image.RGBA, frame scene.Frame, toPx func(geometry.Point2D) (int, int)) {
	sol := frame.Solution
	eyeX := scene.EyeAnchorX(r.cfg, sol.FocalLength, sol.ObjectDistance)
	cx, cy := toPx(geometry.Point2D{X: eyeX, Y: 0})

	DrawCircle(img, float64(cx), float64(cy), 10, colorutil.EyeGlyph, false)
	// Pupil offset toward the lens (the scene is always lens-left of eye).
	DrawCircle(img, float64(cx)-5, float64(cy), 3.5, colorutil.EyeGlyph, true)
}

func (r *Renderer) drawCaption(img *image.RGBA, frame scene.Frame) {
	caption := frame.Solution.Regime()
	DrawTextCentered(img, caption, frame.CanvasW/2, 14, colorutil.LabelText, 2)
}

func (r *Renderer) drawGlows(img *image.RGBA, frame scene.Frame, placer *scene.Placer) {
	for _, g := range frame.Glows {
		DrawEdgeGlow(img, int(g.Edge), r.cfg.GlowWidth, g.Color)

		// Label just inside the glowing edge, at axis height for the
		// horizontal edges and centred for the vertical ones.
		var ax, ay float64
		switch g.Edge {
		case scene.GlowLeft:
			ax = float64(r.cfg.GlowWidth) + float64(TextWidth(g.Label, 1))/2 + 6
			ay = float64(frame.CanvasH) / 2
		case scene.GlowRight:
			ax = float64(frame.CanvasW-r.cfg.GlowWidth) - float64(TextWidth(g.Label, 1))/2 - 6
			ay = float64(frame.CanvasH) / 2
		case scene.GlowTop:
			ax = float64(frame.CanvasW) / 2
			ay = float64(r.cfg.GlowWidth) + 10
		case scene.GlowBottom:
			ax = float64(frame.CanvasW) / 2
			ay = float64(frame.CanvasH-r.cfg.GlowWidth) - 10
		}
		r.placeLabel(img, placer, g.Label, ax, ay, g.Color, 1)
	}
}

// drawAnchorLabels names the fixed diagram anchors through the shared
// frame placer, so they dodge the glow labels and each other.
func (r *Renderer) drawAnchorLabels(img *image.RGBA, frame scene.Frame, toPx func(geometry.Point2D) (int, int), placer *scene.Placer) {
	sol := frame.Solution
	f := sol.FocalLength

	type entry struct {
		text  string
		world geometry.Point2D
		col   color.RGBA
	}
	device := "PROJECTOR"
	if sol.Type == optics.Virtual {
		device = "HMD VIEWER"
	}
	entries := []entry{
		{"F", geometry.Point2D{X: -f, Y: -14}, colorutil.FocalTick},
		{"F'", geometry.Point2D{X: f, Y: -14}, colorutil.FocalTick},
		{"OBJECT", geometry.Point2D{X: -sol.ObjectDistance, Y: r.cfg.ObjectHeight + 14}, colorutil.ObjectArrow},
		{"DISPLAY", geometry.Point2D{X: -sol.ObjectDistance, Y: -(r.cfg.ObjectHeight + 16)}, colorutil.Display},
		{device, geometry.Point2D{X: -sol.ObjectDistance / 2, Y: -(frame.LensHalf + 18)}, colorutil.Housing},
	}
	if frame.ImageInView && sol.Type != optics.AtInfinity {
		off := 14.0
		if frame.DrawnImageTipY >= 0 {
			off = -14.0
		}
		entries = append(entries, entry{
			"IMAGE",
			geometry.Point2D{X: sol.ImageDistance, Y: frame.DrawnImageTipY - off},
			colorutil.ImageArrow,
		})
	}

	for _, e := range entries {
		x, y := toPx(e.world)
		r.placeLabel(img, placer, e.text, float64(x), float64(y), e.col, 1)
	}
}

// placeLabel routes one label through the placer and draws it, plus a
// dotted leader line when the placer had to move it off its anchor.
func (r *Renderer) placeLabel(img *image.RGBA, placer *scene.Placer, text string, ax, ay float64, col color.RGBA, scale int) {
	w := float64(TextWidth(text, scale)) + 6
	h := float64(TextHeight(scale)) + 4

	placed := placer.Place(ax, ay, w, h)
	if placed.Displaced {
		DrawDashedLine(img,
			int(placed.Anchor.X), int(placed.Anchor.Y),
			int(placed.Position.X), int(placed.Position.Y),
			colorutil.LeaderLine, 1, 2, 3)
		DrawCircle(img, placed.Anchor.X, placed.Anchor.Y, 1.5, colorutil.LeaderLine, true)
	}
	DrawTextCentered(img, text, int(placed.Position.X), int(placed.Position.Y), col, scale)
}

// drawEquation renders the live thin-lens readout in the bottom-left
// corner: the symbolic equation, the current values, and the
// magnification.
func (r *Renderer) drawEquation(img *image.RGBA, frame scene.Frame) {
	sol := frame.Solution
	const scale = 1
	lineH := TextHeight(scale+1) + 4
	x := 14
	y := frame.CanvasH - 3*lineH - 8

	// Symbolic line with proper subscripts.
	penX := x
	penX += DrawSubscripted(img, "1/f = 1/d", "o", penX, y, colorutil.EquationInk, scale+1)
	penX += (scale + 1) * 2
	DrawSubscripted(img, " + 1/d", "i", penX, y, colorutil.EquationInk, scale+1)
	y += lineH

	DrawText(img, substitutedEquation(sol), x, y, colorutil.EquationInk, scale)
	y += lineH

	mag := "m = --"
	if sol.Type != optics.AtInfinity {
		mag = fmt.Sprintf("m = %.2fx", sol.Magnification)
	}
	DrawText(img, mag, x, y, colorutil.EquationInk, scale)
}

// substitutedEquation is the thin-lens equation with the live values in
// place of the symbols, the image distance shown as the infinity glyph at
// the focal point.
func substitutedEquation(sol optics.Solution) string {
	di := "∞"
	if sol.Type != optics.AtInfinity {
		di = fmt.Sprintf("%.1f", sol.ImageDistance)
	}
	return fmt.Sprintf("1/%.0f = 1/%.0f + 1/%s", sol.FocalLength, sol.ObjectDistance, di)
}
