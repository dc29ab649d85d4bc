package panels

import (
	"fmt"
	"image"

	"optics-bench/internal/optics"
	"optics-bench/internal/render"
	"optics-bench/pkg/colorutil"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DistortionPanel previews the two-coefficient radial distortion model a
// lens of this kind imposes, as a warped grid. Negative coefficients give
// the pincushion pre-distortion HMD renderers apply to cancel the lens.
type DistortionPanel struct {
	container fyne.CanvasObject

	k1, k2  float64
	k1Value *widget.Label
	k2Value *widget.Label
	preview *fynecanvas.Raster
}

// NewDistortionPanel creates the distortion preview panel.
func NewDistortionPanel() *DistortionPanel {
	dp := &DistortionPanel{k1: 0.22, k2: 0.08}

	dp.preview = fynecanvas.NewRaster(dp.drawGrid)
	dp.preview.SetMinSize(fyne.NewSize(220, 220))

	dp.k1Value = widget.NewLabel("")
	k1Slider := widget.NewSlider(-0.5, 0.5)
	k1Slider.Step = 0.01
	k1Slider.SetValue(dp.k1)
	k1Slider.OnChanged = func(v float64) {
		dp.k1 = v
		dp.refresh()
	}

	dp.k2Value = widget.NewLabel("")
	k2Slider := widget.NewSlider(-0.3, 0.3)
	k2Slider.Step = 0.01
	k2Slider.SetValue(dp.k2)
	k2Slider.OnChanged = func(v float64) {
		dp.k2 = v
		dp.refresh()
	}
	dp.updateValueLabels()

	dp.container = container.NewVBox(
		widget.NewCard("Radial Distortion", "", container.NewVBox(
			container.NewBorder(nil, nil, widget.NewLabel("k1"), dp.k1Value),
			k1Slider,
			container.NewBorder(nil, nil, widget.NewLabel("k2"), dp.k2Value),
			k2Slider,
		)),
		widget.NewCard("Grid Preview", "", dp.preview),
	)
	return dp
}

// Title returns the tab title.
func (dp *DistortionPanel) Title() string {
	return "Distortion"
}

// Container returns the panel container.
func (dp *DistortionPanel) Container() fyne.CanvasObject {
	return dp.container
}

func (dp *DistortionPanel) refresh() {
	dp.updateValueLabels()
	dp.preview.Refresh()
}

func (dp *DistortionPanel) updateValueLabels() {
	dp.k1Value.SetText(fmt.Sprintf("%+.2f", dp.k1))
	dp.k2Value.SetText(fmt.Sprintf("%+.2f", dp.k2))
}

// drawGrid renders a square grid pushed through the distortion model.
// Coordinates are normalised so the grid corners sit at radius sqrt(2).
func (dp *DistortionPanel) drawGrid(w, h int) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	render.FillRect(img, 0, 0, w-1, h-1, colorutil.Background)

	const cells = 8
	scale := float64(minInt(w, h)) * 0.42
	cx, cy := float64(w)/2, float64(h)/2

	// Map a normalised grid point through the model into pixels.
	warp := func(u, v float64) (int, int) {
		x, y := optics.ApplyDistortion(u, v, 0, 0, dp.k1, dp.k2)
		return int(cx + x*scale), int(cy + y*scale)
	}

	const segs = 12
	for i := 0; i <= cells; i++ {
		t := float64(i)/float64(cells)*2 - 1

		// Horizontal line at v = t, subdivided so curvature shows.
		for s := 0; s < segs; s++ {
			u0 := float64(s)/segs*2 - 1
			u1 := float64(s+1)/segs*2 - 1
			x0, y0 := warp(u0, t)
			x1, y1 := warp(u1, t)
			render.DrawLine(img, x0, y0, x1, y1, colorutil.LensGuide, 1)
		}
		// Vertical line at u = t.
		for s := 0; s < segs; s++ {
			v0 := float64(s)/segs*2 - 1
			v1 := float64(s+1)/segs*2 - 1
			x0, y0 := warp(t, v0)
			x1, y1 := warp(t, v1)
			render.DrawLine(img, x0, y0, x1, y1, colorutil.LensGuide, 1)
		}
	}

	// Centre marker.
	render.DrawCircle(img, cx, cy, 2.5, colorutil.FocalTick, true)
	return img
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
