// Package panels provides the side panel sections of the bench window.
package panels

import (
	"fmt"
	"math"

	"optics-bench/internal/app"
	"optics-bench/internal/optics"
	"optics-bench/internal/scene"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// BenchPanel holds the two parameter sliders and the live solution
// readouts. It is the main control surface of the application.
type BenchPanel struct {
	state     *app.State
	container fyne.CanvasObject

	focalSlider *widget.Slider
	focalValue  *widget.Label
	distSlider  *widget.Slider
	distValue   *widget.Label

	regimeLabel *widget.Label
	imageLabel  *widget.Label
	magLabel    *widget.Label
	placeLabel  *widget.Label
}

// NewBenchPanel creates the bench panel bound to the application state.
func NewBenchPanel(state *app.State) *BenchPanel {
	bp := &BenchPanel{state: state}
	cfg := state.Config()

	bp.focalValue = widget.NewLabel("")
	bp.focalSlider = widget.NewSlider(cfg.FocalMin, cfg.FocalMax)
	bp.focalSlider.Step = 1
	bp.focalSlider.SetValue(cfg.FocalDefault)
	bp.focalSlider.OnChanged = func(v float64) {
		state.SetFocalLength(v)
	}

	bp.distValue = widget.NewLabel("")
	bp.distSlider = widget.NewSlider(cfg.ObjDistMin, cfg.ObjDistMax)
	bp.distSlider.Step = 1
	bp.distSlider.SetValue(cfg.ObjDistDefault)
	bp.distSlider.OnChanged = func(v float64) {
		state.SetObjectDistance(v)
	}

	bp.regimeLabel = widget.NewLabel("")
	bp.regimeLabel.TextStyle = fyne.TextStyle{Bold: true}
	bp.imageLabel = widget.NewLabel("")
	bp.magLabel = widget.NewLabel("")
	bp.placeLabel = widget.NewLabel("")
	bp.placeLabel.Wrapping = fyne.TextWrapWord

	state.On(app.EventParamsChanged, func(data interface{}) {
		if p, ok := data.(scene.Params); ok {
			bp.updateValueLabels(p)
		}
	})
	bp.updateValueLabels(state.Params())

	sliders := widget.NewCard("Lens", "", container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Focal length"), bp.focalValue),
		bp.focalSlider,
		container.NewBorder(nil, nil, widget.NewLabel("Display distance"), bp.distValue),
		bp.distSlider,
	))

	readouts := widget.NewCard("Image", "", container.NewVBox(
		bp.regimeLabel,
		bp.imageLabel,
		bp.magLabel,
		bp.placeLabel,
	))

	bp.container = container.NewVBox(sliders, readouts)
	return bp
}

// Title returns the tab title.
func (bp *BenchPanel) Title() string {
	return "Bench"
}

// Container returns the panel container.
func (bp *BenchPanel) Container() fyne.CanvasObject {
	return bp.container
}

func (bp *BenchPanel) updateValueLabels(p scene.Params) {
	bp.focalValue.SetText(fmt.Sprintf("%.0f mm", p.FocalLength))
	bp.distValue.SetText(fmt.Sprintf("%.0f mm", p.ObjectDistance))
}

// UpdateFrame refreshes the readouts from a freshly derived frame. Must be
// called on the UI thread.
func (bp *BenchPanel) UpdateFrame(frame scene.Frame) {
	sol := frame.Solution
	bp.regimeLabel.SetText(sol.Regime())

	switch sol.Type {
	case optics.AtInfinity:
		bp.imageLabel.SetText("Image distance: ∞")
		bp.magLabel.SetText("Magnification: --")
		bp.placeLabel.SetText("The display sits at the focal point; rays leave the lens parallel.")
	default:
		bp.imageLabel.SetText(fmt.Sprintf("Image distance: %.1f mm", sol.ImageDistance))
		bp.magLabel.SetText(fmt.Sprintf("Magnification: %.2fx", sol.Magnification))
		if frame.ImageInView {
			bp.placeLabel.SetText("")
		} else {
			side := "right"
			if sol.ImageDistance < 0 {
				side = "left"
			}
			bp.placeLabel.SetText(fmt.Sprintf(
				"Image is %.0f mm off the %s edge; see the edge indicator.",
				math.Abs(sol.ImageDistance), side))
		}
	}
}

// SetParams moves both sliders without re-firing their callbacks twice;
// used when a viewer preset is applied from the HMD panel.
func (bp *BenchPanel) SetParams(p scene.Params) {
	bp.focalSlider.SetValue(p.FocalLength)
	bp.distSlider.SetValue(p.ObjectDistance)
}
