package panels

import (
	"fmt"

	"optics-bench/internal/app"
	"optics-bench/internal/device"
	"optics-bench/internal/optics"
	"optics-bench/internal/scene"
	"optics-bench/ui/dialogs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// HMDPanel shows the derived key parameters for a viewer preset: per-eye
// field of view, magnification, and the virtual image geometry.
type HMDPanel struct {
	state     *app.State
	window    fyne.Window
	container fyne.CanvasObject

	deviceSelect *widget.Select
	current      *device.BaseSpec

	magLabel      *widget.Label
	imageLabel    *widget.Label
	eyeLabel      *widget.Label
	fovVLabel     *widget.Label
	fovHLabel     *widget.Label
	fovSplitLabel *widget.Label
}

// NewHMDPanel creates the HMD key-parameters panel.
func NewHMDPanel(state *app.State) *HMDPanel {
	hp := &HMDPanel{state: state}

	hp.magLabel = widget.NewLabel("")
	hp.imageLabel = widget.NewLabel("")
	hp.eyeLabel = widget.NewLabel("")
	hp.fovVLabel = widget.NewLabel("")
	hp.fovHLabel = widget.NewLabel("")
	hp.fovSplitLabel = widget.NewLabel("")

	hp.deviceSelect = widget.NewSelect(device.ListSpecs(), func(name string) {
		if spec := device.GetSpec(name); spec != nil {
			base := specToBase(spec)
			hp.current = &base
			hp.updateReadouts()
		}
	})
	hp.deviceSelect.SetSelected("Cardboard V2")

	editBtn := widget.NewButton("Edit...", hp.onEdit)
	applyBtn := widget.NewButton("Show on bench", hp.onApplyToBench)

	readouts := widget.NewCard("Derived (per eye)", "", container.NewVBox(
		hp.magLabel,
		hp.imageLabel,
		hp.eyeLabel,
		hp.fovVLabel,
		hp.fovHLabel,
		hp.fovSplitLabel,
	))

	hp.container = container.NewVBox(
		widget.NewCard("Viewer", "", container.NewVBox(
			hp.deviceSelect,
			container.NewGridWithColumns(2, editBtn, applyBtn),
		)),
		readouts,
	)
	return hp
}

// Title returns the tab title.
func (hp *HMDPanel) Title() string {
	return "HMD"
}

// Container returns the panel container.
func (hp *HMDPanel) Container() fyne.CanvasObject {
	return hp.container
}

// SetWindow sets the parent window for dialogs.
func (hp *HMDPanel) SetWindow(w fyne.Window) {
	hp.window = w
}

func specToBase(spec device.Spec) device.BaseSpec {
	p := spec.Params()
	return device.BaseSpec{
		SpecName:      spec.Name(),
		FocalLength:   p.FocalLength,
		LensToDisplay: p.LensToDisplay,
		EyeRelief:     p.EyeRelief,
		IPD:           p.IPD,
		DisplayWidth:  p.DisplayWidth,
		DisplayHeight: p.DisplayHeight,
	}
}

func (hp *HMDPanel) updateReadouts() {
	if hp.current == nil {
		return
	}
	o := optics.CalcHMDOptics(hp.current.Params())

	hp.magLabel.SetText(fmt.Sprintf("Magnification: %.1fx", o.Magnification))
	hp.imageLabel.SetText(fmt.Sprintf("Virtual image: %.2f m", o.ImageDistance))
	hp.eyeLabel.SetText(fmt.Sprintf("Eye to image: %.2f m", o.EyeToImage))
	hp.fovVLabel.SetText(fmt.Sprintf("FOV vertical: %.1f°", o.FOVVertical))
	hp.fovHLabel.SetText(fmt.Sprintf("FOV horizontal: %.1f°", o.FOVHorizontal))
	hp.fovSplitLabel.SetText(fmt.Sprintf("  nasal %.1f° / temporal %.1f°", o.FOVHNasal, o.FOVHTemporal))
}

func (hp *HMDPanel) onEdit() {
	if hp.current == nil || hp.window == nil {
		return
	}
	edit := *hp.current
	dialogs.NewDeviceSpecDialog(&edit, hp.window, func(saved *device.BaseSpec) {
		device.Register(saved)
		hp.current = saved
		hp.deviceSelect.Options = device.ListSpecs()
		hp.deviceSelect.SetSelected(saved.SpecName)
		hp.updateReadouts()
	}).Show()
}

// onApplyToBench maps the preset onto the bench sliders, converting metres
// to the bench's millimetre world.
func (hp *HMDPanel) onApplyToBench() {
	if hp.current == nil {
		return
	}
	hp.state.SetParams(scene.Params{
		FocalLength:    hp.current.FocalLength * 1000,
		ObjectDistance: hp.current.LensToDisplay * 1000,
	})
}
