// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"
	"strconv"

	"optics-bench/internal/device"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// DeviceSpecDialog provides a property sheet for editing viewer presets.
type DeviceSpecDialog struct {
	spec   *device.BaseSpec
	window fyne.Window

	nameEntry    *widget.Entry
	focalEntry   *widget.Entry
	displayEntry *widget.Entry
	reliefEntry  *widget.Entry
	ipdEntry     *widget.Entry
	widthEntry   *widget.Entry
	heightEntry  *widget.Entry

	onSave func(*device.BaseSpec)
}

// NewDeviceSpecDialog creates a viewer preset dialog editing a copy of spec.
func NewDeviceSpecDialog(spec *device.BaseSpec, window fyne.Window, onSave func(*device.BaseSpec)) *DeviceSpecDialog {
	return &DeviceSpecDialog{
		spec:   spec,
		window: window,
		onSave: onSave,
	}
}

// Show displays the dialog.
func (d *DeviceSpecDialog) Show() {
	content := d.createContent()

	dlg := dialog.NewCustomConfirm(
		"Viewer: "+d.spec.SpecName,
		"Save",
		"Cancel",
		content,
		func(save bool) {
			if !save {
				return
			}
			d.applyChanges()
			if err := d.spec.Validate(); err != nil {
				dialog.ShowError(err, d.window)
				return
			}
			if d.onSave != nil {
				d.onSave(d.spec)
			}
		},
		d.window,
	)
	dlg.Resize(fyne.NewSize(420, 420))
	dlg.Show()
}

func (d *DeviceSpecDialog) createContent() fyne.CanvasObject {
	mm := func(metres float64) string {
		return fmt.Sprintf("%.2f", metres*1000)
	}

	d.nameEntry = widget.NewEntry()
	d.nameEntry.SetText(d.spec.SpecName)
	d.focalEntry = widget.NewEntry()
	d.focalEntry.SetText(mm(d.spec.FocalLength))
	d.displayEntry = widget.NewEntry()
	d.displayEntry.SetText(mm(d.spec.LensToDisplay))
	d.reliefEntry = widget.NewEntry()
	d.reliefEntry.SetText(mm(d.spec.EyeRelief))
	d.ipdEntry = widget.NewEntry()
	d.ipdEntry.SetText(mm(d.spec.IPD))
	d.widthEntry = widget.NewEntry()
	d.widthEntry.SetText(mm(d.spec.DisplayWidth))
	d.heightEntry = widget.NewEntry()
	d.heightEntry.SetText(mm(d.spec.DisplayHeight))

	form := widget.NewForm(
		widget.NewFormItem("Name", d.nameEntry),
		widget.NewFormItem("Focal length (mm)", d.focalEntry),
		widget.NewFormItem("Lens to display (mm)", d.displayEntry),
		widget.NewFormItem("Eye relief (mm)", d.reliefEntry),
		widget.NewFormItem("IPD (mm)", d.ipdEntry),
		widget.NewFormItem("Display width (mm)", d.widthEntry),
		widget.NewFormItem("Display height (mm)", d.heightEntry),
	)

	return widget.NewCard("Viewer Parameters", "", form)
}

func (d *DeviceSpecDialog) applyChanges() {
	d.spec.SpecName = d.nameEntry.Text

	metres := func(entry *widget.Entry, dst *float64) {
		if v, err := strconv.ParseFloat(entry.Text, 64); err == nil {
			*dst = v / 1000
		}
	}
	metres(d.focalEntry, &d.spec.FocalLength)
	metres(d.displayEntry, &d.spec.LensToDisplay)
	metres(d.reliefEntry, &d.spec.EyeRelief)
	metres(d.ipdEntry, &d.spec.IPD)
	metres(d.widthEntry, &d.spec.DisplayWidth)
	metres(d.heightEntry, &d.spec.DisplayHeight)
}
