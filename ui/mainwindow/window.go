// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"
	"time"

	"optics-bench/internal/app"
	"optics-bench/internal/export"
	"optics-bench/internal/scene"
	"optics-bench/internal/version"
	"optics-bench/ui/canvas"
	"optics-bench/ui/panels"
	"optics-bench/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// Snapshot export size, independent of the window size.
const (
	snapshotW = 1600
	snapshotH = 1000
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.BenchCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label
}

// New creates the main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Optics Bench")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restoreGeometry()

	return mw
}

// setupUI creates the main layout: side panel | diagram canvas, with a
// status bar along the bottom.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.New(mw.state.Config(), mw.state)

	mw.sidePanel = panels.NewSidePanel(mw.state, mw.prefs)
	mw.sidePanel.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Ready")

	// Frame readouts arrive from the raster rebuild; hop back onto the
	// UI thread before touching widgets.
	mw.canvas.OnFrame = func(frame scene.Frame) {
		fyne.Do(func() {
			mw.sidePanel.Bench().UpdateFrame(frame)
		})
	}

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		mw.canvas,
	)
	split.SetOffset(0.28)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil,
		nil,
		split,
	)
	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Snapshot...", mw.onExportSnapshot),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Reset Sliders", mw.onResetSliders),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventRegimeChanged, func(data interface{}) {
		if regime, ok := data.(string); ok {
			fyne.Do(func() {
				mw.updateStatus(regime)
			})
		}
	})

	mw.state.On(app.EventSnapshotSaved, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.updateStatus("Snapshot saved: " + path)
		}
	})

	mw.SetCloseIntercept(func() {
		mw.saveGeometry()
		mw.Close()
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) restoreGeometry() {
	w := float32(mw.prefs.Float(prefs.KeyWindowWidth, 1100))
	h := float32(mw.prefs.Float(prefs.KeyWindowHeight, 720))
	mw.Resize(fyne.NewSize(w, h))
}

func (mw *MainWindow) saveGeometry() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	if err := mw.prefs.Save(); err != nil {
		mw.updateStatus("Could not save preferences: " + err.Error())
	}
}

func (mw *MainWindow) onResetSliders() {
	cfg := mw.state.Config()
	p := scene.Params{
		FocalLength:    cfg.FocalDefault,
		ObjectDistance: cfg.ObjDistDefault,
	}
	mw.state.SetParams(p)
	mw.sidePanel.Bench().SetParams(p)
}

func (mw *MainWindow) onExportSnapshot() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if ext := filepath.Ext(path); ext != ".png" && ext != ".webp" {
			path += ".png"
		}

		img := mw.canvas.Snapshot(snapshotW, snapshotH)
		if err := export.Save(path, img, export.Options{}); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.prefs.SetString(prefs.KeySnapshotDir, filepath.Dir(path))
		mw.state.Emit(app.EventSnapshotSaved, path)
	}, mw.Window)

	fd.SetFileName(fmt.Sprintf("optics-%s.png", time.Now().Format("20060102-150405")))
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".webp"}))
	if dir := mw.prefs.String(prefs.KeySnapshotDir, ""); dir != "" {
		if loc, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(loc)
		}
	}
	fd.Show()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Optics Bench",
		version.String()+"\n\n"+
			"An interactive thin-lens ray diagram for exploring\n"+
			"the HMD magnifier and projector regimes.",
		mw.Window)
}
