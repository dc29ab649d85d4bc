// Package canvas provides the interactive ray-diagram canvas widget.
package canvas

import (
	"image"
	"sync"
	"sync/atomic"
	"time"

	"optics-bench/internal/app"
	"optics-bench/internal/config"
	"optics-bench/internal/render"
	"optics-bench/internal/scene"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// BenchCanvas displays the live ray diagram. It is a software-rendered
// raster: every refresh rebuilds the full frame from the current slider
// parameters at the widget's pixel size.
type BenchCanvas struct {
	widget.BaseWidget

	cfg      *config.Config
	state    *app.State
	renderer *render.Renderer
	raster   *fynecanvas.Raster

	mu        sync.Mutex
	lastFrame scene.Frame

	// Redraw coalescing: rapid slider movement collapses into one refresh
	// per frame interval, dropping the superseded requests.
	redrawPending atomic.Bool

	resizeMu    sync.Mutex
	resizeTimer *time.Timer

	// OnFrame is invoked after each rebuild with the freshly derived
	// frame. The panels use it to keep their readouts in sync without
	// recomputing the optics themselves.
	OnFrame func(scene.Frame)
}

// New creates the bench canvas bound to the application state. Parameter
// changes invalidate the canvas automatically.
func New(cfg *config.Config, state *app.State) *BenchCanvas {
	bc := &BenchCanvas{
		cfg:      cfg,
		state:    state,
		renderer: render.New(cfg),
	}
	bc.raster = fynecanvas.NewRaster(bc.draw)
	bc.ExtendBaseWidget(bc)

	state.On(app.EventParamsChanged, func(interface{}) {
		bc.Invalidate()
	})
	return bc
}

// CreateRenderer implements fyne.Widget.
func (bc *BenchCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(bc.raster)
}

// MinSize keeps the diagram from collapsing below a readable size.
func (bc *BenchCanvas) MinSize() fyne.Size {
	return fyne.NewSize(480, 320)
}

// Resize debounces the expensive full redraw while the user is still
// dragging the window edge; intermediate sizes are skipped.
func (bc *BenchCanvas) Resize(size fyne.Size) {
	bc.BaseWidget.Resize(size)

	bc.resizeMu.Lock()
	defer bc.resizeMu.Unlock()
	if bc.resizeTimer != nil {
		bc.resizeTimer.Stop()
	}
	bc.resizeTimer = time.AfterFunc(
		time.Duration(bc.cfg.ResizeDebounceMs)*time.Millisecond,
		bc.Invalidate,
	)
}

// Invalidate schedules a redraw. Calls arriving while one is already
// scheduled are dropped; only the latest parameters are ever drawn.
func (bc *BenchCanvas) Invalidate() {
	if !bc.redrawPending.CompareAndSwap(false, true) {
		return
	}
	time.AfterFunc(time.Duration(bc.cfg.FrameIntervalMs)*time.Millisecond, func() {
		bc.redrawPending.Store(false)
		fyne.Do(bc.raster.Refresh)
	})
}

// draw is the raster callback: rebuild the frame at the requested pixel
// size and rasterise it. All data is frame-local; nothing carries over.
func (bc *BenchCanvas) draw(w, h int) image.Image {
	frame := scene.BuildFrame(bc.cfg, bc.state.Params(), w, h)
	img := bc.renderer.DrawFrame(frame)

	bc.mu.Lock()
	bc.lastFrame = frame
	bc.mu.Unlock()

	bc.state.SetRegime(frame.Solution.Regime())
	if bc.OnFrame != nil {
		bc.OnFrame(frame)
	}
	return img
}

// LastFrame returns the most recently drawn frame.
func (bc *BenchCanvas) LastFrame() scene.Frame {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	return bc.lastFrame
}

// Snapshot renders the current parameters at an explicit size, independent
// of the widget, for export.
func (bc *BenchCanvas) Snapshot(w, h int) *image.RGBA {
	frame := scene.BuildFrame(bc.cfg, bc.state.Params(), w, h)
	return bc.renderer.DrawFrame(frame)
}
