package app

import (
	"os"
	"path/filepath"
	"syscall"
	"time"

	"optics-bench/internal/config"
)

// HotReloader polls the on-disk binary behind the running process and
// fires a callback once a newer build replaces it. Development
// convenience; the poll interval comes from the configuration.
type HotReloader struct {
	binPath  string
	baseline time.Time
	interval time.Duration
	stop     chan struct{}
	onNew    func()
}

// NewHotReloader watches the current executable. Returns nil when the
// executable cannot be resolved; callers treat that as "no hot reload".
func NewHotReloader(cfg *config.Config) *HotReloader {
	path, err := os.Executable()
	if err != nil {
		return nil
	}
	// go build writes a fresh file; follow the symlink so the stat sees
	// the replacement rather than the stale link target.
	if real, err := filepath.EvalSymlinks(path); err == nil {
		path = real
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	return &HotReloader{
		binPath:  path,
		baseline: info.ModTime(),
		interval: time.Duration(cfg.HotReloadPollMs) * time.Millisecond,
		stop:     make(chan struct{}),
	}
}

// OnNewBinary sets the callback fired when a newer binary appears. It runs
// on the watcher goroutine; hop to the UI thread before touching widgets.
func (h *HotReloader) OnNewBinary(fn func()) {
	h.onNew = fn
}

// Start launches the watcher goroutine. Safe to call again after the
// callback has fired, for the keep-running path.
func (h *HotReloader) Start() {
	h.stop = make(chan struct{})
	go h.loop()
}

// Stop ends the watcher goroutine.
func (h *HotReloader) Stop() {
	close(h.stop)
}

func (h *HotReloader) loop() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			if h.newerOnDisk() && h.onNew != nil {
				// Fire once. The callback decides whether to restart
				// or rebaseline and Start again.
				h.onNew()
				return
			}
		}
	}
}

func (h *HotReloader) newerOnDisk() bool {
	info, err := os.Stat(h.binPath)
	if err != nil {
		return false
	}
	return info.ModTime().After(h.baseline)
}

// ResetBaseline adopts the current on-disk binary as the baseline, so a
// declined restart is not re-prompted for the same build.
func (h *HotReloader) ResetBaseline() {
	if info, err := os.Stat(h.binPath); err == nil {
		h.baseline = info.ModTime()
	}
}

// Restart replaces the current process with the new binary, preserving
// arguments and environment. Does not return on success.
func (h *HotReloader) Restart() error {
	return syscall.Exec(h.binPath, os.Args, os.Environ())
}
