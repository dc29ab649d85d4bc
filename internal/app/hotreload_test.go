package app

import (
	"testing"
	"time"

	"optics-bench/internal/config"
)

func TestNewHotReloaderUsesConfiguredInterval(t *testing.T) {
	cfg := config.Default()
	hr := NewHotReloader(cfg)
	if hr == nil {
		t.Skip("executable path not resolvable in this environment")
	}

	if want := time.Duration(cfg.HotReloadPollMs) * time.Millisecond; hr.interval != want {
		t.Errorf("interval = %v, want %v", hr.interval, want)
	}
	if hr.newerOnDisk() {
		t.Error("fresh baseline should not report a newer binary")
	}
	hr.ResetBaseline()
	if hr.newerOnDisk() {
		t.Error("rebaselined reloader should not report a newer binary")
	}
}
