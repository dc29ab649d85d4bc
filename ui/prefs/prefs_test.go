package prefs

import (
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "preferences.json")

	p := LoadFrom(path)
	p.SetFloat(KeyWindowWidth, 1280)
	p.SetFloat(KeyWindowHeight, 800)
	p.SetString(KeyLastPanel, "hmd")
	p.SetBool("maximized", true)
	if err := p.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	q := LoadFrom(path)
	if got := q.Float(KeyWindowWidth, 0); got != 1280 {
		t.Errorf("width = %v", got)
	}
	if got := q.String(KeyLastPanel, ""); got != "hmd" {
		t.Errorf("panel = %q", got)
	}
	if !q.Bool("maximized", false) {
		t.Error("maximized lost")
	}
}

func TestMissingFileYieldsFallbacks(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))

	if got := p.Float(KeyWindowWidth, 1024); got != 1024 {
		t.Errorf("float fallback = %v", got)
	}
	if got := p.String(KeyLastPanel, "bench"); got != "bench" {
		t.Errorf("string fallback = %q", got)
	}
	if !p.Bool("missing", true) {
		t.Error("bool fallback lost")
	}
}
