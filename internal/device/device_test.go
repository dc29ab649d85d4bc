package device

import (
	"math"
	"path/filepath"
	"testing"

	"optics-bench/internal/optics"
)

func TestRegistryContainsBuiltins(t *testing.T) {
	for _, name := range []string{"Cardboard V1", "Cardboard V2", "Bench Projector"} {
		if GetSpec(name) == nil {
			t.Errorf("missing built-in spec %q", name)
		}
	}
	if GetSpec("no such viewer") != nil {
		t.Error("unknown name returned a spec")
	}
}

func TestCardboardV2DerivedOptics(t *testing.T) {
	spec := GetSpec("Cardboard V2")
	o := optics.CalcHMDOptics(spec.Params())

	if math.Abs(o.Magnification-43.0) > 1e-6 {
		t.Errorf("magnification = %v, want 43.0", o.Magnification)
	}
	if math.Abs(o.FOVVertical-77.4268) > 1e-3 {
		t.Errorf("vertical FOV = %v", o.FOVVertical)
	}
}

func TestValidateRejectsBadSpecs(t *testing.T) {
	cases := []*BaseSpec{
		{},
		{SpecName: "x", FocalLength: -1, LensToDisplay: 0.04, IPD: 0.06, DisplayWidth: 0.11, DisplayHeight: 0.06},
		{SpecName: "x", FocalLength: 0.04, LensToDisplay: 0.04, IPD: 0.2, DisplayWidth: 0.11, DisplayHeight: 0.06},
	}
	for i, s := range cases {
		if err := s.Validate(); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	orig := CardboardV2Spec()
	orig.SpecName = "Custom Viewer"

	if err := orig.SaveToFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *orig {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, orig)
	}
}
