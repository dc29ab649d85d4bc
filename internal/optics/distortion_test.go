package optics

import (
	"testing"
)

func TestApplyDistortionCenterFixed(t *testing.T) {
	x, y := ApplyDistortion(100, 50, 100, 50, 0.3, -0.1)
	if x != 100 || y != 50 {
		t.Errorf("centre moved to (%v, %v)", x, y)
	}
}

func TestApplyDistortionZeroCoefficientsIdentity(t *testing.T) {
	x, y := ApplyDistortion(37, -12, 5, 5, 0, 0)
	if x != 37 || y != -12 {
		t.Errorf("identity violated: (%v, %v)", x, y)
	}
}

func TestApplyDistortionRadialScaling(t *testing.T) {
	// A point one unit from the centre scales by exactly 1 + k1 + k2.
	k1, k2 := 0.2, 0.05
	x, y := ApplyDistortion(1, 0, 0, 0, k1, k2)
	want := 1 + k1 + k2
	if !nearly(x, want, 1e-12) || y != 0 {
		t.Errorf("got (%v, %v), want (%v, 0)", x, y, want)
	}

	// Barrel (negative k1) pulls points inward.
	x, _ = ApplyDistortion(2, 0, 0, 0, -0.01, 0)
	if x >= 2 {
		t.Errorf("negative k1 should pull inward, got x=%v", x)
	}
}
