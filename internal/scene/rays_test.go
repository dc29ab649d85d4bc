package scene

import (
	"math"
	"testing"

	"optics-bench/internal/optics"
	"optics-bench/pkg/geometry"
)

func nearly(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRaysConvergeOnRealImage(t *testing.T) {
	cfg := testConfig()
	sol := optics.Solve(40, 100, cfg.NearInfinityAbs, cfg.NearInfinityFrac)
	cross := ComputeCrossings(cfg, sol)
	view := DeriveViewport(cfg, 40, 100, LensHalfHeight(cfg, cross), 1.5)
	rays := ComputeRays(cfg, sol, cross, view)

	if len(rays) != 3 {
		t.Fatalf("got %d rays, want 3", len(rays))
	}

	tipX := sol.ImageDistance
	tipY := sol.Magnification * cfg.ObjectHeight
	for _, r := range rays {
		end := r.Points[len(r.Points)-1]
		if !nearly(end.X, tipX, 1e-9) || !nearly(end.Y, tipY, 1e-9) {
			t.Errorf("%s ray ends at (%v, %v), want image tip (%v, %v)",
				r.Kind, end.X, end.Y, tipX, tipY)
		}
		if len(r.Back) != 0 {
			t.Errorf("%s ray has a backward extension in the real regime", r.Kind)
		}
	}
}

func TestBackwardExtensionsShareForwardSlope(t *testing.T) {
	// Regression for the forward/backward slope coupling: both passes
	// must use the identical post-lens slope, so all three dashed
	// extensions converge on the physical virtual image point.
	cfg := testConfig()
	sol := optics.Solve(50, 25, cfg.NearInfinityAbs, cfg.NearInfinityFrac)
	if sol.Type != optics.Virtual {
		t.Fatalf("expected virtual, got %v", sol.Type)
	}
	cross := ComputeCrossings(cfg, sol)
	view := DeriveViewport(cfg, 50, 25, LensHalfHeight(cfg, cross), 1.5)
	rays := ComputeRays(cfg, sol, cross, view)

	tipX := sol.ImageDistance
	tipY := sol.Magnification * cfg.ObjectHeight
	for _, r := range rays {
		if len(r.Back) != 2 {
			t.Fatalf("%s ray missing backward extension", r.Kind)
		}

		// Forward segment slope past the lens.
		lens, fwd := r.Points[1], r.Points[2]
		fwdSlope := (fwd.Y - lens.Y) / (fwd.X - lens.X)
		if !nearly(fwdSlope, r.ExitSlope, 1e-9) {
			t.Errorf("%s ray: forward slope %v != exit slope %v", r.Kind, fwdSlope, r.ExitSlope)
		}

		// Backward segment slope, measured the same way.
		b0, b1 := r.Back[0], r.Back[1]
		backSlope := (b1.Y - b0.Y) / (b1.X - b0.X)
		if !nearly(backSlope, r.ExitSlope, 1e-9) {
			t.Errorf("%s ray: backward slope %v != exit slope %v", r.Kind, backSlope, r.ExitSlope)
		}
		if math.Signbit(backSlope) != math.Signbit(fwdSlope) && backSlope != 0 && fwdSlope != 0 {
			t.Errorf("%s ray: slope signs disagree between passes", r.Kind)
		}

		if !nearly(b1.X, tipX, 1e-9) || !nearly(b1.Y, tipY, 1e-9) {
			t.Errorf("%s ray extension ends at (%v, %v), want virtual image (%v, %v)",
				r.Kind, b1.X, b1.Y, tipX, tipY)
		}
	}
}

func TestAtInfinityRaysExitParallelToAxis(t *testing.T) {
	cfg := testConfig()
	sol := optics.Solve(50, 50, cfg.NearInfinityAbs, cfg.NearInfinityFrac)
	if sol.Type != optics.AtInfinity {
		t.Fatalf("expected at-infinity, got %v", sol.Type)
	}
	cross := ComputeCrossings(cfg, sol)
	view := DeriveViewport(cfg, 50, 50, LensHalfHeight(cfg, cross), 1.5)
	rays := ComputeRays(cfg, sol, cross, view)

	for _, r := range rays {
		if r.ExitSlope != 0 {
			t.Errorf("%s ray exit slope %v, want 0", r.Kind, r.ExitSlope)
		}
		lens, end := r.Points[1], r.Points[2]
		if lens.Y != end.Y {
			t.Errorf("%s ray not horizontal after lens: %v -> %v", r.Kind, lens.Y, end.Y)
		}
		if end.X != view.XMax {
			t.Errorf("%s ray ends at x=%v, want viewport edge %v", r.Kind, end.X, view.XMax)
		}
	}
}

func TestFocalInterceptClampOnlyInsideBand(t *testing.T) {
	cfg := testConfig()
	h := cfg.ObjectHeight
	limit := cfg.FocalInterceptClamp * h

	// Inside the band the intercept is clamped.
	sol := optics.Solve(50, 50.5, cfg.NearInfinityAbs, cfg.NearInfinityFrac)
	if sol.Type != optics.AtInfinity {
		t.Fatalf("expected at-infinity, got %v", sol.Type)
	}
	cross := ComputeCrossings(cfg, sol)
	if math.Abs(cross.Focal) > limit {
		t.Errorf("banded focal intercept %v exceeds clamp %v", cross.Focal, limit)
	}

	// Outside the band the raw formula stands, even when large.
	sol = optics.Solve(50, 54, cfg.NearInfinityAbs, cfg.NearInfinityFrac)
	if sol.Type == optics.AtInfinity {
		t.Fatalf("d_o=54 should be outside the band for f=50")
	}
	cross = ComputeCrossings(cfg, sol)
	want := h * 50 / (50 - 54)
	if cross.Focal != want {
		t.Errorf("unbanded focal intercept %v, want raw %v", cross.Focal, want)
	}
}

func TestLensHalfHeightBounds(t *testing.T) {
	cfg := testConfig()

	// Normal regime: object height dominates.
	small := Crossings{Parallel: cfg.ObjectHeight, Central: 0, Focal: -20}
	if got := LensHalfHeight(cfg, small); got != cfg.ObjectHeight+cfg.LensMargin {
		t.Errorf("lens half = %v, want %v", got, cfg.ObjectHeight+cfg.LensMargin)
	}

	// Diverging rays near the singularity: clamped to the maximum.
	big := Crossings{Parallel: cfg.ObjectHeight, Central: 0, Focal: 900}
	if got := LensHalfHeight(cfg, big); got != cfg.LensHalfMax {
		t.Errorf("lens half = %v, want clamp %v", got, cfg.LensHalfMax)
	}
}

func TestRaySourceIsObjectTip(t *testing.T) {
	cfg := testConfig()
	sol := optics.Solve(40, 120, cfg.NearInfinityAbs, cfg.NearInfinityFrac)
	cross := ComputeCrossings(cfg, sol)
	view := DeriveViewport(cfg, 40, 120, LensHalfHeight(cfg, cross), 1.5)

	want := geometry.Point2D{X: -120, Y: cfg.ObjectHeight}
	for _, r := range ComputeRays(cfg, sol, cross, view) {
		if r.Points[0] != want {
			t.Errorf("%s ray starts at %+v, want %+v", r.Kind, r.Points[0], want)
		}
	}
}
