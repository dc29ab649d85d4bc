package optics

import (
	"math"
	"testing"
)

func nearly(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestImageDistanceMatchesThinLensEquation(t *testing.T) {
	cases := []struct{ f, do float64 }{
		{10, 5}, {10, 15}, {40, 100}, {50, 51}, {50, 49},
		{200, 500}, {43, 42}, {120, 30}, {15, 495},
	}
	for _, c := range cases {
		got := ImageDistance(c.f, c.do)
		want := 1 / (1/c.f - 1/c.do)
		if got != want {
			t.Errorf("ImageDistance(%v, %v) = %v, want %v", c.f, c.do, got, want)
		}
		if m := Magnification(got, c.do); m != -got/c.do {
			t.Errorf("Magnification(%v, %v) = %v, want %v", got, c.do, m, -got/c.do)
		}
	}
}

func TestClassifyImage(t *testing.T) {
	cases := []struct {
		di   float64
		want ImageType
	}{
		{100, Real},
		{0.5, Real},
		{-100, Virtual},
		{-0.5, Virtual},
		{math.Inf(1), AtInfinity},
		{math.Inf(-1), AtInfinity},
		{math.NaN(), AtInfinity},
		{2e6, AtInfinity},
		{-2e6, AtInfinity},
	}
	for _, c := range cases {
		if got := ClassifyImage(c.di); got != c.want {
			t.Errorf("ClassifyImage(%v) = %v, want %v", c.di, got, c.want)
		}
	}
}

func TestNearInfinityThreshold(t *testing.T) {
	// Below f=60 the absolute floor of 3 dominates; above it the
	// relative 5% term takes over.
	if got := NearInfinityThreshold(40, 3, 0.05); got != 3 {
		t.Errorf("threshold(40) = %v, want 3", got)
	}
	if got := NearInfinityThreshold(60, 3, 0.05); got != 3 {
		t.Errorf("threshold(60) = %v, want 3", got)
	}
	if got := NearInfinityThreshold(200, 3, 0.05); got != 10 {
		t.Errorf("threshold(200) = %v, want 10", got)
	}
}

func TestSolveRegimeClassification(t *testing.T) {
	// Outside the band, type follows the sign of d_o - f exactly. The band
	// check is a strict less-than, but f +/- threshold can round to either
	// side, so the nearest probe sits just beyond the boundary.
	for f := 10.0; f <= 200; f += 19 {
		threshold := NearInfinityThreshold(f, 3, 0.05)
		for _, delta := range []float64{threshold * 1.01, threshold + 1, 50, 200} {
			if do := f + delta; do > 0 {
				sol := Solve(f, do, 3, 0.05)
				if sol.Type != Real {
					t.Errorf("Solve(%v, %v): type = %v, want Real", f, do, sol.Type)
				}
			}
			if do := f - delta; do > 0 {
				sol := Solve(f, do, 3, 0.05)
				if sol.Type != Virtual {
					t.Errorf("Solve(%v, %v): type = %v, want Virtual", f, do, sol.Type)
				}
			}
		}
		// Inside the band: at focal point.
		for _, delta := range []float64{0, threshold / 2, threshold * 0.99} {
			sol := Solve(f, f+delta, 3, 0.05)
			if sol.Type != AtInfinity {
				t.Errorf("Solve(%v, %v): type = %v, want AtInfinity", f, f+delta, sol.Type)
			}
			if !math.IsInf(sol.ImageDistance, 1) {
				t.Errorf("Solve(%v, %v): image distance %v, want +Inf", f, f+delta, sol.ImageDistance)
			}
		}
	}
}

func TestSolveKeepsRawDistanceInsideBand(t *testing.T) {
	sol := Solve(50, 51, 3, 0.05)
	if sol.Type != AtInfinity {
		t.Fatalf("type = %v, want AtInfinity (51 is inside the band around 50)", sol.Type)
	}
	raw := 1 / (1/50.0 - 1/51.0)
	if !nearly(sol.RawImageDistance, raw, 1e-9) {
		t.Errorf("raw image distance = %v, want %v", sol.RawImageDistance, raw)
	}
	if sol.RawImageDistance <= 0 {
		t.Errorf("raw image distance should stay positive for d_o just beyond f")
	}
}

func TestSolveSignConventions(t *testing.T) {
	// Object well beyond f: real, inverted image.
	sol := Solve(50, 150, 3, 0.05)
	if sol.Type != Real || sol.ImageDistance <= 0 || sol.Magnification >= 0 {
		t.Errorf("projector regime: %+v", sol)
	}

	// Object well inside f: virtual, upright image behind the lens.
	sol = Solve(50, 25, 3, 0.05)
	if sol.Type != Virtual || sol.ImageDistance >= 0 || sol.Magnification <= 0 {
		t.Errorf("HMD regime: %+v", sol)
	}
}
