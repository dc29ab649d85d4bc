package scene

import (
	"math"
	"testing"

	"optics-bench/internal/optics"
)

func TestBuildFrameSweepNeverDegenerates(t *testing.T) {
	cfg := testConfig()

	// Walk the whole slider domain, including the singularity, and check
	// the invariants a frame must always satisfy.
	for f := cfg.FocalMin; f <= cfg.FocalMax; f += 19 {
		for do := cfg.ObjDistMin; do <= cfg.ObjDistMax; do += 23 {
			frame := BuildFrame(cfg, Params{FocalLength: f, ObjectDistance: do}, 800, 600)

			if !frame.Viewport.IsFinite() {
				t.Fatalf("f=%v do=%v: non-finite viewport", f, do)
			}
			if len(frame.Rays) != 3 {
				t.Fatalf("f=%v do=%v: %d rays", f, do, len(frame.Rays))
			}
			for _, r := range frame.Rays {
				for _, pt := range r.Points {
					if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
						t.Fatalf("f=%v do=%v: %s ray point %+v", f, do, r.Kind, pt)
					}
				}
			}
			if math.Abs(frame.DrawnImageTipY) > cfg.DrawMagClamp*cfg.ObjectHeight {
				t.Errorf("f=%v do=%v: drawn tip %v beyond clamp", f, do, frame.DrawnImageTipY)
			}
		}
	}
}

func TestBuildFrameScenarioSweepAcrossFocal(t *testing.T) {
	// Sweeping d_o through f with a band narrow enough to resolve the
	// neighbouring millimetres: real image off the right edge, then the
	// at-infinity presentation, then virtual image off the left edge.
	cfg := tightBandConfig()
	const f = 50.0

	// d_o = 51: just outside the focus, real image far right.
	frame := BuildFrame(cfg, Params{FocalLength: f, ObjectDistance: 51}, 800, 600)
	if frame.Solution.Type != optics.Real {
		t.Fatalf("d_o=51: type %v, want real", frame.Solution.Type)
	}
	if frame.ImageInView {
		t.Error("d_o=51: divergent real image reported in view")
	}
	if !hasGlow(frame.Glows, GlowRight) {
		t.Errorf("d_o=51: glows %+v, want right indicator", frame.Glows)
	}

	// d_o = 50: exactly at focus.
	frame = BuildFrame(cfg, Params{FocalLength: f, ObjectDistance: 50}, 800, 600)
	if frame.Solution.Type != optics.AtInfinity {
		t.Fatalf("d_o=50: type %v, want at-infinity", frame.Solution.Type)
	}
	if len(frame.Glows) != 0 {
		t.Errorf("d_o=50: glows %+v, want none", frame.Glows)
	}
	if frame.ImageInView {
		t.Error("d_o=50: at-infinity image reported in view")
	}

	// d_o = 49: just inside the focus, virtual image far left.
	frame = BuildFrame(cfg, Params{FocalLength: f, ObjectDistance: 49}, 800, 600)
	if frame.Solution.Type != optics.Virtual {
		t.Fatalf("d_o=49: type %v, want virtual", frame.Solution.Type)
	}
	if !hasGlow(frame.Glows, GlowLeft) {
		t.Errorf("d_o=49: glows %+v, want left indicator", frame.Glows)
	}
}

func TestBuildFrameDefaultBandSnapsNeighboursToInfinity(t *testing.T) {
	// Under the default band (max of 3mm and 5% of f) the millimetre
	// neighbours of the focus present as at-infinity rather than as a
	// flickering multi-kilometre image.
	cfg := testConfig()
	for _, do := range []float64{48, 49, 50, 51, 52} {
		frame := BuildFrame(cfg, Params{FocalLength: 50, ObjectDistance: do}, 800, 600)
		if frame.Solution.Type != optics.AtInfinity {
			t.Errorf("d_o=%v: type %v, want at-infinity", do, frame.Solution.Type)
		}
		if !math.IsInf(frame.Solution.ImageDistance, 1) {
			t.Errorf("d_o=%v: image distance %v, want +Inf", do, frame.Solution.ImageDistance)
		}
	}
}

func TestBuildFrameViewportStableAcrossSingularity(t *testing.T) {
	// The viewport must not jump as d_o crosses f: neighbouring slider
	// positions differ by at most a few percent in extent.
	cfg := testConfig()
	var prev Frame
	first := true

	for do := 45.0; do <= 55.0; do += 0.5 {
		frame := BuildFrame(cfg, Params{FocalLength: 50, ObjectDistance: do}, 800, 600)
		if !first {
			dw := math.Abs(frame.Viewport.Width() - prev.Viewport.Width())
			if dw/prev.Viewport.Width() > 0.05 {
				t.Errorf("d_o=%v: viewport width jumped %v -> %v",
					do, prev.Viewport.Width(), frame.Viewport.Width())
			}
		}
		prev, first = frame, false
	}
}

func TestBuildFrameHMDRegimeImageInView(t *testing.T) {
	// Magnifier regime with a modest magnification: the virtual image
	// stays on screen, so no glow and a drawn image arrow.
	cfg := testConfig()
	frame := BuildFrame(cfg, Params{FocalLength: 50, ObjectDistance: 30}, 800, 600)

	if frame.Solution.Type != optics.Virtual {
		t.Fatalf("type %v, want virtual", frame.Solution.Type)
	}
	// d_i = -75, viewport reaches at least to the display anchor side.
	if !frame.ImageInView {
		t.Errorf("virtual image at %v not in viewport %+v",
			frame.Solution.ImageDistance, frame.Viewport)
	}
	if hasGlow(frame.Glows, GlowLeft) {
		t.Errorf("unexpected left glow: %+v", frame.Glows)
	}
}

func TestBuildFrameDrawnTipClampLeavesRaysExact(t *testing.T) {
	// High magnification: the drawn arrow is clamped but the backward
	// extensions still converge on the unclamped physical image tip.
	cfg := tightBandConfig()
	frame := BuildFrame(cfg, Params{FocalLength: 50, ObjectDistance: 49}, 800, 600)

	wantDrawn := -cfg.DrawMagClamp * cfg.ObjectHeight
	if frame.Solution.Magnification > 0 {
		wantDrawn = -wantDrawn
	}
	if frame.DrawnImageTipY != wantDrawn {
		t.Errorf("drawn tip %v, want clamp %v", frame.DrawnImageTipY, wantDrawn)
	}

	trueTipY := frame.Solution.Magnification * cfg.ObjectHeight
	for _, r := range frame.Rays {
		if len(r.Back) != 2 {
			t.Fatalf("%s ray missing backward extension", r.Kind)
		}
		end := r.Back[1]
		if !nearly(end.Y, trueTipY, 1e-6) {
			t.Errorf("%s ray extension ends at y=%v, want physical tip %v", r.Kind, end.Y, trueTipY)
		}
	}
}

func hasGlow(glows []Glow, edge GlowEdge) bool {
	for _, g := range glows {
		if g.Edge == edge {
			return true
		}
	}
	return false
}
