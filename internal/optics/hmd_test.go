package optics

import (
	"math"
	"testing"
)

// Cardboard-V2 style viewer parameters, metres.
var cardboardV2 = HMDParams{
	FocalLength:   0.043,
	LensToDisplay: 0.042,
	EyeRelief:     0.018,
	IPD:           0.065,
	DisplayWidth:  0.12096,
	DisplayHeight: 0.068,
}

func TestCalcHMDOpticsCardboardV2(t *testing.T) {
	o := CalcHMDOptics(cardboardV2)

	if !nearly(o.Magnification, 43.0, 1e-6) {
		t.Errorf("magnification = %.9f, want 43.0", o.Magnification)
	}
	if !nearly(o.FOVVertical, 77.4268, 1e-3) {
		t.Errorf("vertical FOV = %.4f, want 77.4268", o.FOVVertical)
	}
	if !nearly(o.FOVHNasal, 37.4584, 1e-3) {
		t.Errorf("nasal FOV = %.4f, want 37.4584", o.FOVHNasal)
	}
	if !nearly(o.FOVHTemporal, 33.4095, 1e-3) {
		t.Errorf("temporal FOV = %.4f, want 33.4095", o.FOVHTemporal)
	}
	if !nearly(o.FOVHorizontal, 70.8679, 1e-3) {
		t.Errorf("horizontal FOV = %.4f, want 70.8679", o.FOVHorizontal)
	}
}

func TestCalcHMDOpticsDerivedQuantities(t *testing.T) {
	o := CalcHMDOptics(cardboardV2)

	if o.ImageDistance >= 0 {
		t.Errorf("image distance = %v, want negative (virtual image)", o.ImageDistance)
	}
	wantEye := -o.ImageDistance + cardboardV2.EyeRelief
	if !nearly(o.EyeToImage, wantEye, 1e-9) {
		t.Errorf("eye-to-image = %v, want %v", o.EyeToImage, wantEye)
	}
	if o.NearPlane != o.EyeToImage {
		t.Errorf("near plane = %v, want %v", o.NearPlane, o.EyeToImage)
	}

	// Nasal + temporal extents must tile the per-eye image width.
	wantHalf := o.Magnification * cardboardV2.DisplayWidth / 2
	if !nearly(o.NasalExtent+o.TemporalExtent, wantHalf, 1e-9) {
		t.Errorf("extents %v + %v != half image width %v",
			o.NasalExtent, o.TemporalExtent, wantHalf)
	}
}

func TestCalcHMDOpticsFOVStableNearFocus(t *testing.T) {
	p := cardboardV2
	base := CalcHMDOptics(p)

	// Moving the display closer to the focal plane roughly doubles the
	// magnification, but the image recedes at the same rate, so the field
	// of view barely moves: it converges toward the geometric limit set by
	// the display size and lens-to-display distance.
	p.LensToDisplay = 0.0425
	closer := CalcHMDOptics(p)
	if closer.Magnification <= 1.9*base.Magnification {
		t.Errorf("magnification %v should be about twice %v", closer.Magnification, base.Magnification)
	}
	if diff := math.Abs(closer.FOVVertical - base.FOVVertical); diff > 1 {
		t.Errorf("vertical FOV moved %v degrees (%v -> %v), want near-constant",
			diff, base.FOVVertical, closer.FOVVertical)
	}
}
