package optics

import (
	"math"
)

// HMDParams are the physical parameters of a lens-and-display HMD viewer.
// All lengths share one unit (metres by convention). LensToDisplay < FocalLength
// is the normal magnifier configuration and yields a virtual image with
// magnification > 1.
type HMDParams struct {
	FocalLength   float64
	LensToDisplay float64
	EyeRelief     float64
	IPD           float64
	DisplayWidth  float64
	DisplayHeight float64
}

// HMDOptics holds the derived quantities for one eye of an HMD. Angles are
// in degrees. Nasal/temporal split the horizontal field about the lens
// axis: the nasal half spans from the axis toward the display centre, the
// temporal half toward the outer display edge.
type HMDOptics struct {
	Magnification float64
	ImageDistance float64 // signed; negative for the virtual image case
	EyeToImage    float64 // |ImageDistance| + EyeRelief
	NearPlane     float64

	FOVVertical   float64
	FOVHNasal     float64
	FOVHTemporal  float64
	FOVHorizontal float64

	// Frustum extents in the virtual image plane, per eye, measured from
	// the lens axis. Nasal extent is toward the nose.
	NasalExtent    float64
	TemporalExtent float64
	VerticalExtent float64
}

// CalcHMDOptics computes magnification, per-eye field of view and frustum
// extents from the physical viewer parameters. Pure arithmetic: inputs are
// assumed physically valid (all positive), and no iteration or error cases
// exist.
func CalcHMDOptics(p HMDParams) HMDOptics {
	di := ImageDistance(p.FocalLength, p.LensToDisplay)
	mag := Magnification(di, p.LensToDisplay)

	eyeToImage := math.Abs(di) + p.EyeRelief

	// Each eye sees half of the shared display, magnified about its own
	// lens axis, which sits IPD/2 from the display centre.
	nasal := mag * (p.IPD / 2)
	temporal := mag * (p.DisplayWidth/2 - p.IPD/2)
	vertical := mag * (p.DisplayHeight / 2)

	deg := 180 / math.Pi
	fovNasal := math.Atan(nasal/eyeToImage) * deg
	fovTemporal := math.Atan(temporal/eyeToImage) * deg
	fovVertical := 2 * math.Atan(vertical/eyeToImage) * deg

	return HMDOptics{
		Magnification: mag,
		ImageDistance: di,
		EyeToImage:    eyeToImage,
		NearPlane:     eyeToImage,

		FOVVertical:   fovVertical,
		FOVHNasal:     fovNasal,
		FOVHTemporal:  fovTemporal,
		FOVHorizontal: fovNasal + fovTemporal,

		NasalExtent:    nasal,
		TemporalExtent: temporal,
		VerticalExtent: vertical,
	}
}
