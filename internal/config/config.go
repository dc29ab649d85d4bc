// Package config holds the process-wide configuration for the optics bench.
//
// The configuration is built once at startup and treated as immutable
// afterwards. Every value has a sensible default; individual values can be
// overridden through OPTICSBENCH_* environment variables, which is mainly
// useful for the headless cmd tools and for experimenting with the visual
// stability constants.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "opticsbench"

// Config carries the tunable constants of the visualizer. The visual
// stability constants (epsilon band, clamps, paddings) are heuristic, not
// physical: their values may be tuned, but the shape of the policy they
// implement is fixed.
type Config struct {
	// Near-infinity band around d_o = f. The band is the larger of an
	// absolute floor and a fraction of the focal length.
	NearInfinityAbs  float64 `default:"3" split_words:"true"`
	NearInfinityFrac float64 `default:"0.05" split_words:"true"`

	// Object (display) arrow height in world units.
	ObjectHeight float64 `default:"50" split_words:"true"`

	// Magnification clamp applied to drawn arrow heights only. Backward
	// ray extensions always use the true post-lens slope.
	DrawMagClamp float64 `default:"6" split_words:"true"`

	// Focal-ray lens intercept clamp inside the near-infinity band,
	// as a multiple of the object height.
	FocalInterceptClamp float64 `default:"5" split_words:"true"`

	// Lens housing half-height bounds and ray margin, world units.
	LensHalfMin float64 `default:"40" split_words:"true"`
	LensHalfMax float64 `default:"80" split_words:"true"`
	LensMargin  float64 `default:"12" split_words:"true"`

	// Eye anchor placement. In the HMD regime the eye sits at
	// max(EyeHMDMin, EyeHMDFrac*f); in the projector regime at EyeProjector.
	EyeHMDMin    float64 `default:"80" split_words:"true"`
	EyeHMDFrac   float64 `default:"0.6" split_words:"true"`
	EyeProjector float64 `default:"60" split_words:"true"`

	// Viewport shaping: anchor margins, minimum size, padding fractions.
	DisplayMargin float64 `default:"30" split_words:"true"`
	FocalMargin   float64 `default:"20" split_words:"true"`
	MinViewportW  float64 `default:"300" split_words:"true"`
	MinViewportH  float64 `default:"180" split_words:"true"`
	PadFracX      float64 `default:"0.08" split_words:"true"`
	PadFracY      float64 `default:"0.12" split_words:"true"`

	// Slider domains (millimetres) and defaults.
	FocalMin       float64 `default:"10" split_words:"true"`
	FocalMax       float64 `default:"200" split_words:"true"`
	FocalDefault   float64 `default:"40" split_words:"true"`
	ObjDistMin     float64 `default:"5" split_words:"true"`
	ObjDistMax     float64 `default:"500" split_words:"true"`
	ObjDistDefault float64 `default:"100" split_words:"true"`

	// Glow strip width in canvas pixels.
	GlowWidth int `default:"26" split_words:"true"`

	// Canvas resize debounce and redraw coalescing interval, milliseconds.
	ResizeDebounceMs int `default:"120" split_words:"true"`
	FrameIntervalMs  int `default:"16" split_words:"true"`

	// Poll interval for the development binary watcher, milliseconds.
	HotReloadPollMs int `default:"2000" split_words:"true"`

	HMD HMDDefaults
}

// HMDDefaults holds the physical parameters used by the HMD key-parameters
// panel and cmd/hmdtable. All lengths are in metres. The defaults describe
// a Cardboard-V2 style viewer.
type HMDDefaults struct {
	FocalLength   float64 `default:"0.043" split_words:"true"`
	LensToDisplay float64 `default:"0.042" split_words:"true"`
	EyeRelief     float64 `default:"0.018" split_words:"true"`
	IPD           float64 `default:"0.065"`
	DisplayWidth  float64 `default:"0.12096" split_words:"true"`
	DisplayHeight float64 `default:"0.068" split_words:"true"`
}

// Load builds the configuration from defaults and the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration without consulting the
// environment. Used by tests so that stray variables cannot skew
// expectations. The values mirror the struct tag defaults above; the
// mirror is test-enforced.
func Default() *Config {
	return &Config{
		NearInfinityAbs:  3,
		NearInfinityFrac: 0.05,

		ObjectHeight: 50,

		DrawMagClamp:        6,
		FocalInterceptClamp: 5,

		LensHalfMin: 40,
		LensHalfMax: 80,
		LensMargin:  12,

		EyeHMDMin:    80,
		EyeHMDFrac:   0.6,
		EyeProjector: 60,

		DisplayMargin: 30,
		FocalMargin:   20,
		MinViewportW:  300,
		MinViewportH:  180,
		PadFracX:      0.08,
		PadFracY:      0.12,

		FocalMin:       10,
		FocalMax:       200,
		FocalDefault:   40,
		ObjDistMin:     5,
		ObjDistMax:     500,
		ObjDistDefault: 100,

		GlowWidth: 26,

		ResizeDebounceMs: 120,
		FrameIntervalMs:  16,
		HotReloadPollMs:  2000,

		HMD: HMDDefaults{
			FocalLength:   0.043,
			LensToDisplay: 0.042,
			EyeRelief:     0.018,
			IPD:           0.065,
			DisplayWidth:  0.12096,
			DisplayHeight: 0.068,
		},
	}
}
