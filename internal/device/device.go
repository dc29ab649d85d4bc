// Package device provides optical viewer preset definitions and management.
//
// A preset bundles the physical parameters of one lens-and-display viewer.
// Built-in presets cover the common cardboard-class HMDs; custom presets
// can be loaded from JSON files.
package device

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"optics-bench/internal/optics"
)

// Spec describes one viewer preset.
type Spec interface {
	Name() string
	Params() optics.HMDParams
	Validate() error
}

// BaseSpec provides a common implementation of Spec. All lengths are in
// metres.
type BaseSpec struct {
	SpecName      string  `json:"name"`
	FocalLength   float64 `json:"focal_length_m"`
	LensToDisplay float64 `json:"lens_to_display_m"`
	EyeRelief     float64 `json:"eye_relief_m"`
	IPD           float64 `json:"ipd_m"`
	DisplayWidth  float64 `json:"display_width_m"`
	DisplayHeight float64 `json:"display_height_m"`
}

func (s *BaseSpec) Name() string {
	return s.SpecName
}

func (s *BaseSpec) Params() optics.HMDParams {
	return optics.HMDParams{
		FocalLength:   s.FocalLength,
		LensToDisplay: s.LensToDisplay,
		EyeRelief:     s.EyeRelief,
		IPD:           s.IPD,
		DisplayWidth:  s.DisplayWidth,
		DisplayHeight: s.DisplayHeight,
	}
}

func (s *BaseSpec) Validate() error {
	if s.SpecName == "" {
		return fmt.Errorf("device spec name is required")
	}
	if s.FocalLength <= 0 || s.LensToDisplay <= 0 {
		return fmt.Errorf("focal length and lens-to-display distance must be positive")
	}
	if s.IPD <= 0 || s.DisplayWidth <= 0 || s.DisplayHeight <= 0 {
		return fmt.Errorf("IPD and display dimensions must be positive")
	}
	if s.IPD >= s.DisplayWidth {
		return fmt.Errorf("IPD %.4f exceeds display width %.4f", s.IPD, s.DisplayWidth)
	}
	return nil
}

// SaveToFile saves the spec to a JSON file.
func (s *BaseSpec) SaveToFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads a spec from a JSON file.
func LoadFromFile(path string) (*BaseSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var spec BaseSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid device spec: %w", err)
	}

	return &spec, nil
}

// CardboardV1Spec returns the first-generation cardboard viewer.
func CardboardV1Spec() *BaseSpec {
	return &BaseSpec{
		SpecName:      "Cardboard V1",
		FocalLength:   0.040,
		LensToDisplay: 0.039,
		EyeRelief:     0.015,
		IPD:           0.060,
		DisplayWidth:  0.110,
		DisplayHeight: 0.062,
	}
}

// CardboardV2Spec returns the second-generation cardboard viewer with the
// larger lenses.
func CardboardV2Spec() *BaseSpec {
	return &BaseSpec{
		SpecName:      "Cardboard V2",
		FocalLength:   0.043,
		LensToDisplay: 0.042,
		EyeRelief:     0.018,
		IPD:           0.065,
		DisplayWidth:  0.12096,
		DisplayHeight: 0.068,
	}
}

// BenchProjectorSpec returns a desktop projector-style configuration, with
// the display outside the focal length. Useful for comparing regimes in
// the key-parameters panel.
func BenchProjectorSpec() *BaseSpec {
	return &BaseSpec{
		SpecName:      "Bench Projector",
		FocalLength:   0.040,
		LensToDisplay: 0.100,
		EyeRelief:     0.018,
		IPD:           0.065,
		DisplayWidth:  0.12096,
		DisplayHeight: 0.068,
	}
}

// Registry of known device specs.
var registry = make(map[string]Spec)

// Register adds a device spec to the registry.
func Register(spec Spec) {
	registry[spec.Name()] = spec
}

// GetSpec returns a device spec by name, or nil.
func GetSpec(name string) Spec {
	if spec, ok := registry[name]; ok {
		return spec
	}
	return nil
}

// ListSpecs returns all registered device spec names, sorted.
func ListSpecs() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(CardboardV1Spec())
	Register(CardboardV2Spec())
	Register(BenchProjectorSpec())
}
