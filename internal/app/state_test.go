package app

import (
	"testing"

	"optics-bench/internal/config"
	"optics-bench/internal/scene"
)

func TestNewStateUsesSliderDefaults(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)

	p := s.Params()
	if p.FocalLength != cfg.FocalDefault || p.ObjectDistance != cfg.ObjDistDefault {
		t.Errorf("initial params %+v", p)
	}
}

func TestSettersClampToDomain(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)

	s.SetFocalLength(cfg.FocalMax + 100)
	if got := s.Params().FocalLength; got != cfg.FocalMax {
		t.Errorf("focal length %v, want clamp %v", got, cfg.FocalMax)
	}

	s.SetObjectDistance(-50)
	if got := s.Params().ObjectDistance; got != cfg.ObjDistMin {
		t.Errorf("object distance %v, want clamp %v", got, cfg.ObjDistMin)
	}
}

func TestParamsChangedEvent(t *testing.T) {
	s := NewState(config.Default())

	var got []scene.Params
	s.On(EventParamsChanged, func(data interface{}) {
		got = append(got, data.(scene.Params))
	})

	s.SetFocalLength(55)
	s.SetObjectDistance(120)

	if len(got) != 2 {
		t.Fatalf("%d events, want 2", len(got))
	}
	if got[1].FocalLength != 55 || got[1].ObjectDistance != 120 {
		t.Errorf("final event payload %+v", got[1])
	}
}

func TestRegimeEventFiresOnlyOnChange(t *testing.T) {
	s := NewState(config.Default())

	count := 0
	s.On(EventRegimeChanged, func(interface{}) { count++ })

	s.SetRegime("HMD (virtual image)")
	s.SetRegime("HMD (virtual image)")
	s.SetRegime("Projector (real image)")

	if count != 2 {
		t.Errorf("%d regime events, want 2", count)
	}
}
