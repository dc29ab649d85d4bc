// Package app provides application lifecycle management, shared state, and events.
package app

import (
	"sync"

	"optics-bench/internal/config"
	"optics-bench/internal/scene"
)

// EventType identifies different application events.
type EventType int

const (
	EventParamsChanged EventType = iota
	EventRegimeChanged
	EventSnapshotSaved
	EventPanelChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the mutable application state: the two slider parameters and
// the event listeners. Everything drawn on screen is derived from Params on
// each frame, so this is deliberately the only mutable state in the app.
type State struct {
	mu sync.RWMutex

	cfg    *config.Config
	params scene.Params
	regime string

	listeners map[EventType][]EventListener
}

// NewState creates the application state with slider defaults from the
// configuration.
func NewState(cfg *config.Config) *State {
	return &State{
		cfg: cfg,
		params: scene.Params{
			FocalLength:    cfg.FocalDefault,
			ObjectDistance: cfg.ObjDistDefault,
		},
		listeners: make(map[EventType][]EventListener),
	}
}

// Config returns the immutable configuration the state was built with.
func (s *State) Config() *config.Config {
	return s.cfg
}

// Params returns a copy of the current slider parameters.
func (s *State) Params() scene.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// SetFocalLength updates the focal length, clamped to the slider domain.
func (s *State) SetFocalLength(f float64) {
	s.mu.Lock()
	s.params.FocalLength = clampTo(f, s.cfg.FocalMin, s.cfg.FocalMax)
	p := s.params
	s.mu.Unlock()
	s.Emit(EventParamsChanged, p)
}

// SetObjectDistance updates the lens-to-display distance, clamped to the
// slider domain.
func (s *State) SetObjectDistance(d float64) {
	s.mu.Lock()
	s.params.ObjectDistance = clampTo(d, s.cfg.ObjDistMin, s.cfg.ObjDistMax)
	p := s.params
	s.mu.Unlock()
	s.Emit(EventParamsChanged, p)
}

// SetParams replaces both parameters at once, clamped to their domains.
func (s *State) SetParams(p scene.Params) {
	s.mu.Lock()
	s.params = scene.Params{
		FocalLength:    clampTo(p.FocalLength, s.cfg.FocalMin, s.cfg.FocalMax),
		ObjectDistance: clampTo(p.ObjectDistance, s.cfg.ObjDistMin, s.cfg.ObjDistMax),
	}
	p = s.params
	s.mu.Unlock()
	s.Emit(EventParamsChanged, p)
}

// SetRegime records the current regime caption; listeners fire only when it
// actually changes, so the status bar is not rewritten every frame.
func (s *State) SetRegime(regime string) {
	s.mu.Lock()
	changed := s.regime != regime
	s.regime = regime
	s.mu.Unlock()
	if changed {
		s.Emit(EventRegimeChanged, regime)
	}
}

// Regime returns the last recorded regime caption.
func (s *State) Regime() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.regime
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

func clampTo(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
