package state

import (
	"sync"

	"weatherboard/internal/model"
)

// DisplayState holds the process-wide display selection: the active
// temperature unit and the currently selected place. The place starts nil
// and is only ever overwritten wholesale.
//
// Overlapping load sequences are reconciled with a generation counter: each
// sequence calls Begin before its network round trips and CommitPlace after.
// A commit whose generation has been superseded is discarded, so a slow
// response can never clobber the place selected by a newer request.
type DisplayState struct {
	mu    sync.Mutex
	unit  model.UnitPreference
	place *model.Place
	gen   uint64
}

func New() *DisplayState {
	return &DisplayState{unit: model.UnitCelsius}
}

// Begin marks the start of a load sequence and returns its generation.
func (s *DisplayState) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// CommitPlace overwrites the current place if gen is still the latest
// generation. It reports whether the commit was applied.
func (s *DisplayState) CommitPlace(gen uint64, place model.Place) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.place = &place
	return true
}

// Place returns a copy of the current place, or nil before the first
// successful resolution.
func (s *DisplayState) Place() *model.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.place == nil {
		return nil
	}
	p := *s.place
	return &p
}

// Unit returns the active temperature unit.
func (s *DisplayState) Unit() model.UnitPreference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unit
}

// ToggleUnit flips Celsius and Fahrenheit and returns the new preference.
// Callers own any consequent re-fetch.
func (s *DisplayState) ToggleUnit() model.UnitPreference {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unit = s.unit.Toggled()
	return s.unit
}
