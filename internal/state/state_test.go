package state

import (
	"testing"

	"weatherboard/internal/model"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	if s.Unit() != model.UnitCelsius {
		t.Errorf("expected default unit celsius, got %s", s.Unit())
	}
	if s.Place() != nil {
		t.Error("expected nil place before first resolution")
	}
}

func TestToggleUnitRoundTrip(t *testing.T) {
	s := New()
	if got := s.ToggleUnit(); got != model.UnitFahrenheit {
		t.Errorf("first toggle = %s, want fahrenheit", got)
	}
	if got := s.ToggleUnit(); got != model.UnitCelsius {
		t.Errorf("second toggle = %s, want celsius", got)
	}
}

func TestCommitPlaceOverwritesWholesale(t *testing.T) {
	s := New()
	gen := s.Begin()
	if !s.CommitPlace(gen, model.Place{Name: "Kathmandu", Latitude: 27.7, Longitude: 85.3, TimezoneID: "Asia/Kathmandu"}) {
		t.Fatal("expected commit to apply")
	}
	gen = s.Begin()
	if !s.CommitPlace(gen, model.Place{Name: "Lima", Latitude: -12.05, Longitude: -77.04, TimezoneID: "America/Lima"}) {
		t.Fatal("expected commit to apply")
	}
	p := s.Place()
	if p == nil || p.Name != "Lima" || p.TimezoneID != "America/Lima" {
		t.Errorf("expected Lima to fully replace previous place, got %+v", p)
	}
}

func TestStaleCommitDiscarded(t *testing.T) {
	s := New()
	slow := s.Begin()
	fast := s.Begin()
	if !s.CommitPlace(fast, model.Place{Name: "Osaka"}) {
		t.Fatal("latest generation must commit")
	}
	if s.CommitPlace(slow, model.Place{Name: "Oslo"}) {
		t.Error("superseded generation must not commit")
	}
	if p := s.Place(); p == nil || p.Name != "Osaka" {
		t.Errorf("expected Osaka to survive stale commit, got %+v", p)
	}
}

func TestPlaceReturnsCopy(t *testing.T) {
	s := New()
	s.CommitPlace(s.Begin(), model.Place{Name: "Quito"})
	p := s.Place()
	p.Name = "mutated"
	if s.Place().Name != "Quito" {
		t.Error("Place() must return a copy, not shared state")
	}
}
