package service

import (
	"context"
	"fmt"

	"weatherboard/internal/chart"
	"weatherboard/internal/config"
	"weatherboard/internal/forecast"
	"weatherboard/internal/geocode"
	"weatherboard/internal/model"
	"weatherboard/internal/state"
	"weatherboard/internal/view"
)

// DashboardService runs the load sequence: geocode (if needed), forecast,
// view transform, chart build. Each sequence takes a display-state
// generation up front and commits the resolved place only if no newer
// sequence has started since, so a slow response never overwrites a newer
// selection.
type DashboardService interface {
	Load(ctx context.Context, query string) (*model.DashboardView, error)
	LoadCoordinates(ctx context.Context, lat, lon float64, label string) (*model.DashboardView, error)
	ToggleUnit(ctx context.Context) (*model.DashboardView, error)
	Refresh(ctx context.Context) (*model.DashboardView, error)
}

type dashboardService struct {
	geocoder  geocode.Repository
	forecasts forecast.Repository
	charts    *chart.Adapter
	display   *state.DisplayState
}

func NewDashboardService(geocoder geocode.Repository, forecasts forecast.Repository, charts *chart.Adapter, display *state.DisplayState) DashboardService {
	return &dashboardService{
		geocoder:  geocoder,
		forecasts: forecasts,
		charts:    charts,
		display:   display,
	}
}

// Load resolves a free-text query to its best match and loads the dashboard
// for it. Zero geocoder matches fail with model.ErrNoMatch and leave the
// previously selected place untouched.
func (s *dashboardService) Load(ctx context.Context, query string) (*model.DashboardView, error) {
	gen := s.display.Begin()

	candidates, err := s.geocoder.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %q", model.ErrNoMatch, query)
	}

	best := candidates[0]
	place := model.Place{
		Name:       best.Name,
		Latitude:   best.Latitude,
		Longitude:  best.Longitude,
		TimezoneID: best.TimezoneID,
	}
	return s.loadPlace(ctx, gen, place)
}

// LoadCoordinates loads the dashboard for a raw coordinate fix, as granted
// by the browser geolocation API. Coordinates are trusted; the timezone is
// inferred by the forecast provider.
func (s *dashboardService) LoadCoordinates(ctx context.Context, lat, lon float64, label string) (*model.DashboardView, error) {
	gen := s.display.Begin()
	if label == "" {
		label = "Your location"
	}
	place := model.Place{
		Name:       label,
		Latitude:   lat,
		Longitude:  lon,
		TimezoneID: forecast.TimezoneAuto,
	}
	return s.loadPlace(ctx, gen, place)
}

// ToggleUnit flips the temperature unit and, when a place is selected,
// re-fetches the forecast so every displayed value reflects the new unit.
// The upstream returns pre-converted values, so a toggle always re-fetches.
func (s *dashboardService) ToggleUnit(ctx context.Context) (*model.DashboardView, error) {
	s.display.ToggleUnit()
	return s.Refresh(ctx)
}

// Refresh reloads the dashboard for the currently selected place, falling
// back to the configured default place before the first resolution.
func (s *dashboardService) Refresh(ctx context.Context) (*model.DashboardView, error) {
	if place := s.display.Place(); place != nil {
		gen := s.display.Begin()
		return s.loadPlace(ctx, gen, *place)
	}
	return s.Load(ctx, config.GetDefaultPlace())
}

func (s *dashboardService) loadPlace(ctx context.Context, gen uint64, place model.Place) (*model.DashboardView, error) {
	unit := s.display.Unit()

	snap, err := s.forecasts.Fetch(ctx, place.Latitude, place.Longitude, place.TimezoneID, unit)
	if err != nil {
		return nil, err
	}

	if !s.display.CommitPlace(gen, place) {
		config.GetLogger().Debugw("discarding superseded load", "place", place.Name)
	}

	dashboard := &model.DashboardView{
		Place:      &place,
		Unit:       string(unit),
		TempSuffix: unit.TempSuffix(),
		Today:      view.Today(snap, unit),
		Daily:      view.DailyCards(snap, unit),
		Cached:     snap.Cached,
	}

	// Chart failure degrades: summary and grid still render, the chart
	// region carries the error.
	bundle, err := s.charts.Render(view.Next24HourSeries(snap), unit)
	if err != nil {
		dashboard.ChartsError = "Charts are unavailable right now"
		return dashboard, nil
	}
	dashboard.Charts = bundle
	return dashboard, nil
}
