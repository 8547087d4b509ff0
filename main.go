package main

import (
	"errors"
	"net/http"

	"weatherboard/internal/chart"
	"weatherboard/internal/config"
	"weatherboard/internal/forecast"
	"weatherboard/internal/geocode"
	"weatherboard/internal/handler"
	"weatherboard/internal/middleware"
	"weatherboard/internal/service"
	"weatherboard/internal/state"
	"weatherboard/internal/suggest"
)

func main() {
	logger := config.GetLogger()
	defer func() { _ = logger.Sync() }()

	geocoder := geocode.NewRepository(geocode.NewClient())
	forecasts := forecast.NewRepository(forecast.NewClient())
	charts := chart.NewAdapter(chart.NewAssetProbe())
	display := state.New()
	dashboards := service.NewDashboardService(geocoder, forecasts, charts, display)

	suggestions := suggest.NewRegistry(
		geocoder,
		suggest.RealClock{},
		config.GetSuggestDebounce(),
		config.GetSuggestMinQueryLen(),
		config.GetRateLimiterCleanupTimeout(),
	)
	suggestions.StartCleanup()
	middleware.StartRateLimiterCleanup()

	router := handler.NewRouter(
		handler.NewDashboardHandler(dashboards),
		handler.NewSuggestHandler(suggestions),
		config.GetWebDir(),
	)

	port := config.GetServerPort()
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: config.GetServerTimeout("read_header_timeout"),
		ReadTimeout:       config.GetServerTimeout("read_timeout"),
		WriteTimeout:      config.GetServerTimeout("write_timeout"),
		IdleTimeout:       config.GetServerTimeout("idle_timeout"),
	}

	logger.Infow("weatherboard listening", "port", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("server stopped", "error", err)
	}
}
