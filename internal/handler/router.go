package handler

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"weatherboard/internal/config"
	"weatherboard/internal/middleware"
)

// indexData feeds the dashboard page template.
type indexData struct {
	ChartAssetURL string
	DefaultPlace  string
}

// NewRouter wires the dashboard routes: the page itself, its static assets,
// and the JSON API with rate limiting and request IDs.
func NewRouter(dashboard *DashboardHandler, suggestions *SuggestHandler, webDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware)
		r.Get("/dashboard", dashboard.HandleDashboard)
		r.Post("/unit", dashboard.HandleUnitToggle)
		r.Get("/suggest", suggestions.HandleSuggest)
	})

	tmpl := template.Must(template.ParseFiles(filepath.Join(webDir, "index.html")))
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := tmpl.Execute(w, indexData{
			ChartAssetURL: config.GetChartAssetURL(),
			DefaultPlace:  config.GetDefaultPlace(),
		})
		if err != nil {
			config.GetLogger().Errorw("could not render index", "error", err)
		}
	})

	static := http.FileServer(http.Dir(filepath.Join(webDir, "static")))
	r.Handle("/static/*", http.StripPrefix("/static/", static))

	return r
}
