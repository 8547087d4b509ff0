package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"weatherboard/internal/config"
	"weatherboard/internal/model"
	"weatherboard/internal/service"
)

// status carries the user-facing title and subtitle for one error class.
type status struct {
	code     int
	title    string
	subtitle string
}

// statusFor maps the error taxonomy to visible status copy. Nothing from a
// user-initiated load sequence degrades to a console-only log.
func statusFor(err error) status {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return status{http.StatusBadRequest, "Nothing to search for", "Type a place name first."}
	case errors.Is(err, model.ErrNoMatch):
		return status{http.StatusNotFound, "No places found", "Try a different spelling or a nearby city."}
	case errors.Is(err, model.ErrGeolocationDenied):
		return status{http.StatusForbidden, "Location unavailable", "Allow location access in your browser, or search for a place instead."}
	case errors.Is(err, model.ErrNetwork):
		return status{http.StatusBadGateway, "Couldn't reach the weather service", "Check your connection and try again in a moment."}
	default:
		return status{http.StatusInternalServerError, "Something went wrong", "Try again in a moment."}
	}
}

type DashboardHandler struct {
	Service service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: svc}
}

func (h *DashboardHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		config.GetLogger().Errorw("could not encode json", "error", err)
	}
}

func (h *DashboardHandler) writeError(w http.ResponseWriter, err error) {
	st := statusFor(err)
	h.writeJSONResponse(w, st.code, model.Response{
		Error:   &st.subtitle,
		Message: st.title,
	})
}

// HandleDashboard runs one load sequence. The place is taken from "q"
// (free-text search), from "lat"/"lon" (geolocation grant), or from the
// current selection when neither is given. "geo=denied" reports a refused
// geolocation prompt so the status copy stays server-side.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		errMsg := "Method not allowed"
		w.Header().Set("Allow", http.MethodGet)
		h.writeJSONResponse(w, http.StatusMethodNotAllowed, model.Response{
			Error:   &errMsg,
			Message: "Error",
		})
		return
	}

	params := r.URL.Query()
	ctx := r.Context()

	var (
		dashboard *model.DashboardView
		err       error
	)
	switch {
	case params.Get("geo") == "denied":
		err = model.ErrGeolocationDenied
	case params.Has("lat") || params.Has("lon"):
		var lat, lon float64
		lat, err = strconv.ParseFloat(params.Get("lat"), 64)
		if err == nil {
			lon, err = strconv.ParseFloat(params.Get("lon"), 64)
		}
		if err != nil {
			err = model.ErrInvalidInput
			break
		}
		dashboard, err = h.Service.LoadCoordinates(ctx, lat, lon, strings.TrimSpace(params.Get("label")))
	case params.Has("q"):
		dashboard, err = h.Service.Load(ctx, params.Get("q"))
	default:
		dashboard, err = h.Service.Refresh(ctx)
	}

	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSONResponse(w, http.StatusOK, model.Response{
		Data:    dashboard,
		Message: "Success",
	})
}

// HandleUnitToggle flips the temperature unit and reloads the dashboard for
// the current place.
func (h *DashboardHandler) HandleUnitToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errMsg := "Method not allowed"
		w.Header().Set("Allow", http.MethodPost)
		h.writeJSONResponse(w, http.StatusMethodNotAllowed, model.Response{
			Error:   &errMsg,
			Message: "Error",
		})
		return
	}

	dashboard, err := h.Service.ToggleUnit(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSONResponse(w, http.StatusOK, model.Response{
		Data:    dashboard,
		Message: "Success",
	})
}
