package handler

import (
	"encoding/json"
	"net/http"

	"weatherboard/internal/config"
	"weatherboard/internal/middleware"
	"weatherboard/internal/model"
	"weatherboard/internal/suggest"
)

// SuggestHandler serves debounced autocomplete lookups. Each client IP gets
// its own debounce controller: rapid successive requests inside the window
// supersede each other, and only the settled query reaches the geocoder.
type SuggestHandler struct {
	Registry *suggest.Registry
}

func NewSuggestHandler(registry *suggest.Registry) *SuggestHandler {
	return &SuggestHandler{Registry: registry}
}

func (h *SuggestHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	controller := h.Registry.Get(middleware.ClientIP(r))
	ticket := controller.Input(r.URL.Query().Get("q"))

	select {
	case res := <-ticket:
		switch res.Outcome {
		case suggest.Shown:
			h.writeJSON(w, http.StatusOK, model.Response{
				Data:    res.Candidates,
				Message: "Success",
			})
		case suggest.Hidden:
			// Zero matches and swallowed failures look the same: no list.
			h.writeJSON(w, http.StatusOK, model.Response{
				Data:    []model.GeocodeCandidate{},
				Message: "Success",
			})
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	case <-r.Context().Done():
		// The ticket is buffered; a newer request for this client will
		// supersede it. Nothing to clean up here.
	}
}

func (h *SuggestHandler) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		config.GetLogger().Errorw("could not encode json", "error", err)
	}
}
