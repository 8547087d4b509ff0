package integrationtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/alicebob/miniredis/v2"

	"weatherboard/internal/model"
)

var (
	miniRedisMock *miniredis.Miniredis
)

func createMockRedisServer() {
	miniRedisMock = miniredis.NewMiniRedis()
	err := miniRedisMock.StartAddr(":16379")
	if err != nil {
		panic(err)
	}
}

// unitRecorder keeps the temperature_unit of every forecast request, in
// arrival order, so tests can check which unit each load asked for.
type unitRecorder struct {
	mu    sync.Mutex
	units []string
}

func (r *unitRecorder) add(unit string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units = append(r.units, unit)
}

func (r *unitRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.units))
	copy(out, r.units)
	return out
}

// mockGeocodingAPI serves the geocoding search payload for a few fixed
// queries. Anything else gets an empty body, which decodes to zero results.
func mockGeocodingAPI() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("name") {
		case "Kathmandu":
			_, _ = w.Write([]byte(`{"results":[{"name":"Kathmandu","latitude":27.70169,"longitude":85.3206,"country":"Nepal","admin1":"Bagmati Province","timezone":"Asia/Kathmandu"}]}`))
		case "Pun":
			_, _ = w.Write([]byte(`{"results":[{"name":"Pune","latitude":18.51957,"longitude":73.85535,"country":"India","admin1":"Maharashtra","timezone":"Asia/Kolkata"},{"name":"Punta Arenas","latitude":-53.15483,"longitude":-70.91129,"country":"Chile","admin1":"Magallanes","timezone":"America/Punta_Arenas"}]}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
}

// mockForecastAPI serves a full current/hourly/daily payload. Temperatures
// depend on the requested temperature_unit, so a unit toggle is visible in
// the response values as well as in the recorder.
func mockForecastAPI(units *unitRecorder) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		unit := r.URL.Query().Get("temperature_unit")
		units.add(unit)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(forecastPayload(unit))
	}))
}

// mockChartAsset answers the HEAD capability probe for the charting asset.
func mockChartAsset() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func forecastPayload(unit string) *model.OpenMeteoForecastResponse {
	temp := 22.4
	if unit == "fahrenheit" {
		temp = 72.3
	}

	payload := &model.OpenMeteoForecastResponse{}
	payload.Timezone = "Asia/Kathmandu"

	humidity := 62.0
	payload.Current.Time = "2025-06-01T12:00"
	payload.Current.Temperature = temp
	payload.Current.ApparentTemperature = temp + 1.2
	payload.Current.RelativeHumidity = &humidity
	payload.Current.Precipitation = 0.1
	payload.Current.WindSpeed = 7.4
	payload.Current.WeatherCode = 0

	for i := 0; i < 24; i++ {
		prob := float64(i * 4 % 100)
		payload.Hourly.Time = append(payload.Hourly.Time, fmt.Sprintf("2025-06-01T%02d:00", i))
		payload.Hourly.Temperature = append(payload.Hourly.Temperature, temp+float64(i)/10)
		payload.Hourly.PrecipitationProbability = append(payload.Hourly.PrecipitationProbability, &prob)
		payload.Hourly.Precipitation = append(payload.Hourly.Precipitation, 0)
		payload.Hourly.WindSpeed = append(payload.Hourly.WindSpeed, 6.5)
	}

	for i := 0; i < 7; i++ {
		probMax := 80.0
		payload.Daily.Time = append(payload.Daily.Time, fmt.Sprintf("2025-06-%02d", i+1))
		payload.Daily.WeatherCode = append(payload.Daily.WeatherCode, 3)
		payload.Daily.TemperatureMax = append(payload.Daily.TemperatureMax, temp+2)
		payload.Daily.TemperatureMin = append(payload.Daily.TemperatureMin, temp-4)
		payload.Daily.PrecipitationSum = append(payload.Daily.PrecipitationSum, 0.25)
		payload.Daily.PrecipitationProbabilityMax = append(payload.Daily.PrecipitationProbabilityMax, &probMax)
	}

	return payload
}
