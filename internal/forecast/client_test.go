package forecast

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"weatherboard/internal/model"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newMockHTTPClient(fn roundTripperFunc) *http.Client {
	return &http.Client{Transport: fn}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

const sampleBody = `{
	"timezone": "Asia/Kathmandu",
	"current": {
		"time": "2025-06-01T12:00",
		"temperature_2m": 21.6,
		"apparent_temperature": 23.1,
		"relative_humidity_2m": 62,
		"precipitation": 0.2,
		"wind_speed_10m": 7.4,
		"weather_code": 2
	},
	"hourly": {
		"time": ["2025-06-01T12:00", "2025-06-01T13:00"],
		"temperature_2m": [21.6, 22.3],
		"precipitation_probability": [35, null],
		"precipitation": [0.2, 0.0],
		"wind_speed_10m": [7.4, 8.1]
	},
	"daily": {
		"time": ["2025-06-01", "2025-06-02"],
		"weather_code": [2, 61],
		"temperature_2m_max": [27.4, 24.9],
		"temperature_2m_min": [17.2, 16.8],
		"precipitation_sum": [0.25, 4.1],
		"precipitation_probability_max": [40, null]
	}
}`

func TestFetchRequestParameters(t *testing.T) {
	tests := []struct {
		name       string
		unit       model.UnitPreference
		timezoneID string
		wantUnit   string
		wantTz     string
	}{
		{"celsius with timezone", model.UnitCelsius, "Asia/Kathmandu", "celsius", "Asia/Kathmandu"},
		{"fahrenheit infers timezone", model.UnitFahrenheit, "", "fahrenheit", "auto"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotURL string
			c := &client{
				httpClient: newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
					gotURL = req.URL.String()
					return jsonResponse(200, sampleBody), nil
				}),
				baseURL: "http://forecast.test/v1/forecast",
			}
			_, err := c.Fetch(context.Background(), 27.70169, 85.3206, tt.timezoneID, tt.unit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			req, _ := http.NewRequest(http.MethodGet, gotURL, nil)
			q := req.URL.Query()
			if q.Get("temperature_unit") != tt.wantUnit {
				t.Errorf("temperature_unit = %q, want %q", q.Get("temperature_unit"), tt.wantUnit)
			}
			if q.Get("timezone") != tt.wantTz {
				t.Errorf("timezone = %q, want %q", q.Get("timezone"), tt.wantTz)
			}
			if q.Get("wind_speed_unit") != "kmh" {
				t.Errorf("wind_speed_unit = %q, want kmh", q.Get("wind_speed_unit"))
			}
			if q.Get("forecast_days") != "7" {
				t.Errorf("forecast_days = %q, want 7", q.Get("forecast_days"))
			}
		})
	}
}

func TestFetchMapsSnapshot(t *testing.T) {
	c := &client{
		httpClient: newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, sampleBody), nil
		}),
		baseURL: "http://forecast.test/v1/forecast",
	}

	snap, err := c.Fetch(context.Background(), 27.70169, 85.3206, "Asia/Kathmandu", model.UnitCelsius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Current.Temperature != 21.6 || snap.Current.ConditionCode != 2 {
		t.Errorf("unexpected current conditions: %+v", snap.Current)
	}
	if snap.Current.Humidity == nil || *snap.Current.Humidity != 62 {
		t.Errorf("expected humidity 62, got %v", snap.Current.Humidity)
	}
	if len(snap.Hourly.Time) != 2 || len(snap.Hourly.Temperature) != 2 {
		t.Errorf("hourly arrays not aligned: %+v", snap.Hourly)
	}
	if snap.Hourly.PrecipitationProbability[1] != nil {
		t.Error("expected null probability to map to nil")
	}
	if len(snap.Daily.Time) != 2 || snap.Daily.TempMax[0] != 27.4 {
		t.Errorf("unexpected daily series: %+v", snap.Daily)
	}
	if snap.Cached {
		t.Error("fresh fetch must not be marked cached")
	}
}

func TestFetchMissingHumidity(t *testing.T) {
	body := `{"current":{"time":"2025-06-01T12:00","temperature_2m":18.0,"weather_code":0},"hourly":{},"daily":{}}`
	c := &client{
		httpClient: newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, body), nil
		}),
		baseURL: "http://forecast.test/v1/forecast",
	}

	snap, err := c.Fetch(context.Background(), 0, 0, "", model.UnitCelsius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Current.Humidity != nil {
		t.Errorf("expected nil humidity when field is absent, got %v", *snap.Current.Humidity)
	}
}

func TestFetchTransportFailures(t *testing.T) {
	tests := []struct {
		name string
		fn   roundTripperFunc
	}{
		{
			name: "connection error",
			fn: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection reset")
			},
		},
		{
			name: "bad gateway",
			fn: func(req *http.Request) (*http.Response, error) {
				return jsonResponse(502, ``), nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &client{
				httpClient: newMockHTTPClient(tt.fn),
				baseURL:    "http://forecast.test/v1/forecast",
			}
			_, err := c.Fetch(context.Background(), 27.7, 85.3, "", model.UnitCelsius)
			if !errors.Is(err, model.ErrNetwork) {
				t.Errorf("error = %v, want ErrNetwork", err)
			}
		})
	}
}
