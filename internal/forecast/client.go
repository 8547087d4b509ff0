package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"weatherboard/internal/config"
	"weatherboard/internal/model"
)

// TimezoneAuto asks the provider to infer the timezone from the coordinates.
const TimezoneAuto = "auto"

const (
	currentFields = "temperature_2m,apparent_temperature,relative_humidity_2m,precipitation,wind_speed_10m,weather_code"
	hourlyFields  = "temperature_2m,precipitation_probability,precipitation,wind_speed_10m"
	dailyFields   = "weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_probability_max"
	forecastDays  = 7
)

// Client retrieves current, hourly and 7-day forecast data for a coordinate
// pair. It never mutates display state; callers own that.
type Client interface {
	Fetch(ctx context.Context, lat, lon float64, timezoneID string, unit model.UnitPreference) (*model.ForecastSnapshot, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a forecast client against the configured Open-Meteo
// forecast endpoint. An optional custom http.Client may be injected.
func NewClient(httpClient ...*http.Client) Client {
	hc := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		hc = httpClient[0]
	}
	return &client{
		httpClient: hc,
		baseURL:    config.GetForecastURL(),
	}
}

func (c *client) Fetch(ctx context.Context, lat, lon float64, timezoneID string, unit model.UnitPreference) (*model.ForecastSnapshot, error) {
	if timezoneID == "" {
		timezoneID = TimezoneAuto
	}
	if unit == "" {
		unit = model.UnitCelsius
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("timezone", timezoneID)
	params.Set("current", currentFields)
	params.Set("hourly", hourlyFields)
	params.Set("daily", dailyFields)
	params.Set("temperature_unit", string(unit))
	// Wind speed stays km/h regardless of the temperature toggle.
	params.Set("wind_speed_unit", "kmh")
	params.Set("forecast_days", strconv.Itoa(forecastDays))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("forecast: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w: %v", model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast: %w: status %d", model.ErrNetwork, resp.StatusCode)
	}

	var data model.OpenMeteoForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("forecast: decode response: %w", err)
	}

	return snapshotFrom(&data), nil
}

func snapshotFrom(data *model.OpenMeteoForecastResponse) *model.ForecastSnapshot {
	return &model.ForecastSnapshot{
		Current: model.CurrentConditions{
			Time:                data.Current.Time,
			Temperature:         data.Current.Temperature,
			ApparentTemperature: data.Current.ApparentTemperature,
			Humidity:            data.Current.RelativeHumidity,
			Precipitation:       data.Current.Precipitation,
			WindSpeed:           data.Current.WindSpeed,
			ConditionCode:       data.Current.WeatherCode,
		},
		Hourly: model.HourlySeries{
			Time:                     data.Hourly.Time,
			Temperature:              data.Hourly.Temperature,
			PrecipitationProbability: data.Hourly.PrecipitationProbability,
			Precipitation:            data.Hourly.Precipitation,
			WindSpeed:                data.Hourly.WindSpeed,
		},
		Daily: model.DailySeries{
			Time:                        data.Daily.Time,
			TempMin:                     data.Daily.TemperatureMin,
			TempMax:                     data.Daily.TemperatureMax,
			PrecipitationSum:            data.Daily.PrecipitationSum,
			PrecipitationProbabilityMax: data.Daily.PrecipitationProbabilityMax,
			ConditionCode:               data.Daily.WeatherCode,
		},
	}
}
