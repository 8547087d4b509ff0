package model

// ForecastSnapshot is the normalized forecast for the current place. It is
// recomputed on every load and never persisted. All hourly arrays share one
// index space keyed by Hourly.Time; daily arrays likewise share Daily.Time.
type ForecastSnapshot struct {
	Current CurrentConditions `json:"current"`
	Hourly  HourlySeries      `json:"hourly"`
	Daily   DailySeries       `json:"daily"`
	Cached  bool              `json:"cached"`
}

// CurrentConditions carries the instantaneous readings. Humidity is optional
// in the upstream payload; nil means "not reported" and renders as a
// placeholder, never as zero.
type CurrentConditions struct {
	Time                string   `json:"time"`
	Temperature         float64  `json:"temperature"`
	ApparentTemperature float64  `json:"apparent_temperature"`
	Humidity            *float64 `json:"humidity,omitempty"`
	Precipitation       float64  `json:"precipitation"`
	WindSpeed           float64  `json:"wind_speed"`
	ConditionCode       int      `json:"condition_code"`
}

// HourlySeries holds parallel arrays, one entry per hour slot.
// PrecipitationProbability entries may be nil where the provider reports no
// value.
type HourlySeries struct {
	Time                     []string   `json:"time"`
	Temperature              []float64  `json:"temperature"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	Precipitation            []float64  `json:"precipitation"`
	WindSpeed                []float64  `json:"wind_speed"`
}

// DailySeries holds parallel arrays, one entry per day, nominally 7.
type DailySeries struct {
	Time                        []string   `json:"time"`
	TempMin                     []float64  `json:"temp_min"`
	TempMax                     []float64  `json:"temp_max"`
	PrecipitationSum            []float64  `json:"precipitation_sum"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
	ConditionCode               []int      `json:"condition_code"`
}
