package model

// Placeholder rendered for optional fields the provider did not report.
const MissingValue = "—"

// TodaySummary is the rendered current-conditions block. Temperatures are
// rounded to whole units at render time only; the snapshot keeps full
// precision.
type TodaySummary struct {
	Time                string  `json:"time"`
	Temperature         int     `json:"temperature"`
	ApparentTemperature int     `json:"apparent_temperature"`
	Humidity            string  `json:"humidity"`
	RainChance          string  `json:"rain_chance"`
	Precipitation       float64 `json:"precipitation"`
	WindSpeed           float64 `json:"wind_speed"`
	ConditionLabel      string  `json:"condition_label"`
	ConditionIcon       string  `json:"condition_icon"`
}

// DailyCard is one entry of the 7-day forecast grid.
type DailyCard struct {
	Date           string  `json:"date"`
	Weekday        string  `json:"weekday"`
	TempMin        int     `json:"temp_min"`
	TempMax        int     `json:"temp_max"`
	PrecipSum      float64 `json:"precip_sum"`
	RainChance     string  `json:"rain_chance"`
	ConditionLabel string  `json:"condition_label"`
	ConditionIcon  string  `json:"condition_icon"`
}

// ChartSeries is the windowed view of the hourly arrays used for charting:
// at most the first 24 entries, with human-formatted time labels.
type ChartSeries struct {
	Labels          []string   `json:"labels"`
	Temperature     []float64  `json:"temperature"`
	RainProbability []*float64 `json:"rain_probability"`
	WindSpeed       []float64  `json:"wind_speed"`
}

// ChartConfig describes one chart widget for the browser charting library.
type ChartConfig struct {
	Type         string     `json:"type"`
	Labels       []string   `json:"labels"`
	Label        string     `json:"label"`
	Data         []*float64 `json:"data"`
	AxisTitle    string     `json:"axis_title"`
	SuggestedMax *float64   `json:"suggested_max,omitempty"`
}

// ChartBundle is the full set of chart descriptors for one load. Bundles are
// replaced wholesale; widgets are never updated in place.
type ChartBundle struct {
	Temperature     *ChartConfig `json:"temperature"`
	RainProbability *ChartConfig `json:"rain_probability"`
	WindSpeed       *ChartConfig `json:"wind_speed"`
}

// DashboardView is the complete payload for one dashboard load.
type DashboardView struct {
	Place       *Place        `json:"place"`
	Unit        string        `json:"unit"`
	TempSuffix  string        `json:"temp_suffix"`
	Today       *TodaySummary `json:"today"`
	Daily       []DailyCard   `json:"daily"`
	Charts      *ChartBundle  `json:"charts,omitempty"`
	ChartsError string        `json:"charts_error,omitempty"`
	Cached      bool          `json:"cached"`
}
