package model

// OpenMeteoGeocodeResponse mirrors the Open-Meteo geocoding search payload.
type OpenMeteoGeocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

// OpenMeteoForecastResponse mirrors the Open-Meteo forecast payload for the
// fields this dashboard requests.
type OpenMeteoForecastResponse struct {
	Timezone string `json:"timezone"`
	Current  struct {
		Time                string   `json:"time"`
		Temperature         float64  `json:"temperature_2m"`
		ApparentTemperature float64  `json:"apparent_temperature"`
		RelativeHumidity    *float64 `json:"relative_humidity_2m"`
		Precipitation       float64  `json:"precipitation"`
		WindSpeed           float64  `json:"wind_speed_10m"`
		WeatherCode         int      `json:"weather_code"`
	} `json:"current"`
	Hourly struct {
		Time                     []string   `json:"time"`
		Temperature              []float64  `json:"temperature_2m"`
		PrecipitationProbability []*float64 `json:"precipitation_probability"`
		Precipitation            []float64  `json:"precipitation"`
		WindSpeed                []float64  `json:"wind_speed_10m"`
	} `json:"hourly"`
	Daily struct {
		Time                        []string   `json:"time"`
		WeatherCode                 []int      `json:"weather_code"`
		TemperatureMax              []float64  `json:"temperature_2m_max"`
		TemperatureMin              []float64  `json:"temperature_2m_min"`
		PrecipitationSum            []float64  `json:"precipitation_sum"`
		PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
	} `json:"daily"`
}
