package weathercode

// Condition is the decoded display form of a WMO weather code.
type Condition struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// unknown is returned for any code missing from the table.
var unknown = Condition{Label: "Unknown", Icon: "❓"}

// catalog maps WMO weather interpretation codes to display conditions.
var catalog = map[int]Condition{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫️"},
	48: {"Depositing rime fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	56: {"Light freezing drizzle", "🌧️"},
	57: {"Dense freezing drizzle", "🌧️"},
	61: {"Slight rain", "🌧️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	66: {"Light freezing rain", "🌧️"},
	67: {"Heavy freezing rain", "🌧️"},
	71: {"Slight snowfall", "🌨️"},
	73: {"Moderate snowfall", "🌨️"},
	75: {"Heavy snowfall", "❄️"},
	77: {"Snow grains", "❄️"},
	80: {"Slight rain showers", "🌦️"},
	81: {"Moderate rain showers", "🌧️"},
	82: {"Violent rain showers", "⛈️"},
	85: {"Slight snow showers", "🌨️"},
	86: {"Heavy snow showers", "❄️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm with slight hail", "⛈️"},
	99: {"Thunderstorm with heavy hail", "⛈️"},
}

// Decode is total: codes missing from the table decode to the Unknown
// condition rather than failing.
func Decode(code int) Condition {
	if c, ok := catalog[code]; ok {
		return c
	}
	return unknown
}
