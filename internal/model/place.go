package model

// UnitPreference selects the temperature unit used for display and for
// upstream forecast requests. Wind and precipitation units are fixed and not
// affected by the toggle.
type UnitPreference string

const (
	UnitCelsius    UnitPreference = "celsius"
	UnitFahrenheit UnitPreference = "fahrenheit"
)

// Toggled returns the opposite preference.
func (u UnitPreference) Toggled() UnitPreference {
	if u == UnitFahrenheit {
		return UnitCelsius
	}
	return UnitFahrenheit
}

// TempSuffix returns the display suffix for temperatures.
func (u UnitPreference) TempSuffix() string {
	if u == UnitFahrenheit {
		return "°F"
	}
	return "°C"
}

// Fixed display suffixes. The unit toggle only affects temperatures.
const (
	WindSuffix   = "km/h"
	PrecipSuffix = "mm"
	RainSuffix   = "%"
)

// Place is the currently selected geographic point. It is overwritten
// wholesale on each successful resolution, never partially updated.
type Place struct {
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	TimezoneID string  `json:"timezone_id"`
}

// GeocodeCandidate is one ranked match from the geocoding provider. The
// first candidate is treated as best match for a direct search; all are
// shown for autocomplete.
type GeocodeCandidate struct {
	Name        string  `json:"name"`
	AdminRegion string  `json:"admin_region,omitempty"`
	Country     string  `json:"country,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	TimezoneID  string  `json:"timezone_id,omitempty"`
}

// DisplayLabel joins name, admin region and country for suggestion lists.
func (c GeocodeCandidate) DisplayLabel() string {
	label := c.Name
	if c.AdminRegion != "" {
		label += ", " + c.AdminRegion
	}
	if c.Country != "" {
		label += ", " + c.Country
	}
	return label
}
