package model

import "errors"

// Error taxonomy shared across layers. Handlers map these to HTTP status
// codes and user-facing status copy.
var (
	// ErrNetwork covers transport failures and non-success upstream responses.
	ErrNetwork = errors.New("upstream request failed")
	// ErrNoMatch means the geocoder answered with zero candidates. The
	// previously selected place must be left untouched.
	ErrNoMatch = errors.New("no places matched the query")
	// ErrInvalidInput is returned for empty or whitespace-only search input.
	ErrInvalidInput = errors.New("invalid search input")
	// ErrGeolocationDenied is reported when the browser refuses or times out
	// the geolocation request.
	ErrGeolocationDenied = errors.New("geolocation denied")
	// ErrRenderingUnavailable means the charting asset could not be reached.
	// The rest of the dashboard still renders.
	ErrRenderingUnavailable = errors.New("charting surface unavailable")
)
