package geocode

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

func TestSearchEmptyQueryNeverHitsTransport(t *testing.T) {
	calls := 0
	c := &client{
		httpClient: newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
			calls++
			return jsonResponse(200, `{}`), nil
		}),
		baseURL: "http://geocode.test/v1/search",
	}

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := c.Search(context.Background(), query)
		if !errors.Is(err, model.ErrInvalidInput) {
			t.Errorf("Search(%q) error = %v, want ErrInvalidInput", query, err)
		}
	}
	if calls != 0 {
		t.Errorf("expected zero transport calls for empty input, got %d", calls)
	}
}

func TestSearchRequestParameters(t *testing.T) {
	var gotURL string
	c := &client{
		httpClient: newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
			gotURL = req.URL.String()
			return jsonResponse(200, `{"results":[]}`), nil
		}),
		baseURL: "http://geocode.test/v1/search",
	}

	if _, err := c.Search(context.Background(), "  Kathmandu  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req, _ := http.NewRequest(http.MethodGet, gotURL, nil)
	q := req.URL.Query()
	if q.Get("name") != "Kathmandu" {
		t.Errorf("name = %q, want trimmed Kathmandu", q.Get("name"))
	}
	if q.Get("count") != "7" {
		t.Errorf("count = %q, want 7", q.Get("count"))
	}
	if q.Get("format") != "json" {
		t.Errorf("format = %q, want json", q.Get("format"))
	}
}

func TestSearchRankedCandidates(t *testing.T) {
	body := `{"results":[
		{"name":"Kathmandu","latitude":27.70169,"longitude":85.3206,"country":"Nepal","admin1":"Bagmati Province","timezone":"Asia/Kathmandu"},
		{"name":"Kathmandu District","latitude":27.7,"longitude":85.35,"country":"Nepal","admin1":"Bagmati Province","timezone":"Asia/Kathmandu"}
	]}`
	c := &client{
		httpClient: newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, body), nil
		}),
		baseURL: "http://geocode.test/v1/search",
	}

	candidates, err := c.Search(context.Background(), "Kathmandu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	best := candidates[0]
	if best.Name != "Kathmandu" || best.TimezoneID != "Asia/Kathmandu" {
		t.Errorf("unexpected best match: %+v", best)
	}
	if best.DisplayLabel() != "Kathmandu, Bagmati Province, Nepal" {
		t.Errorf("unexpected display label: %q", best.DisplayLabel())
	}
}

func TestSearchNoMatchesIsNotAnError(t *testing.T) {
	c := &client{
		httpClient: newMockHTTPClient(func(req *http.Request) (*http.Response, error) {
			// Open-Meteo omits "results" entirely when nothing matches.
			return jsonResponse(200, `{"generationtime_ms":0.5}`), nil
		}),
		baseURL: "http://geocode.test/v1/search",
	}

	candidates, err := c.Search(context.Background(), "zzqxnotaplace")
	if err != nil {
		t.Fatalf("zero matches must not be an error, got %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected empty candidate list, got %d", len(candidates))
	}
}

func TestSearchTransportFailures(t *testing.T) {
	tests := []struct {
		name string
		fn   roundTripperFunc
	}{
		{
			name: "connection error",
			fn: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
		},
		{
			name: "server error status",
			fn: func(req *http.Request) (*http.Response, error) {
				return jsonResponse(500, `{"error":true}`), nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &client{
				httpClient: newMockHTTPClient(tt.fn),
				baseURL:    "http://geocode.test/v1/search",
			}
			_, err := c.Search(context.Background(), "Kathmandu")
			if !errors.Is(err, model.ErrNetwork) {
				t.Errorf("error = %v, want ErrNetwork", err)
			}
		})
	}
}
