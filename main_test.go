package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"weatherboard/internal/config"
)

func TestServerStartup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("could not send GET request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestServerPortConfigured(t *testing.T) {
	port := config.GetServerPort()
	if port == "" {
		t.Error("expected a configured server port")
	}
}

func TestServerTimeoutsConfigured(t *testing.T) {
	for _, key := range []string{"read_timeout", "read_header_timeout", "write_timeout", "idle_timeout"} {
		if config.GetServerTimeout(key) <= 0 {
			t.Errorf("timeout %s must be positive", key)
		}
	}
}
