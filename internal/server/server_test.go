package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ultro163/city-guide/internal/config"
)

func TestHealthRoute(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0"}, nil, nil)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 status")
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRoutesRegistered(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0"}, nil, nil)

	// handler-level validation answers before any store access
	for _, target := range []string{
		"/attractions/nearby",
		"/attractions/city",
		"/reviews/attraction/1?sortDirection=up",
		"/categories/abc",
		"/cities/abc",
		"/users/abc",
	} {
		resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, target, nil))
		if err != nil {
			t.Fatalf("%s: %v", target, err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected bad request, got %d", target, resp.StatusCode)
		}
	}

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/stream/ws/1", nil))
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if resp.StatusCode != http.StatusUpgradeRequired {
		t.Fatalf("expected upgrade required, got %d", resp.StatusCode)
	}
}
