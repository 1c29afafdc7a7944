package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ramonehamilton/combat-calc/internal/mtga/deck"
)

type stubSource struct {
	deck *deck.Deck
}

func (s *stubSource) FetchDeck(_ context.Context, _ string) (*deck.Deck, error) {
	return s.deck, nil
}

func newTestServer() *Server {
	cfg := DefaultConfig()
	cfg.DefaultDeckID = "1"
	return NewServer(cfg, &stubSource{deck: &deck.Deck{ID: 1, Name: "Test", Cards: []deck.CardRecord{}}}, nil)
}

func TestNewServer(t *testing.T) {
	cfg := DefaultConfig()

	server := NewServer(cfg, &stubSource{}, nil)

	if server == nil {
		t.Fatal("NewServer returned nil")
	}

	if server.port != cfg.Port {
		t.Errorf("Expected port %d, got %d", cfg.Port, server.port)
	}

	if server.logger == nil {
		t.Error("Expected logger to be initialized")
	}
}

func TestNewServer_NilConfig(t *testing.T) {
	server := NewServer(nil, &stubSource{}, nil)

	if server == nil {
		t.Fatal("NewServer returned nil with nil config")
	}

	// Should use default port
	if server.port != 8080 {
		t.Errorf("Expected default port 8080, got %d", server.port)
	}

	if server.requestTimeout != 60*time.Second {
		t.Errorf("Expected default timeout 60s, got %v", server.requestTimeout)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Port)
	}

	if cfg.DefaultDeckID != "" {
		t.Errorf("Expected empty DefaultDeckID, got %s", cfg.DefaultDeckID)
	}

	if len(cfg.AllowedOrigins) == 0 {
		t.Error("Expected default CORS origins")
	}
}

func TestServer_Port(t *testing.T) {
	cfg := &Config{Port: 9999}

	server := NewServer(cfg, &stubSource{}, nil)

	if server.Port() != 9999 {
		t.Errorf("Expected port 9999, got %d", server.Port())
	}
}

func TestServer_ShutdownWithoutStart(t *testing.T) {
	server := NewServer(nil, &stubSource{}, nil)

	if err := server.Shutdown(context.Background()); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

func TestServer_HealthCheck(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", resp["status"])
	}
}

func TestServer_Routes(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/deck", "", http.StatusOK},
		{http.MethodGet, "/api/v1/decks/1", "", http.StatusOK},
		{http.MethodGet, "/api/v1/decks/1/creatures", "", http.StatusOK},
		{http.MethodGet, "/api/v1/decks/1/equipment", "", http.StatusOK},
		{http.MethodPost, "/api/v1/equipment/parse", `{"text":"gets +1/+1"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/bruenor/calculate", `{"creature":"x","equipment":[]}`, http.StatusOK},
		{http.MethodPost, "/api/v1/stormsplitter/calculate", `{"spells":2}`, http.StatusOK},
		{http.MethodPost, "/api/v1/stormsplitter/triggers", `{"spells":2,"per_spell":1}`, http.StatusOK},
		{http.MethodGet, "/api/v1/system/version", "", http.StatusOK},
		{http.MethodGet, "/api/v1/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d (%s)", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestJSONContentTypeMiddleware(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name        string
		contentType string
		want        int
	}{
		{"missing", "", http.StatusUnsupportedMediaType},
		{"text", "text/plain", http.StatusUnsupportedMediaType},
		{"json", "application/json", http.StatusOK},
		{"json with charset", "application/json; charset=utf-8", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/equipment/parse", strings.NewReader(`{"text":""}`))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestServer_CORSPreflight(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/stormsplitter/calculate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected allowed origin http://localhost:3000, got %q", got)
	}
}
