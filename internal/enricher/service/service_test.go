package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vodeneev/betbrief/internal/pkg/config"
	"github.com/Vodeneev/betbrief/internal/pkg/intent"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestService_LiveThroughProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fixtures" || r.URL.Query().Get("live") != "all" {
			t.Errorf("unexpected request %s", r.URL)
		}
		w.Write([]byte(`{"errors": [], "results": 0, "response": []}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Football.BaseURL = srv.URL
	cfg.Football.APIKey = "k"
	cfg.Redis.Enabled = false
	cfg.Postgres.DSN = ""

	s, err := New(cfg, quiet())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if err := s.Ready(context.Background()); err != nil {
		t.Errorf("Ready: %v", err)
	}
	res := s.Enrich(context.Background(), "  any live\tgames? ")
	if !res.Found || res.Text != "No live matches right now." || res.Intent.Kind != intent.KindLive {
		t.Errorf("Enrich = %+v", res)
	}
}

func TestService_NotConfigured(t *testing.T) {
	cfg := config.Default()
	cfg.Football.APIKey = ""
	cfg.Redis.Enabled = false
	cfg.Postgres.DSN = ""

	s, err := New(cfg, quiet())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if err := s.Ready(context.Background()); err == nil || !strings.Contains(err.Error(), "api_key") {
		t.Errorf("Ready = %v, want api_key error", err)
	}
	res := s.Enrich(context.Background(), "any live games?")
	if res.Found {
		t.Errorf("enrich without provider key found something: %+v", res)
	}
}

func TestService_BadTimezone(t *testing.T) {
	cfg := config.Default()
	cfg.Football.Timezone = "Mars/Olympus"
	if _, err := New(cfg, quiet()); err == nil {
		t.Error("expected error for invalid timezone")
	}
}
