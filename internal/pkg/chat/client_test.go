package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Vodeneev/betbrief/internal/pkg/config"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient(&config.ChatConfig{BaseURL: srv.URL + "/", APIKey: "sk-test", Model: "test-model", Timeout: 5 * time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.retryDelay = time.Millisecond
	return c
}

func TestMessages(t *testing.T) {
	grounded := Messages("MATCH: Arsenal vs Chelsea", "who wins?")
	if len(grounded) != 3 || grounded[2].Role != "user" || grounded[2].Content != "who wins?" {
		t.Fatalf("unexpected messages %+v", grounded)
	}
	if !strings.Contains(grounded[1].Content, "DATA:\nMATCH: Arsenal vs Chelsea") {
		t.Errorf("brief not injected: %q", grounded[1].Content)
	}

	bare := Messages("", "hello")
	if !strings.Contains(bare[1].Content, "No live football data") {
		t.Errorf("missing no-data instruction: %q", bare[1].Content)
	}
}

func TestAnswer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("auth = %q", got)
		}
		var req completionRequest
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		if req.Model != "test-model" || len(req.Messages) != 3 {
			t.Errorf("unexpected request %+v", req)
		}
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "  Arsenal are favourites.  "}}]}`))
	})

	got, err := c.Answer(context.Background(), "MATCH: Arsenal vs Chelsea", "who wins?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got != "Arsenal are favourites." {
		t.Errorf("answer = %q", got)
	}
}

func TestComplete_Retries(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	})
	got, err := c.Complete(context.Background(), Messages("", "hi"))
	if err != nil || got != "ok" {
		t.Fatalf("Complete = %q, %v", got, err)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestComplete_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "bad key"}}`))
	})
	if _, err := c.Complete(context.Background(), Messages("", "hi")); err == nil || !strings.Contains(err.Error(), "401") {
		t.Errorf("err = %v, want status 401", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	})
	if _, err := c.Complete(context.Background(), Messages("", "hi")); !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("err = %v, want ErrEmptyCompletion", err)
	}
}

func TestConfigured(t *testing.T) {
	if NewClient(&config.ChatConfig{}, nil).Configured() {
		t.Error("client without key reports configured")
	}
}
