package handlers

import (
	"context"
	"net/http"
)

// ReadyFunc reports whether the service can answer enrich requests
type ReadyFunc func(ctx context.Context) error

var readyFunc ReadyFunc

// SetReadyFunc sets the readiness check used by /health
func SetReadyFunc(fn ReadyFunc) {
	readyFunc = fn
}

// HandlePing handles /ping endpoint
func HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong\n"))
}

// HandleHealth handles /health endpoint
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if readyFunc != nil {
		if err := readyFunc(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not ready: " + err.Error() + "\n"))
			return
		}
	}
	_, _ = w.Write([]byte("ok\n"))
}
