package health

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vodeneev/betbrief/internal/pkg/health/handlers"
)

// NewMux registers the service endpoints.
func NewMux() *http.ServeMux {
	mux := http.NewServeMux()

	// Health endpoints
	mux.HandleFunc("/ping", handlers.HandlePing)
	mux.HandleFunc("/health", handlers.HandleHealth)

	// Prometheus and tracker metrics
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/stats", handlers.HandleStats)

	mux.HandleFunc("/enrich", handlers.HandleEnrich)
	mux.HandleFunc("/queries", handlers.HandleQueries)
	return mux
}

// Run serves NewMux on addr until ctx is cancelled. It blocks.
func Run(ctx context.Context, addr, service string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("HTTP server listening", "service", service, "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
