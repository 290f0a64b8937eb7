package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vodeneev/betbrief/internal/enricher/service"
	"github.com/Vodeneev/betbrief/internal/pkg/config"
	"github.com/Vodeneev/betbrief/internal/pkg/health"
	"github.com/Vodeneev/betbrief/internal/pkg/health/handlers"
	"github.com/Vodeneev/betbrief/internal/pkg/logging"
	"github.com/Vodeneev/betbrief/internal/pkg/models"
	"github.com/Vodeneev/betbrief/internal/pkg/performance"
)

const (
	defaultConfigPath = "configs/production.yaml"

	journalRetention = 30 * 24 * time.Hour
	statsInterval    = 10 * time.Minute
)

func main() {
	fmt.Println("Starting football enrichment service...")

	var configPath string
	var addr string

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&addr, "addr", "", "HTTP listen address, overrides server.addr (e.g. :8080)")
	flag.Parse()

	fmt.Printf("Loading config from: %s\n", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger, logCloser := logging.SetupLogger(&cfg.Logging, "enricher")
	defer logCloser.Close()

	svc, err := service.New(cfg, logger)
	if err != nil {
		log.Fatalf("enricher: %v", err)
	}
	defer svc.Close()

	handlers.SetReadyFunc(svc.Ready)
	handlers.SetEnrichFunc(func(ctx context.Context, message string) handlers.EnrichResult {
		res := svc.Enrich(ctx, message)
		return handlers.EnrichResult{Found: res.Found, Intent: string(res.Intent.Kind), Context: res.Text}
	})
	if j := svc.Journal(); j != nil {
		handlers.SetRecentFunc(func(ctx context.Context, limit int) ([]models.QueryRecord, error) {
			return j.Recent(ctx, limit)
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping enricher...")
		cancel()
	}()

	go housekeeping(ctx, svc)

	if err := health.Run(ctx, cfg.Server.Addr, "enricher", cfg.Server.ShutdownTimeout); err != nil {
		slog.Error("HTTP server error", "error", err)
		cancel()
	}

	performance.GetTracker().PrintSummary()
	slog.Info("Enrichment service stopped")
}

// housekeeping logs periodic stats and prunes the journal once a day.
func housekeeping(ctx context.Context, svc *service.Service) {
	stats := time.NewTicker(statsInterval)
	defer stats.Stop()
	prune := time.NewTicker(24 * time.Hour)
	defer prune.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stats.C:
			performance.GetTracker().PrintSummary()
		case <-prune.C:
			j := svc.Journal()
			if j == nil {
				continue
			}
			pruneCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			n, err := j.Prune(pruneCtx, journalRetention)
			cancel()
			if err != nil {
				slog.Warn("Failed to prune query journal", "error", err)
				continue
			}
			slog.Info("Query journal pruned", "deleted", n)
		}
	}
}
