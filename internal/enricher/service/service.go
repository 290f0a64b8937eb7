// Package service wires the enricher to its provider, cache and journal from
// config. The HTTP server, the Telegram bot and the CLI all start from here.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Vodeneev/betbrief/internal/enricher/enricher"
	"github.com/Vodeneev/betbrief/internal/pkg/apifootball"
	"github.com/Vodeneev/betbrief/internal/pkg/config"
	"github.com/Vodeneev/betbrief/internal/pkg/interfaces"
	"github.com/Vodeneev/betbrief/internal/pkg/storage"
	"github.com/Vodeneev/betbrief/internal/pkg/validation"
)

type Service struct {
	enricher       *enricher.Enricher
	client         *apifootball.Client
	cache          *storage.RedisCache
	journal        *storage.PostgresJournal
	sanitizer      *validation.Sanitizer
	requestTimeout time.Duration
	logger         *slog.Logger
}

// New builds the service. Redis and Postgres are optional: when they are
// configured but unreachable the service starts without them.
func New(cfg *config.Config, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	s := &Service{
		sanitizer:      validation.NewSanitizer(),
		requestTimeout: cfg.Enricher.RequestTimeout,
		logger:         logger,
	}
	s.client = apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.Football.BaseURL,
		APIKey:     cfg.Football.APIKey,
		Timezone:   cfg.Football.Timezone,
		Timeout:    cfg.Football.Timeout,
		MaxRetries: cfg.Football.MaxRetries,
		Logger:     logger,
	})
	if !s.client.Configured() {
		logger.Warn("football.api_key is not set; every lookup will fail")
	}

	var source interfaces.SportsSource = s.client
	if cfg.Redis.Enabled {
		rc, err := storage.NewRedisCache(&cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, running without response cache", "addr", cfg.Redis.Addr, "error", err)
		} else {
			s.cache = rc
			source = storage.NewCachedSource(s.client, rc, loc, logger)
			logger.Info("Response cache enabled", "addr", cfg.Redis.Addr)
		}
	}

	opts := enricher.Options{
		Location:       loc,
		Logger:         logger,
		JournalTimeout: cfg.Enricher.JournalTimeout,
	}
	if cfg.Postgres.DSN != "" {
		j, err := storage.NewPostgresJournal(&cfg.Postgres)
		if err != nil {
			logger.Warn("Query journal unavailable", "error", err)
		} else {
			s.journal = j
			opts.Journal = j
		}
	}

	s.enricher = enricher.New(source, opts)
	return s, nil
}

// Enrich sanitizes message and runs the pipeline under the request timeout.
func (s *Service) Enrich(ctx context.Context, message string) enricher.Result {
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}
	return s.enricher.Enrich(ctx, s.sanitizer.SanitizeMessage(message))
}

// Enricher exposes the underlying pipeline.
func (s *Service) Enricher() *enricher.Enricher { return s.enricher }

// Journal returns the query journal, nil when disabled.
func (s *Service) Journal() *storage.PostgresJournal { return s.journal }

// Ready fails when the provider cannot be queried.
func (s *Service) Ready(context.Context) error {
	if !s.client.Configured() {
		return errors.New("football.api_key is not set")
	}
	return nil
}

// Close flushes pending journal writes and closes connections.
func (s *Service) Close() {
	s.enricher.Close()
	if s.journal != nil {
		if err := s.journal.Close(); err != nil {
			s.logger.Warn("Error closing query journal", "error", err)
		}
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.logger.Warn("Error closing Redis", "error", err)
		}
	}
}
