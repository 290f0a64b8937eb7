package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/Vodeneev/betbrief/internal/pkg/config"
	"github.com/Vodeneev/betbrief/internal/pkg/interfaces"
	"github.com/Vodeneev/betbrief/internal/pkg/models"
)

// Ensure PostgresJournal implements QueryJournal
var _ interfaces.QueryJournal = (*PostgresJournal)(nil)

// PostgresJournal stores enrichment runs in PostgreSQL
type PostgresJournal struct {
	db *sql.DB
}

// NewPostgresJournal opens the database and creates the table if needed.
func NewPostgresJournal(cfg *config.PostgresConfig) (*PostgresJournal, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	journal := &PostgresJournal{db: db}
	if err := journal.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL query journal initialized")
	return journal, nil
}

func (s *PostgresJournal) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS enrichment_queries (
		id UUID PRIMARY KEY,
		message TEXT NOT NULL,
		intent VARCHAR(32) NOT NULL,
		league_id INTEGER NOT NULL DEFAULT 0,
		day VARCHAR(16) NOT NULL DEFAULT '',
		home VARCHAR(200) NOT NULL DEFAULT '',
		away VARCHAR(200) NOT NULL DEFAULT '',
		found BOOLEAN NOT NULL,
		duration_ms BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_enrichment_queries_created_at ON enrichment_queries(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_enrichment_queries_intent ON enrichment_queries(intent);
	`

	_, err := s.db.ExecContext(ctx, query)
	return err
}

// Record inserts one run. Re-recording the same id is a no-op.
func (s *PostgresJournal) Record(ctx context.Context, rec *models.QueryRecord) error {
	query := `
	INSERT INTO enrichment_queries (
		id, message, intent, league_id, day, home, away, found, duration_ms, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.ID,
		rec.Message,
		rec.Intent,
		rec.LeagueID,
		rec.Day,
		rec.Home,
		rec.Away,
		rec.Found,
		rec.Duration.Milliseconds(),
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store query record: %w", err)
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (s *PostgresJournal) Recent(ctx context.Context, limit int) ([]models.QueryRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
	SELECT id, message, intent, league_id, day, home, away, found, duration_ms, created_at
	FROM enrichment_queries
	ORDER BY created_at DESC
	LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent records: %w", err)
	}
	defer rows.Close()

	var out []models.QueryRecord
	for rows.Next() {
		var rec models.QueryRecord
		var durationMs int64
		if err := rows.Scan(
			&rec.ID,
			&rec.Message,
			&rec.Intent,
			&rec.LeagueID,
			&rec.Day,
			&rec.Home,
			&rec.Away,
			&rec.Found,
			&durationMs,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan query record: %w", err)
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Prune deletes runs older than age and returns how many were removed.
func (s *PostgresJournal) Prune(ctx context.Context, age time.Duration) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM enrichment_queries WHERE created_at < $1`,
		time.Now().Add(-age))
	if err != nil {
		return 0, fmt.Errorf("failed to prune query records: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the database connection
func (s *PostgresJournal) Close() error {
	return s.db.Close()
}
