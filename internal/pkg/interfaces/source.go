package interfaces

import (
	"context"

	"github.com/Vodeneev/betbrief/internal/pkg/models"
)

// SportsSource is the football data provider consumed by the enricher.
// Every call may fail independently of the others.
type SportsSource interface {
	// FixturesByDate returns all fixtures on a calendar date (models.DateLayout)
	FixturesByDate(ctx context.Context, date string) ([]models.Fixture, error)

	// FixturesByTeam returns the next limit fixtures of a team in a season
	FixturesByTeam(ctx context.Context, teamID, season, limit int) ([]models.Fixture, error)

	// SearchTeam looks a team up by name, best match first
	SearchTeam(ctx context.Context, name string) ([]models.TeamSearchResult, error)

	// Prediction returns the provider forecast, nil when there is none
	Prediction(ctx context.Context, fixtureID int) (*models.Prediction, error)

	// Odds returns pre-match odds per bookmaker
	Odds(ctx context.Context, fixtureID int) ([]models.Bookmaker, error)

	// FixtureStatistics returns per-team statistics, home first
	FixtureStatistics(ctx context.Context, fixtureID int) ([]models.TeamStatistics, error)

	// Injuries returns missing and doubtful players
	Injuries(ctx context.Context, fixtureID int) ([]models.Injury, error)

	// FixtureLineups returns starting line-ups once announced
	FixtureLineups(ctx context.Context, fixtureID int) ([]models.Lineup, error)

	// LiveFixtures returns every fixture currently in play
	LiveFixtures(ctx context.Context) ([]models.Fixture, error)
}

// QueryJournal stores a record of every enrichment run.
type QueryJournal interface {
	Record(ctx context.Context, rec *models.QueryRecord) error
	Recent(ctx context.Context, limit int) ([]models.QueryRecord, error)
	Close() error
}
