package enricher

import (
	"context"
	"time"

	"github.com/Vodeneev/betbrief/internal/pkg/interfaces"
	"github.com/Vodeneev/betbrief/internal/pkg/models"
	"github.com/Vodeneev/betbrief/internal/pkg/performance"
)

// instrumentedSource records timing and errors of every source call.
type instrumentedSource struct {
	next    interfaces.SportsSource
	tracker *performance.Tracker
}

func instrument(src interfaces.SportsSource, tracker *performance.Tracker) interfaces.SportsSource {
	return &instrumentedSource{next: src, tracker: tracker}
}

func (s *instrumentedSource) observe(op string, start time.Time, err error) {
	s.tracker.RecordSourceCall(op, time.Since(start), err)
}

func (s *instrumentedSource) FixturesByDate(ctx context.Context, date string) ([]models.Fixture, error) {
	start := time.Now()
	out, err := s.next.FixturesByDate(ctx, date)
	s.observe("fixtures_by_date", start, err)
	return out, err
}

func (s *instrumentedSource) FixturesByTeam(ctx context.Context, teamID, season, limit int) ([]models.Fixture, error) {
	start := time.Now()
	out, err := s.next.FixturesByTeam(ctx, teamID, season, limit)
	s.observe("fixtures_by_team", start, err)
	return out, err
}

func (s *instrumentedSource) SearchTeam(ctx context.Context, name string) ([]models.TeamSearchResult, error) {
	start := time.Now()
	out, err := s.next.SearchTeam(ctx, name)
	s.observe("search_team", start, err)
	return out, err
}

func (s *instrumentedSource) Prediction(ctx context.Context, fixtureID int) (*models.Prediction, error) {
	start := time.Now()
	out, err := s.next.Prediction(ctx, fixtureID)
	s.observe("prediction", start, err)
	return out, err
}

func (s *instrumentedSource) Odds(ctx context.Context, fixtureID int) ([]models.Bookmaker, error) {
	start := time.Now()
	out, err := s.next.Odds(ctx, fixtureID)
	s.observe("odds", start, err)
	return out, err
}

func (s *instrumentedSource) FixtureStatistics(ctx context.Context, fixtureID int) ([]models.TeamStatistics, error) {
	start := time.Now()
	out, err := s.next.FixtureStatistics(ctx, fixtureID)
	s.observe("statistics", start, err)
	return out, err
}

func (s *instrumentedSource) Injuries(ctx context.Context, fixtureID int) ([]models.Injury, error) {
	start := time.Now()
	out, err := s.next.Injuries(ctx, fixtureID)
	s.observe("injuries", start, err)
	return out, err
}

func (s *instrumentedSource) FixtureLineups(ctx context.Context, fixtureID int) ([]models.Lineup, error) {
	start := time.Now()
	out, err := s.next.FixtureLineups(ctx, fixtureID)
	s.observe("lineups", start, err)
	return out, err
}

func (s *instrumentedSource) LiveFixtures(ctx context.Context) ([]models.Fixture, error) {
	start := time.Now()
	out, err := s.next.LiveFixtures(ctx)
	s.observe("live", start, err)
	return out, err
}
