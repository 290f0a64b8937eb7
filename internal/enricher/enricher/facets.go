package enricher

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Vodeneev/betbrief/internal/pkg/models"
)

const (
	facetPrediction = "prediction"
	facetOdds       = "odds"
	facetStatistics = "statistics"
	facetInjuries   = "injuries"
	facetLineups    = "lineups"
)

// bundle fetches every facet of f concurrently and waits for all of them.
// A failed facet stays nil and the rest are kept. Goroutines never return an
// error so the group does not cancel its siblings.
func (e *Enricher) bundle(ctx context.Context, f models.Fixture) models.Bundle {
	b := models.Bundle{Fixture: f}
	var g errgroup.Group

	g.Go(func() error {
		p, err := e.source.Prediction(ctx, f.ID)
		if e.facetFailed(facetPrediction, f.ID, err) {
			return nil
		}
		b.Prediction = p
		return nil
	})
	g.Go(func() error {
		odds, err := e.source.Odds(ctx, f.ID)
		if e.facetFailed(facetOdds, f.ID, err) {
			return nil
		}
		b.Odds = nonNil(odds)
		return nil
	})
	g.Go(func() error {
		stats, err := e.source.FixtureStatistics(ctx, f.ID)
		if e.facetFailed(facetStatistics, f.ID, err) {
			return nil
		}
		b.Statistics = nonNil(stats)
		return nil
	})
	g.Go(func() error {
		injuries, err := e.source.Injuries(ctx, f.ID)
		if e.facetFailed(facetInjuries, f.ID, err) {
			return nil
		}
		b.Injuries = nonNil(injuries)
		return nil
	})
	g.Go(func() error {
		lineups, err := e.source.FixtureLineups(ctx, f.ID)
		if e.facetFailed(facetLineups, f.ID, err) {
			return nil
		}
		b.Lineups = nonNil(lineups)
		return nil
	})

	_ = g.Wait()
	return b
}

func (e *Enricher) facetFailed(facet string, fixtureID int, err error) bool {
	if err == nil {
		return false
	}
	e.tracker.RecordFacetFailure(facet)
	e.logger.Warn("Facet fetch failed", "facet", facet, "fixture_id", fixtureID, "error", err)
	return true
}

// predictions fetches predictions for up to limit not-started fixtures.
// Failures and empty predictions are left out of the map.
func (e *Enricher) predictions(ctx context.Context, fixtures []models.Fixture, limit int) map[int]*models.Prediction {
	var (
		mu  sync.Mutex
		out = make(map[int]*models.Prediction)
		g   errgroup.Group
	)
	n := 0
	for _, f := range fixtures {
		if n == limit {
			break
		}
		if !f.NotStarted() {
			continue
		}
		n++
		id := f.ID
		g.Go(func() error {
			p, err := e.source.Prediction(ctx, id)
			if e.facetFailed(facetPrediction, id, err) || p == nil {
				return nil
			}
			mu.Lock()
			out[id] = p
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// nonNil turns a nil success into an empty slice, keeping nil for failures.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
