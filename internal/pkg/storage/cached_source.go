package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/singleflight"

	"github.com/Vodeneev/betbrief/internal/pkg/interfaces"
	"github.com/Vodeneev/betbrief/internal/pkg/models"
	"github.com/Vodeneev/betbrief/internal/pkg/performance"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache lifetimes per provider call.
const (
	ttlSearchTeam    = 24 * time.Hour
	ttlFixturesByDay = 10 * time.Minute
	ttlFixturesToday = 2 * time.Minute
	ttlTeamFixtures  = 10 * time.Minute
	ttlPrediction    = time.Hour
	ttlOdds          = 10 * time.Minute
	ttlMatchFacets   = 5 * time.Minute
	ttlLive          = 30 * time.Second

	// sharedLoadTimeout bounds an upstream call shared by several callers.
	sharedLoadTimeout = 30 * time.Second
)

var _ interfaces.SportsSource = (*CachedSource)(nil)

// CachedSource is a read-through cache in front of a SportsSource. Cache
// failures fall through to the wrapped source; identical concurrent misses
// share one upstream call.
type CachedSource struct {
	next   interfaces.SportsSource
	cache  Cache
	group  singleflight.Group
	now    func() time.Time
	loc    *time.Location
	logger *slog.Logger
}

// NewCachedSource wraps next. loc decides which date counts as today.
func NewCachedSource(next interfaces.SportsSource, cache Cache, loc *time.Location, logger *slog.Logger) *CachedSource {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedSource{next: next, cache: cache, now: time.Now, loc: loc, logger: logger}
}

// through reads key from the cache or loads, stores and returns it.
func through[T any](ctx context.Context, c *CachedSource, op, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var zero T

	data, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var v T
		uerr := json.Unmarshal(data, &v)
		if uerr == nil {
			performance.CacheLookups.WithLabelValues(op, "hit").Inc()
			return v, nil
		}
		c.logger.Debug("Dropping undecodable cache entry", "key", key, "error", uerr)
		performance.CacheLookups.WithLabelValues(op, "miss").Inc()
	case errors.Is(err, ErrCacheMiss):
		performance.CacheLookups.WithLabelValues(op, "miss").Inc()
	default:
		performance.CacheLookups.WithLabelValues(op, "error").Inc()
		c.logger.Debug("Cache read failed", "key", key, "error", err)
	}

	// The load is shared, so it must not die with the caller that started it.
	ch := c.group.DoChan(key, func() (interface{}, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
		defer cancel()
		v, err := load(lctx)
		if err != nil {
			return v, err
		}
		if data, merr := json.Marshal(v); merr == nil {
			if serr := c.cache.Set(lctx, key, data, ttl); serr != nil {
				c.logger.Debug("Cache write failed", "key", key, "error", serr)
			}
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

func (c *CachedSource) FixturesByDate(ctx context.Context, date string) ([]models.Fixture, error) {
	ttl := ttlFixturesByDay
	if date == c.now().In(c.loc).Format(models.DateLayout) {
		ttl = ttlFixturesToday
	}
	return through(ctx, c, "fixtures_by_date", "fixtures:date:"+date, ttl, func(ctx context.Context) ([]models.Fixture, error) {
		return c.next.FixturesByDate(ctx, date)
	})
}

func (c *CachedSource) FixturesByTeam(ctx context.Context, teamID, season, limit int) ([]models.Fixture, error) {
	key := fmt.Sprintf("fixtures:team:%d:%d:%d", teamID, season, limit)
	return through(ctx, c, "fixtures_by_team", key, ttlTeamFixtures, func(ctx context.Context) ([]models.Fixture, error) {
		return c.next.FixturesByTeam(ctx, teamID, season, limit)
	})
}

func (c *CachedSource) SearchTeam(ctx context.Context, name string) ([]models.TeamSearchResult, error) {
	return through(ctx, c, "search_team", "teams:search:"+name, ttlSearchTeam, func(ctx context.Context) ([]models.TeamSearchResult, error) {
		return c.next.SearchTeam(ctx, name)
	})
}

func (c *CachedSource) Prediction(ctx context.Context, fixtureID int) (*models.Prediction, error) {
	return through(ctx, c, "prediction", fmt.Sprintf("prediction:%d", fixtureID), ttlPrediction, func(ctx context.Context) (*models.Prediction, error) {
		return c.next.Prediction(ctx, fixtureID)
	})
}

func (c *CachedSource) Odds(ctx context.Context, fixtureID int) ([]models.Bookmaker, error) {
	return through(ctx, c, "odds", fmt.Sprintf("odds:%d", fixtureID), ttlOdds, func(ctx context.Context) ([]models.Bookmaker, error) {
		return c.next.Odds(ctx, fixtureID)
	})
}

func (c *CachedSource) FixtureStatistics(ctx context.Context, fixtureID int) ([]models.TeamStatistics, error) {
	return through(ctx, c, "statistics", fmt.Sprintf("statistics:%d", fixtureID), ttlMatchFacets, func(ctx context.Context) ([]models.TeamStatistics, error) {
		return c.next.FixtureStatistics(ctx, fixtureID)
	})
}

func (c *CachedSource) Injuries(ctx context.Context, fixtureID int) ([]models.Injury, error) {
	return through(ctx, c, "injuries", fmt.Sprintf("injuries:%d", fixtureID), ttlMatchFacets, func(ctx context.Context) ([]models.Injury, error) {
		return c.next.Injuries(ctx, fixtureID)
	})
}

func (c *CachedSource) FixtureLineups(ctx context.Context, fixtureID int) ([]models.Lineup, error) {
	return through(ctx, c, "lineups", fmt.Sprintf("lineups:%d", fixtureID), ttlMatchFacets, func(ctx context.Context) ([]models.Lineup, error) {
		return c.next.FixtureLineups(ctx, fixtureID)
	})
}

func (c *CachedSource) LiveFixtures(ctx context.Context) ([]models.Fixture, error) {
	return through(ctx, c, "live", "fixtures:live", ttlLive, func(ctx context.Context) ([]models.Fixture, error) {
		return c.next.LiveFixtures(ctx)
	})
}
