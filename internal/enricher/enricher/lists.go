package enricher

import (
	"context"
	"fmt"
	"time"

	"github.com/Vodeneev/betbrief/internal/pkg/brief"
	"github.com/Vodeneev/betbrief/internal/pkg/intent"
	"github.com/Vodeneev/betbrief/internal/pkg/lexicon"
	"github.com/Vodeneev/betbrief/internal/pkg/models"
)

func (e *Enricher) leagueOnDay(ctx context.Context, in intent.Intent) (brief.Document, bool) {
	fixtures, err := e.source.FixturesByDate(ctx, in.Date)
	if err != nil {
		e.logger.Warn("Failed to get fixtures by date", "date", in.Date, "error", err)
		return brief.Document{}, false
	}
	matches := filterLeague(fixtures, in.LeagueID)
	if len(matches) == 0 {
		return brief.NoFixtures(in.LeagueKeyword, string(in.Day), in.Date), true
	}
	sortFixtures(matches)

	title := fmt.Sprintf("%s fixtures for %s (%s):", leagueTitle(in.LeagueID, matches), in.Day, in.Date)
	return brief.List(title, matches, brief.ListOptions{
		Predictions: e.predictions(ctx, matches, maxListPredictions),
		Location:    e.loc,
	}), true
}

func (e *Enricher) dayOnly(ctx context.Context, in intent.Intent) (brief.Document, bool) {
	fixtures, err := e.source.FixturesByDate(ctx, in.Date)
	if err != nil {
		e.logger.Warn("Failed to get fixtures by date", "date", in.Date, "error", err)
		return brief.Document{}, false
	}
	if len(fixtures) == 0 {
		return brief.NoFixturesOnDay(string(in.Day), in.Date), true
	}

	var top []models.Fixture
	for _, f := range fixtures {
		if e.topLeagues[f.League.ID] {
			top = append(top, f)
		}
	}

	var note string
	if len(top) == 0 {
		top = append([]models.Fixture(nil), fixtures...)
		sortFixtures(top)
		if len(top) > dayFallbackLimit {
			note = fmt.Sprintf("No top-league fixtures; showing the first %d of %d.", dayFallbackLimit, len(top))
			top = top[:dayFallbackLimit]
		}
	} else {
		sortFixtures(top)
	}

	title := fmt.Sprintf("Football fixtures for %s (%s):", in.Day, in.Date)
	return brief.List(title, top, brief.ListOptions{
		GroupByLeague: true,
		Note:          note,
		Predictions:   e.predictions(ctx, top, maxListPredictions),
		Location:      e.loc,
	}), true
}

// leagueOnly scans up to a week ahead for the league's next match day.
func (e *Enricher) leagueOnly(ctx context.Context, in intent.Intent, now time.Time) (brief.Document, bool) {
	failed := 0
	for offset := 0; offset < leagueWindowDays; offset++ {
		if ctx.Err() != nil {
			return brief.Document{}, false
		}
		date := e.date(now, offset)
		fixtures, err := e.source.FixturesByDate(ctx, date)
		if err != nil {
			e.logger.Warn("Failed to get fixtures by date", "date", date, "error", err)
			failed++
			continue
		}
		matches := filterLeague(fixtures, in.LeagueID)
		if len(matches) == 0 {
			continue
		}
		sortFixtures(matches)
		title := fmt.Sprintf("%s fixtures on %s:", leagueTitle(in.LeagueID, matches), date)
		return brief.List(title, matches, brief.ListOptions{Location: e.loc}), true
	}
	if failed == leagueWindowDays {
		return brief.Document{}, false
	}
	return brief.NoFixturesInWindow(leagueTitle(in.LeagueID, nil), leagueWindowDays), true
}

func (e *Enricher) live(ctx context.Context) (brief.Document, bool) {
	fixtures, err := e.source.LiveFixtures(ctx)
	if err != nil {
		e.logger.Warn("Failed to get live fixtures", "error", err)
		return brief.Document{}, false
	}
	if len(fixtures) == 0 {
		return brief.NoLiveMatches(), true
	}
	sortFixtures(fixtures)
	return brief.List("Live matches:", fixtures, brief.ListOptions{
		GroupByLeague: true,
		Location:      e.loc,
	}), true
}

// leagueTitle prefers the provider's league name, then the lexicon's.
func leagueTitle(id int, fixtures []models.Fixture) string {
	if len(fixtures) > 0 && fixtures[0].League.Name != "" {
		return fixtures[0].League.Name
	}
	if name := lexicon.LeagueName(id); name != "" {
		return name
	}
	return fmt.Sprintf("league %d", id)
}
