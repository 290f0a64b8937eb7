package enricher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vodeneev/betbrief/internal/pkg/brief"
	"github.com/Vodeneev/betbrief/internal/pkg/models"
	"github.com/Vodeneev/betbrief/internal/pkg/teamname"
)

var errTeamNotFound = errors.New("team not found")

// specificMatch finds the fixture between home and away and renders its
// full brief. The date window is tried first, then the home team's season.
func (e *Enricher) specificMatch(ctx context.Context, home, away string, now time.Time) (brief.Document, bool) {
	if f, ok := e.scanWindow(ctx, home, away, now); ok {
		return brief.Match(e.bundle(ctx, f), e.loc), true
	}

	team, err := e.findTeam(ctx, home)
	if err != nil {
		e.logger.Warn("Team lookup failed", "team", home, "error", err)
		return brief.Document{}, false
	}

	season := Season(now.In(e.loc))
	fixtures, err := e.source.FixturesByTeam(ctx, team.ID, season, pairTeamFixtures)
	if err != nil {
		e.logger.Warn("Failed to get team fixtures", "team_id", team.ID, "season", season, "error", err)
		return brief.Document{}, false
	}
	for _, f := range fixtures {
		opponent := f.Home
		if f.Home.ID == team.ID {
			opponent = f.Away
		}
		if teamname.Match(opponent.Name, away) {
			return brief.Match(e.bundle(ctx, f), e.loc), true
		}
	}

	// Opponent not among the next fixtures: answer with the team's list.
	sortFixtures(fixtures)
	return brief.List("Upcoming fixtures: "+team.Name, fixtures, brief.ListOptions{
		ShowDate: true,
		Note:     fmt.Sprintf("No upcoming fixture against %s found.", away),
		Location: e.loc,
	}), true
}

// scanWindow looks for the pair day by day, from yesterday to six days
// ahead, and stops at the first hit. Either orientation matches.
func (e *Enricher) scanWindow(ctx context.Context, home, away string, now time.Time) (models.Fixture, bool) {
	for offset := pairWindowFrom; offset <= pairWindowTo; offset++ {
		if ctx.Err() != nil {
			return models.Fixture{}, false
		}
		date := e.date(now, offset)
		fixtures, err := e.source.FixturesByDate(ctx, date)
		if err != nil {
			e.logger.Warn("Failed to get fixtures by date", "date", date, "error", err)
			continue
		}
		for _, f := range fixtures {
			if pairMatches(f, home, away) {
				return f, true
			}
		}
	}
	return models.Fixture{}, false
}

func pairMatches(f models.Fixture, home, away string) bool {
	if teamname.Match(f.Home.Name, home) && teamname.Match(f.Away.Name, away) {
		return true
	}
	return teamname.Match(f.Home.Name, away) && teamname.Match(f.Away.Name, home)
}

// teamFixtures lists the next fixtures of a single team.
func (e *Enricher) teamFixtures(ctx context.Context, name string, now time.Time) (brief.Document, bool) {
	team, err := e.findTeam(ctx, name)
	if err != nil {
		e.logger.Warn("Team lookup failed", "team", name, "error", err)
		return brief.Document{}, false
	}

	season := Season(now.In(e.loc))
	fixtures, err := e.source.FixturesByTeam(ctx, team.ID, season, singleTeamFixtures)
	if err != nil {
		e.logger.Warn("Failed to get team fixtures", "team_id", team.ID, "season", season, "error", err)
		return brief.Document{}, false
	}
	if len(fixtures) == 0 {
		return brief.NoTeamFixtures(team.Name), true
	}
	sortFixtures(fixtures)
	return brief.List("Upcoming fixtures: "+team.Name, fixtures, brief.ListOptions{
		ShowDate: true,
		Location: e.loc,
	}), true
}

// findTeam takes the top search hit.
func (e *Enricher) findTeam(ctx context.Context, name string) (models.Team, error) {
	results, err := e.source.SearchTeam(ctx, name)
	if err != nil {
		return models.Team{}, fmt.Errorf("search %q: %w", name, err)
	}
	if len(results) == 0 {
		return models.Team{}, fmt.Errorf("search %q: %w", name, errTeamNotFound)
	}
	return results[0].Team, nil
}
