package brief

import (
	"fmt"
	"time"

	"github.com/Vodeneev/betbrief/internal/pkg/models"
)

// ListOptions controls how a fixture list is rendered.
type ListOptions struct {
	// GroupByLeague prints a "--- League ---" header before each league's
	// fixtures, in order of first appearance.
	GroupByLeague bool
	// ShowDate prefixes the kickoff time with the date, for lists spanning days.
	ShowDate bool
	// Note is printed between the title and the count.
	Note string
	// Predictions by fixture id, printed under the fixture line.
	Predictions map[int]*models.Prediction
	Location    *time.Location
}

// List renders a titled fixture list. Fixtures are printed in the given order.
func List(title string, fixtures []models.Fixture, opts ListOptions) Document {
	head := []string{title}
	if opts.Note != "" {
		head = append(head, opts.Note)
	}
	head = append(head, fmt.Sprintf("Matches: %d", len(fixtures)))

	var d Document
	d.add(Section{Name: SectionHeader, Lines: head})

	var lines []string
	if opts.GroupByLeague {
		for _, g := range groupByLeague(fixtures) {
			lines = append(lines, "--- "+g.name+" ---")
			lines = append(lines, fixtureLines(g.fixtures, opts)...)
		}
	} else {
		lines = fixtureLines(fixtures, opts)
	}
	d.add(Section{Name: SectionFixtures, Lines: lines})
	return d
}

func fixtureLines(fixtures []models.Fixture, opts ListOptions) []string {
	lines := make([]string, 0, len(fixtures))
	for _, f := range fixtures {
		lines = append(lines, FixtureLine(f, opts.Location, opts.ShowDate))
		if p := opts.Predictions[f.ID]; p != nil {
			if s := predictionSummary(p); s != "" {
				lines = append(lines, "  "+s)
			}
		}
	}
	return lines
}

// FixtureLine formats "HH:MM | Home vs Away" with a live or final score suffix.
func FixtureLine(f models.Fixture, loc *time.Location, withDate bool) string {
	layout := "15:04"
	if withDate {
		layout = "2006-01-02 15:04"
	}
	line := fmt.Sprintf("%s | %s vs %s", inLoc(f.Kickoff, loc).Format(layout), f.Home.Name, f.Away.Name)
	if !f.HasScore() {
		return line
	}
	switch {
	case f.IsLive():
		if f.Status.Elapsed != nil {
			line += fmt.Sprintf(" [LIVE %d-%d, %d']", *f.Goals.Home, *f.Goals.Away, *f.Status.Elapsed)
		} else {
			line += fmt.Sprintf(" [LIVE %d-%d]", *f.Goals.Home, *f.Goals.Away)
		}
	case f.IsFinished():
		line += fmt.Sprintf(" [FT %d-%d]", *f.Goals.Home, *f.Goals.Away)
	}
	return line
}

func predictionSummary(p *models.Prediction) string {
	s := ""
	if p.Advice != "" {
		s = "Prediction: " + p.Advice
	} else if p.Winner != "" {
		s = "Prediction: " + p.Winner
	}
	if p.Percent != nil {
		if s == "" {
			s = "Prediction:"
		}
		s += " (" + percent(p.Percent) + ")"
	}
	return s
}

type leagueGroup struct {
	id       int
	name     string
	fixtures []models.Fixture
}

func groupByLeague(fixtures []models.Fixture) []*leagueGroup {
	var groups []*leagueGroup
	byID := make(map[int]*leagueGroup)
	for _, f := range fixtures {
		g, ok := byID[f.League.ID]
		if !ok {
			name := f.League.Name
			if name == "" {
				name = "Other"
			}
			g = &leagueGroup{id: f.League.ID, name: name}
			byID[f.League.ID] = g
			groups = append(groups, g)
		}
		g.fixtures = append(g.fixtures, f)
	}
	return groups
}

// NoFixtures is the explicit negative answer for a league with nothing on a day.
// It names the league and the day and forbids inventing fixtures.
func NoFixtures(league, day, date string) Document {
	return Document{Sentinel: fmt.Sprintf(
		"NO FIXTURES FOUND: There are no %s matches scheduled for %s (%s). "+
			"Do not invent fixtures, kickoff times or odds. "+
			"Tell the user plainly that no %s matches are scheduled for %s.",
		league, day, date, league, day)}
}

// NoFixturesOnDay answers a day overview with no matches at all.
func NoFixturesOnDay(day, date string) Document {
	return Document{Sentinel: fmt.Sprintf(
		"There are no football fixtures scheduled for %s (%s) in the data source. "+
			"Do not invent fixtures.", day, date)}
}

// NoFixturesInWindow answers a league query with nothing in the next days.
func NoFixturesInWindow(league string, days int) Document {
	return Document{Sentinel: fmt.Sprintf("There are no %s fixtures in the next %d days.", league, days)}
}

// NoLiveMatches answers a live query when nothing is in play.
func NoLiveMatches() Document {
	return Document{Sentinel: "No live matches right now."}
}

// NoTeamFixtures answers a single-team query when the team has no fixtures
// in the season.
func NoTeamFixtures(team string) Document {
	return Document{Sentinel: fmt.Sprintf("No upcoming fixtures found for %s. Do not invent fixtures.", team)}
}
