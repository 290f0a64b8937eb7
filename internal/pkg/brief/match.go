package brief

import (
	"fmt"
	"strings"
	"time"

	"github.com/Vodeneev/betbrief/internal/pkg/models"
)

// maxInjuries caps the injuries section.
const maxInjuries = 10

// Match renders a fixture bundle. Sections without data are left out.
func Match(b models.Bundle, loc *time.Location) Document {
	var d Document
	d.add(Section{Name: SectionHeader, Lines: header(b.Fixture, loc)})
	d.add(Section{Name: SectionScore, Lines: score(b.Fixture)})
	d.add(Section{Name: SectionPrediction, Title: "PREDICTION:", Lines: prediction(b.Prediction)})
	if title, lines := odds(b.Odds); len(lines) > 0 {
		d.add(Section{Name: SectionOdds, Title: title, Lines: lines})
	}
	d.add(Section{Name: SectionStatistics, Title: "STATISTICS (home - away):", Lines: statistics(b.Statistics)})
	d.add(Section{Name: SectionInjuries, Title: "INJURIES:", Lines: injuries(b.Injuries)})
	d.add(Section{Name: SectionLineups, Title: "LINEUPS:", Lines: lineups(b.Lineups)})
	return d
}

func header(f models.Fixture, loc *time.Location) []string {
	lines := []string{fmt.Sprintf("MATCH: %s vs %s", f.Home.Name, f.Away.Name)}
	if f.League.Name != "" {
		league := f.League.Name
		if f.League.Country != "" {
			league += " (" + f.League.Country + ")"
		}
		lines = append(lines, "League: "+league)
	}
	if !f.Kickoff.IsZero() {
		lines = append(lines, "Kickoff: "+inLoc(f.Kickoff, loc).Format("2006-01-02 15:04 MST"))
	}
	if f.Status.Long != "" {
		lines = append(lines, "Status: "+f.Status.Long)
	}
	return lines
}

func score(f models.Fixture) []string {
	if !f.HasScore() {
		return nil
	}
	switch {
	case f.IsLive():
		s := fmt.Sprintf("Score: %d-%d", *f.Goals.Home, *f.Goals.Away)
		if f.Status.Elapsed != nil {
			s += fmt.Sprintf(" (%d')", *f.Status.Elapsed)
		}
		return []string{s}
	case f.IsFinished():
		return []string{fmt.Sprintf("Final score: %d-%d", *f.Goals.Home, *f.Goals.Away)}
	}
	return nil
}

func prediction(p *models.Prediction) []string {
	if p == nil {
		return nil
	}
	var lines []string
	if p.Winner != "" {
		w := "Winner: " + p.Winner
		if p.WinnerComment != "" {
			w += " (" + p.WinnerComment + ")"
		}
		lines = append(lines, w)
	}
	if p.Advice != "" {
		lines = append(lines, "Advice: "+p.Advice)
	}
	if p.Percent != nil {
		lines = append(lines, "Probabilities: "+percent(p.Percent))
	}
	if len(p.Comparison) > 0 {
		parts := make([]string, 0, len(p.Comparison))
		for _, m := range p.Comparison {
			parts = append(parts, fmt.Sprintf("%s %s/%s", m.Name, m.Home, m.Away))
		}
		lines = append(lines, "Comparison (home/away): "+strings.Join(parts, ", "))
	}
	return lines
}

func percent(p *models.Percent) string {
	return fmt.Sprintf("home %s | draw %s | away %s", p.Home, p.Draw, p.Away)
}

// odds uses the first bookmaker that prices the match winner market.
func odds(bookmakers []models.Bookmaker) (string, []string) {
	for _, bm := range bookmakers {
		for _, bet := range bm.Bets {
			if bet.Name != models.MarketMatchWinner || len(bet.Values) == 0 {
				continue
			}
			parts := make([]string, 0, len(bet.Values))
			for _, v := range bet.Values {
				parts = append(parts, v.Value+" "+v.Odd)
			}
			return fmt.Sprintf("ODDS (%s, %s):", bm.Name, bet.Name), []string{strings.Join(parts, " | ")}
		}
	}
	return "", nil
}

// statistics pairs metrics by type; the first entry is the home side.
func statistics(stats []models.TeamStatistics) []string {
	if len(stats) == 0 {
		return nil
	}
	home := stats[0].Statistics
	var away []models.Statistic
	if len(stats) > 1 {
		away = stats[1].Statistics
	}
	lines := make([]string, 0, len(home))
	for _, s := range home {
		lines = append(lines, fmt.Sprintf("- %s: %s - %s", s.Type, statValue(s.Value), statValue(lookup(away, s.Type))))
	}
	return lines
}

func lookup(stats []models.Statistic, typ string) string {
	for _, s := range stats {
		if s.Type == typ {
			return s.Value
		}
	}
	return ""
}

func statValue(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func injuries(list []models.Injury) []string {
	if len(list) == 0 {
		return nil
	}
	n := len(list)
	if n > maxInjuries {
		n = maxInjuries
	}
	lines := make([]string, 0, n+1)
	for _, in := range list[:n] {
		line := fmt.Sprintf("- %s: %s", in.Team.Name, in.Player)
		if in.Reason != "" {
			line += " (" + in.Reason + ")"
		}
		lines = append(lines, line)
	}
	if extra := len(list) - n; extra > 0 {
		lines = append(lines, fmt.Sprintf("(+%d more)", extra))
	}
	return lines
}

func lineups(list []models.Lineup) []string {
	var lines []string
	for _, l := range list {
		if len(l.StartXI) == 0 {
			continue
		}
		names := make([]string, 0, len(l.StartXI))
		for _, p := range l.StartXI {
			names = append(names, p.Name)
		}
		line := l.Team.Name
		if l.Formation != "" {
			line += " (" + l.Formation + ")"
		}
		line += ": " + strings.Join(names, ", ")
		if l.Coach != "" {
			line += "; coach " + l.Coach
		}
		lines = append(lines, line)
	}
	return lines
}

func inLoc(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}
