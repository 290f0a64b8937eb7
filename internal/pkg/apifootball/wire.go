package apifootball

import (
	"strconv"
	"strings"
	"time"

	"github.com/Vodeneev/betbrief/internal/pkg/models"
)

type wireTeam struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}

func (t wireTeam) toModel() models.Team { return models.Team{ID: t.ID, Name: t.Name} }

type fixtureItem struct {
	Fixture struct {
		ID        int    `json:"id"`
		Date      string `json:"date"`
		Timestamp int64  `json:"timestamp"`
		Status    struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"league"`
	Teams struct {
		Home wireTeam `json:"home"`
		Away wireTeam `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

func (it fixtureItem) toModel() models.Fixture {
	return models.Fixture{
		ID:      it.Fixture.ID,
		League:  models.League{ID: it.League.ID, Name: it.League.Name, Country: it.League.Country},
		Kickoff: parseKickoff(it.Fixture.Date, it.Fixture.Timestamp),
		Status: models.FixtureStatus{
			Short:   it.Fixture.Status.Short,
			Long:    it.Fixture.Status.Long,
			Elapsed: it.Fixture.Status.Elapsed,
		},
		Home:  it.Teams.Home.toModel(),
		Away:  it.Teams.Away.toModel(),
		Goals: models.Goals{Home: it.Goals.Home, Away: it.Goals.Away},
	}
}

func toFixtures(items []fixtureItem) []models.Fixture {
	out := make([]models.Fixture, 0, len(items))
	for _, it := range items {
		out = append(out, it.toModel())
	}
	return out
}

// parseKickoff keeps the offset the provider returned so rendered times follow
// the requested timezone.
func parseKickoff(date string, ts int64) time.Time {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t
	}
	if ts > 0 {
		return time.Unix(ts, 0).UTC()
	}
	return time.Time{}
}

type teamItem struct {
	Team wireTeam `json:"team"`
}

type predictionItem struct {
	Predictions struct {
		Winner *struct {
			ID      int    `json:"id"`
			Name    string `json:"name"`
			Comment string `json:"comment"`
		} `json:"winner"`
		Advice  string `json:"advice"`
		Percent *struct {
			Home string `json:"home"`
			Draw string `json:"draw"`
			Away string `json:"away"`
		} `json:"percent"`
	} `json:"predictions"`
	Comparison map[string]struct {
		Home string `json:"home"`
		Away string `json:"away"`
	} `json:"comparison"`
}

// comparisonOrder fixes the order of the comparison map.
var comparisonOrder = []string{"form", "att", "def", "poisson_distribution", "h2h", "goals", "total"}

func (it predictionItem) toModel() *models.Prediction {
	p := &models.Prediction{Advice: it.Predictions.Advice}
	if w := it.Predictions.Winner; w != nil {
		p.Winner = w.Name
		p.WinnerComment = w.Comment
	}
	if pc := it.Predictions.Percent; pc != nil {
		p.Percent = &models.Percent{Home: pc.Home, Draw: pc.Draw, Away: pc.Away}
	}
	for _, name := range comparisonOrder {
		if m, ok := it.Comparison[name]; ok {
			p.Comparison = append(p.Comparison, models.ComparisonMetric{Name: name, Home: m.Home, Away: m.Away})
		}
	}
	return p
}

type oddsItem struct {
	Bookmakers []wireBookmaker `json:"bookmakers"`
}

type wireBookmaker struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Bets []struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Values []struct {
			Value flexString `json:"value"`
			Odd   flexString `json:"odd"`
		} `json:"values"`
	} `json:"bets"`
}

func (b wireBookmaker) toModel() models.Bookmaker {
	bm := models.Bookmaker{ID: b.ID, Name: b.Name, Bets: make([]models.Bet, 0, len(b.Bets))}
	for _, bet := range b.Bets {
		mb := models.Bet{ID: bet.ID, Name: bet.Name, Values: make([]models.OddValue, 0, len(bet.Values))}
		for _, v := range bet.Values {
			mb.Values = append(mb.Values, models.OddValue{Value: string(v.Value), Odd: string(v.Odd)})
		}
		bm.Bets = append(bm.Bets, mb)
	}
	return bm
}

type statisticsItem struct {
	Team       wireTeam `json:"team"`
	Statistics []struct {
		Type  string     `json:"type"`
		Value flexString `json:"value"`
	} `json:"statistics"`
}

func (it statisticsItem) toModel() models.TeamStatistics {
	ts := models.TeamStatistics{Team: it.Team.toModel(), Statistics: make([]models.Statistic, 0, len(it.Statistics))}
	for _, s := range it.Statistics {
		ts.Statistics = append(ts.Statistics, models.Statistic{Type: s.Type, Value: string(s.Value)})
	}
	return ts
}

type injuryItem struct {
	Player struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"player"`
	Team wireTeam `json:"team"`
}

type lineupItem struct {
	Team      wireTeam `json:"team"`
	Formation string   `json:"formation"`
	StartXI   []struct {
		Player struct {
			Name   string `json:"name"`
			Number int    `json:"number"`
			Pos    string `json:"pos"`
		} `json:"player"`
	} `json:"startXI"`
	Coach *struct {
		Name string `json:"name"`
	} `json:"coach"`
}

func (it lineupItem) toModel() models.Lineup {
	l := models.Lineup{Team: it.Team.toModel(), Formation: it.Formation, StartXI: make([]models.LineupPlayer, 0, len(it.StartXI))}
	for _, p := range it.StartXI {
		l.StartXI = append(l.StartXI, models.LineupPlayer{Name: p.Player.Name, Number: p.Player.Number, Pos: p.Player.Pos})
	}
	if it.Coach != nil {
		l.Coach = it.Coach.Name
	}
	return l
}

// flexString accepts a JSON string, number, bool or null. Statistics report
// "55%", 12 or null for the same field depending on the metric.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null" || s == "":
		*f = ""
	case strings.HasPrefix(s, `"`):
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexString(v)
	default:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			*f = flexString(strconv.FormatFloat(n, 'f', -1, 64))
			return nil
		}
		*f = flexString(s)
	}
	return nil
}
