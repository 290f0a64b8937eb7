package models

import "time"

// DateLayout is the calendar date format used by the provider and in cache keys.
const DateLayout = "2006-01-02"

// League identifies a competition as the provider reports it.
type League struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Team is a club or national side.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FixtureStatus carries the provider's status code ("NS", "1H", "FT", ...).
type FixtureStatus struct {
	Short   string `json:"short"`
	Long    string `json:"long"`
	Elapsed *int   `json:"elapsed,omitempty"`
}

// Goals is the current or final score; nil sides mean the match has not started.
type Goals struct {
	Home *int `json:"home,omitempty"`
	Away *int `json:"away,omitempty"`
}

// Fixture is a single scheduled, live or finished match.
type Fixture struct {
	ID      int           `json:"id"`
	League  League        `json:"league"`
	Kickoff time.Time     `json:"kickoff"`
	Status  FixtureStatus `json:"status"`
	Home    Team          `json:"home"`
	Away    Team          `json:"away"`
	Goals   Goals         `json:"goals"`
}

var (
	liveStatuses     = []string{"1H", "HT", "2H", "ET", "BT", "P", "LIVE", "INT", "SUSP"}
	finishedStatuses = []string{"FT", "AET", "PEN"}
	upcomingStatuses = []string{"NS", "TBD"}
)

// IsLive reports whether the match is in play (including breaks).
func (f Fixture) IsLive() bool { return hasStatus(liveStatuses, f.Status.Short) }

// IsFinished reports whether the match has a final result.
func (f Fixture) IsFinished() bool { return hasStatus(finishedStatuses, f.Status.Short) }

// NotStarted reports whether the match is still to be played.
func (f Fixture) NotStarted() bool { return hasStatus(upcomingStatuses, f.Status.Short) }

// HasScore reports whether both sides of the score are known.
func (f Fixture) HasScore() bool { return f.Goals.Home != nil && f.Goals.Away != nil }

func hasStatus(set []string, code string) bool {
	for _, s := range set {
		if s == code {
			return true
		}
	}
	return false
}

// TeamSearchResult is one hit of a team search, best match first.
type TeamSearchResult struct {
	Team    Team   `json:"team"`
	Country string `json:"country,omitempty"`
}
