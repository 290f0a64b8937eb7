package models

import "time"

// QueryRecord is one enrichment run as written to the query journal.
type QueryRecord struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Intent    string        `json:"intent"`
	LeagueID  int           `json:"league_id,omitempty"`
	Day       string        `json:"day,omitempty"`
	Home      string        `json:"home,omitempty"`
	Away      string        `json:"away,omitempty"`
	Found     bool          `json:"found"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}
