package models

// Prediction is the provider's pre-match forecast for a fixture.
type Prediction struct {
	Winner        string             `json:"winner,omitempty"`
	WinnerComment string             `json:"winner_comment,omitempty"`
	Advice        string             `json:"advice,omitempty"`
	Percent       *Percent           `json:"percent,omitempty"`
	Comparison    []ComparisonMetric `json:"comparison,omitempty"`
}

// Percent holds win/draw/win probabilities as the provider formats them ("45%").
type Percent struct {
	Home string `json:"home"`
	Draw string `json:"draw"`
	Away string `json:"away"`
}

// ComparisonMetric is one home/away comparison row (form, att, def, total).
type ComparisonMetric struct {
	Name string `json:"name"`
	Home string `json:"home"`
	Away string `json:"away"`
}

// Bookmaker lists the markets one bookmaker prices for a fixture.
type Bookmaker struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Bets []Bet  `json:"bets"`
}

// Bet is a single market ("Match Winner", "Goals Over/Under", ...).
type Bet struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Values []OddValue `json:"values"`
}

// OddValue is one outcome of a market with its decimal price.
type OddValue struct {
	Value string `json:"value"`
	Odd   string `json:"odd"`
}

// MarketMatchWinner is the 1X2 market name.
const MarketMatchWinner = "Match Winner"

// TeamStatistics is one side's match statistics. The provider lists home first.
type TeamStatistics struct {
	Team       Team        `json:"team"`
	Statistics []Statistic `json:"statistics"`
}

// Statistic is a single metric. Value is empty when the provider reports null.
type Statistic struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Injury is a player missing or doubtful for a fixture.
type Injury struct {
	Team   Team   `json:"team"`
	Player string `json:"player"`
	Type   string `json:"type,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Lineup is one side's confirmed starting line-up.
type Lineup struct {
	Team      Team           `json:"team"`
	Formation string         `json:"formation,omitempty"`
	StartXI   []LineupPlayer `json:"start_xi"`
	Coach     string         `json:"coach,omitempty"`
}

// LineupPlayer is one starter.
type LineupPlayer struct {
	Name   string `json:"name"`
	Number int    `json:"number,omitempty"`
	Pos    string `json:"pos,omitempty"`
}

// Bundle is a fixture plus every facet that could be fetched for it.
// A nil facet failed to load; an empty non-nil facet loaded with no data.
type Bundle struct {
	Fixture    Fixture
	Prediction *Prediction
	Odds       []Bookmaker
	Statistics []TeamStatistics
	Injuries   []Injury
	Lineups    []Lineup
}
