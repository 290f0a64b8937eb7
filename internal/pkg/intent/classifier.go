// Package intent reads a chat message and decides which football question it
// asks: a specific match, a day's fixtures, a league, live games, or nothing
// the enricher can help with.
package intent

import (
	"time"

	"github.com/Vodeneev/betbrief/internal/pkg/lexicon"
	"github.com/Vodeneev/betbrief/internal/pkg/models"
)

// Kind is the classified question type.
type Kind string

const (
	KindNone          Kind = "none"
	KindSpecificMatch Kind = "specific_match"
	KindLeagueOnDay   Kind = "league_on_day"
	KindDayOnly       Kind = "day_only"
	KindLeagueOnly    Kind = "league_only"
	KindLive          Kind = "live"
)

// Day is a relative day target.
type Day string

const (
	DayNone     Day = ""
	DayToday    Day = "today"
	DayTomorrow Day = "tomorrow"
)

// Intent is the result of classifying one message.
type Intent struct {
	Kind Kind

	// SpecificMatch. Away is empty for a single team.
	Home string
	Away string

	// LeagueOnDay and LeagueOnly
	LeagueID      int
	LeagueKeyword string

	// LeagueOnDay and DayOnly. Date is Day as a calendar date (models.DateLayout).
	Day  Day
	Date string
}

// SingleTeam reports whether a specific-match intent names only one team.
func (i Intent) SingleTeam() bool {
	return i.Kind == KindSpecificMatch && i.Away == ""
}

// Classifier maps messages to intents using the static lexicon.
type Classifier struct {
	resolver *Resolver
	leagues  []lexicon.LeagueKeyword
	today    []string
	tomorrow []string
	live     []string
	bestBet  []string
	loc      *time.Location
}

// NewClassifier returns a classifier computing calendar dates in loc
// (UTC when nil).
func NewClassifier(loc *time.Location) *Classifier {
	if loc == nil {
		loc = time.UTC
	}
	return &Classifier{
		resolver: NewResolver(),
		leagues:  lexicon.LeagueKeywords(),
		today:    lexicon.TodayWords(),
		tomorrow: lexicon.TomorrowWords(),
		live:     lexicon.LiveWords(),
		bestBet:  lexicon.BestBetWords(),
		loc:      loc,
	}
}

// Resolver exposes the entity resolver used by the classifier.
func (c *Classifier) Resolver() *Resolver { return c.resolver }

// Classify never fails: a message without any signal yields KindNone.
func (c *Classifier) Classify(message string, now time.Time) Intent {
	text := Normalize(message)
	if text == "" {
		return Intent{Kind: KindNone}
	}

	if res := c.resolver.Resolve(text); res != nil {
		return Intent{Kind: KindSpecificMatch, Home: res.Home, Away: res.Away}
	}

	day := c.day(text)
	league, keyword := c.league(text)

	switch {
	case day != DayNone && league != 0:
		return Intent{Kind: KindLeagueOnDay, LeagueID: league, LeagueKeyword: keyword, Day: day, Date: c.date(day, now)}
	case day != DayNone:
		return Intent{Kind: KindDayOnly, Day: day, Date: c.date(day, now)}
	case league != 0:
		return Intent{Kind: KindLeagueOnly, LeagueID: league, LeagueKeyword: keyword}
	case lexicon.ContainsAny(text, c.live):
		return Intent{Kind: KindLive}
	default:
		return Intent{Kind: KindNone}
	}
}

// day: tomorrow beats today; a tip request alone means today.
func (c *Classifier) day(text string) Day {
	if lexicon.ContainsAny(text, c.tomorrow) {
		return DayTomorrow
	}
	if lexicon.ContainsAny(text, c.today) || lexicon.ContainsAny(text, c.bestBet) {
		return DayToday
	}
	return DayNone
}

func (c *Classifier) league(text string) (int, string) {
	for _, kw := range c.leagues {
		if lexicon.ContainsTerm(text, kw.Keyword) {
			return kw.LeagueID, kw.Keyword
		}
	}
	return 0, ""
}

// Date returns the calendar date of day relative to now in the classifier location.
func (c *Classifier) Date(day Day, now time.Time) string { return c.date(day, now) }

func (c *Classifier) date(day Day, now time.Time) string {
	local := now.In(c.loc)
	if day == DayTomorrow {
		local = local.AddDate(0, 0, 1)
	}
	return local.Format(models.DateLayout)
}

// Location returns the time zone used for calendar dates.
func (c *Classifier) Location() *time.Location { return c.loc }
