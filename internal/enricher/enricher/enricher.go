package enricher

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Vodeneev/betbrief/internal/pkg/brief"
	"github.com/Vodeneev/betbrief/internal/pkg/intent"
	"github.com/Vodeneev/betbrief/internal/pkg/interfaces"
	"github.com/Vodeneev/betbrief/internal/pkg/lexicon"
	"github.com/Vodeneev/betbrief/internal/pkg/models"
	"github.com/Vodeneev/betbrief/internal/pkg/performance"
)

const (
	// Day window scanned for a team pair, relative to today.
	pairWindowFrom = -1
	pairWindowTo   = 6

	// Days scanned for a league, starting today.
	leagueWindowDays = 7

	pairTeamFixtures   = 10
	singleTeamFixtures = 5
	maxListPredictions = 5
	dayFallbackLimit   = 30

	defaultJournalTimeout = 5 * time.Second
)

// Options configures an Enricher. Zero values are usable.
type Options struct {
	Location       *time.Location
	Now            func() time.Time
	Logger         *slog.Logger
	Journal        interfaces.QueryJournal
	JournalTimeout time.Duration
	Tracker        *performance.Tracker
}

// Enricher turns a chat message into a factual brief using a SportsSource.
type Enricher struct {
	source         interfaces.SportsSource
	classifier     *intent.Classifier
	loc            *time.Location
	now            func() time.Time
	logger         *slog.Logger
	journal        interfaces.QueryJournal
	journalTimeout time.Duration
	tracker        *performance.Tracker
	topLeagues     map[int]bool

	pending sync.WaitGroup
}

// Result is the outcome of one enrichment run.
type Result struct {
	Intent intent.Intent
	Text   string
	Found  bool
}

func New(source interfaces.SportsSource, opts Options) *Enricher {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracker := opts.Tracker
	if tracker == nil {
		tracker = performance.GetTracker()
	}
	jt := opts.JournalTimeout
	if jt <= 0 {
		jt = defaultJournalTimeout
	}

	e := &Enricher{
		source:         instrument(source, tracker),
		classifier:     intent.NewClassifier(loc),
		loc:            loc,
		now:            now,
		logger:         logger,
		journal:        opts.Journal,
		journalTimeout: jt,
		tracker:        tracker,
		topLeagues:     make(map[int]bool),
	}
	for _, id := range lexicon.TopLeagueIDs() {
		e.topLeagues[id] = true
	}
	return e
}

// Classifier returns the classifier used for incoming messages.
func (e *Enricher) Classifier() *intent.Classifier { return e.classifier }

// EnrichMessage returns the brief for message and true, or "" and false when
// the message asks nothing the enricher can answer. It never panics.
func (e *Enricher) EnrichMessage(ctx context.Context, message string) (string, bool) {
	r := e.Enrich(ctx, message)
	return r.Text, r.Found
}

// Enrich is EnrichMessage with the classified intent attached.
func (e *Enricher) Enrich(ctx context.Context, message string) (res Result) {
	start := time.Now()
	now := e.now()

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("enrich panic recovered", "panic", r, "stack", string(debug.Stack()))
			res = Result{Intent: res.Intent}
		}
		elapsed := time.Since(start)
		e.tracker.RecordRun(string(res.Intent.Kind), res.Found, elapsed)
		e.logger.Info("Enrichment finished",
			"intent", res.Intent.Kind,
			"home", res.Intent.Home,
			"away", res.Intent.Away,
			"league_id", res.Intent.LeagueID,
			"day", res.Intent.Day,
			"found", res.Found,
			"duration", elapsed)
		e.record(message, res, elapsed, now)
	}()

	res.Intent = e.classifier.Classify(message, now)
	doc, ok := e.run(ctx, res.Intent, now)
	if !ok || doc.Empty() {
		return res
	}
	res.Text = doc.String()
	res.Found = true
	return res
}

func (e *Enricher) run(ctx context.Context, in intent.Intent, now time.Time) (brief.Document, bool) {
	switch in.Kind {
	case intent.KindSpecificMatch:
		if in.SingleTeam() {
			return e.teamFixtures(ctx, in.Home, now)
		}
		return e.specificMatch(ctx, in.Home, in.Away, now)
	case intent.KindLeagueOnDay:
		return e.leagueOnDay(ctx, in)
	case intent.KindDayOnly:
		return e.dayOnly(ctx, in)
	case intent.KindLeagueOnly:
		return e.leagueOnly(ctx, in, now)
	case intent.KindLive:
		return e.live(ctx)
	default:
		return brief.Document{}, false
	}
}

// Close waits for pending journal writes.
func (e *Enricher) Close() {
	e.pending.Wait()
}

func (e *Enricher) record(message string, res Result, elapsed time.Duration, now time.Time) {
	if e.journal == nil {
		return
	}
	rec := &models.QueryRecord{
		ID:        uuid.NewString(),
		Message:   message,
		Intent:    string(res.Intent.Kind),
		LeagueID:  res.Intent.LeagueID,
		Day:       string(res.Intent.Day),
		Home:      res.Intent.Home,
		Away:      res.Intent.Away,
		Found:     res.Found,
		Duration:  elapsed,
		CreatedAt: now,
	}
	e.pending.Add(1)
	go func() {
		defer e.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), e.journalTimeout)
		defer cancel()
		if err := e.journal.Record(ctx, rec); err != nil {
			e.logger.Warn("Failed to write query journal", "id", rec.ID, "error", err)
		}
	}()
}

func (e *Enricher) date(now time.Time, offset int) string {
	return now.In(e.loc).AddDate(0, 0, offset).Format(models.DateLayout)
}

// sortFixtures orders by kickoff, then fixture id, so output is stable.
func sortFixtures(fixtures []models.Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		if !fixtures[i].Kickoff.Equal(fixtures[j].Kickoff) {
			return fixtures[i].Kickoff.Before(fixtures[j].Kickoff)
		}
		return fixtures[i].ID < fixtures[j].ID
	})
}

func filterLeague(fixtures []models.Fixture, leagueID int) []models.Fixture {
	var out []models.Fixture
	for _, f := range fixtures {
		if f.League.ID == leagueID {
			out = append(out, f)
		}
	}
	return out
}
