package enricher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Vodeneev/betbrief/internal/pkg/intent"
	"github.com/Vodeneev/betbrief/internal/pkg/lexicon"
	"github.com/Vodeneev/betbrief/internal/pkg/models"
	"github.com/Vodeneev/betbrief/internal/pkg/performance"
)

var (
	testNow     = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	errUpstream = errors.New("upstream unavailable")
)

type fakeSource struct {
	mu sync.Mutex

	byDate      map[string][]models.Fixture
	dateErr     error
	byTeam      map[int][]models.Fixture
	search      map[string][]models.TeamSearchResult
	searchErr   error
	live        []models.Fixture
	liveErr     error
	panicOnLive bool
	predictions map[int]*models.Prediction
	facetErr    map[string]error

	calls   []string
	seasons []int
}

func (f *fakeSource) called(op string) {
	f.mu.Lock()
	f.calls = append(f.calls, op)
	f.mu.Unlock()
}

func (f *fakeSource) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (f *fakeSource) FixturesByDate(_ context.Context, date string) ([]models.Fixture, error) {
	f.called("date")
	if f.dateErr != nil {
		return nil, f.dateErr
	}
	return append([]models.Fixture(nil), f.byDate[date]...), nil
}

func (f *fakeSource) FixturesByTeam(_ context.Context, teamID, season, limit int) ([]models.Fixture, error) {
	f.called("team")
	f.mu.Lock()
	f.seasons = append(f.seasons, season)
	f.mu.Unlock()
	out := append([]models.Fixture(nil), f.byTeam[teamID]...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSource) SearchTeam(_ context.Context, name string) ([]models.TeamSearchResult, error) {
	f.called("search")
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.search[name], nil
}

func (f *fakeSource) Prediction(_ context.Context, id int) (*models.Prediction, error) {
	f.called("prediction")
	if err := f.facetErr["prediction"]; err != nil {
		return nil, err
	}
	return f.predictions[id], nil
}

func (f *fakeSource) Odds(_ context.Context, id int) ([]models.Bookmaker, error) {
	f.called("odds")
	if err := f.facetErr["odds"]; err != nil {
		return nil, err
	}
	return []models.Bookmaker{{Name: "Bet365", Bets: []models.Bet{{Name: models.MarketMatchWinner, Values: []models.OddValue{
		{Value: "Home", Odd: "1.85"}, {Value: "Draw", Odd: "3.60"}, {Value: "Away", Odd: "4.20"},
	}}}}}, nil
}

func (f *fakeSource) FixtureStatistics(_ context.Context, id int) ([]models.TeamStatistics, error) {
	f.called("statistics")
	if err := f.facetErr["statistics"]; err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *fakeSource) Injuries(_ context.Context, id int) ([]models.Injury, error) {
	f.called("injuries")
	if err := f.facetErr["injuries"]; err != nil {
		return nil, err
	}
	return []models.Injury{{Team: models.Team{Name: "Arsenal"}, Player: "B. Saka", Reason: "Hamstring"}}, nil
}

func (f *fakeSource) FixtureLineups(_ context.Context, id int) ([]models.Lineup, error) {
	f.called("lineups")
	if err := f.facetErr["lineups"]; err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *fakeSource) LiveFixtures(_ context.Context) ([]models.Fixture, error) {
	f.called("live")
	if f.panicOnLive {
		panic("boom")
	}
	return f.live, f.liveErr
}

type fakeJournal struct {
	mu      sync.Mutex
	records []models.QueryRecord
}

func (j *fakeJournal) Record(_ context.Context, r *models.QueryRecord) error {
	j.mu.Lock()
	j.records = append(j.records, *r)
	j.mu.Unlock()
	return nil
}

func (j *fakeJournal) Recent(context.Context, int) ([]models.QueryRecord, error) { return nil, nil }
func (j *fakeJournal) Close() error { return nil }

func newTestEnricher(src *fakeSource, now time.Time) (*Enricher, *performance.Tracker) {
	tr := performance.NewTracker()
	e := New(src, Options{
		Location: time.UTC,
		Now:      func() time.Time { return now },
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracker:  tr,
	})
	return e, tr
}

func fx(id, league int, leagueName, home string, homeID int, away string, awayID int, kickoff time.Time) models.Fixture {
	return models.Fixture{
		ID:      id,
		League:  models.League{ID: league, Name: leagueName, Country: "England"},
		Kickoff: kickoff,
		Status:  models.FixtureStatus{Short: "NS", Long: "Not Started"},
		Home:    models.Team{ID: homeID, Name: home},
		Away:    models.Team{ID: awayID, Name: away},
	}
}

func TestEnrich_NoneDoesNotCallSource(t *testing.T) {
	src := &fakeSource{}
	e, _ := newTestEnricher(src, testNow)
	text, ok := e.EnrichMessage(context.Background(), "hello there")
	if ok || text != "" {
		t.Errorf("EnrichMessage = %q, %v; want empty, false", text, ok)
	}
	if len(src.calls) != 0 {
		t.Errorf("source called for an unrelated message: %v", src.calls)
	}
}

func TestEnrich_LeagueOnDayWithoutFixturesReturnsSentinel(t *testing.T) {
	src := &fakeSource{byDate: map[string][]models.Fixture{
		"2025-03-10": {fx(1, lexicon.LeagueLaLiga, "La Liga", "Barcelona", 529, "Sevilla", 536, testNow.Add(8*time.Hour))},
	}}
	e, _ := newTestEnricher(src, testNow)

	text, ok := e.EnrichMessage(context.Background(), "premier league today")
	if !ok {
		t.Fatal("a league with no fixtures must still be an answer")
	}
	for _, want := range []string{"premier league", "today", "2025-03-10", "Do not invent"} {
		if !strings.Contains(text, want) {
			t.Errorf("sentinel missing %q: %s", want, text)
		}
	}
	if strings.Contains(text, "Barcelona") {
		t.Errorf("sentinel lists fixtures from another league: %s", text)
	}
}

func TestEnrich_LeagueOnDayListsWithPredictions(t *testing.T) {
	ko := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	src := &fakeSource{
		byDate: map[string][]models.Fixture{"2025-03-10": {
			fx(2, lexicon.LeaguePremierLeague, "Premier League", "Liverpool", 40, "Everton", 45, ko),
			fx(1, lexicon.LeaguePremierLeague, "Premier League", "Arsenal", 42, "Chelsea", 49, ko.Add(-2*time.Hour)),
			fx(3, lexicon.LeagueLaLiga, "La Liga", "Barcelona", 529, "Sevilla", 536, ko),
		}},
		predictions: map[int]*models.Prediction{2: {Advice: "Liverpool to win"}},
	}
	e, _ := newTestEnricher(src, testNow)

	text, ok := e.EnrichMessage(context.Background(), "premier league today")
	if !ok {
		t.Fatal("expected a brief")
	}
	want := strings.Join([]string{
		"Premier League fixtures for today (2025-03-10):",
		"Matches: 2",
		"",
		"18:00 | Arsenal vs Chelsea",
		"20:00 | Liverpool vs Everton",
		"  Prediction: Liverpool to win",
	}, "\n")
	if text != want {
		t.Errorf("brief =\n%s\nwant\n%s", text, want)
	}
	if n := src.count("prediction"); n != 2 {
		t.Errorf("prediction calls = %d, want 2", n)
	}
}

func TestEnrich_SpecificMatchPartialFailure(t *testing.T) {
	match := fx(7, lexicon.LeaguePremierLeague, "Premier League", "Arsenal", 42, "Chelsea", 49, time.Date(2025, 3, 11, 20, 0, 0, 0, time.UTC))
	src := &fakeSource{
		byDate:      map[string][]models.Fixture{"2025-03-11": {match}},
		predictions: map[int]*models.Prediction{7: {Winner: "Arsenal", Advice: "Arsenal or draw"}},
		facetErr:    map[string]error{"injuries": errUpstream},
	}
	e, tr := newTestEnricher(src, testNow)

	text, ok := e.EnrichMessage(context.Background(), "Arsenal vs Chelsea")
	if !ok {
		t.Fatal("expected a match brief")
	}
	for _, want := range []string{"MATCH: Arsenal vs Chelsea", "PREDICTION", "Winner: Arsenal", "ODDS (Bet365, Match Winner):"} {
		if !strings.Contains(text, want) {
			t.Errorf("brief missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "INJURIES") {
		t.Errorf("failed injuries facet rendered:\n%s", text)
	}
	if got := tr.Snapshot().FacetFailures["injuries"]; got != 1 {
		t.Errorf("injuries failures = %d, want 1", got)
	}
	if n := src.count("search"); n != 0 {
		t.Errorf("team search used although the window had the match (%d calls)", n)
	}
}

func TestEnrich_SpecificMatchReversedOrientation(t *testing.T) {
	match := fx(7, lexicon.LeaguePremierLeague, "Premier League", "Chelsea", 49, "Arsenal", 42, time.Date(2025, 3, 9, 16, 0, 0, 0, time.UTC))
	src := &fakeSource{byDate: map[string][]models.Fixture{"2025-03-09": {match}}}
	e, _ := newTestEnricher(src, testNow)

	text, ok := e.EnrichMessage(context.Background(), "arsenal vs chelsea")
	if !ok || !strings.Contains(text, "MATCH: Chelsea vs Arsenal") {
		t.Errorf("EnrichMessage = %q, %v", text, ok)
	}
}

func TestEnrich_Idempotent(t *testing.T) {
	match := fx(7, lexicon.LeaguePremierLeague, "Premier League", "Arsenal", 42, "Chelsea", 49, time.Date(2025, 3, 11, 20, 0, 0, 0, time.UTC))
	src := &fakeSource{
		byDate:      map[string][]models.Fixture{"2025-03-11": {match}},
		predictions: map[int]*models.Prediction{7: {Winner: "Arsenal"}},
	}
	e, _ := newTestEnricher(src, testNow)

	first, _ := e.EnrichMessage(context.Background(), "arsenal vs chelsea")
	second, _ := e.EnrichMessage(context.Background(), "arsenal vs chelsea")
	if first != second {
		t.Errorf("runs differ:\n%s\n---\n%s", first, second)
	}
}

func TestEnrich_SeasonFallback(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		season int
	}{
		{"july belongs to previous season", time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC), 2024},
		{"september starts new season", time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC), 2025},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{
				search: map[string][]models.TeamSearchResult{"arsenal": {{Team: models.Team{ID: 42, Name: "Arsenal"}}}},
				byTeam: map[int][]models.Fixture{42: {
					fx(5, lexicon.LeaguePremierLeague, "Premier League", "Arsenal", 42, "Brighton", 51, tt.now.AddDate(0, 1, 0)),
					fx(6, lexicon.LeaguePremierLeague, "Premier League", "Everton", 45, "Arsenal", 42, tt.now.AddDate(0, 2, 0)),
				}},
			}
			e, _ := newTestEnricher(src, tt.now)

			text, ok := e.EnrichMessage(context.Background(), "arsenal vs everton")
			if !ok || !strings.Contains(text, "MATCH: Everton vs Arsenal") {
				t.Fatalf("EnrichMessage = %q, %v", text, ok)
			}
			if len(src.seasons) != 1 || src.seasons[0] != tt.season {
				t.Errorf("seasons = %v, want [%d]", src.seasons, tt.season)
			}
			if n := src.count("date"); n != pairWindowTo-pairWindowFrom+1 {
				t.Errorf("date window calls = %d, want %d", n, pairWindowTo-pairWindowFrom+1)
			}
		})
	}
}

func TestEnrich_OpponentNotFoundDegradesToList(t *testing.T) {
	src := &fakeSource{
		search: map[string][]models.TeamSearchResult{"arsenal": {{Team: models.Team{ID: 42, Name: "Arsenal"}}}},
		byTeam: map[int][]models.Fixture{42: {
			fx(5, lexicon.LeaguePremierLeague, "Premier League", "Arsenal", 42, "Brighton", 51, testNow.AddDate(0, 0, 20)),
		}},
	}
	e, _ := newTestEnricher(src, testNow)

	text, ok := e.EnrichMessage(context.Background(), "arsenal vs everton")
	if !ok {
		t.Fatal("expected a degraded list")
	}
	for _, want := range []string{"Upcoming fixtures: Arsenal", "No upcoming fixture against everton found.", "2025-03-30 12:00 | Arsenal vs Brighton"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q:\n%s", want, text)
		}
	}
}

func TestEnrich_SearchFailureIsNoAnswer(t *testing.T) {
	src := &fakeSource{searchErr: errUpstream}
	e, _ := newTestEnricher(src, testNow)
	if text, ok := e.EnrichMessage(context.Background(), "arsenal vs everton"); ok || text != "" {
		t.Errorf("EnrichMessage = %q, %v; want empty, false", text, ok)
	}
}

func TestEnrich_SingleTeam(t *testing.T) {
	var fixtures []models.Fixture
	for i := 7; i >= 1; i-- {
		fixtures = append(fixtures, fx(i, lexicon.LeaguePremierLeague, "Premier League", "Liverpool", 40, "Opponent", 100+i, testNow.AddDate(0, 0, i)))
	}
	src := &fakeSource{
		search: map[string][]models.TeamSearchResult{"liverpool": {{Team: models.Team{ID: 40, Name: "Liverpool"}}}},
		byTeam: map[int][]models.Fixture{40: fixtures},
	}
	e, _ := newTestEnricher(src, testNow)

	text, ok := e.EnrichMessage(context.Background(), "liverpool")
	if !ok {
		t.Fatal("expected a list")
	}
	if !strings.Contains(text, "Upcoming fixtures: Liverpool\nMatches: 5") {
		t.Errorf("unexpected list:\n%s", text)
	}
	if strings.Index(text, "2025-03-13") > strings.Index(text, "2025-03-15") {
		t.Errorf("fixtures not in kickoff order:\n%s", text)
	}
}

func TestEnrich_DayOnlyFiltersTopLeagues(t *testing.T) {
	ko := time.Date(2025, 3, 11, 19, 0, 0, 0, time.UTC)
	minor := fx(9, 9999, "Regional League", "Town", 1, "City", 2, ko.Add(-5*time.Hour))
	src := &fakeSource{byDate: map[string][]models.Fixture{"2025-03-11": {
		minor,
		fx(3, lexicon.LeagueLaLiga, "La Liga", "Barcelona", 529, "Sevilla", 536, ko),
		fx(1, lexicon.LeaguePremierLeague, "Premier League", "Arsenal", 42, "Chelsea", 49, ko.Add(-time.Hour)),
	}}}
	e, _ := newTestEnricher(src, testNow)

	text, ok := e.EnrichMessage(context.Background(), "what are the matches tomorrow")
	if !ok {
		t.Fatal("expected a day overview")
	}
	if strings.Contains(text, "Regional League") {
		t.Errorf("minor league not filtered:\n%s", text)
	}
	for _, want := range []string{"Football fixtures for tomorrow (2025-03-11):", "--- Premier League ---", "--- La Liga ---"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "Premier League") > strings.Index(text, "La Liga") {
		t.Errorf("league groups not in kickoff order:\n%s", text)
	}
}

func TestEnrich_DayOnlyEmptyAndError(t *testing.T) {
	e, _ := newTestEnricher(&fakeSource{}, testNow)
	text, ok := e.EnrichMessage(context.Background(), "best bet")
	if !ok || !strings.Contains(text, "There are no football fixtures scheduled for today (2025-03-10)") {
		t.Errorf("empty day = %q, %v", text, ok)
	}

	e, _ = newTestEnricher(&fakeSource{dateErr: errUpstream}, testNow)
	if text, ok := e.EnrichMessage(context.Background(), "best bet"); ok || text != "" {
		t.Errorf("failed day = %q, %v; want empty, false", text, ok)
	}
}

func TestEnrich_TipRequestWithDashIsDayOnly(t *testing.T) {
	ko := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	src := &fakeSource{
		byDate: map[string][]models.Fixture{"2025-03-10": {
			fx(1, lexicon.LeaguePremierLeague, "Premier League", "Arsenal", 42, "Chelsea", 49, ko),
		}},
		search: map[string][]models.TeamSearchResult{"for": {{Team: models.Team{ID: 154, Name: "Fortaleza"}}}},
		byTeam: map[int][]models.Fixture{154: {
			fx(7, 71, "Serie A", "Fortaleza", 154, "Bahia", 118, ko),
		}},
	}
	e, _ := newTestEnricher(src, testNow)

	for _, msg := range []string{"best bet for today", "best bet for today - any tips?"} {
		res := e.Enrich(context.Background(), msg)
		if res.Intent.Kind != intent.KindDayOnly {
			t.Errorf("Enrich(%q).Intent = %+v, want day_only", msg, res.Intent)
		}
		if !res.Found || !strings.Contains(res.Text, "Arsenal vs Chelsea") || strings.Contains(res.Text, "Fortaleza") {
			t.Errorf("Enrich(%q) text:\n%s", msg, res.Text)
		}
	}
	if n := src.count("search"); n != 0 {
		t.Errorf("team search called %d times for a tip request", n)
	}
}

func TestEnrich_LeagueOnly(t *testing.T) {
	ko := time.Date(2025, 3, 13, 17, 30, 0, 0, time.UTC)
	src := &fakeSource{byDate: map[string][]models.Fixture{
		"2025-03-13": {fx(4, lexicon.LeagueBundesliga, "Bundesliga", "Bayern München", 157, "Borussia Dortmund", 165, ko)},
		"2025-03-15": {fx(5, lexicon.LeagueBundesliga, "Bundesliga", "Leipzig", 173, "Mainz", 164, ko.AddDate(0, 0, 2))},
	}}
	e, _ := newTestEnricher(src, testNow)

	text, ok := e.EnrichMessage(context.Background(), "bundesliga fixtures")
	if !ok || !strings.HasPrefix(text, "Bundesliga fixtures on 2025-03-13:") {
		t.Fatalf("EnrichMessage = %q, %v", text, ok)
	}
	if strings.Contains(text, "Leipzig") {
		t.Errorf("scan did not stop at the first match day:\n%s", text)
	}
	if n := src.count("date"); n != 4 {
		t.Errorf("date calls = %d, want 4", n)
	}
}

func TestEnrich_LeagueOnlyWindow(t *testing.T) {
	e, _ := newTestEnricher(&fakeSource{}, testNow)
	text, ok := e.EnrichMessage(context.Background(), "bundesliga fixtures")
	if !ok || text != "There are no Bundesliga fixtures in the next 7 days." {
		t.Errorf("empty window = %q, %v", text, ok)
	}

	src := &fakeSource{dateErr: errUpstream}
	e, _ = newTestEnricher(src, testNow)
	if text, ok := e.EnrichMessage(context.Background(), "bundesliga fixtures"); ok || text != "" {
		t.Errorf("all days failed = %q, %v; want empty, false", text, ok)
	}
	if n := src.count("date"); n != leagueWindowDays {
		t.Errorf("date calls = %d, want %d", n, leagueWindowDays)
	}
}

func TestEnrich_Live(t *testing.T) {
	e, _ := newTestEnricher(&fakeSource{}, testNow)
	if text, ok := e.EnrichMessage(context.Background(), "any live games?"); !ok || text != "No live matches right now." {
		t.Errorf("no live = %q, %v", text, ok)
	}

	elapsed, one := 55, 1
	game := fx(3, lexicon.LeagueLaLiga, "La Liga", "Barcelona", 529, "Sevilla", 536, testNow.Add(-time.Hour))
	game.Status = models.FixtureStatus{Short: "2H", Long: "Second Half", Elapsed: &elapsed}
	game.Goals = models.Goals{Home: &one, Away: &one}
	e, _ = newTestEnricher(&fakeSource{live: []models.Fixture{game}}, testNow)

	text, ok := e.EnrichMessage(context.Background(), "any live games?")
	if !ok || !strings.Contains(text, "--- La Liga ---\n11:00 | Barcelona vs Sevilla [LIVE 1-1, 55']") {
		t.Errorf("live = %q, %v", text, ok)
	}
}

func TestEnrich_RecoversPanic(t *testing.T) {
	e, tr := newTestEnricher(&fakeSource{panicOnLive: true}, testNow)
	r := e.Enrich(context.Background(), "any live games?")
	if r.Found || r.Text != "" {
		t.Errorf("Enrich after panic = %+v", r)
	}
	if r.Intent.Kind != intent.KindLive {
		t.Errorf("intent lost after panic: %s", r.Intent.Kind)
	}
	if tr.Snapshot().TotalRuns != 1 {
		t.Error("panicking run not recorded")
	}
}

func TestEnrich_RecordsJournal(t *testing.T) {
	j := &fakeJournal{}
	e := New(&fakeSource{}, Options{
		Now:     func() time.Time { return testNow },
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracker: performance.NewTracker(),
		Journal: j,
	})
	e.EnrichMessage(context.Background(), "any live games?")
	e.Close()

	if len(j.records) != 1 {
		t.Fatalf("journal records = %d, want 1", len(j.records))
	}
	rec := j.records[0]
	if rec.ID == "" || rec.Intent != string(intent.KindLive) || !rec.Found || !rec.CreatedAt.Equal(testNow) {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestSeason(t *testing.T) {
	tests := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2025, 7, 31, 23, 0, 0, 0, time.UTC), 2024},
		{time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), 2025},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 2025},
	}
	for _, tt := range tests {
		if got := Season(tt.now); got != tt.want {
			t.Errorf("Season(%s) = %d, want %d", tt.now.Format(models.DateLayout), got, tt.want)
		}
	}
}
