// Package apifootball is a SportsSource backed by the API-Football v3 REST API.
package apifootball

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	jsoniter "github.com/json-iterator/go"

	"github.com/Vodeneev/betbrief/internal/pkg/interfaces"
	"github.com/Vodeneev/betbrief/internal/pkg/models"
	"github.com/Vodeneev/betbrief/internal/pkg/teamname"
)

const (
	defaultBaseURL  = "https://v3.football.api-sports.io"
	defaultTimezone = "UTC"
	maxBodyBytes    = 8 << 20
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrNotConfigured is returned by every call when no API key is set.
	ErrNotConfigured = errors.New("api-football key is not configured")
	// ErrSearchTooShort is returned when a team search term has fewer than three letters.
	ErrSearchTooShort = errors.New("team search needs at least 3 characters")
	errTransient      = errors.New("api-football transient failure")
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Timezone   string
	Timeout    time.Duration
	MaxRetries int
	Logger     *slog.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timezone   string
	maxRetries int
	logger     *slog.Logger
}

var _ interfaces.SportsSource = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	tz := strings.TrimSpace(cfg.Timezone)
	if tz == "" {
		tz = defaultTimezone
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		timezone:   tz,
		maxRetries: retries,
		logger:     logger,
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool { return c.apiKey != "" }

// FixturesByDate GET /fixtures?date=YYYY-MM-DD&timezone=...
func (c *Client) FixturesByDate(ctx context.Context, date string) ([]models.Fixture, error) {
	var items []fixtureItem
	q := url.Values{"date": {date}, "timezone": {c.timezone}}
	if err := c.doJSON(ctx, "/fixtures", q, &items); err != nil {
		return nil, fmt.Errorf("fixtures date=%s: %w", date, err)
	}
	return toFixtures(items), nil
}

// FixturesByTeam GET /fixtures?team=&season=&next=
func (c *Client) FixturesByTeam(ctx context.Context, teamID, season, limit int) ([]models.Fixture, error) {
	var items []fixtureItem
	q := url.Values{
		"team":     {strconv.Itoa(teamID)},
		"season":   {strconv.Itoa(season)},
		"next":     {strconv.Itoa(limit)},
		"timezone": {c.timezone},
	}
	if err := c.doJSON(ctx, "/fixtures", q, &items); err != nil {
		return nil, fmt.Errorf("fixtures team=%d season=%d: %w", teamID, season, err)
	}
	return toFixtures(items), nil
}

// LiveFixtures GET /fixtures?live=all
func (c *Client) LiveFixtures(ctx context.Context) ([]models.Fixture, error) {
	var items []fixtureItem
	q := url.Values{"live": {"all"}, "timezone": {c.timezone}}
	if err := c.doJSON(ctx, "/fixtures", q, &items); err != nil {
		return nil, fmt.Errorf("live fixtures: %w", err)
	}
	return toFixtures(items), nil
}

// SearchTeam GET /teams?search=. The provider accepts letters, digits and spaces only.
func (c *Client) SearchTeam(ctx context.Context, name string) ([]models.TeamSearchResult, error) {
	term := SearchTerm(name)
	if len([]rune(term)) < 3 {
		return nil, ErrSearchTooShort
	}
	var items []teamItem
	if err := c.doJSON(ctx, "/teams", url.Values{"search": {term}}, &items); err != nil {
		return nil, fmt.Errorf("search team %q: %w", term, err)
	}
	out := make([]models.TeamSearchResult, 0, len(items))
	for _, it := range items {
		out = append(out, models.TeamSearchResult{
			Team:    models.Team{ID: it.Team.ID, Name: it.Team.Name},
			Country: it.Team.Country,
		})
	}
	return out, nil
}

// Prediction GET /predictions?fixture=
func (c *Client) Prediction(ctx context.Context, fixtureID int) (*models.Prediction, error) {
	var items []predictionItem
	if err := c.doJSON(ctx, "/predictions", fixtureQuery(fixtureID), &items); err != nil {
		return nil, fmt.Errorf("prediction fixture=%d: %w", fixtureID, err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0].toModel(), nil
}

// Odds GET /odds?fixture=
func (c *Client) Odds(ctx context.Context, fixtureID int) ([]models.Bookmaker, error) {
	var items []oddsItem
	if err := c.doJSON(ctx, "/odds", fixtureQuery(fixtureID), &items); err != nil {
		return nil, fmt.Errorf("odds fixture=%d: %w", fixtureID, err)
	}
	out := []models.Bookmaker{}
	for _, it := range items {
		for _, bm := range it.Bookmakers {
			out = append(out, bm.toModel())
		}
	}
	return out, nil
}

// FixtureStatistics GET /fixtures/statistics?fixture=
func (c *Client) FixtureStatistics(ctx context.Context, fixtureID int) ([]models.TeamStatistics, error) {
	var items []statisticsItem
	if err := c.doJSON(ctx, "/fixtures/statistics", fixtureQuery(fixtureID), &items); err != nil {
		return nil, fmt.Errorf("statistics fixture=%d: %w", fixtureID, err)
	}
	out := make([]models.TeamStatistics, 0, len(items))
	for _, it := range items {
		out = append(out, it.toModel())
	}
	return out, nil
}

// Injuries GET /injuries?fixture=
func (c *Client) Injuries(ctx context.Context, fixtureID int) ([]models.Injury, error) {
	var items []injuryItem
	if err := c.doJSON(ctx, "/injuries", fixtureQuery(fixtureID), &items); err != nil {
		return nil, fmt.Errorf("injuries fixture=%d: %w", fixtureID, err)
	}
	out := make([]models.Injury, 0, len(items))
	for _, it := range items {
		out = append(out, models.Injury{
			Team:   it.Team.toModel(),
			Player: it.Player.Name,
			Type:   it.Player.Type,
			Reason: it.Player.Reason,
		})
	}
	return out, nil
}

// FixtureLineups GET /fixtures/lineups?fixture=
func (c *Client) FixtureLineups(ctx context.Context, fixtureID int) ([]models.Lineup, error) {
	var items []lineupItem
	if err := c.doJSON(ctx, "/fixtures/lineups", fixtureQuery(fixtureID), &items); err != nil {
		return nil, fmt.Errorf("lineups fixture=%d: %w", fixtureID, err)
	}
	out := make([]models.Lineup, 0, len(items))
	for _, it := range items {
		out = append(out, it.toModel())
	}
	return out, nil
}

func fixtureQuery(id int) url.Values {
	return url.Values{"fixture": {strconv.Itoa(id)}}
}

// SearchTerm reduces a team name to what /teams?search accepts.
func SearchTerm(name string) string {
	n := teamname.StripClubPrefix(name)
	var b strings.Builder
	for _, r := range n {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// doJSON performs a GET, checks the envelope errors and decodes response into target.
func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	start := time.Now()
	raw, err := c.executeRequest(ctx, fullURL)
	if err != nil {
		c.logger.WarnContext(ctx, "api-football request failed", "path", path, "error", err, "duration", time.Since(start))
		return err
	}
	c.logger.DebugContext(ctx, "api-football request", "path", path, "query", query.Encode(), "duration", time.Since(start))

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if err := env.err(); err != nil {
		return err
	}
	if len(env.Response) == 0 || string(env.Response) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Response, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("new request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("x-apisports-key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: do request: %v", errTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read body: %v", errTransient, readErr)
			case resp.StatusCode == http.StatusOK:
				return raw, nil
			case retryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: status %d: %s", errTransient, resp.StatusCode, abbreviate(raw))
			default:
				return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, abbreviate(raw))
			}
		}

		if attempt == c.maxRetries || ctx.Err() != nil {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * 500 * time.Millisecond)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return nil, lastErr
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

func abbreviate(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}

type envelope struct {
	Get      string              `json:"get"`
	Errors   jsoniter.RawMessage `json:"errors"`
	Results  int                 `json:"results"`
	Response jsoniter.RawMessage `json:"response"`
}

// err decodes the "errors" member, which is [] when empty and an object
// ({"token": "..."}) or a list of strings otherwise.
func (e envelope) err() error {
	raw := strings.TrimSpace(string(e.Errors))
	if raw == "" || raw == "[]" || raw == "{}" || raw == "null" {
		return nil
	}
	var msgs []string
	if strings.HasPrefix(raw, "{") {
		var byKey map[string]any
		if err := json.Unmarshal(e.Errors, &byKey); err != nil {
			return fmt.Errorf("api error: %s", abbreviate(e.Errors))
		}
		for k, v := range byKey {
			msgs = append(msgs, fmt.Sprintf("%s: %v", k, v))
		}
	} else {
		var list []any
		if err := json.Unmarshal(e.Errors, &list); err != nil {
			return fmt.Errorf("api error: %s", abbreviate(e.Errors))
		}
		for _, v := range list {
			msgs = append(msgs, fmt.Sprint(v))
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	sort.Strings(msgs)
	return fmt.Errorf("api error: %s", strings.Join(msgs, "; "))
}
