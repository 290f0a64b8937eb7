package performance

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

const maxRecentCalls = 1000

// Tracker tracks enrichment runs and provider calls
type Tracker struct {
	mu sync.RWMutex

	// Overall metrics
	TotalRuns     int
	FoundRuns     int
	TotalDuration time.Duration
	RunsByIntent  map[string]int

	// Provider metrics
	SourceCalls    map[string]*CallStats
	FacetFailures  map[string]int
	RecentFailures []SourceCall
}

// CallStats aggregates calls to one provider operation
type CallStats struct {
	Calls    int           `json:"calls"`
	Failures int           `json:"failures"`
	Duration time.Duration `json:"duration"`
}

// SourceCall is a single failed provider call
type SourceCall struct {
	Operation string    `json:"operation"`
	Duration  string    `json:"duration"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

var globalTracker = NewTracker()

// NewTracker returns an empty tracker; most callers use GetTracker.
func NewTracker() *Tracker {
	return &Tracker{
		RunsByIntent:   make(map[string]int),
		SourceCalls:    make(map[string]*CallStats),
		FacetFailures:  make(map[string]int),
		RecentFailures: make([]SourceCall, 0, 64),
	}
}

// GetTracker returns the global performance tracker
func GetTracker() *Tracker {
	return globalTracker
}

// Reset resets all metrics
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.TotalRuns = 0
	t.FoundRuns = 0
	t.TotalDuration = 0
	t.RunsByIntent = make(map[string]int)
	t.SourceCalls = make(map[string]*CallStats)
	t.FacetFailures = make(map[string]int)
	t.RecentFailures = t.RecentFailures[:0]
}

// RecordRun records one EnrichMessage call
func (t *Tracker) RecordRun(intent string, found bool, total time.Duration) {
	t.mu.Lock()
	t.TotalRuns++
	if found {
		t.FoundRuns++
	}
	t.TotalDuration += total
	t.RunsByIntent[intent]++
	t.mu.Unlock()

	observeRun(intent, found, total)
}

// RecordSourceCall records a provider call and its outcome
func (t *Tracker) RecordSourceCall(operation string, duration time.Duration, err error) {
	t.mu.Lock()
	cs, ok := t.SourceCalls[operation]
	if !ok {
		cs = &CallStats{}
		t.SourceCalls[operation] = cs
	}
	cs.Calls++
	cs.Duration += duration
	if err != nil {
		cs.Failures++
		// keep only the most recent failures
		if len(t.RecentFailures) >= maxRecentCalls {
			t.RecentFailures = append(t.RecentFailures[:0], t.RecentFailures[1:]...)
		}
		t.RecentFailures = append(t.RecentFailures, SourceCall{
			Operation: operation,
			Duration:  duration.String(),
			Error:     err.Error(),
			Timestamp: time.Now(),
		})
	}
	t.mu.Unlock()

	observeSourceCall(operation, duration, err)
}

// RecordFacetFailure records a facet dropped from a bundle
func (t *Tracker) RecordFacetFailure(facet string) {
	t.mu.Lock()
	t.FacetFailures[facet]++
	t.mu.Unlock()

	facetFailures.WithLabelValues(facet).Inc()
}

// Stats is a JSON-friendly copy of the tracker state
type Stats struct {
	TotalRuns      int                  `json:"total_runs"`
	FoundRuns      int                  `json:"found_runs"`
	AvgDuration    string               `json:"avg_duration"`
	RunsByIntent   map[string]int       `json:"runs_by_intent"`
	SourceCalls    map[string]CallStats `json:"source_calls"`
	FacetFailures  map[string]int       `json:"facet_failures"`
	RecentFailures []SourceCall         `json:"recent_failures"`
}

// Snapshot returns a copy of the current metrics
func (t *Tracker) Snapshot() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Stats{
		TotalRuns:      t.TotalRuns,
		FoundRuns:      t.FoundRuns,
		RunsByIntent:   make(map[string]int, len(t.RunsByIntent)),
		SourceCalls:    make(map[string]CallStats, len(t.SourceCalls)),
		FacetFailures:  make(map[string]int, len(t.FacetFailures)),
		RecentFailures: append([]SourceCall(nil), t.RecentFailures...),
	}
	if t.TotalRuns > 0 {
		s.AvgDuration = (t.TotalDuration / time.Duration(t.TotalRuns)).String()
	}
	for k, v := range t.RunsByIntent {
		s.RunsByIntent[k] = v
	}
	for k, v := range t.SourceCalls {
		s.SourceCalls[k] = *v
	}
	for k, v := range t.FacetFailures {
		s.FacetFailures[k] = v
	}
	return s
}

// PrintSummary logs a performance summary
func (t *Tracker) PrintSummary() {
	s := t.Snapshot()
	if s.TotalRuns == 0 {
		slog.Info("No performance data collected yet")
		return
	}

	slog.Info("PERFORMANCE SUMMARY",
		"total_runs", s.TotalRuns,
		"found_runs", s.FoundRuns,
		"found_percent", float64(s.FoundRuns)/float64(s.TotalRuns)*100,
		"avg_duration", s.AvgDuration)

	ops := make([]string, 0, len(s.SourceCalls))
	for op := range s.SourceCalls {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		cs := s.SourceCalls[op]
		slog.Info("Source calls",
			"operation", op,
			"calls", cs.Calls,
			"failures", cs.Failures,
			"avg_duration", cs.Duration/time.Duration(cs.Calls))
	}
	for facet, n := range s.FacetFailures {
		slog.Info("Facet failures", "facet", facet, "count", n)
	}
}
