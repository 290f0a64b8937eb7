package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Vodeneev/betbrief/internal/pkg/models"
	"github.com/Vodeneev/betbrief/internal/pkg/validation"
)

const maxBodyBytes = 64 * 1024

// EnrichResult is the /enrich response body.
type EnrichResult struct {
	Found   bool   `json:"found"`
	Intent  string `json:"intent"`
	Context string `json:"context"`
}

// EnrichFunc runs the enrichment pipeline for one message
type EnrichFunc func(ctx context.Context, message string) EnrichResult

// RecentFunc returns the latest journal records
type RecentFunc func(ctx context.Context, limit int) ([]models.QueryRecord, error)

var (
	enrichFunc EnrichFunc
	recentFunc RecentFunc
	sanitizer  = validation.NewSanitizer()
)

// SetEnrichFunc sets the function behind /enrich
func SetEnrichFunc(fn EnrichFunc) {
	enrichFunc = fn
}

// SetRecentFunc sets the function behind /queries; nil disables it
func SetRecentFunc(fn RecentFunc) {
	recentFunc = fn
}

type enrichRequest struct {
	Message string `json:"message"`
}

// HandleEnrich handles /enrich. POST takes {"message": "..."}; GET takes
// ?message= for manual testing.
func HandleEnrich(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", requestID)

	if enrichFunc == nil {
		writeError(w, http.StatusServiceUnavailable, "enricher not configured")
		return
	}

	var message string
	switch r.Method {
	case http.MethodGet:
		message = r.URL.Query().Get("message")
	case http.MethodPost:
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		var req enrichRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		message = req.Message
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := validation.ValidateMessage(message); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, validation.ErrMessageTooLong) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, err.Error())
		return
	}

	res := enrichFunc(r.Context(), sanitizer.SanitizeMessage(message))
	slog.Debug("Enrich request served", "request_id", requestID, "intent", res.Intent, "found", res.Found)
	writeJSON(w, http.StatusOK, res)
}

// HandleQueries handles /queries?limit=N
func HandleQueries(w http.ResponseWriter, r *http.Request) {
	if recentFunc == nil {
		writeError(w, http.StatusNotFound, "query journal disabled")
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}
	records, err := recentFunc(r.Context(), limit)
	if err != nil {
		slog.Error("Failed to read query journal", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read query journal")
		return
	}
	if records == nil {
		records = []models.QueryRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}
