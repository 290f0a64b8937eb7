package handlers

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Vodeneev/betbrief/internal/pkg/performance"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HandleStats handles /stats: the tracker snapshot as JSON
func HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := performance.GetTracker().Snapshot()
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
