package api

import (
	"net/http"
	"strconv"

	"github.com/MANASI777-hub/horizon/internal/report"
)

const defaultReportDays = 365

// report handles GET /api/report?days=N: fetches the caller's window and
// hands it to the report builder. The builder itself is clock-free; the
// from/to stamps are fixed here.
func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	userID := userFrom(r.Context())

	days := defaultReportDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			days = n
		}
	}

	now := s.now().UTC()
	from := now.AddDate(0, 0, -days).Format("2006-01-02")
	to := now.Format("2006-01-02")

	entries, err := s.store.ListEntriesSince(r.Context(), userID, from)
	if err != nil {
		s.logger.Error("report fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load journals")
		return
	}

	respondJSON(w, http.StatusOK, report.Build(entries, from, to))
}
