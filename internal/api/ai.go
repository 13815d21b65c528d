package api

import (
	"encoding/json"
	"net/http"

	"github.com/MANASI777-hub/horizon/internal/cache"
	"github.com/MANASI777-hub/horizon/internal/insight"
	"github.com/MANASI777-hub/horizon/internal/journal"
	"github.com/MANASI777-hub/horizon/internal/narrative"
)

type overviewRequest struct {
	TimeRange insight.TimeRange `json:"timeRange"`
}

type overviewResponse struct {
	Summary     insight.Summary `json:"summary"`
	Explanation string          `json:"explanation"`
}

func parseTimeRange(raw insight.TimeRange) insight.TimeRange {
	switch raw {
	case insight.Range7d, insight.Range30d, insight.Range90d:
		return raw
	default:
		return insight.Range7d
	}
}

// aiOverview handles POST /api/ai/overview: summary plus a freshly generated
// narration.
func (s *Server) aiOverview(w http.ResponseWriter, r *http.Request) {
	s.overview(w, r, false)
}

// aiReportOverview handles POST /api/ai/report-overview: the same payload,
// with the narration memoized per (user, range).
func (s *Server) aiReportOverview(w http.ResponseWriter, r *http.Request) {
	s.overview(w, r, true)
}

func (s *Server) overview(w http.ResponseWriter, r *http.Request, cached bool) {
	userID := userFrom(r.Context())

	var req overviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	timeRange := parseTimeRange(req.TimeRange)

	entries, err := s.store.ListEntries(r.Context(), userID)
	if err != nil {
		s.logger.Error("overview fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load journals")
		return
	}

	summary := insight.BuildSummary(journal.Observations(entries), timeRange)

	// Sufficiency gate: sparse data never reaches the model.
	if !summary.DataQuality.Sufficient {
		respondJSON(w, http.StatusOK, overviewResponse{
			Summary:     summary,
			Explanation: narrative.InsufficientDataMessage,
		})
		return
	}

	key := cache.OverviewKey(userID, string(timeRange))
	if cached {
		if explanation, ok := s.cache.GetString(r.Context(), key); ok {
			respondJSON(w, http.StatusOK, overviewResponse{Summary: summary, Explanation: explanation})
			return
		}
	}

	explanation, err := s.narrator.Overview(r.Context(), summary)
	if err != nil {
		s.logger.Error("overview narration failed", "user_id", userID, "error", err)
		respondError(w, http.StatusBadGateway, "narration unavailable")
		return
	}
	if cached {
		s.cache.SetString(r.Context(), key, explanation, cache.NarrationTTL)
	}

	respondJSON(w, http.StatusOK, overviewResponse{Summary: summary, Explanation: explanation})
}
