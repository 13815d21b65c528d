package api

import (
	"encoding/json"
	"net/http"

	"github.com/MANASI777-hub/horizon/internal/chat"
	"github.com/MANASI777-hub/horizon/internal/insight"
	"github.com/MANASI777-hub/horizon/internal/journal"
	"github.com/MANASI777-hub/horizon/internal/narrative"
)

type chatRequest struct {
	Message string       `json:"message"`
	Context chat.Context `json:"context"`
}

type chatResponse struct {
	Reply       string       `json:"reply"`
	NextContext chat.Context `json:"nextContext"`
}

// chatWindowDays is the default lookback when the message names no dates:
// today plus the 13 days before it.
const chatWindowDays = 13

// aiChat handles POST /api/ai/chat: one conversational turn grounded in the
// caller's recent journal data.
func (s *Server) aiChat(w http.ResponseWriter, r *http.Request) {
	userID := userFrom(r.Context())

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Keyword denylist first, then the model classifier; both funnel to
	// the same canned refusal without touching journal data.
	if chat.DetectScope(req.Message) == chat.ScopeOutOfScope {
		respondJSON(w, http.StatusOK, chatResponse{
			Reply:       narrative.OutOfScopeReply,
			NextContext: req.Context,
		})
		return
	}
	intent, err := s.narrator.ClassifyIntent(r.Context(), req.Message)
	if err != nil {
		s.logger.Error("intent classification failed", "user_id", userID, "error", err)
		respondError(w, http.StatusBadGateway, "assistant unavailable")
		return
	}
	if intent == narrative.IntentOutOfScope {
		respondJSON(w, http.StatusOK, chatResponse{
			Reply:       narrative.OutOfScopeReply,
			NextContext: req.Context,
		})
		return
	}

	startDate, endDate := s.chatWindow(req.Message)

	rows, err := s.store.ListEntriesBetween(r.Context(), userID, startDate, endDate)
	if err != nil {
		s.logger.Error("chat fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load journals")
		return
	}

	// The chat path normalizes: defaults and clamps, no gaps inside rows.
	// Coverage metadata still reports the missing days honestly.
	obs := make([]journal.Observation, 0, len(rows))
	for _, row := range rows {
		obs = append(obs, journal.Normalize(row).Observation())
	}

	summary, err := insight.BuildRangeSummary(obs, startDate, endDate)
	if err != nil {
		s.logger.Error("range summary failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to summarize journals")
		return
	}

	reply, err := s.narrator.ChatReply(r.Context(), req.Context.Messages, summary, req.Message)
	if err != nil {
		s.logger.Error("chat narration failed", "user_id", userID, "error", err)
		respondError(w, http.StatusBadGateway, "assistant unavailable")
		return
	}

	respondJSON(w, http.StatusOK, chatResponse{
		Reply:       reply,
		NextContext: chat.UpdateContext(req.Context, req.Message, reply),
	})
}

// chatWindow picks the journal window for a chat turn: an explicit date
// phrase in the message wins, otherwise the rolling two-week default.
func (s *Server) chatWindow(message string) (string, string) {
	now := s.now().UTC()

	switch intent := chat.ExtractDateIntent(message, now); intent.Type {
	case "single_day":
		return intent.Date, intent.Date
	case "range":
		return intent.Start, intent.End
	}

	end := now.Format("2006-01-02")
	start := now.AddDate(0, 0, -chatWindowDays).Format("2006-01-02")
	return start, end
}
