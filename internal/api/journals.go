package api

import (
	"encoding/json"
	"net/http"

	"github.com/MANASI777-hub/horizon/internal/cache"
	"github.com/MANASI777-hub/horizon/internal/events"
	"github.com/MANASI777-hub/horizon/internal/journal"
)

// saveJournal handles POST /api/journal: upsert today's entry for the
// caller. The date always comes from the server clock; clients cannot write
// other days.
func (s *Server) saveJournal(w http.ResponseWriter, r *http.Request) {
	userID := userFrom(r.Context())

	var entry journal.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	entry.Date = s.today()

	if err := s.store.UpsertEntry(r.Context(), userID, entry); err != nil {
		s.logger.Error("journal upsert failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save journal")
		return
	}

	// Inline invalidation keeps reads fresh even without a bus; the event
	// fans out to any other listeners.
	s.cache.Delete(r.Context(), cache.UserKeys(userID)...)
	if s.events != nil {
		if err := s.events.Publish(events.SubjectJournalSaved, events.JournalSaved{
			UserID: userID.String(),
			Date:   entry.Date,
		}); err != nil {
			s.logger.Warn("failed to publish journal.saved", "error", err)
		}
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// listJournals handles GET /api/journals with a cache-aside on the full
// entry list.
func (s *Server) listJournals(w http.ResponseWriter, r *http.Request) {
	userID := userFrom(r.Context())
	key := cache.JournalsKey(userID)

	if cached, ok := s.cache.GetString(r.Context(), key); ok {
		respondJSON(w, http.StatusOK, map[string]any{
			"cached":  true,
			"entries": json.RawMessage(cached),
		})
		return
	}

	entries, err := s.store.ListEntries(r.Context(), userID)
	if err != nil {
		s.logger.Error("journal list failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load journals")
		return
	}
	if entries == nil {
		entries = []journal.Entry{}
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to encode journals")
		return
	}
	s.cache.SetString(r.Context(), key, string(raw), cache.JournalsTTL)

	respondJSON(w, http.StatusOK, map[string]any{
		"cached":  false,
		"entries": json.RawMessage(raw),
	})
}

// userDetails handles GET /api/userdetails.
func (s *Server) userDetails(w http.ResponseWriter, r *http.Request) {
	userID := userFrom(r.Context())

	name, err := s.store.GetProfileName(r.Context(), userID)
	if err != nil {
		s.logger.Error("profile lookup failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if name == "" {
		name = "User"
	}
	respondJSON(w, http.StatusOK, map[string]string{"name": name})
}
