package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/MANASI777-hub/horizon/internal/cache"
)

// Invalidator drops a user's cached journal list and narrations whenever a
// journal.saved event arrives. Running it off the bus rather than inline
// means any writer (this service or a future importer) triggers the same
// invalidation.
type Invalidator struct {
	cache  *cache.Cache
	logger *slog.Logger
}

func NewInvalidator(c *cache.Cache, logger *slog.Logger) *Invalidator {
	return &Invalidator{cache: c, logger: logger}
}

// HandleJournalSaved is the subscription handler for SubjectJournalSaved.
func (inv *Invalidator) HandleJournalSaved(subject string, data []byte) {
	var evt JournalSaved
	if err := json.Unmarshal(data, &evt); err != nil {
		inv.logger.Warn("bad journal.saved payload", "error", err)
		return
	}

	userID, err := uuid.Parse(evt.UserID)
	if err != nil {
		inv.logger.Warn("journal.saved with invalid user id", "user_id", evt.UserID, "error", err)
		return
	}

	inv.cache.Delete(context.Background(), cache.UserKeys(userID)...)
	inv.logger.Debug("cache invalidated", "user_id", evt.UserID, "date", evt.Date)
}
