package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetProfileName returns the display name for a user, or "" when no profile
// row exists. Callers decide the fallback (email, "User", ...).
func (s *Store) GetProfileName(ctx context.Context, userID uuid.UUID) (string, error) {
	var name *string
	err := s.pool.QueryRow(ctx, `
		SELECT name FROM profiles WHERE id = $1`, userID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get profile name: %w", err)
	}
	if name == nil {
		return "", nil
	}
	return *name, nil
}
