package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/MANASI777-hub/horizon/internal/journal"
)

const journalColumns = `
	date::text, mood, sleep_hours, sleep_quality, exercise,
	productivity, productivity_comparison, overthinking, stress_level,
	diet_status, social_time, negative_thoughts, negative_thoughts_detail,
	screen_work, screen_entertainment, stress_triggers, main_challenges,
	daily_summary, special_day, deal_breaker, caffeine_intake, time_outdoors`

// UpsertEntry writes a journal row, replacing any existing row for the same
// (user, date). One row per user per calendar date is the table invariant.
func (s *Store) UpsertEntry(ctx context.Context, userID uuid.UUID, e journal.Entry) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO journals (
			user_id, date, mood, sleep_hours, sleep_quality, exercise,
			productivity, productivity_comparison, overthinking, stress_level,
			diet_status, social_time, negative_thoughts, negative_thoughts_detail,
			screen_work, screen_entertainment, stress_triggers, main_challenges,
			daily_summary, special_day, deal_breaker, caffeine_intake, time_outdoors,
			updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, now()
		)
		ON CONFLICT (user_id, date) DO UPDATE SET
			mood = EXCLUDED.mood,
			sleep_hours = EXCLUDED.sleep_hours,
			sleep_quality = EXCLUDED.sleep_quality,
			exercise = EXCLUDED.exercise,
			productivity = EXCLUDED.productivity,
			productivity_comparison = EXCLUDED.productivity_comparison,
			overthinking = EXCLUDED.overthinking,
			stress_level = EXCLUDED.stress_level,
			diet_status = EXCLUDED.diet_status,
			social_time = EXCLUDED.social_time,
			negative_thoughts = EXCLUDED.negative_thoughts,
			negative_thoughts_detail = EXCLUDED.negative_thoughts_detail,
			screen_work = EXCLUDED.screen_work,
			screen_entertainment = EXCLUDED.screen_entertainment,
			stress_triggers = EXCLUDED.stress_triggers,
			main_challenges = EXCLUDED.main_challenges,
			daily_summary = EXCLUDED.daily_summary,
			special_day = EXCLUDED.special_day,
			deal_breaker = EXCLUDED.deal_breaker,
			caffeine_intake = EXCLUDED.caffeine_intake,
			time_outdoors = EXCLUDED.time_outdoors,
			updated_at = now()`,
		userID, e.Date, e.Mood, e.SleepHours, nullable(e.SleepQuality), e.Exercise,
		e.Productivity, nullable(e.ProductivityComparison), e.Overthinking, e.StressLevel,
		nullable(e.DietStatus), nullable(e.SocialTime), nullable(e.NegativeThoughts),
		nullable(e.NegativeThoughtsDetail), e.ScreenWork, e.ScreenEntertainment,
		nullable(e.StressTriggers), nullable(e.MainChallenges), nullable(e.DailySummary),
		nullable(e.SpecialDay), nullable(e.DealBreaker), nullable(e.CaffeineIntake),
		nullable(e.TimeOutdoors),
	)
	if err != nil {
		return fmt.Errorf("upsert journal entry: %w", err)
	}
	return nil
}

// ListEntries returns all of a user's journal rows, oldest first.
func (s *Store) ListEntries(ctx context.Context, userID uuid.UUID) ([]journal.Entry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+journalColumns+`
		FROM journals WHERE user_id = $1
		ORDER BY date ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListEntriesSince returns a user's rows with date >= from, oldest first.
func (s *Store) ListEntriesSince(ctx context.Context, userID uuid.UUID, from string) ([]journal.Entry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+journalColumns+`
		FROM journals WHERE user_id = $1 AND date >= $2
		ORDER BY date ASC`, userID, from)
	if err != nil {
		return nil, fmt.Errorf("list journal entries since %s: %w", from, err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListEntriesBetween returns a user's rows within an inclusive date window,
// oldest first.
func (s *Store) ListEntriesBetween(ctx context.Context, userID uuid.UUID, start, end string) ([]journal.Entry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+journalColumns+`
		FROM journals WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list journal entries %s..%s: %w", start, end, err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows pgxRows) ([]journal.Entry, error) {
	var entries []journal.Entry
	for rows.Next() {
		var e journal.Entry
		var sleepQuality, prodComparison, dietStatus, socialTime *string
		var negThoughts, negThoughtsDetail, stressTriggers, mainChallenges *string
		var dailySummary, specialDay, dealBreaker, caffeineIntake, timeOutdoors *string

		if err := rows.Scan(
			&e.Date, &e.Mood, &e.SleepHours, &sleepQuality, &e.Exercise,
			&e.Productivity, &prodComparison, &e.Overthinking, &e.StressLevel,
			&dietStatus, &socialTime, &negThoughts, &negThoughtsDetail,
			&e.ScreenWork, &e.ScreenEntertainment, &stressTriggers, &mainChallenges,
			&dailySummary, &specialDay, &dealBreaker, &caffeineIntake, &timeOutdoors,
		); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}

		e.SleepQuality = deref(sleepQuality)
		e.ProductivityComparison = deref(prodComparison)
		e.DietStatus = deref(dietStatus)
		e.SocialTime = deref(socialTime)
		e.NegativeThoughts = deref(negThoughts)
		e.NegativeThoughtsDetail = deref(negThoughtsDetail)
		e.StressTriggers = deref(stressTriggers)
		e.MainChallenges = deref(mainChallenges)
		e.DailySummary = deref(dailySummary)
		e.SpecialDay = deref(specialDay)
		e.DealBreaker = deref(dealBreaker)
		e.CaffeineIntake = deref(caffeineIntake)
		e.TimeOutdoors = deref(timeOutdoors)

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}
	return entries, nil
}

// nullable maps "" to SQL NULL for optional text columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
