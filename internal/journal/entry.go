// Package journal defines the typed row shape for daily journal entries and
// the ingestion boundary that turns loosely-shaped rows into strict records.
package journal

import "sort"

// Entry is one journal row: one per user per calendar date, unique on
// (user_id, date). Optional numerics are pointers so that an absent field is
// distinguishable from zero; derived statistics must skip nil fields, never
// coerce them.
type Entry struct {
	Date                   string   `json:"date"`
	Mood                   *float64 `json:"mood,omitempty"`
	SleepHours             *float64 `json:"sleep_hours,omitempty"`
	SleepQuality           string   `json:"sleep_quality,omitempty"`
	Exercise               []string `json:"exercise,omitempty"`
	Productivity           *float64 `json:"productivity,omitempty"`
	ProductivityComparison string   `json:"productivity_comparison,omitempty"`
	Overthinking           *float64 `json:"overthinking,omitempty"`
	StressLevel            *float64 `json:"stress_level,omitempty"`
	DietStatus             string   `json:"diet_status,omitempty"`
	SocialTime             string   `json:"social_time,omitempty"`
	NegativeThoughts       string   `json:"negative_thoughts,omitempty"`
	NegativeThoughtsDetail string   `json:"negative_thoughts_detail,omitempty"`
	ScreenWork             *float64 `json:"screen_work,omitempty"`
	ScreenEntertainment    *float64 `json:"screen_entertainment,omitempty"`
	StressTriggers         string   `json:"stress_triggers,omitempty"`
	MainChallenges         string   `json:"main_challenges,omitempty"`
	DailySummary           string   `json:"daily_summary,omitempty"`
	SpecialDay             string   `json:"special_day,omitempty"`
	DealBreaker            string   `json:"deal_breaker,omitempty"`
	CaffeineIntake         string   `json:"caffeine_intake,omitempty"`
	TimeOutdoors           string   `json:"time_outdoors,omitempty"`
}

// Exercised reports whether the day logged any exercise activity.
func (e Entry) Exercised() bool {
	return len(e.Exercise) > 0
}

// SortByDate orders entries ascending by date in place. ISO YYYY-MM-DD sorts
// lexicographically the same as chronologically, so a plain string compare is
// enough.
func SortByDate(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}

// Observation is the minimal per-day shape the summary builder consumes.
// Nil means the field was absent or malformed on the source row.
type Observation struct {
	Date       string
	Mood       *float64
	Stress     *float64
	SleepHours *float64
	Exercised  *bool
}

// Observations projects entries into summary-builder observations. The
// exercised flag is always decidable for a typed entry, so it is set on every
// observation.
func Observations(entries []Entry) []Observation {
	obs := make([]Observation, 0, len(entries))
	for _, e := range entries {
		ex := e.Exercised()
		obs = append(obs, Observation{
			Date:       e.Date,
			Mood:       e.Mood,
			Stress:     e.StressLevel,
			SleepHours: e.SleepHours,
			Exercised:  &ex,
		})
	}
	return obs
}
