// Package report builds the long-form report payload: per-day trend series,
// averages, habit consistency, best/worst days, a risk block, and
// threshold-derived insights and recommendations.
package report

import (
	"math"
	"sort"

	"github.com/MANASI777-hub/horizon/internal/journal"
	"github.com/MANASI777-hub/horizon/internal/metrics"
)

// Stability is the overall classification on the risk block.
type Stability string

const (
	StabilityStable   Stability = "stable"
	StabilityModerate Stability = "moderate"
	StabilityHigh     Stability = "high"
)

type Meta struct {
	TotalDays int    `json:"totalDays"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// Averages are independent per-metric means: each filters its own field,
// unlike the summary builder's paired correlations.
type Averages struct {
	Mood         *float64 `json:"mood"`
	SleepHours   *float64 `json:"sleep_hours"`
	Productivity *float64 `json:"productivity"`
	StressLevel  *float64 `json:"stress_level"`
	Overthinking *float64 `json:"overthinking"`
}

type Habit struct {
	Name        string        `json:"name"`
	Consistency int           `json:"consistency"`
	Trend       metrics.Trend `json:"trend"`
}

// TrendPoint carries the raw per-day metrics, null-propagated.
type TrendPoint struct {
	Date         string   `json:"date"`
	Mood         *float64 `json:"mood"`
	Sleep        *float64 `json:"sleep"`
	Stress       *float64 `json:"stress"`
	Productivity *float64 `json:"productivity"`
}

type DaySummary struct {
	Date       string   `json:"date"`
	Mood       float64  `json:"mood"`
	SleepHours float64  `json:"sleepHours"`
	Notes      []string `json:"notes"`
}

type Risk struct {
	MoodVolatility    int       `json:"moodVolatility"`
	SleepRegularity   int       `json:"sleepRegularity"`
	StressConsistency int       `json:"stressConsistency"`
	Overall           Stability `json:"overall"`
}

type Insight struct {
	Text       string `json:"text"`
	Confidence string `json:"confidence"`
}

type Payload struct {
	Meta            Meta         `json:"meta"`
	Averages        Averages     `json:"averages"`
	Habits          []Habit      `json:"habits"`
	Trends          []TrendPoint `json:"trends"`
	BestDays        []DaySummary `json:"bestDays"`
	WorstDays       []DaySummary `json:"worstDays"`
	Risk            Risk         `json:"risk"`
	Insights        []Insight    `json:"insights"`
	Recommendations []string     `json:"recommendations"`
}

// Build computes the report payload for entries already filtered to the
// requested window. The from/to stamps come from the caller so the builder
// stays clock-free and deterministic. Empty input degrades to totalDays 0,
// nil averages and empty lists; nothing here panics on sparse data.
func Build(entries []journal.Entry, from, to string) Payload {
	sorted := make([]journal.Entry, len(entries))
	copy(sorted, entries)
	journal.SortByDate(sorted)

	totalDays := len(sorted)

	trends := make([]TrendPoint, 0, totalDays)
	for _, e := range sorted {
		trends = append(trends, TrendPoint{
			Date:         e.Date,
			Mood:         e.Mood,
			Sleep:        e.SleepHours,
			Stress:       e.StressLevel,
			Productivity: e.Productivity,
		})
	}

	averages := Averages{
		Mood:         fieldAverage(sorted, func(e journal.Entry) *float64 { return e.Mood }),
		SleepHours:   fieldAverage(sorted, func(e journal.Entry) *float64 { return e.SleepHours }),
		Productivity: fieldAverage(sorted, func(e journal.Entry) *float64 { return e.Productivity }),
		StressLevel:  fieldAverage(sorted, func(e journal.Entry) *float64 { return e.StressLevel }),
		Overthinking: fieldAverage(sorted, func(e journal.Entry) *float64 { return e.Overthinking }),
	}

	habits := buildHabits(sorted)

	moodDays := make([]journal.Entry, 0, totalDays)
	for _, e := range sorted {
		if e.Mood != nil {
			moodDays = append(moodDays, e)
		}
	}
	bestDays := pickDays(moodDays, func(a, b journal.Entry) bool { return *a.Mood > *b.Mood })
	worstDays := pickDays(moodDays, func(a, b journal.Entry) bool { return *a.Mood < *b.Mood })

	moodValues := make([]float64, len(moodDays))
	for i, e := range moodDays {
		moodValues[i] = *e.Mood
	}
	var sleepValues []float64
	for _, e := range sorted {
		if e.SleepHours != nil {
			sleepValues = append(sleepValues, *e.SleepHours)
		}
	}

	moodVolatility := moodVolatilityScore(moodValues)
	risk := Risk{
		MoodVolatility:    moodVolatility,
		SleepRegularity:   sleepRegularityScore(sleepValues),
		StressConsistency: stressConsistencyScore(moodVolatility),
		Overall:           overallStability(moodVolatility),
	}

	return Payload{
		Meta:            Meta{TotalDays: totalDays, From: from, To: to},
		Averages:        averages,
		Habits:          habits,
		Trends:          trends,
		BestDays:        bestDays,
		WorstDays:       worstDays,
		Risk:            risk,
		Insights:        buildInsights(averages, moodVolatility),
		Recommendations: buildRecommendations(averages, moodVolatility, habits),
	}
}

func fieldAverage(entries []journal.Entry, field func(journal.Entry) *float64) *float64 {
	var values []float64
	for _, e := range entries {
		if v := field(e); v != nil {
			values = append(values, *v)
		}
	}
	return metrics.Average(values)
}

// buildHabits computes consistency and trend for the tracked habits.
// Currently only exercise is tracked, but the payload shape is a list.
func buildHabits(sorted []journal.Entry) []Habit {
	habits := make([]Habit, 0, 1)
	if len(sorted) == 0 {
		return habits
	}

	exerciseDays := 0
	for _, e := range sorted {
		if e.Exercised() {
			exerciseDays++
		}
	}
	consistency := int(math.Round(float64(exerciseDays) / float64(len(sorted)) * 100))

	habits = append(habits, Habit{
		Name:        "Exercise",
		Consistency: consistency,
		Trend:       habitTrendBySplit(sorted),
	})
	return habits
}

// habitTrendBySplit classifies the habit trend by splitting the date-sorted
// window at its midpoint and comparing exercise-day percentages with a ±5
// point threshold. Deliberately distinct from metrics.TrendOf: the two
// classifiers have independent thresholds and existing consumers rely on
// both behaviors.
func habitTrendBySplit(sorted []journal.Entry) metrics.Trend {
	midpoint := len(sorted) / 2
	diff := exercisePercent(sorted[midpoint:]) - exercisePercent(sorted[:midpoint])

	switch {
	case diff > 5:
		return metrics.TrendUp
	case diff < -5:
		return metrics.TrendDown
	default:
		return metrics.TrendFlat
	}
}

func exercisePercent(days []journal.Entry) float64 {
	if len(days) == 0 {
		return 0
	}
	count := 0
	for _, e := range days {
		if e.Exercised() {
			count++
		}
	}
	return float64(count) / float64(len(days)) * 100
}

// pickDays takes the top 3 mood-bearing days under the given ordering and
// annotates each with threshold notes.
func pickDays(moodDays []journal.Entry, less func(a, b journal.Entry) bool) []DaySummary {
	picked := make([]journal.Entry, len(moodDays))
	copy(picked, moodDays)
	sort.SliceStable(picked, func(i, j int) bool { return less(picked[i], picked[j]) })

	if len(picked) > 3 {
		picked = picked[:3]
	}

	out := make([]DaySummary, 0, len(picked))
	for _, e := range picked {
		out = append(out, toDaySummary(e))
	}
	return out
}

func toDaySummary(e journal.Entry) DaySummary {
	notes := []string{}
	if e.SleepHours != nil && *e.SleepHours < 6 {
		notes = append(notes, "Low sleep")
	}
	if e.StressLevel != nil && *e.StressLevel > 6 {
		notes = append(notes, "High stress")
	}
	if e.Productivity != nil && *e.Productivity >= 7 {
		notes = append(notes, "High productivity")
	}
	if e.Overthinking != nil && *e.Overthinking > 6 {
		notes = append(notes, "High overthinking")
	}

	sleepHours := 0.0
	if e.SleepHours != nil {
		sleepHours = *e.SleepHours
	}
	mood := 0.0
	if e.Mood != nil {
		mood = *e.Mood
	}

	return DaySummary{
		Date:       e.Date,
		Mood:       mood,
		SleepHours: sleepHours,
		Notes:      notes,
	}
}

// moodVolatilityScore scales the mean absolute day-over-day mood delta
// by 20 and clamps to [0, 100]. Zero when fewer than 2 mood days exist.
func moodVolatilityScore(moodValues []float64) int {
	if len(moodValues) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(moodValues); i++ {
		sum += math.Abs(moodValues[i] - moodValues[i-1])
	}
	score := int(math.Round(sum / float64(len(moodValues)-1) * 20))
	if score > 100 {
		return 100
	}
	return score
}

// sleepRegularityScore is 100 minus ten times the summed day-over-day sleep
// delta, floored at 0, defaulting to 100 under 2 sleep days. The delta sum
// is NOT normalized by day count, so the score shrinks with window length;
// that asymmetry with moodVolatilityScore is deliberate and kept isolated
// here so a fix stays a one-line change.
func sleepRegularityScore(sleepValues []float64) int {
	if len(sleepValues) < 2 {
		return 100
	}
	var sum float64
	for i := 1; i < len(sleepValues); i++ {
		sum += math.Abs(sleepValues[i] - sleepValues[i-1])
	}
	score := 100 - int(math.Round(sum*10))
	if score < 0 {
		return 0
	}
	return score
}

// stressConsistencyScore is defined as 100 minus mood volatility. It is not
// derived from stress data despite its name; kept as-is so existing clients
// see the same numbers.
func stressConsistencyScore(moodVolatility int) int {
	return 100 - moodVolatility
}

func overallStability(moodVolatility int) Stability {
	switch {
	case moodVolatility > 60:
		return StabilityHigh
	case moodVolatility > 35:
		return StabilityModerate
	default:
		return StabilityStable
	}
}
