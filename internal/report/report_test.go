package report

import (
	"reflect"
	"testing"

	"github.com/MANASI777-hub/horizon/internal/journal"
	"github.com/MANASI777-hub/horizon/internal/metrics"
)

func f(v float64) *float64 { return &v }

func moodEntry(date string, mood float64) journal.Entry {
	return journal.Entry{Date: date, Mood: f(mood)}
}

func TestBuild_Empty(t *testing.T) {
	p := Build(nil, "2025-01-01", "2025-03-01")

	if p.Meta.TotalDays != 0 {
		t.Errorf("TotalDays = %d, want 0", p.Meta.TotalDays)
	}
	if p.Averages.Mood != nil || p.Averages.SleepHours != nil {
		t.Errorf("averages = %+v, want all nil", p.Averages)
	}
	if len(p.Habits) != 0 || len(p.Trends) != 0 || len(p.BestDays) != 0 || len(p.WorstDays) != 0 {
		t.Errorf("lists must be empty: %+v", p)
	}
	if p.Risk.MoodVolatility != 0 {
		t.Errorf("MoodVolatility = %d, want 0", p.Risk.MoodVolatility)
	}
	if p.Risk.SleepRegularity != 100 {
		t.Errorf("SleepRegularity = %d, want 100", p.Risk.SleepRegularity)
	}
	if p.Risk.Overall != StabilityStable {
		t.Errorf("Overall = %q, want stable", p.Risk.Overall)
	}
	if len(p.Insights) != 0 {
		t.Errorf("Insights = %v, want none", p.Insights)
	}
	// Nothing to flag means exactly the fallback recommendation.
	want := []string{"Maintain your current routines; consistency is key to your recent stability."}
	if !reflect.DeepEqual(p.Recommendations, want) {
		t.Errorf("Recommendations = %v, want fallback only", p.Recommendations)
	}
}

func TestBuild_BestWorstDays(t *testing.T) {
	entries := []journal.Entry{
		moodEntry("2025-03-01", 2),
		moodEntry("2025-03-02", 9),
		moodEntry("2025-03-03", 5),
		moodEntry("2025-03-04", 1),
		moodEntry("2025-03-05", 8),
	}

	p := Build(entries, "2025-03-01", "2025-03-05")

	gotBest := []float64{p.BestDays[0].Mood, p.BestDays[1].Mood, p.BestDays[2].Mood}
	if !reflect.DeepEqual(gotBest, []float64{9, 8, 5}) {
		t.Errorf("best moods = %v, want [9 8 5]", gotBest)
	}
	gotWorst := []float64{p.WorstDays[0].Mood, p.WorstDays[1].Mood, p.WorstDays[2].Mood}
	if !reflect.DeepEqual(gotWorst, []float64{1, 2, 5}) {
		t.Errorf("worst moods = %v, want [1 2 5]", gotWorst)
	}
}

func TestBuild_DayNotes(t *testing.T) {
	e := journal.Entry{
		Date:         "2025-03-01",
		Mood:         f(4),
		SleepHours:   f(5),
		StressLevel:  f(8),
		Productivity: f(9),
		Overthinking: f(7),
	}
	p := Build([]journal.Entry{e}, "2025-03-01", "2025-03-01")

	want := []string{"Low sleep", "High stress", "High productivity", "High overthinking"}
	if !reflect.DeepEqual(p.BestDays[0].Notes, want) {
		t.Errorf("notes = %v, want %v (check order)", p.BestDays[0].Notes, want)
	}
}

func TestBuild_DayNotesThresholdEdges(t *testing.T) {
	// Exactly-at-threshold values: sleep 6 and stress 6 do not trigger,
	// productivity 7 does.
	e := journal.Entry{
		Date:         "2025-03-01",
		Mood:         f(5),
		SleepHours:   f(6),
		StressLevel:  f(6),
		Productivity: f(7),
	}
	p := Build([]journal.Entry{e}, "2025-03-01", "2025-03-01")

	want := []string{"High productivity"}
	if !reflect.DeepEqual(p.BestDays[0].Notes, want) {
		t.Errorf("notes = %v, want %v", p.BestDays[0].Notes, want)
	}
}

func TestBuild_MissingSleepDefaultsToZeroInDaySummary(t *testing.T) {
	p := Build([]journal.Entry{moodEntry("2025-03-01", 6)}, "2025-03-01", "2025-03-01")
	if p.BestDays[0].SleepHours != 0 {
		t.Errorf("SleepHours = %v, want 0 default", p.BestDays[0].SleepHours)
	}
}

func TestHabitTrendBySplit(t *testing.T) {
	ex := func(date string, exercised bool) journal.Entry {
		e := journal.Entry{Date: date, Mood: f(5)}
		if exercised {
			e.Exercise = []string{"Gym"}
		}
		return e
	}

	// Exercise every day in the first half, never in the second:
	// 100% → 0% is a -100 point swing, well past the -5 threshold.
	var entries []journal.Entry
	dates := []string{
		"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04", "2025-03-05",
		"2025-03-06", "2025-03-07", "2025-03-08", "2025-03-09", "2025-03-10",
	}
	for i, d := range dates {
		entries = append(entries, ex(d, i < 5))
	}

	p := Build(entries, "2025-03-01", "2025-03-10")
	if len(p.Habits) != 1 {
		t.Fatalf("habits = %v, want one", p.Habits)
	}
	h := p.Habits[0]
	if h.Name != "Exercise" {
		t.Errorf("habit name = %q", h.Name)
	}
	if h.Consistency != 50 {
		t.Errorf("consistency = %d, want 50", h.Consistency)
	}
	if h.Trend != metrics.TrendDown {
		t.Errorf("trend = %q, want down", h.Trend)
	}
}

func TestBuild_RiskBlock(t *testing.T) {
	// Moods alternate 2 and 8: every delta is 6, mean delta 6, ×20 clamps
	// to 100. Sleep swings by 2 each day: Σ|Δ| = 6, regularity 100−60 = 40.
	entries := []journal.Entry{
		{Date: "2025-03-01", Mood: f(2), SleepHours: f(5)},
		{Date: "2025-03-02", Mood: f(8), SleepHours: f(7)},
		{Date: "2025-03-03", Mood: f(2), SleepHours: f(5)},
		{Date: "2025-03-04", Mood: f(8), SleepHours: f(7)},
	}

	p := Build(entries, "2025-03-01", "2025-03-04")

	if p.Risk.MoodVolatility != 100 {
		t.Errorf("MoodVolatility = %d, want 100", p.Risk.MoodVolatility)
	}
	if p.Risk.SleepRegularity != 40 {
		t.Errorf("SleepRegularity = %d, want 40", p.Risk.SleepRegularity)
	}
	if p.Risk.StressConsistency != 0 {
		t.Errorf("StressConsistency = %d, want 100-volatility = 0", p.Risk.StressConsistency)
	}
	if p.Risk.Overall != StabilityHigh {
		t.Errorf("Overall = %q, want high", p.Risk.Overall)
	}
}

func TestOverallStability_Boundaries(t *testing.T) {
	tests := []struct {
		vol  int
		want Stability
	}{
		{0, StabilityStable},
		{35, StabilityStable},
		{36, StabilityModerate},
		{60, StabilityModerate},
		{61, StabilityHigh},
	}
	for _, tt := range tests {
		if got := overallStability(tt.vol); got != tt.want {
			t.Errorf("overallStability(%d) = %q, want %q", tt.vol, got, tt.want)
		}
	}
}

func TestBuild_InsightRules(t *testing.T) {
	// Calm high-mood week: only the high-mood insight fires.
	var entries []journal.Entry
	dates := []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04"}
	for _, d := range dates {
		entries = append(entries, journal.Entry{
			Date:         d,
			Mood:         f(8),
			SleepHours:   f(7.5),
			StressLevel:  f(3),
			Overthinking: f(2),
			Exercise:     []string{"Running"},
		})
	}

	p := Build(entries, "2025-03-01", "2025-03-04")

	if len(p.Insights) != 1 {
		t.Fatalf("insights = %v, want exactly the high-mood one", p.Insights)
	}
	if p.Insights[0].Confidence != "medium" {
		t.Errorf("confidence = %q, want medium", p.Insights[0].Confidence)
	}

	// Calm week also means exactly the fallback recommendation.
	want := []string{"Maintain your current routines; consistency is key to your recent stability."}
	if !reflect.DeepEqual(p.Recommendations, want) {
		t.Errorf("Recommendations = %v, want fallback only", p.Recommendations)
	}
}

func TestBuild_StressedSleeplessWindow(t *testing.T) {
	// Low sleep + high stress + no exercise fires the corresponding
	// insight and recommendation rules.
	var entries []journal.Entry
	dates := []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04"}
	for _, d := range dates {
		entries = append(entries, journal.Entry{
			Date:        d,
			Mood:        f(4),
			SleepHours:  f(5),
			StressLevel: f(8),
		})
	}

	p := Build(entries, "2025-03-01", "2025-03-04")

	texts := make([]string, len(p.Insights))
	for i, in := range p.Insights {
		texts[i] = in.Text
	}
	wantTexts := []string{
		"Your average sleep duration is low. Poor sleep may be affecting mood and focus.",
		"Stress levels have been consistently high during this period.",
	}
	if !reflect.DeepEqual(texts, wantTexts) {
		t.Errorf("insight texts = %v, want %v", texts, wantTexts)
	}

	wantRecs := []string{
		"Prioritize a consistent sleep schedule to improve cognitive function.",
		"Incorporate short mindfulness or breathing exercises during high-stress windows.",
		"Increasing physical activity frequency may help stabilize your mood.",
	}
	if !reflect.DeepEqual(p.Recommendations, wantRecs) {
		t.Errorf("Recommendations = %v, want %v", p.Recommendations, wantRecs)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	entries := []journal.Entry{
		{Date: "2025-03-02", Mood: f(6), SleepHours: f(7), Exercise: []string{"Gym"}},
		{Date: "2025-03-01", Mood: f(3), StressLevel: f(8)},
	}

	first := Build(entries, "2025-03-01", "2025-03-02")
	second := Build(entries, "2025-03-01", "2025-03-02")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated builds differ:\n%+v\n%+v", first, second)
	}
}

func TestBuild_SortsInput(t *testing.T) {
	entries := []journal.Entry{
		moodEntry("2025-03-03", 7),
		moodEntry("2025-03-01", 3),
		moodEntry("2025-03-02", 5),
	}

	p := Build(entries, "2025-03-01", "2025-03-03")

	gotDates := []string{p.Trends[0].Date, p.Trends[1].Date, p.Trends[2].Date}
	want := []string{"2025-03-01", "2025-03-02", "2025-03-03"}
	if !reflect.DeepEqual(gotDates, want) {
		t.Errorf("trend dates = %v, want sorted %v", gotDates, want)
	}
}
