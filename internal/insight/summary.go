// Package insight builds the compact mental-health summary that feeds the
// dashboard overview and the narrative generator.
package insight

import (
	"sort"

	"github.com/MANASI777-hub/horizon/internal/journal"
	"github.com/MANASI777-hub/horizon/internal/metrics"
)

// TimeRange is the named summary window.
type TimeRange string

const (
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
	Range90d TimeRange = "90d"
)

// ExpectedDays returns the nominal day count for a range. Unknown ranges
// read as 7d.
func (tr TimeRange) ExpectedDays() int {
	switch tr {
	case Range30d:
		return 30
	case Range90d:
		return 90
	default:
		return 7
	}
}

// Summary is the fixed-shape statistical summary for one user and window.
// Undecidable fields are null; the builder never errors.
type Summary struct {
	TimeRange TimeRange `json:"timeRange"`

	Mood struct {
		Average    *float64      `json:"average"`
		Trend      metrics.Trend `json:"trend"`
		Volatility *float64      `json:"volatility"`
	} `json:"mood"`

	Sleep struct {
		AverageHours *float64 `json:"averageHours"`
		Consistency  *float64 `json:"consistency"`
	} `json:"sleep"`

	Stress struct {
		Average *float64      `json:"average"`
		Trend   metrics.Trend `json:"trend"`
	} `json:"stress"`

	Correlations struct {
		SleepMood      *float64 `json:"sleepMood"`
		ExerciseStress *float64 `json:"exerciseStress"`
	} `json:"correlations"`

	RiskLevel metrics.RiskLevel `json:"riskLevel"`

	DataQuality struct {
		DaysPresent int  `json:"daysPresent"`
		DaysMissing int  `json:"daysMissing"`
		Sufficient  bool `json:"sufficient"`
	} `json:"dataQuality"`
}

// BuildSummary computes the summary for a set of daily observations. The
// input need not be ordered; it is sorted ascending by ISO date first so the
// trend halves line up chronologically.
//
// Correlations are paired: a day missing either side of a pair is dropped
// from both series at the same index. The per-metric averages are not paired
// — each filters its own field independently.
func BuildSummary(obs []journal.Observation, tr TimeRange) Summary {
	sorted := make([]journal.Observation, len(obs))
	copy(sorted, obs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	var moodValues, sleepValues, stressValues []float64
	for _, o := range sorted {
		if o.Mood != nil {
			moodValues = append(moodValues, *o.Mood)
		}
		if o.SleepHours != nil {
			sleepValues = append(sleepValues, *o.SleepHours)
		}
		if o.Stress != nil {
			stressValues = append(stressValues, *o.Stress)
		}
	}

	var s Summary
	s.TimeRange = tr

	s.Mood.Average = metrics.Average(moodValues)
	s.Mood.Trend = metrics.TrendOf(moodValues)
	s.Mood.Volatility = metrics.Volatility(moodValues)

	s.Sleep.AverageHours = metrics.Average(sleepValues)
	s.Sleep.Consistency = metrics.SleepConsistency(sleepValues)

	s.Stress.Average = metrics.Average(stressValues)
	s.Stress.Trend = metrics.TrendOf(stressValues)

	// Paired series: sleep vs mood on days where both exist.
	var sleepPaired, moodPaired []float64
	for _, o := range sorted {
		if o.SleepHours != nil && o.Mood != nil {
			sleepPaired = append(sleepPaired, *o.SleepHours)
			moodPaired = append(moodPaired, *o.Mood)
		}
	}
	s.Correlations.SleepMood = metrics.Correlation(sleepPaired, moodPaired)

	// Paired series: exercised (as 1/0) vs stress.
	var exerciseBinary, stressPaired []float64
	for _, o := range sorted {
		if o.Stress != nil && o.Exercised != nil {
			if *o.Exercised {
				exerciseBinary = append(exerciseBinary, 1)
			} else {
				exerciseBinary = append(exerciseBinary, 0)
			}
			stressPaired = append(stressPaired, *o.Stress)
		}
	}
	s.Correlations.ExerciseStress = metrics.Correlation(exerciseBinary, stressPaired)

	s.RiskLevel = metrics.Risk(s.Mood.Trend, s.Mood.Volatility, s.Sleep.AverageHours, s.Stress.Average)

	expected := tr.ExpectedDays()
	present := len(sorted)
	s.DataQuality.DaysPresent = present
	s.DataQuality.DaysMissing = max(0, expected-present)
	// 60% coverage is the single gate callers use to suppress narration.
	s.DataQuality.Sufficient = present >= expected*6/10

	return s
}
