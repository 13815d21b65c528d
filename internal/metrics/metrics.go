// Package metrics holds the numeric primitives shared by the summary and
// report builders. All functions are pure; callers pass series already
// ordered the way they want them interpreted (chronological, usually).
package metrics

import "math"

// Trend classifies the direction of a metric over a window.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// RiskLevel is the coarse risk classification on a summary.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Average returns the arithmetic mean rounded to two decimals, or nil for an
// empty series. Never divides by zero.
func Average(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := Round2(sum / float64(len(values)))
	return &avg
}

// TrendOf splits the series at floor(n/2), compares the half averages, and
// classifies against a ±0.3 threshold. Fewer than 4 values is not enough
// signal and reads as flat. The extra element of an uneven split lands in the
// second half.
func TrendOf(values []float64) Trend {
	if len(values) < 4 {
		return TrendFlat
	}

	mid := len(values) / 2
	firstAvg := Average(values[:mid])
	secondAvg := Average(values[mid:])
	if firstAvg == nil || secondAvg == nil {
		return TrendFlat
	}

	diff := *secondAvg - *firstAvg
	switch {
	case diff > 0.3:
		return TrendUp
	case diff < -0.3:
		return TrendDown
	default:
		return TrendFlat
	}
}

// Volatility returns the population standard deviation (divide by n, not
// n−1), rounded to two decimals. Nil under 2 values.
func Volatility(values []float64) *float64 {
	if len(values) < 2 {
		return nil
	}
	avg := Average(values)
	if avg == nil {
		return nil
	}

	var sum float64
	for _, v := range values {
		d := v - *avg
		sum += d * d
	}
	vol := Round2(math.Sqrt(sum / float64(len(values))))
	return &vol
}

// SleepConsistency is the inverse of sleep-hours volatility on a 0–10 scale:
// max(0, 10 − volatility). Nil when volatility is undecidable.
func SleepConsistency(values []float64) *float64 {
	vol := Volatility(values)
	if vol == nil {
		return nil
	}
	c := Round2(math.Max(0, 10-*vol))
	return &c
}

// Correlation returns the Pearson correlation coefficient of two paired
// series, rounded to two decimals. Nil when lengths differ, fewer than 3
// pairs exist, or either series has zero variance.
func Correlation(x, y []float64) *float64 {
	if len(x) != len(y) || len(x) < 3 {
		return nil
	}
	meanX := Average(x)
	meanY := Average(y)
	if meanX == nil || meanY == nil {
		return nil
	}

	var numerator, denomX, denomY float64
	for i := range x {
		dx := x[i] - *meanX
		dy := y[i] - *meanY
		numerator += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}

	denominator := math.Sqrt(denomX * denomY)
	if denominator == 0 {
		return nil
	}
	r := Round2(numerator / denominator)
	return &r
}

// Risk accumulates a score from independent thresholds and maps it to a
// level. Thresholds are load-bearing for existing callers; do not retune:
//
//	mood trend down        +2
//	mood volatility > 2    +1
//	sleep average < 6      +1
//	stress average > 7     +1
//
// score ≥ 4 → high, ≥ 2 → moderate, else low.
func Risk(moodTrend Trend, moodVolatility, sleepAvg, stressAvg *float64) RiskLevel {
	score := 0
	if moodTrend == TrendDown {
		score += 2
	}
	if moodVolatility != nil && *moodVolatility > 2 {
		score++
	}
	if sleepAvg != nil && *sleepAvg < 6 {
		score++
	}
	if stressAvg != nil && *stressAvg > 7 {
		score++
	}

	switch {
	case score >= 4:
		return RiskHigh
	case score >= 2:
		return RiskModerate
	default:
		return RiskLow
	}
}
