package insight

import (
	"fmt"
	"time"

	"github.com/MANASI777-hub/horizon/internal/journal"
)

// Coverage describes how much of a requested window has journal data.
type Coverage string

const (
	CoverageNone    Coverage = "none"
	CoveragePartial Coverage = "partial"
	CoverageFull    Coverage = "full"
)

// RangeMeta annotates a summary with data-coverage metadata for an explicit
// date window. It exists so a downstream narrator can be told to acknowledge
// gaps honestly instead of inferring things about missing days.
type RangeMeta struct {
	DateRange struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"dateRange"`
	DaysPresent   int      `json:"daysPresent"`
	DaysRequested int      `json:"daysRequested"`
	Coverage      Coverage `json:"coverage"`
	MissingDates  []string `json:"missingDates,omitempty"`
}

// RangeSummary is a Summary over an explicit {start, end} window rather than
// a named bucket.
type RangeSummary struct {
	Summary
	Meta RangeMeta `json:"meta"`
}

const isoDate = "2006-01-02"

// BuildRangeSummary wraps BuildSummary for an inclusive ISO date window and
// computes coverage. Missing dates are enumerated only for partial coverage;
// full and none carry no list. The metrics themselves are identical to the
// named-bucket summary.
func BuildRangeSummary(obs []journal.Observation, start, end string) (RangeSummary, error) {
	startT, err := time.Parse(isoDate, start)
	if err != nil {
		return RangeSummary{}, fmt.Errorf("parse start date: %w", err)
	}
	endT, err := time.Parse(isoDate, end)
	if err != nil {
		return RangeSummary{}, fmt.Errorf("parse end date: %w", err)
	}
	if endT.Before(startT) {
		return RangeSummary{}, fmt.Errorf("end date %s before start date %s", end, start)
	}

	// The named range is a placeholder here; the meta block carries the
	// real window semantics.
	base := BuildSummary(obs, Range30d)

	daysRequested := int(endT.Sub(startT).Hours()/24) + 1
	daysPresent := len(obs)

	coverage := CoverageNone
	switch {
	case daysPresent == 0:
		coverage = CoverageNone
	case daysPresent < daysRequested:
		coverage = CoveragePartial
	default:
		coverage = CoverageFull
	}

	meta := RangeMeta{
		DaysPresent:   daysPresent,
		DaysRequested: daysRequested,
		Coverage:      coverage,
	}
	meta.DateRange.Start = start
	meta.DateRange.End = end

	if coverage == CoveragePartial {
		present := make(map[string]bool, len(obs))
		for _, o := range obs {
			present[o.Date] = true
		}
		for d := startT; !d.After(endT); d = d.AddDate(0, 0, 1) {
			iso := d.Format(isoDate)
			if !present[iso] {
				meta.MissingDates = append(meta.MissingDates, iso)
			}
		}
	}

	return RangeSummary{Summary: base, Meta: meta}, nil
}
