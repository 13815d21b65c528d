package store

import (
	"testing"
)

// fakeRows feeds canned column values through scanEntries.
type fakeRows struct {
	rows [][]any
	idx  int
}

func (f *fakeRows) Next() bool {
	if f.idx >= len(f.rows) {
		return false
	}
	f.idx++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.rows[f.idx-1]
	for i, d := range dest {
		switch v := row[i].(type) {
		case string:
			*d.(*string) = v
		case *float64:
			*d.(**float64) = v
		case *string:
			*d.(**string) = v
		case []string:
			*d.(*[]string) = v
		case nil:
			// leave zero value: NULL column
		}
	}
	return nil
}

func (f *fakeRows) Err() error { return nil }

func fv(v float64) *float64 { return &v }
func sv(v string) *string   { return &v }

func TestScanEntries(t *testing.T) {
	rows := &fakeRows{rows: [][]any{
		{
			"2025-03-01", fv(7), fv(6.5), sv("Good"), []string{"Gym"},
			fv(8), sv("Better"), fv(3), fv(4),
			sv("Good"), sv("Decent"), sv("No"), nil,
			fv(5), fv(2), nil, nil,
			sv("a fine day"), nil, nil, nil, nil,
		},
		{
			"2025-03-02", nil, nil, nil, nil,
			nil, nil, nil, nil,
			nil, nil, nil, nil,
			nil, nil, nil, nil,
			nil, nil, nil, nil, nil,
		},
	}}

	entries, err := scanEntries(rows)
	if err != nil {
		t.Fatalf("scanEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	full := entries[0]
	if full.Date != "2025-03-01" {
		t.Errorf("Date = %q", full.Date)
	}
	if full.Mood == nil || *full.Mood != 7 {
		t.Errorf("Mood = %v, want 7", full.Mood)
	}
	if !full.Exercised() {
		t.Error("expected exercised day")
	}
	if full.DietStatus != "Good" || full.SocialTime != "Decent" {
		t.Errorf("status fields = %q/%q", full.DietStatus, full.SocialTime)
	}
	if full.DailySummary != "a fine day" {
		t.Errorf("DailySummary = %q", full.DailySummary)
	}

	sparse := entries[1]
	if sparse.Mood != nil || sparse.SleepHours != nil {
		t.Errorf("NULL numerics must scan to nil: %+v", sparse)
	}
	if sparse.DietStatus != "" {
		t.Errorf("NULL text must scan to empty, got %q", sparse.DietStatus)
	}
	if sparse.Exercised() {
		t.Error("NULL exercise must not count as exercised")
	}
}

func TestNullable(t *testing.T) {
	if nullable("") != nil {
		t.Error("empty string must map to nil")
	}
	if v := nullable("x"); v == nil || *v != "x" {
		t.Errorf("nullable(x) = %v", v)
	}
	if deref(nil) != "" {
		t.Error("deref(nil) must be empty")
	}
}
