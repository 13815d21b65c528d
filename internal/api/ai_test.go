package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MANASI777-hub/horizon/internal/journal"
	"github.com/MANASI777-hub/horizon/internal/narrative"
)

func fp(v float64) *float64 { return &v }

// weekOfEntries builds a full seven-day window ending at the fixed clock.
func weekOfEntries() []journal.Entry {
	dates := []string{
		"2025-03-09", "2025-03-10", "2025-03-11", "2025-03-12",
		"2025-03-13", "2025-03-14", "2025-03-15",
	}
	entries := make([]journal.Entry, 0, len(dates))
	for i, d := range dates {
		entries = append(entries, journal.Entry{
			Date:        d,
			Mood:        fp(float64(4 + i%3)),
			SleepHours:  fp(7),
			StressLevel: fp(4),
		})
	}
	return entries
}

func TestAIOverview_InsufficientData(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"should not be called"}}
	srv := newTestServer(&fakeStore{}, gen, nil)

	w := doRequest(srv, "POST", "/api/ai/overview", `{"timeRange": "7d"}`, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	var body overviewResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Explanation != narrative.InsufficientDataMessage {
		t.Errorf("explanation = %q, want the insufficient-data message", body.Explanation)
	}
	if gen.calls != 0 {
		t.Errorf("model was called %d times on sparse data", gen.calls)
	}
}

func TestAIOverview_NarratesSufficientData(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"Your mood held steady this week."}}
	srv := newTestServer(&fakeStore{entries: weekOfEntries()}, gen, nil)

	w := doRequest(srv, "POST", "/api/ai/overview", `{"timeRange": "7d"}`, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	var body overviewResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Explanation != "Your mood held steady this week." {
		t.Errorf("explanation = %q", body.Explanation)
	}
	if !body.Summary.DataQuality.Sufficient {
		t.Error("expected sufficient data quality with a full week")
	}
}

func TestAIOverview_UnknownRangeFallsBackTo7d(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"ok"}}
	srv := newTestServer(&fakeStore{entries: weekOfEntries()}, gen, nil)

	w := doRequest(srv, "POST", "/api/ai/overview", `{"timeRange": "2y"}`, true)
	var body overviewResponse
	json.NewDecoder(w.Body).Decode(&body)
	if body.Summary.TimeRange != "7d" {
		t.Errorf("timeRange = %q, want 7d fallback", body.Summary.TimeRange)
	}
}

func TestAIChat_KeywordDenylist(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"should not be called"}}
	srv := newTestServer(&fakeStore{entries: weekOfEntries()}, gen, nil)

	w := doRequest(srv, "POST", "/api/ai/chat", `{"message": "what is the weather today"}`, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	var body chatResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Reply != narrative.OutOfScopeReply {
		t.Errorf("reply = %q, want canned refusal", body.Reply)
	}
	if gen.calls != 0 {
		t.Errorf("model was called %d times on a denylisted message", gen.calls)
	}
}

func TestAIChat_ClassifierRefusal(t *testing.T) {
	// First call is the intent classifier; "out_of_scope" short-circuits
	// before any journal fetch or reply generation.
	gen := &scriptedGenerator{replies: []string{"out_of_scope"}}
	srv := newTestServer(&fakeStore{entries: weekOfEntries()}, gen, nil)

	w := doRequest(srv, "POST", "/api/ai/chat", `{"message": "help me fix my taxes"}`, true)
	var body chatResponse
	json.NewDecoder(w.Body).Decode(&body)
	if body.Reply != narrative.OutOfScopeReply {
		t.Errorf("reply = %q, want canned refusal", body.Reply)
	}
	if gen.calls != 1 {
		t.Errorf("model calls = %d, want classifier only", gen.calls)
	}
}

func TestAIChat_ReflectionTurn(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"reflection", "You slept well most nights."}}
	srv := newTestServer(&fakeStore{entries: weekOfEntries()}, gen, nil)

	w := doRequest(srv, "POST", "/api/ai/chat", `{"message": "how has my sleep been"}`, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	var body chatResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Reply != "You slept well most nights." {
		t.Errorf("reply = %q", body.Reply)
	}
	if len(body.NextContext.Messages) != 2 {
		t.Fatalf("context has %d messages, want user+assistant", len(body.NextContext.Messages))
	}
	if body.NextContext.Messages[0].Role != "user" || body.NextContext.Messages[1].Role != "assistant" {
		t.Errorf("context roles = %q, %q", body.NextContext.Messages[0].Role, body.NextContext.Messages[1].Role)
	}
}

func TestReportEndpoint(t *testing.T) {
	srv := newTestServer(&fakeStore{entries: weekOfEntries()}, nil, nil)

	w := doRequest(srv, "GET", "/api/report?days=7", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	var body struct {
		Meta struct {
			TotalDays int    `json:"totalDays"`
			From      string `json:"from"`
			To        string `json:"to"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Meta.From != "2025-03-08" || body.Meta.To != "2025-03-15" {
		t.Errorf("range = %s..%s", body.Meta.From, body.Meta.To)
	}
	if body.Meta.TotalDays != 7 {
		t.Errorf("totalDays = %d, want 7", body.Meta.TotalDays)
	}
}
