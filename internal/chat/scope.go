package chat

import "strings"

// Scope is the cheap pre-LLM filter for obviously off-topic questions.
type Scope string

const (
	ScopeAllowed    Scope = "allowed"
	ScopeOutOfScope Scope = "out_of_scope"
)

var outOfScopeKeywords = []string{
	"weather",
	"temperature",
	"news",
	"stocks",
	"cricket",
	"football",
}

// DetectScope flags messages about topics the assistant will never answer,
// without spending an LLM call on them.
func DetectScope(message string) Scope {
	text := strings.ToLower(message)
	for _, kw := range outOfScopeKeywords {
		if strings.Contains(text, kw) {
			return ScopeOutOfScope
		}
	}
	return ScopeAllowed
}
