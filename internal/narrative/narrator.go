// Package narrative turns summary payloads into natural-language text via
// the generative model. Every number the model may mention is computed
// upstream; prompts forbid it from deriving anything new.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MANASI777-hub/horizon/internal/chat"
	"github.com/MANASI777-hub/horizon/internal/insight"
)

// InsufficientDataMessage is returned instead of a generated narrative when
// the summary fails the data-sufficiency gate. Callers must check the gate
// before generating; sparse data is never sent to the model.
const InsufficientDataMessage = "There isn't enough consistent data yet to generate meaningful insights. Keep journaling regularly, and I'll be able to reflect patterns soon."

// OutOfScopeReply is the canned reply for messages the assistant refuses.
const OutOfScopeReply = "I can't help with that — but I'm here to talk about how you're feeling."

// Generator is the text-generation boundary. Satisfied by *gemini.Client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Intent classifies a chat message.
type Intent string

const (
	IntentHuman      Intent = "human"
	IntentReflection Intent = "reflection"
	IntentOutOfScope Intent = "out_of_scope"
)

type Narrator struct {
	gen    Generator
	logger *slog.Logger
}

func New(gen Generator, logger *slog.Logger) *Narrator {
	return &Narrator{gen: gen, logger: logger}
}

// Overview narrates a statistical summary. The caller is expected to have
// already checked summary.DataQuality.Sufficient.
func (n *Narrator) Overview(ctx context.Context, summary insight.Summary) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}

	text, err := n.gen.Generate(ctx, fmt.Sprintf(overviewPrompt, data))
	if err != nil {
		return "", fmt.Errorf("overview generation: %w", err)
	}

	n.logger.Info("overview narrated", "time_range", summary.TimeRange, "chars", len(text))
	return text, nil
}

// ChatReply narrates a chat turn: history plus range summary plus the
// current message.
func (n *Narrator) ChatReply(ctx context.Context, history []chat.Message, summary insight.RangeSummary, userMessage string) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal range summary: %w", err)
	}

	historyText := formatHistory(history)
	text, err := n.gen.Generate(ctx, fmt.Sprintf(chatPrompt, historyText, data, userMessage))
	if err != nil {
		return "", fmt.Errorf("chat generation: %w", err)
	}
	return text, nil
}

// ClassifyIntent asks the model to bucket a message. Unrecognized output
// falls through to out_of_scope, the safe refusal.
func (n *Narrator) ClassifyIntent(ctx context.Context, message string) (Intent, error) {
	raw, err := n.gen.Generate(ctx, fmt.Sprintf(intentPrompt, message))
	if err != nil {
		return "", fmt.Errorf("intent classification: %w", err)
	}

	text := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(text, "human"):
		return IntentHuman, nil
	case strings.Contains(text, "reflection"):
		return IntentReflection, nil
	default:
		return IntentOutOfScope, nil
	}
}

func formatHistory(history []chat.Message) string {
	if len(history) == 0 {
		return "No previous history."
	}
	lines := make([]string, 0, len(history))
	for _, m := range history {
		speaker := "Horizon"
		if m.Role == "user" {
			speaker = "User"
		}
		lines = append(lines, speaker+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}
