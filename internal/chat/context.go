// Package chat holds the conversation state carried between chat turns and
// the lightweight, non-LLM message classification helpers.
package chat

import "strings"

type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Context is the rolling conversation state echoed back to the client on
// every turn. Only the last two exchanges are kept.
type Context struct {
	Messages    []Message `json:"messages,omitempty"`
	Focus       string    `json:"focus,omitempty"`     // general, mood, sleep, stress
	TimeRange   string    `json:"timeRange,omitempty"` // 7d, 30d, 90d
	LastInsight string    `json:"lastInsight,omitempty"`
}

const maxContextMessages = 4 // two user/assistant exchanges

// UpdateContext appends the latest exchange, trims history, and refreshes
// the focus and time-range hints from the user's wording.
func UpdateContext(prev Context, userMessage, aiReply string) Context {
	next := prev

	next.Messages = append(append([]Message{}, prev.Messages...),
		Message{Role: "user", Content: userMessage},
		Message{Role: "assistant", Content: aiReply},
	)
	if len(next.Messages) > maxContextMessages {
		next.Messages = next.Messages[len(next.Messages)-maxContextMessages:]
	}

	text := strings.ToLower(userMessage)

	switch {
	case strings.Contains(text, "sleep"):
		next.Focus = "sleep"
	case strings.Contains(text, "stress"):
		next.Focus = "stress"
	case strings.Contains(text, "mood"), strings.Contains(text, "feel"):
		next.Focus = "mood"
	default:
		if next.Focus == "" {
			next.Focus = "general"
		}
	}

	if strings.Contains(text, "week") {
		next.TimeRange = "7d"
	}
	if strings.Contains(text, "month") {
		next.TimeRange = "30d"
	}
	if strings.Contains(text, "90") {
		next.TimeRange = "90d"
	}

	next.LastInsight = aiReply
	if len(next.LastInsight) > 140 {
		next.LastInsight = next.LastInsight[:140]
	}

	return next
}
