package chatbot

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxMessageLength caps a single visitor message after sanitization.
	MaxMessageLength = 500
	// MaxConversationHistory is the rolling window of prior turns the pipeline
	// keeps; older turns are dropped silently.
	MaxConversationHistory = 10
)

var (
	ErrEmptyMessage   = fmt.Errorf("message cannot be empty")
	ErrMessageTooLong = fmt.Errorf("message must be %d characters or less", MaxMessageLength)
)

// Turn is one prior exchange supplied by the caller.
type Turn struct {
	Text   string `json:"text"`
	IsUser bool   `json:"isUser"`
}

var scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)

// Sanitize strips script blocks and any remaining angle brackets. Best-effort
// XSS hardening, not a full HTML sanitizer.
func Sanitize(raw string) string {
	s := scriptRe.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return strings.TrimSpace(s)
}

// ValidateMessage sanitizes raw input and enforces the emptiness and length
// rules. It returns the sanitized message on success.
func ValidateMessage(raw string) (string, error) {
	s := Sanitize(raw)
	if s == "" {
		return "", ErrEmptyMessage
	}
	if len(s) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return s, nil
}

// NormalizeHistory keeps the last MaxConversationHistory turns and drops any
// turn whose text is empty after trimming. Truncation is not an error.
func NormalizeHistory(history []Turn) []Turn {
	if len(history) > MaxConversationHistory {
		history = history[len(history)-MaxConversationHistory:]
	}
	out := make([]Turn, 0, len(history))
	for _, t := range history {
		text := strings.TrimSpace(t.Text)
		if text == "" {
			continue
		}
		out = append(out, Turn{Text: text, IsUser: t.IsUser})
	}
	return out
}
