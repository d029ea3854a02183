package chat

import (
	"strings"
	"unicode/utf8"
)

// MaxMessageLength bounds a single user message.
const MaxMessageLength = 4000

// Practice is an optional embedded task record used to personalize the
// dandani prompt.
type Practice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         int    `json:"day"`
	Category    string `json:"category"`
}

// ChatRequest is the inbound payload for one chat turn.
type ChatRequest struct {
	Message   string    `json:"message"`
	SessionID string    `json:"sessionId,omitempty"`
	Service   string    `json:"service,omitempty"`
	Emotion   string    `json:"emotion,omitempty"`
	Practice  *Practice `json:"practice,omitempty"`
}

// ValidationError reports the first violated request rule.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validate checks the request shape before any side effect occurs.
// Rules are checked in order and the first violation wins.
func (r *ChatRequest) Validate() error {
	if r == nil {
		return &ValidationError{Reason: "Request body is required"}
	}
	if r.Message == "" {
		return &ValidationError{Reason: "Message field is required"}
	}
	if strings.TrimSpace(r.Message) == "" {
		return &ValidationError{Reason: "Message cannot be empty"}
	}
	if utf8.RuneCountInString(r.Message) > MaxMessageLength {
		return &ValidationError{Reason: "Message is too long (maximum 4000 characters)"}
	}
	return nil
}
