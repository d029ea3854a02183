// Package llm hides the wire-format differences between the supported
// chat-completion backends behind a single Provider interface.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/amansman77/buddy/internal/model/chat"
)

// Options carries per-call generation parameters.
type Options struct {
	// Model overrides the provider's default model when non-empty.
	Model       string
	MaxTokens   int
	Temperature float64
}

// Provider generates one assistant reply for a user message given an
// already-windowed history and a system prompt. A single outbound call,
// no retries; the caller decides retry policy.
type Provider interface {
	Generate(ctx context.Context, userMessage string, history []chat.Message, systemPrompt string, opts Options) (string, error)
}

// BackendError is a non-2xx answer from the provider's endpoint.
type BackendError struct {
	Status          int
	ProviderMessage string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("llm: provider returned HTTP %d: %s", e.Status, e.ProviderMessage)
}

var (
	// ErrMalformedResponse marks a 2xx body missing the required
	// response structure.
	ErrMalformedResponse = errors.New("llm: malformed provider response")

	// ErrTransport marks a failure before any HTTP status was received.
	ErrTransport = errors.New("llm: provider request failed")

	// ErrNotConfigured is returned when no usable credential exists and
	// mock mode is off.
	ErrNotConfigured = errors.New("llm: no API keys configured")

	errUserMessageRequired = errors.New("llm: user message is required")
)

// IsProviderFailure reports whether err is a backend-side failure that
// should surface as a temporary AI service issue.
func IsProviderFailure(err error) bool {
	var backendErr *BackendError
	return errors.As(err, &backendErr) ||
		errors.Is(err, ErrMalformedResponse) ||
		errors.Is(err, ErrTransport)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}

// wireMessage is the role/content pair both providers accept.
type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func wireHistory(history []chat.Message) []wireMessage {
	messages := make([]wireMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, wireMessage{Role: m.Role, Content: m.Content})
	}
	return messages
}

// providerErrorMessage extracts the provider's own error envelope from a
// failed response body, falling back to a generic message.
func providerErrorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error.Message != "" {
			return envelope.Error.Message
		}
		if envelope.Error.Type != "" {
			return envelope.Error.Type
		}
	}
	return "API request failed"
}
