package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/amansman77/buddy/internal/model/chat"
)

const (
	claudeEndpoint   = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
)

// Claude talks to a Claude-style messages endpoint, where the system
// prompt travels as a top-level field instead of a message.
type Claude struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClaude builds the Claude-style adapter.
func NewClaude(apiKey, model string) *Claude {
	if model == "" {
		model = "claude-3-sonnet-20240229"
	}
	return &Claude{
		apiKey:   apiKey,
		model:    model,
		endpoint: claudeEndpoint,
		client:   newHTTPClient(),
	}
}

type claudeRequest struct {
	Model       string        `json:"model"`
	System      string        `json:"system,omitempty"`
	Messages    []wireMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

// buildRequest assembles history + user message as the message list and
// carries the system prompt separately.
func (p *Claude) buildRequest(userMessage string, history []chat.Message, systemPrompt string, opts Options) claudeRequest {
	messages := append(wireHistory(history), wireMessage{Role: chat.RoleUser, Content: userMessage})

	model := opts.Model
	if model == "" {
		model = p.model
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	temperature := opts.Temperature
	if temperature <= 0 {
		temperature = 0.7
	}

	return claudeRequest{
		Model:       model,
		System:      systemPrompt,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        1,
	}
}

// parseResponse extracts the first content block's text.
func (p *Claude) parseResponse(body []byte) (string, error) {
	var resp struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("%w: no response content available", ErrMalformedResponse)
	}
	text := strings.TrimSpace(resp.Content[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty content text", ErrMalformedResponse)
	}
	return text, nil
}

// Generate performs a single messages call.
func (p *Claude) Generate(ctx context.Context, userMessage string, history []chat.Message, systemPrompt string, opts Options) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", errUserMessageRequired
	}

	body, err := json.Marshal(p.buildRequest(userMessage, history, systemPrompt, opts))
	if err != nil {
		return "", fmt.Errorf("claude: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("claude: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: claude: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: claude: read body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &BackendError{Status: resp.StatusCode, ProviderMessage: providerErrorMessage(data)}
	}

	return p.parseResponse(data)
}
