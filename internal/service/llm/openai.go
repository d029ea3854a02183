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

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// OpenAI talks to an OpenAI-style chat-completion endpoint, either
// directly or through a relay that forwards the target URL and key.
type OpenAI struct {
	apiKey   string
	relayURL string
	model    string
	endpoint string
	client   *http.Client
}

// NewOpenAI builds the OpenAI-style adapter. relayURL may be empty for
// direct calls.
func NewOpenAI(apiKey, relayURL, model string) *OpenAI {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAI{
		apiKey:   apiKey,
		relayURL: relayURL,
		model:    model,
		endpoint: openAIEndpoint,
		client:   newHTTPClient(),
	}
}

type openAIRequest struct {
	Model            string        `json:"model"`
	Messages         []wireMessage `json:"messages"`
	MaxTokens        int           `json:"max_tokens"`
	Temperature      float64       `json:"temperature"`
	TopP             float64       `json:"top_p"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
	PresencePenalty  float64       `json:"presence_penalty"`
}

// relayRequest wraps an openAIRequest with the routing fields the relay
// expects at the top level.
type relayRequest struct {
	APIURL string `json:"apiUrl"`
	APIKey string `json:"apiKey"`
	openAIRequest
}

// buildRequest assembles the flat ordered message list:
// [system message?, ...history, user message].
func (p *OpenAI) buildRequest(userMessage string, history []chat.Message, systemPrompt string, opts Options) openAIRequest {
	messages := make([]wireMessage, 0, len(history)+2)
	if systemPrompt != "" {
		messages = append(messages, wireMessage{Role: chat.RoleSystem, Content: systemPrompt})
	}
	messages = append(messages, wireHistory(history)...)
	messages = append(messages, wireMessage{Role: chat.RoleUser, Content: userMessage})

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

	return openAIRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        1,
	}
}

// parseResponse extracts the first choice's message content.
func (p *OpenAI) parseResponse(body []byte) (string, error) {
	var resp struct {
		Error *struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if resp.Error != nil {
		message := resp.Error.Message
		if message == "" {
			message = resp.Error.Type
		}
		return "", fmt.Errorf("%w: provider error: %s", ErrMalformedResponse, message)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices available", ErrMalformedResponse)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty message content", ErrMalformedResponse)
	}
	return content, nil
}

// Generate performs a single chat-completion call.
func (p *OpenAI) Generate(ctx context.Context, userMessage string, history []chat.Message, systemPrompt string, opts Options) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", errUserMessageRequired
	}

	request := p.buildRequest(userMessage, history, systemPrompt, opts)

	url := p.endpoint
	var payload any = request
	if p.relayURL != "" {
		url = p.relayURL
		payload = relayRequest{APIURL: p.endpoint, APIKey: p.apiKey, openAIRequest: request}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.relayURL == "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: openai: read body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &BackendError{Status: resp.StatusCode, ProviderMessage: providerErrorMessage(data)}
	}

	return p.parseResponse(data)
}
