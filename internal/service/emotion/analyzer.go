// Package emotion infers a primary-emotion tag for a user message with
// one extra LLM call. Every failure is recoverable: callers get an
// empty tag and proceed.
package emotion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/amansman77/buddy/internal/service/llm"
	"github.com/amansman77/buddy/internal/service/prompt"
)

// Analyzer classifies a single message through an LLM provider.
type Analyzer struct {
	provider llm.Provider
}

// NewAnalyzer builds an analyzer on top of an already-resolved provider.
func NewAnalyzer(provider llm.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

type classifierPayload struct {
	PrimaryEmotion   string  `json:"primaryEmotion"`
	EmotionIntensity float64 `json:"emotionIntensity"`
	Confidence       float64 `json:"confidence"`
	Reasoning        string  `json:"reasoning"`
}

// Analyze returns the inferred primary-emotion tag, or "" when the call
// or the parse fails. It never aborts the request.
func (a *Analyzer) Analyze(ctx context.Context, message string) string {
	if a == nil || a.provider == nil {
		return ""
	}

	raw, err := a.provider.Generate(ctx, message, nil, prompt.EmotionAnalysis(message), llm.Options{
		MaxTokens:   200,
		Temperature: 0.3,
	})
	if err != nil {
		log.Printf("[emotion] analysis call failed: %v", err)
		return ""
	}

	payload, err := parseClassifierOutput(raw)
	if err != nil {
		log.Printf("[emotion] analysis parse failed: %v", err)
		return ""
	}

	return strings.TrimSpace(payload.PrimaryEmotion)
}

// parseClassifierOutput tolerates prose around the JSON object by
// scanning for the outermost braces.
func parseClassifierOutput(content string) (*classifierPayload, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("missing json object")
	}

	payload := &classifierPayload{}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), payload); err != nil {
		return nil, err
	}
	return payload, nil
}
