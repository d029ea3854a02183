package llm

import (
	"github.com/amansman77/buddy/internal/config"
)

// Resolve picks the provider for a request from the credential state:
// mock mode short-circuits everything, otherwise OpenAI is preferred
// when its key is usable, with Claude as the fallback.
func Resolve(cfg config.AIConfig) (Provider, error) {
	if cfg.MockMode() {
		return NewMock(), nil
	}
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	if cfg.OpenAIUsable() {
		return NewOpenAI(cfg.OpenAIKey, cfg.OpenAIRelayURL, cfg.OpenAIModel), nil
	}
	return NewClaude(cfg.ClaudeKey, cfg.ClaudeModel), nil
}
