package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MockSentinel is the credential value that switches the service into
// mock mode when both provider keys carry it.
const MockSentinel = "MOCK_KEY_FOR_TESTING"

// Config aggregates the service configuration.
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Database DatabaseConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		AI:       ai,
		Database: DatabaseConfig{URL: strings.TrimSpace(os.Getenv("DATABASE_URL"))},
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// DatabaseConfig holds the analytics database connection string.
// An empty URL disables durable interaction logging.
type DatabaseConfig struct {
	URL string
}

// AIConfig carries the resolved LLM credentials and generation knobs.
type AIConfig struct {
	OpenAIKey      string
	ClaudeKey      string
	OpenAIRelayURL string
	OpenAIModel    string
	ClaudeModel    string
	MaxTokens      int
	Temperature    float64
}

// MockMode reports whether both credentials equal the testing sentinel.
func (c AIConfig) MockMode() bool {
	return c.OpenAIKey == MockSentinel && c.ClaudeKey == MockSentinel
}

// Configured reports whether at least one provider credential is set.
func (c AIConfig) Configured() bool {
	return c.OpenAIKey != "" || c.ClaudeKey != ""
}

// OpenAIUsable reports whether the OpenAI credential can reach the real
// API, i.e. it is set and not the mock sentinel.
func (c AIConfig) OpenAIUsable() bool {
	return c.OpenAIKey != "" && c.OpenAIKey != MockSentinel
}

func loadAIConfig() (AIConfig, error) {
	maxTokens := 1000
	if override, err := parseOptionalIntEnv("CHAT_MAX_TOKENS"); err != nil {
		return AIConfig{}, err
	} else if override != nil && *override > 0 {
		maxTokens = *override
	}

	temperature := 0.7
	if override, err := parseOptionalFloatEnv("CHAT_TEMPERATURE"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		temperature = *override
	}

	return AIConfig{
		OpenAIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		ClaudeKey:      strings.TrimSpace(os.Getenv("CLAUDE_API_KEY")),
		OpenAIRelayURL: strings.TrimSpace(os.Getenv("OPENAI_RELAY_URL")),
		OpenAIModel:    getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		ClaudeModel:    getEnvOrDefault("CLAUDE_MODEL", "claude-3-sonnet-20240229"),
		MaxTokens:      maxTokens,
		Temperature:    temperature,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
