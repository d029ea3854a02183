// Package chat orchestrates one conversation turn: validation, provider
// resolution, history assembly, prompt composition, the backend call,
// history persistence, and interaction logging.
package chat

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/amansman77/buddy/internal/config"
	"github.com/amansman77/buddy/internal/model/chat"
	"github.com/amansman77/buddy/internal/service/emotion"
	"github.com/amansman77/buddy/internal/service/llm"
	"github.com/amansman77/buddy/internal/service/prompt"
	"github.com/amansman77/buddy/internal/store/analytics"
	"github.com/amansman77/buddy/internal/store/session"
)

// DefaultService is the service tag applied when the caller sends none.
const DefaultService = "general"

// historyWindow bounds how much stored history a single backend call
// sees. Storage itself is unbounded.
const historyWindow = 8

// Service sequences the per-request pipeline. Each request is handled
// independently; there is no shared mutable state across requests.
type Service struct {
	ai        config.AIConfig
	sessions  *session.Gateway
	analytics analytics.Recorder
	resolve   func(config.AIConfig) (llm.Provider, error)
}

// NewService wires the orchestrator. The AI configuration is resolved
// once at construction and passed explicitly, keeping the pipeline
// testable without environment mutation.
func NewService(ai config.AIConfig, sessions *session.Gateway, recorder analytics.Recorder) *Service {
	return &Service{
		ai:        ai,
		sessions:  sessions,
		analytics: recorder,
		resolve:   llm.Resolve,
	}
}

// Result is the terminal success payload for one chat turn.
type Result struct {
	Message   string    `json:"message"`
	Emotion   string    `json:"emotion,omitempty"`
	Service   string    `json:"service"`
	SessionID string    `json:"sessionId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	MockMode  bool      `json:"mockMode"`
}

// Chat runs one turn. On success the session history grows by exactly
// one user and one assistant message, in that order. Exactly one
// interaction record is attempted per request once validation passes.
func (s *Service) Chat(ctx context.Context, req *chat.ChatRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	serviceTag := req.Service
	if serviceTag == "" {
		serviceTag = DefaultService
	}
	mockMode := s.ai.MockMode()

	provider, err := s.resolve(s.ai)
	if err != nil {
		s.logInteraction(ctx, req, "", nil, "", err)
		return nil, err
	}

	history := s.sessions.Load(ctx, req.SessionID)

	// Emotion inference runs only when the caller declared nothing, mock
	// mode is off, and the OpenAI credential is usable. Failures leave
	// the tag empty and never abort the request.
	emotionTag := req.Emotion
	if emotionTag == "" && !mockMode && s.ai.OpenAIUsable() {
		emotionTag = emotion.NewAnalyzer(provider).Analyze(ctx, req.Message)
	}

	systemPrompt := prompt.Compose(prompt.Context{
		Service:     serviceTag,
		UserEmotion: emotionTag,
		Practice:    req.Practice,
	})

	reply, err := provider.Generate(ctx, req.Message, chat.Window(history, historyWindow), systemPrompt, llm.Options{
		MaxTokens:   s.ai.MaxTokens,
		Temperature: s.ai.Temperature,
	})
	if err != nil {
		log.Printf("[chat] llm call failed: %v", err)
		s.logInteraction(ctx, req, systemPrompt, history, "", err)
		return nil, err
	}

	s.logInteraction(ctx, req, systemPrompt, history, reply, nil)

	updated := append(history,
		chat.Message{Role: chat.RoleUser, Content: req.Message},
		chat.Message{Role: chat.RoleAssistant, Content: reply},
	)
	s.sessions.Save(ctx, req.SessionID, updated)

	return &Result{
		Message:   reply,
		Emotion:   emotionTag,
		Service:   serviceTag,
		SessionID: req.SessionID,
		Timestamp: time.Now().UTC(),
		MockMode:  mockMode,
	}, nil
}

// logInteraction appends the audit row for this attempt. Recorder
// failures are swallowed; they must never change the request outcome.
func (s *Service) logInteraction(ctx context.Context, req *chat.ChatRequest, systemPrompt string, history []chat.Message, reply string, callErr error) {
	if s.analytics == nil {
		return
	}

	id := uuid.NewString()
	rec := analytics.Record{
		ID:                 id,
		RequestID:          id,
		Timestamp:          time.Now().UTC(),
		SystemPrompt:       systemPrompt,
		UserMessage:        req.Message,
		ConversationLength: len(history),
	}

	if req.Practice != nil {
		if raw, err := json.Marshal(req.Practice); err == nil {
			info := string(raw)
			rec.PracticeInfo = &info
		}
	}

	if callErr != nil {
		message := callErr.Error()
		rec.ErrorMessage = &message
	} else {
		content := reply
		rec.ResponseContent = &content
		rec.ResponseLength = len([]rune(reply))
	}

	if err := s.analytics.Append(ctx, rec); err != nil {
		log.Printf("[chat] failed to record interaction: %v", err)
	}
}
