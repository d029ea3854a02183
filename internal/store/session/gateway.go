package session

import (
	"context"
	"encoding/json"
	"log"

	"github.com/amansman77/buddy/internal/model/chat"
)

// Gateway loads and saves conversation history with best-effort
// semantics: a read failure yields an empty history, a write failure is
// logged and swallowed. An empty session id makes both operations
// no-ops.
type Gateway struct {
	kv KV
}

// NewGateway wraps a KV backend.
func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv}
}

func historyKey(sessionID string) string {
	return "chat:" + sessionID
}

// Load returns the stored history for a session, or nil.
func (g *Gateway) Load(ctx context.Context, sessionID string) []chat.Message {
	if g == nil || g.kv == nil || sessionID == "" {
		return nil
	}

	raw, ok, err := g.kv.Get(ctx, historyKey(sessionID))
	if err != nil {
		log.Printf("[session] failed to load history for %s: %v", sessionID, err)
		return nil
	}
	if !ok {
		return nil
	}

	var history []chat.Message
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		log.Printf("[session] corrupted history for %s: %v", sessionID, err)
		return nil
	}
	return history
}

// Save persists the full history for a session. Concurrent saves race
// with last-write-wins semantics; no transactional guarantee is made.
func (g *Gateway) Save(ctx context.Context, sessionID string, history []chat.Message) {
	if g == nil || g.kv == nil || sessionID == "" {
		return
	}

	raw, err := json.Marshal(history)
	if err != nil {
		log.Printf("[session] failed to encode history for %s: %v", sessionID, err)
		return
	}

	if err := g.kv.Put(ctx, historyKey(sessionID), string(raw)); err != nil {
		log.Printf("[session] failed to save history for %s: %v", sessionID, err)
	}
}
