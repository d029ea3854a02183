package session

import (
	"context"
	"errors"
	"testing"

	"github.com/amansman77/buddy/internal/model/chat"
)

type failingKV struct{}

func (failingKV) Get(_ context.Context, _ string) (string, bool, error) {
	return "", false, errors.New("store down")
}

func (failingKV) Put(_ context.Context, _, _ string) error {
	return errors.New("store down")
}

func TestGatewayRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	gateway := NewGateway(kv)

	history := []chat.Message{
		{Role: chat.RoleUser, Content: "안녕"},
		{Role: chat.RoleAssistant, Content: "안녕하세요!"},
	}
	gateway.Save(ctx, "s1", history)

	loaded := gateway.Load(ctx, "s1")
	if len(loaded) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(loaded))
	}
	if loaded[0] != history[0] || loaded[1] != history[1] {
		t.Fatalf("history round trip mismatch: %+v", loaded)
	}

	// Sessions are isolated by key.
	if other := gateway.Load(ctx, "s2"); other != nil {
		t.Fatalf("expected empty history for unknown session, got %+v", other)
	}
}

func TestGatewayKeysAreNamespaced(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	gateway := NewGateway(kv)

	gateway.Save(ctx, "s1", []chat.Message{{Role: chat.RoleUser, Content: "hi"}})

	if _, ok, _ := kv.Get(ctx, "chat:s1"); !ok {
		t.Fatalf("expected history under chat:s1")
	}
}

func TestGatewayEmptySessionIsNoop(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	gateway := NewGateway(kv)

	gateway.Save(ctx, "", []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
	if _, ok, _ := kv.Get(ctx, "chat:"); ok {
		t.Fatalf("empty session id must not write")
	}
	if got := gateway.Load(ctx, ""); got != nil {
		t.Fatalf("empty session id must load nothing")
	}
}

func TestGatewayFailuresAreBestEffort(t *testing.T) {
	ctx := context.Background()
	gateway := NewGateway(failingKV{})

	if got := gateway.Load(ctx, "s1"); got != nil {
		t.Fatalf("read failure must yield empty history, got %+v", got)
	}
	// Write failure must be swallowed, not panic or surface.
	gateway.Save(ctx, "s1", []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
}

func TestGatewayCorruptedHistory(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	_ = kv.Put(ctx, "chat:s1", "{not json")

	if got := NewGateway(kv).Load(ctx, "s1"); got != nil {
		t.Fatalf("corrupted history must yield empty, got %+v", got)
	}
}
