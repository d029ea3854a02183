// Package analytics appends one durable interaction record per request
// attempt for operational analysis. Writes are best-effort: callers log
// and discard failures.
package analytics

import (
	"context"
	"log"
	"sync"
	"time"
)

// Record is one append-only llm_history row. Written once per request
// attempt, success or failure; never updated or deleted.
type Record struct {
	ID                 string
	RequestID          string
	Timestamp          time.Time
	SystemPrompt       string
	UserMessage        string
	ResponseContent    *string
	ResponseLength     int
	ConversationLength int
	PracticeInfo       *string
	ErrorMessage       *string
}

// Recorder appends interaction records.
type Recorder interface {
	Append(ctx context.Context, rec Record) error
}

// LogRecorder is the fallback when no database is configured; it only
// writes a summary line to the process log.
type LogRecorder struct{}

func (LogRecorder) Append(_ context.Context, rec Record) error {
	errMsg := ""
	if rec.ErrorMessage != nil {
		errMsg = *rec.ErrorMessage
	}
	log.Printf("[analytics] interaction id=%s responseLength=%d conversationLength=%d error=%q",
		rec.ID, rec.ResponseLength, rec.ConversationLength, errMsg)
	return nil
}

// MemoryRecorder collects records in memory for tests.
type MemoryRecorder struct {
	mu      sync.Mutex
	records []Record
}

func (m *MemoryRecorder) Append(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

// Records returns a copy of everything appended so far.
func (m *MemoryRecorder) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]Record, len(m.records))
	copy(copied, m.records)
	return copied
}
