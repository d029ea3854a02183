package analytics

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresRecorder appends records to the llm_history table.
type PostgresRecorder struct {
	db *sql.DB
}

// NewPostgresRecorder wraps an open database handle.
func NewPostgresRecorder(db *sql.DB) *PostgresRecorder {
	return &PostgresRecorder{db: db}
}

// EnsureSchema creates the llm_history table if it does not exist.
func (r *PostgresRecorder) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS llm_history (
	id                  TEXT PRIMARY KEY,
	request_id          TEXT NOT NULL,
	timestamp           TIMESTAMPTZ NOT NULL,
	system_prompt       TEXT,
	user_message        TEXT NOT NULL,
	response_content    TEXT,
	response_length     INTEGER NOT NULL DEFAULT 0,
	conversation_length INTEGER NOT NULL DEFAULT 0,
	practice_info       TEXT,
	error_message       TEXT
)`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("analytics: ensure schema: %w", err)
	}
	return nil
}

// Append inserts one row. Rows are never updated or deleted here.
func (r *PostgresRecorder) Append(ctx context.Context, rec Record) error {
	const insert = `
INSERT INTO llm_history (
	id, request_id, timestamp, system_prompt, user_message,
	response_content, response_length, conversation_length,
	practice_info, error_message
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	systemPrompt := sql.NullString{String: rec.SystemPrompt, Valid: rec.SystemPrompt != ""}

	_, err := r.db.ExecContext(ctx, insert,
		rec.ID,
		rec.RequestID,
		rec.Timestamp,
		systemPrompt,
		rec.UserMessage,
		rec.ResponseContent,
		rec.ResponseLength,
		rec.ConversationLength,
		rec.PracticeInfo,
		rec.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("analytics: insert interaction: %w", err)
	}
	return nil
}
