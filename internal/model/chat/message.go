package chat

// Message roles as sent to LLM providers and stored in session history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single conversation turn. Immutable once created.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Window returns at most the limit most recent messages, discarding the
// oldest. The returned slice aliases the input.
func Window(messages []Message, limit int) []Message {
	if limit <= 0 || len(messages) <= limit {
		return messages
	}
	return messages[len(messages)-limit:]
}
