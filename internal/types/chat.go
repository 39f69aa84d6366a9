package types

// ChatRole distinguishes the two sides of a chat transcript.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn in a chat session. Assistant messages may carry the
// modules resolved from the recommendation reply. Transcripts are scoped to a
// session and never persisted.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Text    string   `json:"text"`
	Modules []Module `json:"modules,omitempty"`
}
