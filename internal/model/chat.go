package model

import "time"

// ChatRole labels a transcript turn.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a user's counseling conversation. Transcripts
// live in a bounded in-memory session store, not the database.
type ChatMessage struct {
	Role    ChatRole
	Content string
	At      time.Time
}
