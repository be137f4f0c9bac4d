package models

import "time"

// ChatRole identifies the speaker of a chat turn.
type ChatRole string

const (
	// ChatRoleUser marks a turn written by the member.
	ChatRoleUser ChatRole = "user"
	// ChatRoleAssistant marks a turn produced by the assistant.
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatTurn is one utterance in a session's assistant conversation.
// History is append-only: each exchange adds exactly one user turn followed
// by one assistant turn.
type ChatTurn struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
