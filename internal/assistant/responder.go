// Package assistant produces replies for chat messages that triage has
// classified as normal. Two interchangeable strategies implement Responder:
// deterministic topic rules (the default, fully offline) and a delegated
// text-generation call. Distress-classified input never reaches this
// package; the caller returns the fixed crisis message instead.
package assistant

import (
	"context"

	"wecare/internal/models"
)

// FallbackReply is returned when the delegated text-generation call fails.
// The chat experience must always yield some textual reply.
const FallbackReply = "I'm sorry, I'm having trouble responding right now. " +
	"Please try again in a moment. If you need urgent support, please reach out to a trusted person or local helpline."

// Responder produces a reply for a normal-classified chat message.
// Implementations never return an error: any internal failure is converted
// into a user-visible reply.
type Responder interface {
	Respond(ctx context.Context, message string, history []models.ChatTurn) string
}
