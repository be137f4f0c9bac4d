package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"wecare/internal/assistant"
	"wecare/internal/cache"
	"wecare/internal/models"
	"wecare/internal/observability"
	"wecare/internal/safety"
)

// ChatService runs the support conversation. Every inbound message is
// triaged first; only messages assessed as normal reach the responder.
type ChatService struct {
	triage    *safety.TriageEngine
	responder assistant.Responder
	history   cache.HistoryStore
}

func NewChatService(triage *safety.TriageEngine, responder assistant.Responder, history cache.HistoryStore) *ChatService {
	return &ChatService{triage: triage, responder: responder, history: history}
}

// SendMessage processes one chat message and returns the reply. Distress
// input short-circuits to the fixed crisis message; the responder is not
// consulted for it. Both turns are appended to the member's transcript.
func (s *ChatService) SendMessage(ctx context.Context, userID uint, message string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", models.NewValidationError("Message cannot be empty")
	}

	var reply string
	if assessment := s.triage.Classify(trimmed); assessment.Distress {
		observability.TriageInterceptions.Inc()
		slog.InfoContext(ctx, "distress message intercepted",
			slog.Uint64("user_id", uint64(userID)),
			slog.Int("matched_phrases", len(assessment.Matches)),
		)
		reply = safety.CrisisResponse
	} else {
		history, err := s.history.All(ctx, userID)
		if err != nil {
			slog.WarnContext(ctx, "chat history unavailable, responding without it",
				slog.String("error", err.Error()),
			)
			history = nil
		}
		reply = s.responder.Respond(ctx, trimmed, history)
	}

	now := time.Now().UTC()
	if err := s.history.Append(ctx, userID,
		models.ChatTurn{Role: models.ChatRoleUser, Content: trimmed, CreatedAt: now},
		models.ChatTurn{Role: models.ChatRoleAssistant, Content: reply, CreatedAt: now},
	); err != nil {
		// The member still gets their reply; only the transcript is degraded.
		slog.WarnContext(ctx, "failed to append chat history",
			slog.String("error", err.Error()),
		)
	}

	return reply, nil
}

// History returns the member's transcript in send order.
func (s *ChatService) History(ctx context.Context, userID uint) ([]models.ChatTurn, error) {
	return s.history.All(ctx, userID)
}

// ClearHistory drops the member's transcript. Called at logout so a session's
// conversation does not leak into the next one.
func (s *ChatService) ClearHistory(ctx context.Context, userID uint) error {
	return s.history.Clear(ctx, userID)
}
