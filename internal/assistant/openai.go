package assistant

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"wecare/internal/models"
	"wecare/internal/observability"

	"github.com/sashabaranov/go-openai"
)

// SystemFraming is the fixed framing sent with every delegated request.
const SystemFraming = "You are a supportive, non-diagnostic assistant on a peer-support " +
	"mental well-being platform. Listen with empathy, suggest gentle self-care steps, and " +
	"encourage professional help where appropriate. Never diagnose, never prescribe, and " +
	"never present yourself as a crisis service."

// maxHistoryTurns bounds how much recent conversation is forwarded upstream.
const maxHistoryTurns = 10

// DefaultRequestTimeout bounds the wait on the external call.
const DefaultRequestTimeout = 15 * time.Second

// completionClient is the subset of the OpenAI client the responder needs.
// *openai.Client satisfies it; tests substitute a stub.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// LLMResponder is the delegated strategy: it forwards the message with the
// fixed system framing and recent history to an external text-generation
// capability. Every failure mode (timeout, quota, network) maps to
// FallbackReply; errors are never propagated to the caller.
type LLMResponder struct {
	client  completionClient
	model   string
	timeout time.Duration
}

// NewLLMResponder returns a responder backed by the OpenAI API.
func NewLLMResponder(apiKey, model string, timeout time.Duration) *LLMResponder {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &LLMResponder{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

// Respond forwards the message upstream and returns the generated text,
// trimmed. On any failure it returns FallbackReply.
func (r *LLMResponder) Respond(ctx context.Context, message string, history []models.ChatTurn) string {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemFraming},
	}
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == models.ChatRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    r.model,
		Messages: messages,
	})
	if err != nil {
		observability.AssistantFallbacks.Inc()
		slog.WarnContext(ctx, "assistant generation failed, using fallback", "err", err)
		return FallbackReply
	}
	if len(resp.Choices) == 0 {
		observability.AssistantFallbacks.Inc()
		slog.WarnContext(ctx, "assistant generation returned no choices, using fallback")
		return FallbackReply
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		observability.AssistantFallbacks.Inc()
		return FallbackReply
	}
	return reply
}
