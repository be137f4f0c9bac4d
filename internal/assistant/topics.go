package assistant

import (
	"context"
	"strings"

	"wecare/internal/models"
)

// topicRule pairs a keyword set with its canned supportive reply.
type topicRule struct {
	keywords []string
	reply    string
}

// topicRules is ordered; the first rule with any matching keyword wins.
var topicRules = []topicRule{
	{
		keywords: []string{"anxiety", "anxious"},
		reply: "It's okay to feel anxious sometimes. Try to take slow, deep breaths. " +
			"Would you like me to guide you through a simple breathing exercise? " +
			"You can also explore our Educational Hub for articles on managing anxiety.",
	},
	{
		keywords: []string{"addiction", "alcohol", "drugs"},
		reply: "Recovery is a journey, and you're not alone. " +
			"Consider visiting the Peer Support Forum to connect with others on a similar path. " +
			"Remember, professional help is also available.",
	},
	{
		keywords: []string{"stress"},
		reply: "Stress can be tough. Sometimes a short break or mindfulness exercise can help. " +
			"Our Educational Hub has great tips for stress management.",
	},
	{
		keywords: []string{"sad", "depressed", "depression"},
		reply: "It sounds like you're feeling down. Please remember that it's okay to ask for help. " +
			"Sharing in the forum or exploring our resources on depression might be a start.",
	},
}

// openEndedReply is the generic prompt when no topic matches.
const openEndedReply = "I'm here to listen. You can share more about what's on your mind. " +
	"You can also explore the Educational Hub for information or connect with others in the Forum."

// TopicResponder is the deterministic strategy: an ordered keyword scan
// with first-match-wins semantics. It needs no network and is the default.
type TopicResponder struct{}

// NewTopicResponder returns the deterministic rules responder.
func NewTopicResponder() *TopicResponder {
	return &TopicResponder{}
}

// Respond matches the message against the topic rules and returns the first
// matching canned reply, or the generic open-ended prompt. History is
// unused; the rules are stateless.
func (r *TopicResponder) Respond(_ context.Context, message string, _ []models.ChatTurn) string {
	lower := strings.ToLower(message)
	for _, rule := range topicRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.reply
			}
		}
	}
	return openEndedReply
}
