package safety

// Assessment is the outcome of triaging a chat message.
type Assessment struct {
	Distress bool
	Matches  []string
}

// TriageEngine classifies chat input against a distress-phrase list. When a
// message is assessed as distress, the caller must return CrisisResponse and
// must not invoke the conversation responder at all.
type TriageEngine struct {
	phrases []string
}

// NewTriageEngine returns an engine over the given ordered phrase list.
func NewTriageEngine(phrases []string) *TriageEngine {
	return &TriageEngine{phrases: phrases}
}

// DefaultTriageEngine returns an engine over DefaultDistressPhrases.
func DefaultTriageEngine() *TriageEngine {
	return NewTriageEngine(DefaultDistressPhrases)
}

// Classify assesses a single chat message. It runs on every inbound message,
// before any other response branch.
func (e *TriageEngine) Classify(message string) Assessment {
	matches := matchAll(message, e.phrases)
	return Assessment{
		Distress: len(matches) > 0,
		Matches:  matches,
	}
}
