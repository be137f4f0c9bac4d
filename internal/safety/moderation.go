package safety

// Decision is the outcome of classifying forum text.
type Decision struct {
	Allowed bool
	// Matches lists every forbidden term found, in term-list order, so
	// callers can report which term triggered a block.
	Matches []string
}

// ModerationEngine classifies forum text against a forbidden-term list.
// It judges forbidden content only; emptiness is an upstream precondition.
type ModerationEngine struct {
	terms []string
}

// NewModerationEngine returns an engine over the given ordered term list.
func NewModerationEngine(terms []string) *ModerationEngine {
	return &ModerationEngine{terms: terms}
}

// DefaultModerationEngine returns an engine over DefaultForbiddenTerms.
func DefaultModerationEngine() *ModerationEngine {
	return NewModerationEngine(DefaultForbiddenTerms)
}

// Classify reports whether text is allowed, collecting all matched terms.
// Pure function of the input and the term list; no state, no I/O.
func (e *ModerationEngine) Classify(text string) Decision {
	matches := matchAll(text, e.terms)
	return Decision{
		Allowed: len(matches) == 0,
		Matches: matches,
	}
}
