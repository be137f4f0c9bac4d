package safety

import "strings"

// matchAll returns every phrase contained in text, case-insensitively, in
// phrase-list order. Simple case folding only; no locale handling.
func matchAll(text string, phrases []string) []string {
	lower := strings.ToLower(text)
	var matches []string
	for _, phrase := range phrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			matches = append(matches, phrase)
		}
	}
	return matches
}
