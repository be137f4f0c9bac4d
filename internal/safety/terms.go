// Package safety implements the content-safety gates: the moderation engine
// that screens forum text before it is persisted, and the distress triage
// engine that intercepts chat messages ahead of any response generation.
//
// Both engines are pure functions over a fixed, ordered phrase list. The
// phrase data lives here, apart from the matching algorithm, so tests can
// substitute fixture lists.
package safety

// DefaultForbiddenTerms is the forum moderation list. Multi-word phrases are
// matched as plain substrings, case-insensitively. Order is preserved in
// reported matches.
var DefaultForbiddenTerms = []string{
	"hate",
	"violence",
	"kill",
	"drugs",
	"slur",
	"explicit",
	"harm myself",
	"harm others",
	"suicide",
	"murder",
	"rape",
	"sex act",
	"child abuse",
}

// DefaultDistressPhrases is the chat triage list. It is maintained
// independently of the moderation list even where the two overlap; triage
// always takes precedence on chat input.
var DefaultDistressPhrases = []string{
	"end it",
	"kill myself",
	"can't cope",
	"suicidal",
	"self harm",
	"overdose",
	"overdosed",
	"harm myself",
	"harm others",
	"want to die",
	"hopeless",
	"worthless",
	"no point",
}

// CrisisResponse is the fixed safety message returned when triage detects
// distress. It is static content: never generated, never personalized, so a
// failing downstream text-generation call cannot corrupt it.
const CrisisResponse = "🚨 It sounds like you might be in serious distress. Please know you're not alone. " +
	"Here are some emergency contacts and steps you can take immediately:\n\n" +
	"- **Kenya Red Cross Mental Health Hotline:** 1199 (24/7)\n" +
	"- **Befrienders Kenya:** +254 722 178177 (7 AM - 7 PM)\n" +
	"- **EMKF Suicide Prevention & Crisis Helpline:** 0800 723 253\n" +
	"- Or dial your **local emergency services (e.g., 999 or 112 in Kenya)**.\n\n" +
	"**Please reach out to a professional or trusted person right away. You deserve support.**\n\n" +
	"_I'm an AI and cannot provide medical diagnosis or crisis intervention. Please seek immediate human professional help._"
