package webhooks

import "strings"

// Trigger decides whether a comment asks for a ticket.
type Trigger struct {
	Phrase string
	// TrimSpace strips surrounding whitespace from the comment before comparing.
	// Off by default: the comment must equal Phrase exactly.
	TrimSpace bool
}

// ShouldAct reports whether commentText matches the trigger phrase. The
// comparison is case-sensitive.
func (t Trigger) ShouldAct(commentText string) bool {
	if t.TrimSpace {
		commentText = strings.TrimSpace(commentText)
	}
	return commentText == t.Phrase
}
