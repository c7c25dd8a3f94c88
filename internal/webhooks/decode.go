package webhooks

import (
	"encoding/json"
	"errors"
	"fmt"
	"jira-ticket-webhook/internal/models"
	"strings"
)

// DecodeError signifies a malformed or incomplete inbound payload.
type DecodeError struct{ Err error }

func (e *DecodeError) Error() string { return fmt.Sprintf("decode error: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses the event body and extracts the comment text and the parent
// issue's title and body. Empty strings are accepted; missing or null fields are not.
func Decode(event models.InboundEvent) (CommentEvent, error) {
	if strings.TrimSpace(event.Body) == "" {
		return CommentEvent{}, &DecodeError{Err: errors.New("request body is empty")}
	}

	var payload WebhookPayload
	if err := json.Unmarshal([]byte(event.Body), &payload); err != nil {
		return CommentEvent{}, &DecodeError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	var missing []string
	if payload.Comment == nil || payload.Comment.Body == nil {
		missing = append(missing, "comment.body")
	}
	if payload.Issue == nil || payload.Issue.Title == nil {
		missing = append(missing, "issue.title")
	}
	if payload.Issue == nil || payload.Issue.Body == nil {
		missing = append(missing, "issue.body")
	}
	if len(missing) > 0 {
		return CommentEvent{}, &DecodeError{Err: fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))}
	}

	return CommentEvent{
		CommentBody: *payload.Comment.Body,
		IssueTitle:  *payload.Issue.Title,
		IssueBody:   *payload.Issue.Body,
	}, nil
}
