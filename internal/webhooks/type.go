package webhooks

// Comment is the comment that caused the notification.
type Comment struct {
	Body *string `json:"body"`
}

// Issue is the issue or pull request the comment was left on.
type Issue struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// WebhookPayload represents the parts of an issue comment notification that
// the pipeline reads. Fields are pointers so that absent and null values can
// be told apart from empty strings.
type WebhookPayload struct {
	Comment *Comment `json:"comment"`
	Issue   *Issue   `json:"issue"`
}

// CommentEvent is a decoded WebhookPayload whose required fields are all present.
type CommentEvent struct {
	CommentBody string
	IssueTitle  string
	IssueBody   string
}
