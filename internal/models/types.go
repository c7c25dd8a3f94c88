package models

// InboundEvent is the envelope delivered by the invoking platform. Body holds
// the webhook payload as JSON text.
type InboundEvent struct {
	Body string `json:"body"`
}

// InvocationResult is the only output of one pipeline invocation.
type InvocationResult struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers"`
}
