package contextkeys

import "context"

type ctxKey struct{ name string }

var requestBodyKey = ctxKey{"verified-request-body"}

// WithRequestBody stores the raw, signature-checked webhook body.
func WithRequestBody(ctx context.Context, body []byte) context.Context {
	return context.WithValue(ctx, requestBodyKey, body)
}

// RequestBody returns the body stored by WithRequestBody.
func RequestBody(ctx context.Context) ([]byte, bool) {
	body, ok := ctx.Value(requestBodyKey).([]byte)
	return body, ok
}
