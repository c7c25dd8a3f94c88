package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"jira-ticket-webhook/internal/models"
	"jira-ticket-webhook/internal/secrets"
	"jira-ticket-webhook/internal/tracker"
	"jira-ticket-webhook/internal/webhooks"
	"net/http"
)

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

// Success passes the tracker's status and JSON body through.
func Success(resp *tracker.Response) models.InvocationResult {
	body := "{}"
	if len(resp.Body) > 0 {
		var buf bytes.Buffer
		if err := json.Compact(&buf, resp.Body); err != nil {
			return Failure(&tracker.TransportError{Op: "compact response body", Err: err})
		}
		body = buf.String()
	}
	return models.InvocationResult{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    jsonHeaders(),
	}
}

// NoOp acknowledges an event that did not ask for a ticket.
func NoOp() models.InvocationResult {
	return models.InvocationResult{
		StatusCode: http.StatusOK,
		Body:       `{"status":"ignored"}`,
		Headers:    jsonHeaders(),
	}
}

// Failure renders err as {"error": message} with the status from StatusFor.
func Failure(err error) models.InvocationResult {
	body, mErr := json.Marshal(map[string]string{"error": err.Error()})
	if mErr != nil {
		body = []byte(`{"error":"internal error"}`)
	}
	return models.InvocationResult{
		StatusCode: StatusFor(err),
		Body:       string(body),
		Headers:    jsonHeaders(),
	}
}

// StatusFor maps an upstream error to the status returned to the caller.
func StatusFor(err error) int {
	var decodeErr *webhooks.DecodeError
	var secretErr *secrets.Error
	var transportErr *tracker.TransportError

	switch {
	case errors.As(err, &decodeErr):
		return http.StatusBadRequest
	case errors.As(err, &secretErr):
		switch secretErr.Kind {
		case secrets.KindInvalidParameter, secrets.KindInvalidRequest, secrets.KindResourceNotFound, secrets.KindValidation:
			return http.StatusBadRequest
		case secrets.KindUnauthorized:
			return http.StatusUnauthorized
		default:
			return http.StatusInternalServerError
		}
	case errors.As(err, &transportErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
