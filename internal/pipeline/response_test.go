package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"jira-ticket-webhook/internal/secrets"
	"jira-ticket-webhook/internal/tracker"
	"jira-ticket-webhook/internal/webhooks"
	"net/http"
	"testing"
)

func TestStatusFor(t *testing.T) {
	secretErr := func(kind secrets.Kind) error {
		return &secrets.Error{Kind: kind, Err: errors.New(kind.String())}
	}

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Decode", &webhooks.DecodeError{Err: errors.New("bad")}, http.StatusBadRequest},
		{"Wrapped Decode", fmt.Errorf("outer: %w", &webhooks.DecodeError{Err: errors.New("bad")}), http.StatusBadRequest},
		{"Decryption Failure", secretErr(secrets.KindDecryptionFailure), http.StatusInternalServerError},
		{"Internal Service Error", secretErr(secrets.KindInternalServiceError), http.StatusInternalServerError},
		{"Invalid Parameter", secretErr(secrets.KindInvalidParameter), http.StatusBadRequest},
		{"Invalid Request", secretErr(secrets.KindInvalidRequest), http.StatusBadRequest},
		{"Resource Not Found", secretErr(secrets.KindResourceNotFound), http.StatusBadRequest},
		{"Unauthorized", secretErr(secrets.KindUnauthorized), http.StatusUnauthorized},
		{"Validation", secretErr(secrets.KindValidation), http.StatusBadRequest},
		{"Transport", &tracker.TransportError{Op: "tracker unreachable", Err: errors.New("down")}, http.StatusBadGateway},
		{"Unknown", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusFor(tc.err); got != tc.expected {
				t.Errorf("StatusFor = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestFailureBody(t *testing.T) {
	err := &secrets.Error{Kind: secrets.KindUnauthorized, Err: errors.New(`caller is not "allowed"`)}

	result := Failure(err)

	if result.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d", result.StatusCode)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(result.Body), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["error"] != err.Error() {
		t.Errorf("error message = %q, want %q", body["error"], err.Error())
	}
}

func TestSuccessBody(t *testing.T) {
	testCases := []struct {
		name     string
		resp     *tracker.Response
		expected string
	}{
		{"Compacted", &tracker.Response{StatusCode: 201, Body: json.RawMessage("{\n  \"key\": \"SCRUM-1\"\n}")}, `{"key":"SCRUM-1"}`},
		{"Empty", &tracker.Response{StatusCode: 204}, `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Success(tc.resp)
			if result.StatusCode != tc.resp.StatusCode {
				t.Errorf("status = %d, want %d", result.StatusCode, tc.resp.StatusCode)
			}
			if result.Body != tc.expected {
				t.Errorf("body = %q, want %q", result.Body, tc.expected)
			}
		})
	}
}
