package webhooks

import (
	"bytes"
	"context"
	"io"
	"jira-ticket-webhook/internal/contextkeys"
	"jira-ticket-webhook/internal/models"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeInvoker records the events it receives and returns a canned result.
type fakeInvoker struct {
	result models.InvocationResult
	events []models.InboundEvent
}

func (f *fakeInvoker) Invoke(ctx context.Context, event models.InboundEvent) models.InvocationResult {
	f.events = append(f.events, event)
	return f.result
}

func TestHandleWebhook(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	testCases := []struct {
		name               string
		requestBody        []byte
		setBodyInContext   bool
		result             models.InvocationResult
		expectedStatusCode int
		expectedBody       string
		expectInvoked      bool
	}{
		{
			name:             "Success - Ticket Created",
			requestBody:      []byte(`{"comment":{"body":"/jira"},"issue":{"title":"Bug X","body":"Steps..."}}`),
			setBodyInContext: true,
			result: models.InvocationResult{
				StatusCode: http.StatusCreated,
				Body:       `{"key":"SCRUM-1"}`,
				Headers:    map[string]string{"Content-Type": "application/json"},
			},
			expectedStatusCode: http.StatusCreated,
			expectedBody:       `{"key":"SCRUM-1"}`,
			expectInvoked:      true,
		},
		{
			name:             "Pass Through - Pipeline Error Result",
			requestBody:      []byte(`{"invalid-json`),
			setBodyInContext: true,
			result: models.InvocationResult{
				StatusCode: http.StatusBadRequest,
				Body:       `{"error":"decode error: invalid JSON"}`,
				Headers:    map[string]string{"Content-Type": "application/json"},
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"decode error: invalid JSON"}`,
			expectInvoked:      true,
		},
		{
			name:               "Failure - Missing Body in Context",
			requestBody:        []byte(`{}`),
			setBodyInContext:   false,
			expectedStatusCode: http.StatusInternalServerError,
			expectInvoked:      false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			invoker := &fakeInvoker{result: tc.result}
			handler := NewHandler(logger, invoker)

			req := httptest.NewRequest("POST", "/webhooks", bytes.NewReader(tc.requestBody))
			rr := httptest.NewRecorder()

			if tc.setBodyInContext {
				ctx := contextkeys.WithRequestBody(req.Context(), tc.requestBody)
				req = req.WithContext(ctx)
			}

			handler.HandleWebhook(rr, req)

			if status := rr.Code; status != tc.expectedStatusCode {
				t.Errorf("handler returned wrong status code: got %v want %v", status, tc.expectedStatusCode)
			}

			if invoked := len(invoker.events) == 1; invoked != tc.expectInvoked {
				t.Fatalf("invocation expectation failed: got %v want %v", invoked, tc.expectInvoked)
			}
			if !tc.expectInvoked {
				return
			}

			if got := invoker.events[0].Body; got != string(tc.requestBody) {
				t.Errorf("pipeline received wrong body: got %q want %q", got, tc.requestBody)
			}
			if got := rr.Body.String(); got != tc.expectedBody {
				t.Errorf("handler returned wrong body: got %q want %q", got, tc.expectedBody)
			}
			if got := rr.Header().Get("Content-Type"); got != "application/json" {
				t.Errorf("handler returned wrong content type: got %q", got)
			}
		})
	}
}
