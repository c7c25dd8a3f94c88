package webhooks

import (
	"context"
	"jira-ticket-webhook/internal/contextkeys"
	"jira-ticket-webhook/internal/models"
	"log/slog"
	"net/http"
)

// Invoker runs the ticket pipeline for one inbound event.
type Invoker interface {
	Invoke(ctx context.Context, event models.InboundEvent) models.InvocationResult
}

// Handler contains dependencies for the webhook HTTP handlers.
type Handler struct {
	Logger  *slog.Logger
	Invoker Invoker
}

// NewHandler creates a new instance of the webhook Handler.
func NewHandler(logger *slog.Logger, invoker Invoker) *Handler {
	return &Handler{
		Logger:  logger,
		Invoker: invoker,
	}
}

// HandleWebhook runs the pipeline on the verified request body and writes the
// invocation result back to the caller.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	bodyBytes, ok := contextkeys.RequestBody(r.Context())
	if !ok {
		h.Logger.Error("Could not retrieve request body from context")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	result := h.Invoker.Invoke(r.Context(), models.InboundEvent{Body: string(bodyBytes)})
	writeResult(w, result)
}

func writeResult(w http.ResponseWriter, result models.InvocationResult) {
	for k, v := range result.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(result.StatusCode)
	w.Write([]byte(result.Body))
}
