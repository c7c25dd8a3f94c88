package webhooks

import (
	"context"
	"encoding/base64"
	"jira-ticket-webhook/internal/models"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// LambdaHandler adapts an Invoker to API Gateway proxy events.
type LambdaHandler struct {
	Logger  *slog.Logger
	Invoker Invoker
}

// NewLambdaHandler creates a handler suitable for lambda.Start.
func NewLambdaHandler(logger *slog.Logger, invoker Invoker) *LambdaHandler {
	return &LambdaHandler{Logger: logger, Invoker: invoker}
}

// Handle never returns an error: every failure is reported through the
// response status and body.
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := req.Body
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			h.Logger.Warn("Failed to decode base64 request body", "error", err)
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusBadRequest,
				Body:       `{"error":"request body is not valid base64"}`,
				Headers:    map[string]string{"Content-Type": "application/json"},
			}, nil
		}
		body = string(decoded)
	}

	result := h.Invoker.Invoke(ctx, models.InboundEvent{Body: body})
	return events.APIGatewayProxyResponse{
		StatusCode: result.StatusCode,
		Body:       result.Body,
		Headers:    result.Headers,
	}, nil
}
