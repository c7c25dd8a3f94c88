package pipeline

import (
	"context"
	"errors"
	"jira-ticket-webhook/internal/metrics"
	"jira-ticket-webhook/internal/models"
	"jira-ticket-webhook/internal/secrets"
	"jira-ticket-webhook/internal/ticket"
	"jira-ticket-webhook/internal/tracker"
	"jira-ticket-webhook/internal/webhooks"
	"log/slog"
	"strconv"
)

// Dispatcher sends a create-issue request to the tracker.
type Dispatcher interface {
	CreateIssue(ctx context.Context, req ticket.Request, creds secrets.Credentials) (*tracker.Response, error)
}

// Pipeline turns one comment notification into at most one create-issue call.
// It holds no per-invocation state and is safe for concurrent use.
type Pipeline struct {
	logger     *slog.Logger
	secretName string
	trigger    webhooks.Trigger
	builder    ticket.Builder
	secrets    secrets.Store
	dispatcher Dispatcher
}

// Options configures a Pipeline.
type Options struct {
	SecretName string
	Trigger    webhooks.Trigger
	Builder    ticket.Builder
}

// New creates a Pipeline that looks up credentials in store and sends
// tickets through dispatcher.
func New(logger *slog.Logger, opts Options, store secrets.Store, dispatcher Dispatcher) *Pipeline {
	return &Pipeline{
		logger:     logger,
		secretName: opts.SecretName,
		trigger:    opts.Trigger,
		builder:    opts.Builder,
		secrets:    store,
		dispatcher: dispatcher,
	}
}

// Invoke never fails: every error becomes a well-formed result.
// Repeated invocations with the same event create repeated tickets.
func (p *Pipeline) Invoke(ctx context.Context, event models.InboundEvent) models.InvocationResult {
	comment, err := webhooks.Decode(event)
	if err != nil {
		return p.fail(err, "Failed to decode webhook payload")
	}

	if !p.trigger.ShouldAct(comment.CommentBody) {
		p.logger.Info("Comment does not match trigger phrase, no ticket created", "trigger", p.trigger.Phrase)
		metrics.InvocationsTotal.WithLabelValues(metrics.OutcomeIgnored).Inc()
		return NoOp()
	}

	creds, err := p.secrets.GetSecret(ctx, p.secretName)
	if err != nil {
		return p.fail(err, "Failed to retrieve tracker credentials", "secret_name", p.secretName)
	}

	req := p.builder.Build(comment.IssueTitle, comment.IssueBody)

	resp, err := p.dispatcher.CreateIssue(ctx, req, creds)
	if err != nil {
		return p.fail(err, "Failed to dispatch issue creation")
	}

	metrics.TrackerResponsesTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		p.logger.Info("Issue created", "status_code", resp.StatusCode, "summary", req.Fields.Summary)
		metrics.InvocationsTotal.WithLabelValues(metrics.OutcomeCreated).Inc()
	} else {
		p.logger.Warn("Tracker rejected issue creation", "status_code", resp.StatusCode)
		metrics.InvocationsTotal.WithLabelValues(metrics.OutcomeTrackerError).Inc()
	}
	return Success(resp)
}

func (p *Pipeline) fail(err error, msg string, attrs ...any) models.InvocationResult {
	result := Failure(err)
	attrs = append(attrs, "error", err, "status_code", result.StatusCode)

	var decodeErr *webhooks.DecodeError
	var secretErr *secrets.Error
	var transportErr *tracker.TransportError
	switch {
	case errors.As(err, &decodeErr):
		p.logger.Warn(msg, attrs...)
		metrics.InvocationsTotal.WithLabelValues(metrics.OutcomeDecodeError).Inc()
	case errors.As(err, &secretErr):
		p.logger.Error(msg, append(attrs, "kind", secretErr.Kind.String())...)
		metrics.InvocationsTotal.WithLabelValues(metrics.OutcomeSecretError).Inc()
	case errors.As(err, &transportErr):
		p.logger.Error(msg, attrs...)
		metrics.InvocationsTotal.WithLabelValues(metrics.OutcomeTransportError).Inc()
	default:
		p.logger.Error(msg, attrs...)
		metrics.InvocationsTotal.WithLabelValues(metrics.OutcomeInternalError).Inc()
	}
	return result
}
