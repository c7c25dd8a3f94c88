package app

import (
	"context"
	"fmt"
	"jira-ticket-webhook/internal/config"
	"jira-ticket-webhook/internal/pipeline"
	"jira-ticket-webhook/internal/secrets"
	"jira-ticket-webhook/internal/ticket"
	"jira-ticket-webhook/internal/tracker"
	"jira-ticket-webhook/internal/webhooks"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// NewLogger returns the JSON logger both binaries write with.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// NewSecretStore picks the credential source named by the configuration.
func NewSecretStore(ctx context.Context, cfg config.SecretsConfig) (secrets.Store, error) {
	switch cfg.Source {
	case config.SecretSourceEnv:
		return secrets.NewEnvStore(), nil
	case config.SecretSourceSecretsManager:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return secrets.NewSecretsManagerStoreFromConfig(awsCfg), nil
	default:
		return nil, fmt.Errorf("unknown secret source %q", cfg.Source)
	}
}

// NewPipeline wires the pipeline from configuration.
func NewPipeline(ctx context.Context, logger *slog.Logger, cfg config.Config) (*pipeline.Pipeline, error) {
	store, err := NewSecretStore(ctx, cfg.Secrets)
	if err != nil {
		return nil, err
	}

	dispatcher := tracker.NewClient(logger, cfg.Tracker.BaseURLFormat, cfg.Tracker.Timeout)

	return pipeline.New(logger, pipeline.Options{
		SecretName: cfg.Secrets.Name,
		Trigger:    webhooks.Trigger{Phrase: cfg.Trigger.Phrase, TrimSpace: cfg.Trigger.TrimSpace},
		Builder:    ticket.NewBuilder(cfg.Ticket.ProjectKey, cfg.Ticket.IssueTypeID),
	}, store, dispatcher), nil
}
