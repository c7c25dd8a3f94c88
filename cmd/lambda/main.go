package main

import (
	"context"
	"jira-ticket-webhook/internal/app"
	"jira-ticket-webhook/internal/config"
	"jira-ticket-webhook/internal/webhooks"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	bootLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(bootLogger)
	if err != nil {
		bootLogger.Error("Invalid configuration. Function cannot start.", "error", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.LogLevel)

	p, err := app.NewPipeline(context.Background(), logger, cfg)
	if err != nil {
		logger.Error("Failed to build pipeline", "error", err)
		os.Exit(1)
	}

	lambda.Start(webhooks.NewLambdaHandler(logger, p).Handle)
}
