package config

import (
	"errors"
	"fmt"
	"jira-ticket-webhook/internal/tracker"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SecretSourceSecretsManager = "secretsmanager"
	SecretSourceEnv            = "env"
)

// Config holds everything that varies between deployments. It is read once
// at startup and passed to the pipeline.
type Config struct {
	Port          string
	LogLevel      slog.Level
	SigningSecret string
	MaxBodyBytes  int64
	Secrets       SecretsConfig
	Trigger       TriggerConfig
	Ticket        TicketConfig
	Tracker       TrackerConfig
}

type SecretsConfig struct {
	Source string
	Name   string
}

type TriggerConfig struct {
	Phrase    string
	TrimSpace bool
}

type TicketConfig struct {
	ProjectKey  string
	IssueTypeID string
}

type TrackerConfig struct {
	BaseURLFormat string
	Timeout       time.Duration
}

// Load reads configuration from the environment, after loading a .env file
// if one exists.
func Load(logger *slog.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, continuing with environment variables")
	}

	timeout, err := getEnvDuration("JIRA_HTTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	trimSpace, err := getEnvBool("TRIGGER_TRIM_SPACE", false)
	if err != nil {
		return Config{}, err
	}
	maxBodyBytes, err := getEnvInt64("WEBHOOK_MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return Config{}, err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cfg := Config{
		Port:          getEnv("SERVER_PORT", "8080"),
		LogLevel:      level,
		SigningSecret: getEnv("WEBHOOK_SIGNING_SECRET", ""),
		MaxBodyBytes:  maxBodyBytes,
		Secrets: SecretsConfig{
			Source: getEnv("SECRET_SOURCE", SecretSourceSecretsManager),
			Name:   getEnv("JIRA_SECRET_NAME", "lambda/jira_ticket_creation"),
		},
		Trigger: TriggerConfig{
			Phrase:    getEnv("TRIGGER_PHRASE", "/jira"),
			TrimSpace: trimSpace,
		},
		Ticket: TicketConfig{
			ProjectKey:  getEnv("JIRA_PROJECT_KEY", "SCRUM"),
			IssueTypeID: getEnv("JIRA_ISSUE_TYPE_ID", "10003"),
		},
		Tracker: TrackerConfig{
			BaseURLFormat: getEnv("JIRA_BASE_URL_FORMAT", tracker.DefaultBaseURLFormat),
			Timeout:       timeout,
		},
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Trigger.Phrase == "" {
		errs = append(errs, errors.New("TRIGGER_PHRASE must not be empty"))
	}
	if c.Ticket.ProjectKey == "" {
		errs = append(errs, errors.New("JIRA_PROJECT_KEY must not be empty"))
	}
	if c.Ticket.IssueTypeID == "" {
		errs = append(errs, errors.New("JIRA_ISSUE_TYPE_ID must not be empty"))
	}
	if c.Secrets.Name == "" {
		errs = append(errs, errors.New("JIRA_SECRET_NAME must not be empty"))
	}
	if c.Secrets.Source != SecretSourceSecretsManager && c.Secrets.Source != SecretSourceEnv {
		errs = append(errs, fmt.Errorf("SECRET_SOURCE must be %q or %q, got %q", SecretSourceSecretsManager, SecretSourceEnv, c.Secrets.Source))
	}
	if strings.Count(c.Tracker.BaseURLFormat, "%s") != 1 || strings.Count(c.Tracker.BaseURLFormat, "%") != 1 {
		errs = append(errs, fmt.Errorf("JIRA_BASE_URL_FORMAT must contain exactly one %%s, got %q", c.Tracker.BaseURLFormat))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("WEBHOOK_MAX_BODY_BYTES must be positive"))
	}
	if c.Tracker.Timeout <= 0 {
		errs = append(errs, errors.New("JIRA_HTTP_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
