package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Credentials authenticate calls to the issue tracker.
type Credentials struct {
	BaseURLSegment string `json:"url_part"`
	APIToken       string `json:"api_key"`
	AccountEmail   string `json:"email_id"`
}

// LogValue keeps every credential field out of logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url_part", "REDACTED"),
		slog.String("api_key", "REDACTED"),
		slog.String("email_id", "REDACTED"),
	)
}

// Store looks up tracker credentials by secret name.
type Store interface {
	GetSecret(ctx context.Context, name string) (Credentials, error)
}

// ParseCredentials decodes a secret string of the form
// {"url_part": ..., "api_key": ..., "email_id": ...}.
func ParseCredentials(secretString string) (Credentials, error) {
	var creds Credentials
	if err := json.Unmarshal([]byte(secretString), &creds); err != nil {
		return Credentials{}, errors.New("secret string is not valid JSON")
	}
	if err := creds.validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

func (c Credentials) validate() error {
	switch {
	case c.BaseURLSegment == "":
		return fmt.Errorf("secret is missing %q", "url_part")
	case c.APIToken == "":
		return fmt.Errorf("secret is missing %q", "api_key")
	case c.AccountEmail == "":
		return fmt.Errorf("secret is missing %q", "email_id")
	}
	return nil
}
