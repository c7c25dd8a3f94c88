package secrets

import (
	"context"
	"fmt"
	"os"
)

// EnvStore serves credentials from environment variables. It is meant for
// running the server locally without AWS; the secret name is ignored.
type EnvStore struct {
	lookup func(string) string
}

// NewEnvStore reads JIRA_URL_PART, JIRA_API_KEY and JIRA_EMAIL from the process environment.
func NewEnvStore() *EnvStore {
	return &EnvStore{lookup: os.Getenv}
}

// GetSecret returns a ResourceNotFound error when any variable is unset.
func (s *EnvStore) GetSecret(ctx context.Context, name string) (Credentials, error) {
	creds := Credentials{
		BaseURLSegment: s.lookup("JIRA_URL_PART"),
		APIToken:       s.lookup("JIRA_API_KEY"),
		AccountEmail:   s.lookup("JIRA_EMAIL"),
	}
	if err := creds.validate(); err != nil {
		return Credentials{}, &Error{Kind: KindResourceNotFound, Err: fmt.Errorf("environment: %w", err)}
	}
	return creds, nil
}
