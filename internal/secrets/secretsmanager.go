package secrets

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// GetSecretValueAPI is the part of the Secrets Manager client the store uses.
type GetSecretValueAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerStore reads credentials from AWS Secrets Manager.
type SecretsManagerStore struct {
	client GetSecretValueAPI
}

// NewSecretsManagerStore creates a store on an existing client.
func NewSecretsManagerStore(client GetSecretValueAPI) *SecretsManagerStore {
	return &SecretsManagerStore{client: client}
}

// NewSecretsManagerStoreFromConfig builds the store on an SDK client.
func NewSecretsManagerStoreFromConfig(cfg aws.Config) *SecretsManagerStore {
	return NewSecretsManagerStore(secretsmanager.NewFromConfig(cfg))
}

// GetSecret fetches the secret string for name and decodes it into Credentials.
// Failures are returned as *Error.
func (s *SecretsManagerStore) GetSecret(ctx context.Context, name string) (Credentials, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return Credentials{}, classify(err)
	}
	if out.SecretString == nil {
		return Credentials{}, &Error{Kind: KindInternalServiceError, Err: errors.New("secret has no string value")}
	}

	creds, err := ParseCredentials(*out.SecretString)
	if err != nil {
		return Credentials{}, &Error{Kind: KindInternalServiceError, Err: err}
	}
	return creds, nil
}
