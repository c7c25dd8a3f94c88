package secrets

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Kind classifies a failed secret lookup.
type Kind int

const (
	KindInternalServiceError Kind = iota
	KindDecryptionFailure
	KindInvalidParameter
	KindInvalidRequest
	KindResourceNotFound
	KindUnauthorized
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindDecryptionFailure:
		return "DecryptionFailure"
	case KindInvalidParameter:
		return "InvalidParameter"
	case KindInvalidRequest:
		return "InvalidRequest"
	case KindResourceNotFound:
		return "ResourceNotFound"
	case KindUnauthorized:
		return "Unauthorized"
	case KindValidation:
		return "Validation"
	default:
		return "InternalServiceError"
	}
}

// Error is returned by every Store on failure.
type Error struct {
	Kind Kind
	// Code is the service error code, when there is one.
	Code string
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("secret access error (%s): %v", e.Kind, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Both the modeled names and the "Exception"-suffixed wire names are accepted.
var kindsByCode = map[string]Kind{
	"DecryptionFailure":             KindDecryptionFailure,
	"DecryptionFailureException":    KindDecryptionFailure,
	"InternalServiceError":          KindInternalServiceError,
	"InternalServiceErrorException": KindInternalServiceError,
	"InvalidParameterException":     KindInvalidParameter,
	"InvalidRequestException":       KindInvalidRequest,
	"ResourceNotFoundException":     KindResourceNotFound,
	"UnauthorizedException":         KindUnauthorized,
	"AccessDeniedException":         KindUnauthorized,
	"ValidationException":           KindValidation,
}

// classify wraps err in an *Error. Errors without a recognized service code
// are internal service errors.
func classify(err error) *Error {
	var secretErr *Error
	if errors.As(err, &secretErr) {
		return secretErr
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if kind, ok := kindsByCode[code]; ok {
			return &Error{Kind: kind, Code: code, Err: err}
		}
		return &Error{Kind: KindInternalServiceError, Code: code, Err: err}
	}
	return &Error{Kind: KindInternalServiceError, Err: err}
}
