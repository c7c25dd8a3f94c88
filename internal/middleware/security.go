package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"jira-ticket-webhook/internal/contextkeys"
	"log/slog"
	"net/http"
	"strings"
)

// SignatureHeader carries "sha256=" followed by the hex HMAC of the body.
const SignatureHeader = "X-Hub-Signature-256"

const signaturePrefix = "sha256="

// VerifySignature is a Chi middleware to validate the X-Hub-Signature-256 header.
// An empty secret disables verification; the body is still placed in the context.
// Bodies larger than maxBodyBytes are rejected with 413.
func VerifySignature(logger *slog.Logger, secret string, maxBodyBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			signature := r.Header.Get(SignatureHeader)
			if secret != "" && signature == "" {
				logger.Warn("Missing signature header", "header", SignatureHeader)
				http.Error(w, "Missing "+SignatureHeader+" header", http.StatusForbidden)
				return
			}

			bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					logger.Warn("Request body exceeds limit", "limit_bytes", tooLarge.Limit)
					http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
					return
				}
				logger.Error("Failed to read request body", "error", err)
				http.Error(w, "Cannot read request body", http.StatusInternalServerError)
				return
			}
			r.Body.Close()

			// Restore the body so the next handler can read it.
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

			if secret != "" {
				mac := hmac.New(sha256.New, []byte(secret))
				mac.Write(bodyBytes)
				expected := signaturePrefix + hex.EncodeToString(mac.Sum(nil))

				// Compare the signatures in constant time to prevent timing attacks.
				if !strings.HasPrefix(signature, signaturePrefix) || !hmac.Equal([]byte(signature), []byte(expected)) {
					logger.Warn("Invalid signature received", "received_signature", signature)
					http.Error(w, "Invalid signature", http.StatusForbidden)
					return
				}
			}

			ctx := contextkeys.WithRequestBody(r.Context(), bodyBytes)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
