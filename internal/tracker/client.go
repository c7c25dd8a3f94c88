package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"jira-ticket-webhook/internal/secrets"
	"jira-ticket-webhook/internal/ticket"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURLFormat is the cloud site URL; %s is the site's subdomain.
const DefaultBaseURLFormat = "https://%s.atlassian.net"

const createIssuePath = "/rest/api/3/issue"

// TransportError signifies that the tracker could not be reached or answered
// with a body that is not JSON. Error reports only Op: the cause may name the
// tracker host and stays reachable through Unwrap.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport error: %s", e.Op) }
func (e *TransportError) Unwrap() error { return e.Err }

// Response is whatever the tracker answered, including non-2xx statuses.
// Body is nil when the tracker sent no content.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

// Client creates issues over the tracker's REST API.
type Client struct {
	baseURLFormat string
	logger        *slog.Logger
	http          *http.Client
}

// NewClient creates a Client. baseURLFormat must hold one %s for the site
// segment; timeout bounds each request.
func NewClient(logger *slog.Logger, baseURLFormat string, timeout time.Duration) *Client {
	return &Client{
		baseURLFormat: baseURLFormat,
		logger:        logger,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// IssueURL returns the create-issue endpoint for a site.
func (c *Client) IssueURL(baseURLSegment string) string {
	return fmt.Sprintf(c.baseURLFormat, baseURLSegment) + createIssuePath
}

// CreateIssue posts req with basic authentication. Only failures to complete
// the exchange are errors; tracker-reported statuses are returned as-is.
func (c *Client) CreateIssue(ctx context.Context, req ticket.Request, creds secrets.Credentials) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal issue request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.IssueURL(creds.BaseURLSegment), bytes.NewReader(body))
	if err != nil {
		return nil, c.transportError("build request", err, creds)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(creds.AccountEmail, creds.APIToken)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, c.transportError("tracker unreachable", err, creds)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError("read response body", err, creds)
	}

	c.logger.Info("Tracker responded to issue creation", "path", createIssuePath, "status_code", resp.StatusCode)

	if len(bytes.TrimSpace(respBody)) == 0 {
		return &Response{StatusCode: resp.StatusCode}, nil
	}
	if !json.Valid(respBody) {
		return nil, &TransportError{
			Op:  "response body is not JSON",
			Err: fmt.Errorf("status %d", resp.StatusCode),
		}
	}
	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// transportError logs err with the credentials masked and returns a
// TransportError whose message is safe to send to the caller.
func (c *Client) transportError(op string, err error, creds secrets.Credentials) *TransportError {
	c.logger.Warn("Tracker request failed", "op", op, "cause", redact(err.Error(), creds))
	return &TransportError{Op: op, Err: err}
}

func redact(s string, creds secrets.Credentials) string {
	var pairs []string
	for _, v := range []string{creds.APIToken, creds.AccountEmail, creds.BaseURLSegment} {
		if v != "" {
			pairs = append(pairs, v, "REDACTED")
		}
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
