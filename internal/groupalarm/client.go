package groupalarm

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/personalfme/groupalarm-trigger/internal/logger"
)

// DefaultBaseURL is the public GroupAlarm.com REST API.
const DefaultBaseURL = "https://app.groupalarm.com/api/v1"

// DefaultTimeout bounds every request against the API.
const DefaultTimeout = 30 * time.Second

// Client talks to the GroupAlarm.com API on behalf of one organization.
type Client struct {
	// http is the underlying resty client with base URL and headers set.
	http *resty.Client
	// organizationID scopes catalog lookups and the alarm request.
	organizationID int
}

// Option configures client behaviour.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithProxyURL routes requests through the given HTTPS proxy.
// An empty URL leaves the transport untouched.
func WithProxyURL(proxyURL string) Option {
	return func(c *Client) {
		if proxyURL != "" {
			c.http.SetProxy(proxyURL)
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.SetTimeout(timeout)
		}
	}
}

// New creates a client authenticated with the given API token.
func New(organizationID int, apiToken string, opts ...Option) *Client {
	r := resty.New()
	r.SetBaseURL(DefaultBaseURL)
	r.SetTimeout(DefaultTimeout)
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("API-Token", apiToken)

	client := &Client{
		http:           r,
		organizationID: organizationID,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// OrganizationID returns the organization this client is scoped to.
func (c *Client) OrganizationID() int {
	return c.organizationID
}

// ServiceStatus is the diagnostic envelope the service may attach to any
// response. Pointer fields distinguish absent keys from zero values.
type ServiceStatus struct {
	// Success reports whether the service accepted the request.
	Success *bool `json:"success"`
	// Message is the human-readable summary.
	Message string `json:"message"`
	// Error carries the error detail.
	Error *string `json:"error"`
}

// logServiceStatus surfaces a service-reported soft error from the response
// body as a diagnostic. It never fails the call by itself: the status code
// is the control-flow signal and is checked separately by the caller.
func logServiceStatus(ctx context.Context, resp *resty.Response) {
	if !strings.HasPrefix(resp.Header().Get("Content-Type"), "application/json") {
		return
	}

	var status ServiceStatus
	if err := json.Unmarshal(resp.Body(), &status); err != nil {
		// Catalog responses are arrays, not status envelopes.
		return
	}

	if status.Success == nil || status.Error == nil || *status.Success {
		return
	}

	logger.ErrorKV(ctx, "GroupAlarm.com reported an error",
		"message", status.Message,
		"details", *status.Error,
	)
}
