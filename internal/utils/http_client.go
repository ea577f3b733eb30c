// Package utils provides general-purpose helpers shared by the transports
// and the backend adapter: JSON response writing, the outbound HTTP client
// and identifier generation.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithRetries(0))
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] at construction time.
type HTTPClientOption func(*resty.Client)

// WithRetries sets how many times a failed request is retried. Zero
// disables retries.
func WithRetries(count int) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetRetryCount(count)
	}
}

// WithHeader sets a header sent with every request.
func WithHeader(name, value string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader(name, value)
	}
}

// WithTimeout bounds every request made by the client. Per-request context
// deadlines still apply when they are shorter.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetTimeout(timeout)
	}
}

// WithResponseHook registers fn to be called after every response.
func WithResponseHook(fn resty.ResponseMiddleware) HTTPClientOption {
	return func(c *resty.Client) {
		c.OnAfterResponse(fn)
	}
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool and applies opts in order.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New()
	for _, opt := range opts {
		opt(c)
	}
	return &HTTPClient{Client: c}
}
