package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("http://localhost:8080"))
//	resp, err := client.R().Get("/api/version")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures a client built by [NewHTTPClient].
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL every relative request path is resolved
// against. A trailing slash is dropped.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
}

// WithTimeout bounds every request made with the client. Zero leaves
// requests unbounded.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) HTTPClientOption {
	return func(c *resty.Client) {
		if userAgent != "" {
			c.SetHeader("User-Agent", userAgent)
		}
	}
}

// NewHTTPClient creates an independent client with its own connection pool,
// JSON Accept header and the given options applied.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New().SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
