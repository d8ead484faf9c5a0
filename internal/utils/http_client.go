package utils

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "mirror-gallery"

// HTTPClient is a wrapper around the resty.Client HTTP client used for every
// outbound call to the provider. It embeds *resty.Client to expose all of its
// methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.example.com", 10*time.Second)
//	resp, err := client.Authorized(ctx, token).Get("/timeline/1")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client resolving relative paths against baseURL.
// A non-positive timeout leaves requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// Authorized starts a request bound to ctx carrying token as a bearer
// credential.
func (c *HTTPClient) Authorized(ctx context.Context, token string) *resty.Request {
	return c.R().
		SetContext(ctx).
		SetAuthToken(token)
}
