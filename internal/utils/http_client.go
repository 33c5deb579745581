package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a JSON client for the catalog API built on resty.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080")
//	resp, err := client.R().SetResult(&out).Get("/api/categories")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client whose requests are resolved against
// baseURL and sent with JSON headers.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}

// WithToken returns the client with a bearer token attached to every
// request.
func (c *HTTPClient) WithToken(token string) *HTTPClient {
	c.SetAuthToken(token)
	return c
}
