package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client shared by the client-side adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that accepts JSON and does not retry.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
