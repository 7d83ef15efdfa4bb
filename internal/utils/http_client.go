package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client for outbound requests, currently the
// webhook relay. Embedding exposes the full resty API while leaving room
// for shared defaults.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool
// and configuration.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
