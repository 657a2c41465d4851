package client

import (
	"net/http"
	"time"
)

const defaultTimeout = time.Second * 30

// HTTPClient is a narrow http.Client facade to allow mocking outbound calls.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewDefaultHTTPClient() HTTPClient {
	return &http.Client{Timeout: defaultTimeout}
}
