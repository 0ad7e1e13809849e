// Package network provides a pre-configured HTTP client for direct (non-browser) requests.
//
// All LMS and identity-provider traffic flows through the driven browser session;
// this client only serves auxiliary calls such as the release version check.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with reasonable pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
