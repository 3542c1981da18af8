package model

//
// Common HTTP definitions.
//

import "net/http"

const (
	// HTTPHeaderUserAgent is the default User-Agent header value, which is
	// also the default value of the `ua` tracking field.
	HTTPHeaderUserAgent = "PiwikAppTracker"

	// HTTPContentTypeJSON is the Content-Type used for JSON request bodies.
	HTTPContentTypeJSON = "application/json"
)

// HTTPClient is the HTTP client we use to talk to the collector. The
// standard library [*http.Client] implements this interface.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ HTTPClient = &http.Client{}
