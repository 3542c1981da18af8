package httpclientx

//
// getraw.go - GET a raw response.
//

import "context"

// GetRaw sends a GET request and reads a raw response.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - URL is the URL to use;
//
// - config is the config to use.
//
// This function either returns an error or a valid response body.
func GetRaw(ctx context.Context, URL string, config *Config) ([]byte, error) {
	return Send(ctx, &Request{URL: URL}, config)
}
