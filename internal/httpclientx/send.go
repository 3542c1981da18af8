package httpclientx

//
// send.go - send a request and read the raw response body.
//

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/xqtrack/apptracker/internal/iox"
	"github.com/xqtrack/apptracker/internal/model"
)

// MaxResponseBodySize is the maximum number of bytes of the response
// body we are willing to read.
const MaxResponseBodySize = 1 << 22

// ErrRequestFailed indicates that the server returned a non-2xx status code.
type ErrRequestFailed struct {
	// StatusCode is the status code that failed.
	StatusCode int

	// Body contains the response body, useful to diagnose the failure.
	Body []byte

	// Truncated indicates that Body only holds the first
	// [MaxResponseBodySize] bytes of the response body.
	Truncated bool
}

var _ error = &ErrRequestFailed{}

// Error implements error.
func (err *ErrRequestFailed) Error() string {
	return fmt.Sprintf("httpx: request failed: %d", err.StatusCode)
}

// ErrTruncated indicates that the response body exceeds [MaxResponseBodySize].
var ErrTruncated = errors.New("httpx: response body too large")

// Request is a request to send.
type Request struct {
	// Method is the OPTIONAL method. When empty, we use GET.
	Method string

	// URL is the MANDATORY URL.
	URL string

	// Body is the OPTIONAL JSON request body.
	Body []byte
}

// Send sends the given request and returns the raw response body.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - req is the request to send;
//
// - config is the config to use.
//
// This function either returns an error or a valid response body. A
// non-2xx status code causes an [*ErrRequestFailed] error.
func Send(ctx context.Context, req *Request, config *Config) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, config.timeout())
	defer cancel()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	// construct the request to use
	hreq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, err
	}
	if len(req.Body) > 0 {
		hreq.Header.Set("Content-Type", model.HTTPContentTypeJSON)
	}

	return do(ctx, hreq, config)
}

func do(ctx context.Context, req *http.Request, config *Config) ([]byte, error) {
	// optionally assign the headers
	if config.UserAgent != "" {
		req.Header.Set("User-Agent", config.UserAgent)
	}
	if config.AcceptLanguage != "" {
		req.Header.Set("Accept-Language", config.AcceptLanguage)
	}

	// say that we're accepting gzip encoded bodies
	req.Header.Set("Accept-Encoding", "gzip")

	config.Logger.Debugf("%s %s", req.Method, req.URL.String())

	// get the response
	resp, err := config.Client.Do(req)

	// handle the case of failure
	if err != nil {
		config.Logger.Debugf("%s %s: %s", req.Method, req.URL.String(), err.Error())
		return nil, err
	}

	// make sure we close the response body
	defer resp.Body.Close()

	// read the raw response body in the context of the request
	failed := resp.StatusCode < 200 || resp.StatusCode > 299
	rawrespbody, err := iox.ReadAllContext(ctx, resp.Body, MaxResponseBodySize)
	if errors.Is(err, iox.ErrTooLarge) {
		if failed {
			// keep what we read for diagnostics
			return nil, &ErrRequestFailed{StatusCode: resp.StatusCode, Body: rawrespbody, Truncated: true}
		}
		return nil, ErrTruncated
	}
	if err != nil {
		return nil, err
	}

	config.Logger.Debugf("%s %s: %d, %d bytes", req.Method, req.URL.String(), resp.StatusCode, len(rawrespbody))

	// possibly decompress the response body
	respbody := rawrespbody
	if resp.Header.Get("Content-Encoding") == "gzip" {
		respbody, err = gunzip(rawrespbody)
	}

	// handle the case of HTTP error, where we fall back to the raw
	// body when it does not decompress
	if failed {
		if err != nil {
			respbody = rawrespbody
		}
		return nil, &ErrRequestFailed{StatusCode: resp.StatusCode, Body: respbody}
	}
	if err != nil {
		return nil, err
	}

	return respbody, nil
}

func gunzip(data []byte) ([]byte, error) {
	gzreader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gzreader.Close()
	respbody, err := io.ReadAll(io.LimitReader(gzreader, MaxResponseBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(respbody) > MaxResponseBodySize {
		return nil, ErrTruncated
	}
	return respbody, nil
}
