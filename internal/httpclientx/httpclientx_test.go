package httpclientx

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xqtrack/apptracker/internal/model"
	"github.com/xqtrack/apptracker/internal/model/mocks"
	"github.com/xqtrack/apptracker/internal/runtimex"
	"github.com/xqtrack/apptracker/internal/testingx"
)

func newConfig() *Config {
	return &Config{
		Client:    http.DefaultClient,
		Logger:    model.DiscardLogger,
		UserAgent: model.HTTPHeaderUserAgent,
	}
}

func TestGzipDecompression(t *testing.T) {
	t.Run("we correctly handle gzip encoding", func(t *testing.T) {
		expected := []byte(`Bonsoir, Elliot!!!`)

		// create a server returning compressed content
		server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var buffer bytes.Buffer
			writer := gzip.NewWriter(&buffer)
			_ = runtimex.Try1(writer.Write(expected))
			runtimex.Try0(writer.Close())
			w.Header().Add("Content-Encoding", "gzip")
			w.Write(buffer.Bytes())
		}))
		defer server.Close()

		// make sure we can read it
		respbody, err := GetRaw(context.Background(), server.URL, newConfig())
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(expected, respbody); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("we correctly handle the case where we cannot decode gzip", func(t *testing.T) {
		// create a server pretending to return compressed content
		server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Content-Encoding", "gzip")
			w.Write([]byte(`Bonsoir, Elliot!!!`))
		}))
		defer server.Close()

		respbody, err := GetRaw(context.Background(), server.URL, newConfig())
		if err == nil || err.Error() != "gzip: invalid header" {
			t.Fatal("unexpected error", err)
		}
		if respbody != nil {
			t.Fatal("expected nil response body")
		}
	})
}

func TestHTTPStatusCodeHandling(t *testing.T) {
	t.Run("we return ErrRequestFailed preserving the body", func(t *testing.T) {
		server := testingx.MustNewHTTPServer(testingx.HTTPHandlerStatus(http.StatusServiceUnavailable, []byte("maintenance")))
		defer server.Close()

		respbody, err := GetRaw(context.Background(), server.URL, newConfig())
		if err == nil || err.Error() != "httpx: request failed: 503" {
			t.Fatal("unexpected error", err)
		}
		if respbody != nil {
			t.Fatal("expected nil response body")
		}

		var orig *ErrRequestFailed
		if !errors.As(err, &orig) {
			t.Fatal("not an *ErrRequestFailed instance")
		}
		if orig.StatusCode != http.StatusServiceUnavailable {
			t.Fatal("unexpected status code", orig.StatusCode)
		}
		if diff := cmp.Diff([]byte("maintenance"), orig.Body); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("we keep the raw body of a failure that does not decompress", func(t *testing.T) {
		server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Content-Encoding", "gzip")
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("bad gateway"))
		}))
		defer server.Close()

		_, err := GetRaw(context.Background(), server.URL, newConfig())
		var orig *ErrRequestFailed
		if !errors.As(err, &orig) {
			t.Fatal("not an *ErrRequestFailed instance", err)
		}
		if orig.StatusCode != http.StatusBadGateway {
			t.Fatal("unexpected status code", orig.StatusCode)
		}
		if diff := cmp.Diff([]byte("bad gateway"), orig.Body); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("we keep the status and the first bytes of a large failure body", func(t *testing.T) {
		config := newConfig()
		config.Client = &mocks.HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusServiceUnavailable,
					Header:     http.Header{},
					Body:       io.NopCloser(bytes.NewReader(bytes.Repeat([]byte("x"), MaxResponseBodySize+10))),
				}, nil
			},
		}
		respbody, err := GetRaw(context.Background(), "http://xq/piwik.php", config)
		if respbody != nil {
			t.Fatal("expected nil response body")
		}
		var orig *ErrRequestFailed
		if !errors.As(err, &orig) {
			t.Fatal("not an *ErrRequestFailed instance", err)
		}
		if orig.StatusCode != http.StatusServiceUnavailable {
			t.Fatal("unexpected status code", orig.StatusCode)
		}
		if !orig.Truncated {
			t.Fatal("expected the body to be marked as truncated")
		}
		if len(orig.Body) != MaxResponseBodySize {
			t.Fatal("unexpected body length", len(orig.Body))
		}
	})

	t.Run("we accept any 2xx status code", func(t *testing.T) {
		for _, code := range []int{http.StatusOK, http.StatusNoContent, http.StatusAccepted} {
			server := testingx.MustNewHTTPServer(testingx.HTTPHandlerStatus(code, nil))
			_, err := GetRaw(context.Background(), server.URL, newConfig())
			server.Close()
			if err != nil {
				t.Fatal("for", code, "unexpected error", err)
			}
		}
	})
}

func TestSend(t *testing.T) {
	t.Run("we send the configured headers", func(t *testing.T) {
		var got *http.Request
		config := newConfig()
		config.AcceptLanguage = "zh-TW"
		config.Client = &mocks.HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				got = req
				return &http.Response{
					StatusCode: http.StatusNoContent,
					Header:     http.Header{},
					Body:       io.NopCloser(strings.NewReader("")),
				}, nil
			},
		}

		respbody, err := Send(context.Background(), &Request{URL: "http://xq/piwik.php?idsite=1"}, config)
		if err != nil {
			t.Fatal(err)
		}
		if len(respbody) != 0 {
			t.Fatal("expected empty body")
		}
		if got.Method != http.MethodGet {
			t.Fatal("unexpected method", got.Method)
		}
		if got.Header.Get("User-Agent") != model.HTTPHeaderUserAgent {
			t.Fatal("unexpected user agent", got.Header.Get("User-Agent"))
		}
		if got.Header.Get("Accept-Language") != "zh-TW" {
			t.Fatal("unexpected accept language", got.Header.Get("Accept-Language"))
		}
		if got.Header.Get("Content-Type") != "" {
			t.Fatal("unexpected content type")
		}
		if _, found := got.Context().Deadline(); !found {
			t.Fatal("expected the request to have a deadline")
		}
	})

	t.Run("we omit an empty Accept-Language", func(t *testing.T) {
		var got *http.Request
		config := newConfig()
		config.Client = &mocks.HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				got = req
				return &http.Response{
					StatusCode: http.StatusOK,
					Header:     http.Header{},
					Body:       io.NopCloser(strings.NewReader("")),
				}, nil
			},
		}
		if _, err := GetRaw(context.Background(), "http://xq/piwik.php", config); err != nil {
			t.Fatal(err)
		}
		if _, found := got.Header["Accept-Language"]; found {
			t.Fatal("should not have set Accept-Language")
		}
	})

	t.Run("we return the network error", func(t *testing.T) {
		expected := errors.New("mocked error")
		config := newConfig()
		config.Client = &mocks.HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				return nil, expected
			},
		}
		respbody, err := GetRaw(context.Background(), "http://xq/piwik.php", config)
		if !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
		if respbody != nil {
			t.Fatal("expected nil response body")
		}
	})

	t.Run("we fail when the connection is reset", func(t *testing.T) {
		server := testingx.MustNewHTTPServer(testingx.HTTPHandlerReset())
		defer server.Close()
		if _, err := GetRaw(context.Background(), server.URL, newConfig()); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("we fail with an invalid URL", func(t *testing.T) {
		if _, err := GetRaw(context.Background(), "\t", newConfig()); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("we honor the timeout", func(t *testing.T) {
		done := make(chan struct{})
		server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-done:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(done)

		config := newConfig()
		config.Timeout = 50 * time.Millisecond
		_, err := GetRaw(context.Background(), server.URL, config)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("we reject bodies that are too large", func(t *testing.T) {
		config := newConfig()
		config.Client = &mocks.HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Header:     http.Header{},
					Body:       io.NopCloser(bytes.NewReader(make([]byte, MaxResponseBodySize+1))),
				}, nil
			},
		}
		if _, err := GetRaw(context.Background(), "http://xq/piwik.php", config); !errors.Is(err, ErrTruncated) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestSendWithBody(t *testing.T) {
	t.Run("we send the JSON body with POST", func(t *testing.T) {
		var method, contentType string
		var body []byte
		server := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			contentType = r.Header.Get("Content-Type")
			body = runtimex.Try1(io.ReadAll(r.Body))
			w.Write([]byte(`{"status":"success"}`))
		}))
		defer server.Close()

		req := &Request{
			Method: http.MethodPost,
			URL:    server.URL,
			Body:   []byte(`{"requests":["?idsite=1&rec=1"]}`),
		}
		respbody, err := Send(context.Background(), req, newConfig())
		if err != nil {
			t.Fatal(err)
		}
		if method != http.MethodPost || contentType != model.HTTPContentTypeJSON {
			t.Fatal("unexpected request", method, contentType)
		}
		if diff := cmp.Diff(`{"requests":["?idsite=1&rec=1"]}`, string(body)); diff != "" {
			t.Fatal(diff)
		}
		if diff := cmp.Diff(`{"status":"success"}`, string(respbody)); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestNewDefaultClient(t *testing.T) {
	client := NewDefaultClient()
	txp, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatal("unexpected transport type")
	}
	if _, found := txp.TLSNextProto["h2"]; !found {
		t.Fatal("expected HTTP/2 to be configured")
	}

	server := testingx.MustNewHTTPServer(testingx.HTTPHandlerStatus(http.StatusNoContent, nil))
	defer server.Close()
	config := newConfig()
	config.Client = client
	if _, err := GetRaw(context.Background(), server.URL, config); err != nil {
		t.Fatal(err)
	}
}
