package testingx

import (
	"net"
	"net/http"
	"net/http/httptest"

	"github.com/xqtrack/apptracker/internal/runtimex"
)

// MustNewHTTPServer creates and starts a new HTTP server listening on the
// loopback interface and serving the given handler. The caller is responsible
// for calling Close when done.
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	return httptest.NewServer(handler)
}

// HTTPHandlerStatus returns an [http.Handler] replying with the given
// status code and body.
func HTTPHandlerStatus(code int, body []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		if len(body) > 0 {
			w.Write(body)
		}
	})
}

// HTTPHandlerReset returns an [http.Handler] that closes the connection
// without sending any response, which the client sees as a network error.
//
// This handler panics if the connection cannot be hijacked.
func HTTPHandlerReset() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hijacker := w.(http.Hijacker)
		conn, _ := runtimex.Try2(hijacker.Hijack())
		if tc, ok := conn.(*net.TCPConn); ok {
			tc.SetLinger(0)
		}
		conn.Close()
	})
}
