package httpclientx

import (
	"net"
	"net/http"
	"time"

	"github.com/xqtrack/apptracker/internal/runtimex"
	"golang.org/x/net/http2"
)

// NewDefaultClient returns a new [*http.Client] whose transport mirrors the
// settings of [http.DefaultTransport] and has HTTP/2 explicitly configured.
func NewDefaultClient() *http.Client {
	txp := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	runtimex.Try1(http2.ConfigureTransports(txp))
	return &http.Client{Transport: txp}
}
