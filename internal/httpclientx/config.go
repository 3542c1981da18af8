package httpclientx

import (
	"time"

	"github.com/xqtrack/apptracker/internal/model"
)

// DefaultTimeout is the timeout used when [Config] does not specify one.
const DefaultTimeout = 30 * time.Second

// Config contains configuration shared by [Send] and [GetRaw].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// AcceptLanguage contains the OPTIONAL Accept-Language header value to use.
	AcceptLanguage string

	// Client is the MANDATORY [model.HTTPClient] to use.
	Client model.HTTPClient

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// Timeout is the OPTIONAL timeout bounding the whole round trip,
	// including reading the body. When zero, we use [DefaultTimeout].
	Timeout time.Duration

	// UserAgent is the MANDATORY User-Agent header value to use.
	UserAgent string
}

func (c *Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}
