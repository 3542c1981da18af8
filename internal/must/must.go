// Package must contains functions that panic on error.
package must

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/xqtrack/apptracker/internal/runtimex"
)

// Fprintf is like [fmt.Fprintf] but calls
// [runtimex.PanicOnError] on failure.
func Fprintf(w io.Writer, format string, v ...any) {
	_, err := fmt.Fprintf(w, format, v...)
	runtimex.PanicOnError(err, "fmt.Fprintf failed")
}

// ParseURL is like [url.Parse] but calls
// [runtimex.PanicOnError] on failure.
func ParseURL(URL string) *url.URL {
	parsed, err := url.Parse(URL)
	runtimex.PanicOnError(err, "url.Parse failed")
	return parsed
}

// ParseQuery is like [url.ParseQuery] but calls
// [runtimex.PanicOnError] on failure.
func ParseQuery(query string) url.Values {
	values, err := url.ParseQuery(query)
	runtimex.PanicOnError(err, "url.ParseQuery failed")
	return values
}

// UnmarshalJSON is like [json.Unmarshal] but calls
// [runtimex.PanicOnError] on failure.
func UnmarshalJSON(data []byte, v any) {
	err := json.Unmarshal(data, v)
	runtimex.PanicOnError(err, "json.Unmarshal failed")
}
