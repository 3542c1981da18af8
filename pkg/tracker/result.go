package tracker

// Result is the outcome of a tracking request.
//
// A failed delivery is not an error for the caller: the event is lost and
// Err tells what happened, which is mostly useful for logging and testing.
type Result struct {
	// URL is the request URL including the query string.
	URL string

	// Response is the response body. On HTTP failure, it contains the
	// body returned along with the non-2xx status code.
	Response []byte

	// Err is the delivery error, if any.
	Err error
}

// OK returns whether the collector accepted the request.
func (r *Result) OK() bool {
	return r.Err == nil
}
