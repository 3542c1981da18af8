package testingx

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/mileusna/useragent"
	"github.com/xqtrack/apptracker/internal/cvar"
	"github.com/xqtrack/apptracker/internal/queryparams"
	"github.com/xqtrack/apptracker/internal/runtimex"
)

// PiwikHit is a tracking request received by [*PiwikCollector].
type PiwikHit struct {
	// Method is the request method.
	Method string

	// Path is the request URL path.
	Path string

	// RawQuery is the raw query string.
	RawQuery string

	// Query is the parsed query string.
	Query url.Values

	// Body is the request body, if any.
	Body []byte

	// UserAgentHeader is the User-Agent header.
	UserAgentHeader string

	// AcceptLanguageHeader is the Accept-Language header.
	AcceptLanguageHeader string

	// Device is the parsed `ua` field.
	Device useragent.UserAgent

	// ScreenVariables contains the parsed `cvar` field, if any.
	ScreenVariables map[string][]string

	// VisitVariables contains the parsed `_cvar` field, if any.
	VisitVariables map[string][]string
}

// IsEvent returns whether this hit records an event rather than a page view.
func (h *PiwikHit) IsEvent() bool {
	return h.Query.Get(queryparams.EventCategory) != "" && !h.Query.Has(queryparams.URL)
}

// PiwikCollector implements the Piwik tracking endpoint for testing.
//
// The zero value is ready to use.
//
// This struct methods panics for several errors. Only use for testing purposes!
type PiwikCollector struct {
	// StatusCode is the OPTIONAL status code to reply with for
	// valid hits. The default is 204, as requested by send_image=0.
	StatusCode int

	// ResponseBody is the OPTIONAL body to send along with the status code.
	ResponseBody []byte

	// ValidateHit is an OPTIONAL callback to validate the incoming hit
	// beyond the checks on the required fields.
	ValidateHit func(hit *PiwikHit) error

	// hits contains the valid hits we received.
	hits []*PiwikHit

	// mu provides mutual exclusion.
	mu sync.Mutex
}

var _ http.Handler = &PiwikCollector{}

// ErrMissingField indicates that a required tracking field is missing.
var ErrMissingField = errors.New("testingx: missing required field")

// Hits returns a copy of the valid hits received so far.
//
// This method is safe to call concurrently with other methods.
func (pc *PiwikCollector) Hits() []*PiwikHit {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return append([]*PiwikHit{}, pc.hits...)
}

// ServeHTTP implements [http.Handler].
//
// This method is safe to call concurrently with other methods.
func (pc *PiwikCollector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// make sure that the method is GET or POST
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		log.Printf("PiwikCollector: invalid method")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// make sure the URL path is one of the tracking scripts
	if !strings.HasSuffix(r.URL.Path, "/piwik.php") && !strings.HasSuffix(r.URL.Path, "/piwik-proxy.php") {
		log.Printf("PiwikCollector: invalid URL path: %s", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	// read the raw request body or panic if we cannot read it
	body := runtimex.Try1(io.ReadAll(r.Body))

	log.Printf("PiwikCollector: %s %s", r.Method, r.URL.String())

	hit, err := pc.newHit(r, body)
	if err != nil {
		log.Printf("PiwikCollector: invalid hit: %s", err.Error())
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// give the user a chance to validate the hit
	if pc.ValidateHit != nil {
		if err := pc.ValidateHit(hit); err != nil {
			log.Printf("PiwikCollector: hit rejected: %s", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	pc.mu.Lock()
	pc.hits = append(pc.hits, hit)
	pc.mu.Unlock()

	status := pc.StatusCode
	if status == 0 {
		status = http.StatusNoContent
	}
	w.WriteHeader(status)
	if len(pc.ResponseBody) > 0 {
		w.Write(pc.ResponseBody)
	}
}

// newHit parses and validates the tracking request.
func (pc *PiwikCollector) newHit(r *http.Request, body []byte) (*PiwikHit, error) {
	query := r.URL.Query()
	for _, key := range []string{queryparams.SiteID, queryparams.Record} {
		if query.Get(key) == "" {
			return nil, errors.Join(ErrMissingField, errors.New(key))
		}
	}
	hit := &PiwikHit{
		Method:               r.Method,
		Path:                 r.URL.Path,
		RawQuery:             r.URL.RawQuery,
		Query:                query,
		Body:                 body,
		UserAgentHeader:      r.Header.Get("User-Agent"),
		AcceptLanguageHeader: r.Header.Get("Accept-Language"),
		Device:               useragent.Parse(query.Get(queryparams.UserAgent)),
	}
	var err error
	if hit.ScreenVariables, err = parseCustomVariables(query.Get(queryparams.ScreenScopeCustomVariables)); err != nil {
		return nil, err
	}
	if hit.VisitVariables, err = parseCustomVariables(query.Get(queryparams.VisitScopeCustomVariables)); err != nil {
		return nil, err
	}
	return hit, nil
}

// parseCustomVariables parses and validates a custom variables field.
func parseCustomVariables(value string) (map[string][]string, error) {
	if value == "" {
		return nil, nil
	}
	var out map[string][]string
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, err
	}
	if len(out) > cvar.MaxSlots {
		return nil, errors.New("testingx: too many custom variables")
	}
	for slot, pair := range out {
		if len(pair) != 2 {
			return nil, errors.New("testingx: malformed custom variable at slot " + slot)
		}
	}
	return out, nil
}
