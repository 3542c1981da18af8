// Package tracker reports screen views and events to a Piwik collector
// using the URL query tracking API.
//
// A [*Client] accumulates the fields of the next request through its
// setters. Each Track method then fills the protocol fields, sends one
// GET request and clears the accumulated fields, so the next request
// starts from scratch except for the visitor identity.
//
// Delivery is best effort: a failed request is logged and reported in
// the returned [*Result], but it is never returned as an error.
package tracker

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xqtrack/apptracker/internal/cvar"
	"github.com/xqtrack/apptracker/internal/httpclientx"
	"github.com/xqtrack/apptracker/internal/model"
	"github.com/xqtrack/apptracker/internal/queryparams"
	"github.com/xqtrack/apptracker/internal/visitorid"
)

// Config contains the [*Client] configuration.
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// APIURL is the MANDATORY collector URL, e.g. `https://stats.example.com/`.
	// The `piwik.php` script is appended unless the URL already ends with
	// `piwik.php` or `piwik-proxy.php`.
	APIURL string

	// SiteID is the MANDATORY site ID, which must be positive.
	SiteID int

	// AppDomain is the MANDATORY application domain used to build absolute
	// URLs from screen paths. If it is "xq", then "/home" is reported
	// as "http://xq/home".
	AppDomain string

	// Environment is the OPTIONAL user agent and language holder. When nil,
	// we use a new environment created with [NewEnvironment].
	Environment *Environment

	// HTTPClient is the OPTIONAL HTTP client. When nil, we use a client
	// created with httpclientx.NewDefaultClient.
	HTTPClient model.HTTPClient

	// Logger is the OPTIONAL logger. When nil, we do not log.
	Logger model.Logger

	// Timeout is the OPTIONAL request timeout. When zero, we use 30 seconds.
	Timeout time.Duration

	// TimeNow is the OPTIONAL function returning the current time.
	TimeNow func() time.Time

	// IdentityStore is the OPTIONAL store used to persist the visitor ID. When
	// set, we reuse a previously stored visitor ID and we save any new one.
	IdentityStore model.KeyValueStore
}

// Client tracks screen views and events.
//
// A Client is not safe for concurrent use. Use a Client per goroutine or
// serialize the calls. Clients may share the same [*Environment].
type Client struct {
	appDomain  string
	cvars      map[scope]*cvar.Set
	endpoint   string
	env        *Environment
	httpClient model.HTTPClient
	logger     model.Logger
	params     queryparams.Table
	siteID     int
	store      model.KeyValueStore
	timeNow    func() time.Time
	timeout    time.Duration
	userID     string
	visitorID  visitorid.ID
}

// New creates a new [*Client] using the given config.
func New(config *Config) (*Client, error) {
	if config.APIURL == "" {
		return nil, fmt.Errorf("%w: APIURL", ErrEmptyArgument)
	}
	if config.SiteID <= 0 {
		return nil, fmt.Errorf("%w: SiteID: %d", ErrInvalidArgument, config.SiteID)
	}
	if config.AppDomain == "" {
		return nil, fmt.Errorf("%w: AppDomain", ErrEmptyArgument)
	}
	c := &Client{
		appDomain:  config.AppDomain,
		cvars:      make(map[scope]*cvar.Set),
		endpoint:   normalizeEndpoint(config.APIURL),
		env:        config.Environment,
		httpClient: config.HTTPClient,
		logger:     model.ValidLoggerOrDefault(config.Logger),
		siteID:     config.SiteID,
		store:      config.IdentityStore,
		timeNow:    config.TimeNow,
		timeout:    config.Timeout,
	}
	if c.env == nil {
		c.env = NewEnvironment()
	}
	if c.httpClient == nil {
		c.httpClient = httpclientx.NewDefaultClient()
	}
	if c.timeNow == nil {
		c.timeNow = time.Now
	}
	if c.timeout <= 0 {
		c.timeout = httpclientx.DefaultTimeout
	}
	c.visitorID = c.loadVisitorID()
	return c, nil
}

// Endpoint returns the URL of the collector script.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Set sets the value of the given tracking field. An empty value is
// ignored and leaves any previous value untouched.
func (c *Client) Set(key, value string) {
	c.params.Set(key, value)
}

// SetInt is like [*Client.Set] for integer values.
func (c *Client) SetInt(key string, value int) {
	c.params.SetInt(key, int64(value))
}

// Get returns the value of the given tracking field for the next request.
func (c *Client) Get(key string) (string, bool) {
	return c.params.Get(key)
}

// Pending returns the number of fields and custom variables staged for the
// next request. It is zero after every Track method returns.
func (c *Client) Pending() int {
	count := c.params.Len()
	for _, set := range c.cvars {
		count += set.Len()
	}
	return count
}

// SetUserID sets the user ID and derives the visitor ID from it, so the
// same user always gets the same visitor ID.
func (c *Client) SetUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", ErrEmptyArgument)
	}
	c.userID = userID
	c.visitorID = visitorid.FromUserID(userID)
	c.saveVisitorID()
	return nil
}

// UserID returns the user ID, if any.
func (c *Client) UserID() string {
	return c.userID
}

// SetVisitorID overrides the visitor ID, which must be 16 lowercase hex digits.
func (c *Client) SetVisitorID(visitorID string) error {
	id, err := visitorid.Parse(visitorID)
	if err != nil {
		return err
	}
	c.visitorID = id
	c.saveVisitorID()
	return nil
}

// VisitorID returns the visitor ID.
func (c *Client) VisitorID() string {
	return c.visitorID.String()
}

// SetResolution sets the screen resolution.
func (c *Client) SetResolution(width, height int) {
	c.params.Set(queryparams.ScreenResolution, strconv.Itoa(width)+"x"+strconv.Itoa(height))
}

// SetScreenTitle sets the title of the screen to track.
func (c *Client) SetScreenTitle(title string) {
	c.params.Set(queryparams.ActionName, title)
}

// SetUserAgent sets the user agent of the shared environment.
func (c *Client) SetUserAgent(userAgent string) {
	c.env.SetUserAgent(userAgent)
}

// UserAgent returns the user agent of the shared environment.
func (c *Client) UserAgent() string {
	return c.env.UserAgent()
}

// SetLanguage sets the language of the shared environment.
func (c *Client) SetLanguage(language string) {
	c.env.SetLanguage(language)
}

// Language returns the language of the shared environment.
func (c *Client) Language() string {
	return c.env.Language()
}

// SetReferrer sets the referrer URL.
func (c *Client) SetReferrer(referrer string) {
	c.params.Set(queryparams.Referrer, referrer)
}

// SetCampaign sets the campaign name and keyword. Either may be empty.
func (c *Client) SetCampaign(name, keyword string) {
	c.params.Set(queryparams.CampaignName, name)
	c.params.Set(queryparams.CampaignKeyword, keyword)
}

// SetNewVisit forces the collector to start a new visit.
func (c *Client) SetNewVisit() {
	c.params.Set(queryparams.SessionStart, "1")
}

// SetVisitCount sets the number of visits of the visitor.
func (c *Client) SetVisitCount(count int) {
	c.params.SetInt(queryparams.TotalNumberOfVisits, int64(count))
}

// SetFirstVisit sets the time of the first visit of the visitor.
func (c *Client) SetFirstVisit(t time.Time) {
	c.params.SetInt(queryparams.FirstVisitTimestamp, t.Unix())
}

// SetPreviousVisit sets the time of the previous visit of the visitor.
func (c *Client) SetPreviousVisit(t time.Time) {
	c.params.SetInt(queryparams.PreviousVisitTimestamp, t.Unix())
}

// SetLocalTime sets the local time of the visitor.
func (c *Client) SetLocalTime(t time.Time) {
	c.params.SetInt(queryparams.Hours, int64(t.Hour()))
	c.params.SetInt(queryparams.Minutes, int64(t.Minute()))
	c.params.SetInt(queryparams.Seconds, int64(t.Second()))
}

// SetLocation overrides the visitor country code and coordinates. The
// collector ignores these fields unless the request is authenticated.
func (c *Client) SetLocation(country string, latitude, longitude float64) {
	c.params.Set(queryparams.Country, country)
	c.params.SetFloat(queryparams.Latitude, latitude)
	c.params.SetFloat(queryparams.Longitude, longitude)
}
