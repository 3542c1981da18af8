package tracker

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/xqtrack/apptracker/internal/httpclientx"
	"github.com/xqtrack/apptracker/internal/optional"
	"github.com/xqtrack/apptracker/internal/queryparams"
)

const (
	// apiVersion is the value of the apiv field.
	apiVersion = "1"

	// recordValue is the value of the rec field.
	recordValue = "1"

	// maxRandomNumber bounds the rand field.
	maxRandomNumber = 100000
)

// TrackScreenView tracks a view of the screen at the given path, which is
// reported as an absolute URL within the application domain. The title is
// optional.
func (c *Client) TrackScreenView(ctx context.Context, path, title string) (*Result, error) {
	c.params.Set(queryparams.ActionName, title)
	c.params.Set(queryparams.URL, path)
	return c.track(ctx), nil
}

// TrackEvent tracks an event. Events do not carry a URL, so the collector
// does not count them as screen views.
func (c *Client) TrackEvent(ctx context.Context, event *Event) (*Result, error) {
	if event == nil {
		return nil, fmt.Errorf("%w: event", ErrEmptyArgument)
	}
	if event.Category == "" {
		return nil, fmt.Errorf("%w: category", ErrEmptyArgument)
	}
	if event.Action == "" {
		return nil, fmt.Errorf("%w: action", ErrEmptyArgument)
	}
	c.params.Set(queryparams.EventCategory, event.Category)
	c.params.Set(queryparams.EventAction, event.Action)
	c.params.Set(queryparams.EventName, event.Name)
	if !event.Value.IsNone() {
		c.params.SetFloat(queryparams.EventValue, event.Value.Unwrap())
	}
	return c.track(ctx), nil
}

// TrackOutlink tracks a click on a link leading outside of the application.
func (c *Client) TrackOutlink(ctx context.Context, link string) (*Result, error) {
	if link == "" {
		return nil, fmt.Errorf("%w: link", ErrEmptyArgument)
	}
	c.params.Set(queryparams.Link, link)
	c.params.Set(queryparams.URL, link)
	return c.track(ctx), nil
}

// TrackDownload tracks the download of the file at the given URL.
func (c *Client) TrackDownload(ctx context.Context, URL string) (*Result, error) {
	if URL == "" {
		return nil, fmt.Errorf("%w: URL", ErrEmptyArgument)
	}
	c.params.Set(queryparams.Download, URL)
	c.params.Set(queryparams.URL, URL)
	return c.track(ctx), nil
}

// TrackSiteSearch tracks a search within the application. The category
// and the number of hits are optional.
func (c *Client) TrackSiteSearch(ctx context.Context, keyword, category string, hits optional.Value[int]) (*Result, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword", ErrEmptyArgument)
	}
	c.params.Set(queryparams.SearchKeyword, keyword)
	c.params.Set(queryparams.SearchCategory, category)
	if !hits.IsNone() {
		c.params.SetInt(queryparams.SearchNumberOfHits, int64(hits.Unwrap()))
	}
	return c.track(ctx), nil
}

// TrackGoal tracks the conversion of the given goal with an optional revenue.
func (c *Client) TrackGoal(ctx context.Context, goalID int, revenue optional.Value[float64]) (*Result, error) {
	if goalID <= 0 {
		return nil, fmt.Errorf("%w: goalID: %d", ErrInvalidArgument, goalID)
	}
	c.params.SetInt(queryparams.GoalID, int64(goalID))
	if !revenue.IsNone() {
		c.params.SetFloat(queryparams.Revenue, revenue.Unwrap())
	}
	return c.track(ctx), nil
}

// TrackContentImpression tracks that the named content was displayed. The
// piece and the target are optional.
func (c *Client) TrackContentImpression(ctx context.Context, name, piece, target string) (*Result, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrEmptyArgument)
	}
	c.setContent(name, piece, target)
	return c.track(ctx), nil
}

// TrackContentInteraction tracks an interaction (e.g., "click") with the
// named content. The piece and the target are optional.
func (c *Client) TrackContentInteraction(ctx context.Context, interaction, name, piece, target string) (*Result, error) {
	if interaction == "" {
		return nil, fmt.Errorf("%w: interaction", ErrEmptyArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrEmptyArgument)
	}
	c.params.Set(queryparams.ContentInteraction, interaction)
	c.setContent(name, piece, target)
	return c.track(ctx), nil
}

func (c *Client) setContent(name, piece, target string) {
	c.params.Set(queryparams.ContentName, name)
	c.params.Set(queryparams.ContentPiece, piece)
	c.params.Set(queryparams.ContentTarget, target)
}

// track sends the accumulated fields and clears them regardless of the outcome.
func (c *Client) track(ctx context.Context) *Result {
	defer c.afterTracking()
	userAgent, language := c.beforeTracking()

	result := &Result{URL: c.endpoint + c.params.Encode()}
	c.logger.Debugf("tracker: request %s", result.URL)

	config := &httpclientx.Config{
		AcceptLanguage: language,
		Client:         c.httpClient,
		Logger:         c.logger,
		Timeout:        c.timeout,
		UserAgent:      userAgent,
	}
	result.Response, result.Err = httpclientx.GetRaw(ctx, result.URL, config)

	var failure *httpclientx.ErrRequestFailed
	switch {
	case errors.As(result.Err, &failure):
		result.Response = failure.Body
		c.logger.Warnf("tracker: collector replied %d: %s", failure.StatusCode, string(failure.Body))
		if failure.Truncated {
			c.logger.Warnf("tracker: collector reply truncated to %d bytes", len(failure.Body))
		}
	case result.Err != nil:
		c.logger.Warnf("tracker: request failed: %s", result.Err.Error())
	default:
		c.logger.Debugf("tracker: response %s", string(result.Response))
	}
	return result
}

// beforeTracking fills the protocol fields and returns the user agent and
// the language to send as headers.
func (c *Client) beforeTracking() (userAgent, language string) {
	c.params.Set(queryparams.APIVersion, apiVersion)
	c.params.Set(queryparams.SendImage, "0")
	c.params.SetInt(queryparams.SiteID, int64(c.siteID))
	c.params.Set(queryparams.Record, recordValue)
	c.params.SetInt(queryparams.RandomNumber, rand.Int64N(maxRandomNumber))

	value, _ := c.params.Get(queryparams.URL)
	c.params.Set(queryparams.URL, resolveURL(c.appDomain, value))

	userAgent, language = c.env.Snapshot()
	c.params.Set(queryparams.UserAgent, userAgent)
	c.params.Set(queryparams.Language, language)

	c.params.Set(queryparams.VisitorID, c.visitorID.String())
	c.params.Set(queryparams.UserID, c.userID)

	c.params.Set(queryparams.DatetimeOfRequest, c.timeNow().UTC().Format(queryparams.DatetimeLayout))

	c.params.Set(queryparams.ScreenScopeCustomVariables, c.serializeCustomVariables(scopeScreen))
	c.params.Set(queryparams.VisitScopeCustomVariables, c.serializeCustomVariables(scopeVisit))
	return
}

func (c *Client) afterTracking() {
	c.params.Clear()
	c.clearCustomVariables()
}
