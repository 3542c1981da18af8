package queryparams

//
// fields.go - names of the collector tracking fields.
//

// Required fields.
const (
	// SiteID is the ID of the website we're tracking a visit/action for.
	SiteID = "idsite"

	// Record must be set to one for the request to be recorded.
	Record = "rec"

	// URL is the full URL for the current action.
	URL = "url"
)

// Recommended fields.
const (
	// ActionName is the title of the action being tracked. Slashes
	// create categories, e.g. `Help / Feedback`.
	ActionName = "action_name"

	// VisitorID is the 16 hex characters unique visitor ID.
	VisitorID = "_id"

	// RandomNumber is a cache buster generated before each request.
	RandomNumber = "rand"

	// APIVersion is the tracking API version (always 1).
	APIVersion = "apiv"
)

// Optional user info.
const (
	// Referrer is the full HTTP referrer URL.
	Referrer = "urlref"

	// VisitScopeCustomVariables is the JSON encoded visit scope custom variables.
	VisitScopeCustomVariables = "_cvar"

	// TotalNumberOfVisits is the current count of visits for this visitor.
	TotalNumberOfVisits = "_idvc"

	// PreviousVisitTimestamp is the UNIX timestamp of the previous visit.
	PreviousVisitTimestamp = "_viewts"

	// FirstVisitTimestamp is the UNIX timestamp of the first visit.
	FirstVisitTimestamp = "_idts"

	// CampaignName is the campaign name. Only used for the first pageview of a visit.
	CampaignName = "_rcn"

	// CampaignKeyword is the campaign keyword. Only used for the first pageview of a visit.
	CampaignKeyword = "_rck"

	// ScreenResolution is the device resolution, e.g. 1280x1024.
	ScreenResolution = "res"

	// Hours is the current hour (local time).
	Hours = "h"

	// Minutes is the current minute (local time).
	Minutes = "m"

	// Seconds is the current second (local time).
	Seconds = "s"

	// UserAgent overrides the User-Agent header value.
	UserAgent = "ua"

	// Language overrides the Accept-Language header value.
	Language = "lang"

	// UserID is the logged-in user ID. When present, the collector attaches
	// the action to a recent visit of the same user or creates a new one.
	UserID = "uid"

	// SessionStart forces a new visit when set to 1.
	SessionStart = "new_visit"
)

// Optional action info.
const (
	// ScreenScopeCustomVariables is the JSON encoded page scope custom variables.
	ScreenScopeCustomVariables = "cvar"

	// Link is an external URL the user has opened.
	Link = "link"

	// Download is the URL of a file the user has downloaded.
	Download = "download"

	// SearchKeyword turns the request into a site search request.
	SearchKeyword = "search"

	// SearchCategory is the optional site search category.
	SearchCategory = "search_cat"

	// SearchNumberOfHits is the number of site search results.
	SearchNumberOfHits = "search_count"

	// GoalID triggers a conversion for the given goal.
	GoalID = "idgoal"

	// Revenue is the monetary value of a goal conversion.
	Revenue = "revenue"

	// Country overrides the visitor country (two letters, lowercase).
	Country = "country"

	// Latitude overrides the visitor latitude.
	Latitude = "lat"

	// Longitude overrides the visitor longitude.
	Longitude = "long"

	// DatetimeOfRequest is the UTC datetime of the request, formatted
	// as [DatetimeLayout].
	DatetimeOfRequest = "cdt"

	// ContentName is the name of the content, e.g. `Ad Foo Bar`.
	ContentName = "c_n"

	// ContentPiece is the actual content piece, e.g. the path to an image.
	ContentPiece = "c_p"

	// ContentTarget is the target of the content, e.g. a landing page URL.
	ContentTarget = "c_t"

	// ContentInteraction is the name of the interaction, e.g. `click`.
	ContentInteraction = "c_i"

	// EventCategory is the event category. Must not be empty.
	EventCategory = "e_c"

	// EventAction is the event action. Must not be empty.
	EventAction = "e_a"

	// EventName is the event name.
	EventName = "e_n"

	// EventValue is the event value. Must be numeric.
	EventValue = "e_v"

	// SendImage set to 0 makes the collector reply with 204 instead of a GIF.
	SendImage = "send_image"
)

// DatetimeLayout is the layout of [DatetimeOfRequest].
const DatetimeLayout = "2006-01-02 15:04:05"
