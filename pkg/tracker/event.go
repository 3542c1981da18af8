package tracker

import "github.com/xqtrack/apptracker/internal/optional"

// Event is an event to track with [*Client.TrackEvent].
type Event struct {
	// Category is the MANDATORY event category (e.g., "UIAction").
	Category string

	// Action is the MANDATORY event action (e.g., "Click").
	Action string

	// Name is the OPTIONAL name of the object the event acts upon.
	Name string

	// Value is the OPTIONAL numeric value of the event.
	Value optional.Value[float64]
}

// Some returns an optional value holding value, e.g. for [Event.Value].
func Some[T any](value T) optional.Value[T] {
	return optional.Some(value)
}

// None returns an empty optional value.
func None[T any]() optional.Value[T] {
	return optional.None[T]()
}
