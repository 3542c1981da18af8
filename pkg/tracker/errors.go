package tracker

import (
	"errors"

	"github.com/xqtrack/apptracker/internal/cvar"
	"github.com/xqtrack/apptracker/internal/visitorid"
)

var (
	// ErrEmptyArgument indicates that a required string argument is empty.
	ErrEmptyArgument = errors.New("tracker: empty argument")

	// ErrInvalidArgument indicates that an argument is out of its domain.
	ErrInvalidArgument = errors.New("tracker: invalid argument")

	// ErrInvalidFormat indicates that a visitor ID is not 16 lowercase hex digits.
	ErrInvalidFormat = visitorid.ErrInvalidFormat

	// ErrIndexOutOfRange indicates that a custom variable index is not in [0, 5).
	ErrIndexOutOfRange = cvar.ErrIndexOutOfRange
)
