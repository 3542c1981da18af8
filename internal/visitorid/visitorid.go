// Package visitorid derives and validates the 16-hex-character visitor
// identifier used by the collector to distinguish unique visitors.
//
// A visitor ID is the first 16 characters of the lowercase hex MD5 digest
// of some input. [New] hashes a random UUID, so every installation gets a
// fresh identity. [FromUserID] hashes the user ID, so logging in again as
// the same user on any device yields the same visitor ID.
package visitorid

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Length is the length of a valid visitor ID.
const Length = 16

// ErrInvalidFormat indicates that a string is not a valid visitor ID.
var ErrInvalidFormat = errors.New("visitorid: invalid format")

// ID is a visitor ID. Use [Parse] to convert an untrusted string.
type ID string

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// New returns a random visitor ID.
func New() ID {
	return digest([]byte(uuid.NewString()))
}

// FromUserID returns the visitor ID bound to the given user ID. The result
// only depends on the bytes of userID.
func FromUserID(userID string) ID {
	return digest([]byte(userID))
}

// digest hashes data and truncates the hex digest to [Length] chars.
func digest(data []byte) ID {
	sum := md5.Sum(data)
	return ID(hex.EncodeToString(sum[:])[:Length])
}

// Valid returns whether candidate is exactly [Length] characters
// long and only contains lowercase hex digits.
func Valid(candidate string) bool {
	if len(candidate) != Length {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		ch := candidate[i]
		if !('0' <= ch && ch <= '9' || 'a' <= ch && ch <= 'f') {
			return false
		}
	}
	return true
}

// Parse returns candidate as an [ID] or an error wrapping [ErrInvalidFormat].
func Parse(candidate string) (ID, error) {
	if !Valid(candidate) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, candidate)
	}
	return ID(candidate), nil
}
