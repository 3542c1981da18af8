package kvstore

import (
	"errors"
	"fmt"
	"path/filepath"
)

// VisitorIDKey is the key under which the tracker stores the visitor ID.
const VisitorIDKey = "visitor_id"

// ErrInvalidKey indicates that a key cannot name a file in the store directory.
var ErrInvalidKey = errors.New("kvstore: invalid key")

// validateKey ensures that key is a plain file name, so that an [*FS]
// never reads or writes outside of its base directory.
func validateKey(key string) error {
	if key == "" || key == "." || key == ".." || filepath.Base(key) != key {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
