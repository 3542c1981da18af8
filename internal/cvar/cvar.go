// Package cvar implements the collector custom variables.
//
// Each scope (visit or screen) holds up to [MaxSlots] name/value pairs and
// serializes as a JSON object keyed by the 1-based slot number:
//
//	{"1":["OS","iphone 5.0"],"2":["Piwik Mobile Version","1.6.2"]}
package cvar

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/xqtrack/apptracker/internal/runtimex"
)

// MaxSlots is the number of custom variables per scope.
const MaxSlots = 5

// ErrIndexOutOfRange indicates that a slot index is not in [0, MaxSlots).
var ErrIndexOutOfRange = errors.New("cvar: index out of range")

// pair is a custom variable stored in a slot.
type pair struct {
	name  string
	value string
}

// Set is a set of custom variables. The zero value is ready to use.
//
// A Set is not safe for concurrent use.
type Set struct {
	slots [MaxSlots]*pair
}

// Set stores the name and value at the given zero-based index, which
// is sent to the collector as slot index+1. Existing values are replaced.
func (s *Set) Set(index int, name, value string) error {
	if index < 0 || index >= MaxSlots {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.slots[index] = &pair{name: name, value: value}
	return nil
}

// Get returns the custom variable at the given zero-based index.
func (s *Set) Get(index int) (name, value string, found bool) {
	if index < 0 || index >= MaxSlots || s.slots[index] == nil {
		return "", "", false
	}
	return s.slots[index].name, s.slots[index].value, true
}

// Len returns the number of populated slots.
func (s *Set) Len() (count int) {
	for _, p := range s.slots {
		if p != nil {
			count++
		}
	}
	return
}

// Clear empties all the slots.
func (s *Set) Clear() {
	s.slots = [MaxSlots]*pair{}
}

// Serialize returns the JSON representation of the populated slots in
// ascending slot order. An empty set serializes to `{}`. Characters such
// as `&` and `<` are emitted verbatim rather than as \u escapes.
func (s *Set) Serialize() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	buf.WriteByte('{')
	first := true
	for idx, p := range s.slots {
		if p == nil {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteString(strconv.Quote(strconv.Itoa(idx + 1)))
		buf.WriteByte(':')
		// a []string always encodes
		runtimex.Try0(enc.Encode([]string{p.name, p.value}))
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
	}
	buf.WriteByte('}')
	return buf.String()
}
