// Package queryparams contains the collector tracking fields and the
// table accumulating them for the next tracking request.
package queryparams

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Table maps field names to values. The zero value is ready to use.
//
// A Table is not safe for concurrent use.
type Table struct {
	m map[string]string
}

// Set stores the value of key, replacing any previous value. An empty
// value is ignored, so a previously set value is never erased by an
// absent override.
func (t *Table) Set(key, value string) {
	if value == "" {
		return
	}
	if t.m == nil {
		t.m = make(map[string]string)
	}
	t.m[key] = value
}

// SetInt is like [Table.Set] for integer values.
func (t *Table) SetInt(key string, value int64) {
	t.Set(key, strconv.FormatInt(value, 10))
}

// SetFloat is like [Table.Set] for numeric values, which are formatted
// using the shortest decimal representation (e.g. 3 rather than 3.000000).
func (t *Table) SetFloat(key string, value float64) {
	t.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

// Get returns the value of key, if any.
func (t *Table) Get(key string) (string, bool) {
	value, found := t.m[key]
	return value, found
}

// Len returns the number of fields in the table.
func (t *Table) Len() int {
	return len(t.m)
}

// Clear removes all the fields.
func (t *Table) Clear() {
	t.m = nil
}

// Keys returns the field names in ascending order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.m))
	for key := range t.m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Encode returns the fields as a query string starting with `?` with the
// keys in ascending order. Keys and values are percent-encoded as UTF-8
// using the form encoding, where a space becomes `+`. An empty table
// encodes to the empty string.
func (t *Table) Encode() string {
	if len(t.m) <= 0 {
		return ""
	}
	var sb strings.Builder
	for idx, key := range t.Keys() {
		if idx > 0 {
			sb.WriteByte('&')
		} else {
			sb.WriteByte('?')
		}
		sb.WriteString(url.QueryEscape(key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(t.m[key]))
	}
	return sb.String()
}
