// Package locale detects the host locale as a BCP 47 language tag, which
// is what the collector expects in the `lang` field and in the
// Accept-Language header (e.g. `en-US` or `zh-TW`).
package locale

import (
	"errors"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// ErrNoLocale indicates that a locale string does not name a language.
var ErrNoLocale = errors.New("locale: no language in locale")

// environVariables are the variables we check, in order of precedence.
var environVariables = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Detect returns the host locale using the process environment or
// the empty string when the environment does not define a locale. As
// with POSIX, the first non-empty variable among LC_ALL, LC_MESSAGES
// and LANG is the one that counts.
func Detect() string {
	return detect(os.Getenv)
}

func detect(getenv func(string) string) string {
	for _, name := range environVariables {
		value := getenv(name)
		if value == "" {
			continue
		}
		// the first non-empty variable overrides the others, even when
		// it does not name a language, e.g. LC_ALL=C
		tag, err := Normalize(value)
		if err != nil {
			return ""
		}
		return tag
	}
	return ""
}

// Normalize converts a POSIX locale such as `zh_TW.UTF-8` to the
// canonical BCP 47 form such as `zh-TW`.
func Normalize(raw string) (string, error) {
	if idx := strings.IndexAny(raw, ".@"); idx >= 0 {
		raw = raw[:idx]
	}
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	switch raw {
	case "", "C", "POSIX":
		return "", ErrNoLocale
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}
