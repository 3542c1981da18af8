package tracker

import (
	"sync"

	"github.com/xqtrack/apptracker/internal/locale"
	"github.com/xqtrack/apptracker/internal/model"
)

// Environment holds the user agent and the language of the host device.
//
// Share a single Environment among all the clients of a process when
// they report on behalf of the same device. A request uses the values
// that were current when it was composed; there is no isolation between
// a request in flight and a concurrent update.
//
// The methods of Environment are safe for concurrent use.
type Environment struct {
	mu        sync.RWMutex
	userAgent string
	language  string
}

// NewEnvironment returns a new [*Environment] using the default user
// agent and the language of the host locale, if any.
func NewEnvironment() *Environment {
	return &Environment{
		userAgent: model.HTTPHeaderUserAgent,
		language:  locale.Detect(),
	}
}

// SetUserAgent sets the user agent.
func (env *Environment) SetUserAgent(userAgent string) {
	env.mu.Lock()
	env.userAgent = userAgent
	env.mu.Unlock()
}

// UserAgent returns the user agent.
func (env *Environment) UserAgent() string {
	env.mu.RLock()
	defer env.mu.RUnlock()
	return env.userAgent
}

// SetLanguage sets the language, e.g. `zh-TW`.
func (env *Environment) SetLanguage(language string) {
	env.mu.Lock()
	env.language = language
	env.mu.Unlock()
}

// Language returns the language.
func (env *Environment) Language() string {
	env.mu.RLock()
	defer env.mu.RUnlock()
	return env.language
}

// Snapshot returns the user agent and the language atomically.
func (env *Environment) Snapshot() (userAgent, language string) {
	env.mu.RLock()
	defer env.mu.RUnlock()
	return env.userAgent, env.language
}
