package tracker

import "github.com/xqtrack/apptracker/internal/cvar"

// scope is the scope of a custom variable.
type scope string

const (
	scopeVisit  = scope("visit")
	scopeScreen = scope("screen")
)

// SetUserCustomVariable sets a custom variable in the visit scope at the
// given zero-based index, which must be in [0, 5).
func (c *Client) SetUserCustomVariable(index int, name, value string) error {
	return c.setCustomVariable(scopeVisit, index, name, value)
}

// SetScreenCustomVariable sets a custom variable in the screen scope at the
// given zero-based index, which must be in [0, 5).
func (c *Client) SetScreenCustomVariable(index int, name, value string) error {
	return c.setCustomVariable(scopeScreen, index, name, value)
}

func (c *Client) setCustomVariable(sc scope, index int, name, value string) error {
	if sc != scopeVisit && sc != scopeScreen {
		return nil
	}
	set := c.cvars[sc]
	if set == nil {
		set = &cvar.Set{}
		c.cvars[sc] = set
	}
	return set.Set(index, name, value)
}

// serializeCustomVariables returns the serialized custom variables of the
// given scope or the empty string when there are none.
func (c *Client) serializeCustomVariables(sc scope) string {
	set := c.cvars[sc]
	if set == nil || set.Len() <= 0 {
		return ""
	}
	return set.Serialize()
}

func (c *Client) clearCustomVariables() {
	for _, set := range c.cvars {
		set.Clear()
	}
}
