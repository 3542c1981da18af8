package tracker

import (
	"errors"

	"github.com/xqtrack/apptracker/internal/kvstore"
	"github.com/xqtrack/apptracker/internal/visitorid"
)

// loadVisitorID returns the stored visitor ID, if valid, or a new random one.
func (c *Client) loadVisitorID() visitorid.ID {
	if c.store != nil {
		data, err := c.store.Get(kvstore.VisitorIDKey)
		if err == nil {
			if id, err := visitorid.Parse(string(data)); err == nil {
				c.logger.Debugf("tracker: reusing visitor ID %s", id)
				return id
			}
			c.logger.Warnf("tracker: ignoring invalid stored visitor ID: %q", string(data))
		} else if !errors.Is(err, kvstore.ErrNoSuchKey) {
			c.logger.Warnf("tracker: cannot load visitor ID: %s", err.Error())
		}
	}
	id := visitorid.New()
	c.saveVisitorIDValue(id)
	return id
}

func (c *Client) saveVisitorID() {
	c.saveVisitorIDValue(c.visitorID)
}

func (c *Client) saveVisitorIDValue(id visitorid.ID) {
	if c.store == nil {
		return
	}
	if err := c.store.Set(kvstore.VisitorIDKey, []byte(id)); err != nil {
		c.logger.Warnf("tracker: cannot save visitor ID: %s", err.Error())
	}
}
