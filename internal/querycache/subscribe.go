package querycache

import "github.com/venue-admin/internal/domain"

// EventType says what happened to a key.
type EventType string

const (
	EventFetched     EventType = "fetched"
	EventFetchFailed EventType = "fetch_failed"
	EventWritten     EventType = "written"
	EventInvalidated EventType = "invalidated"
	EventRemoved     EventType = "removed"
)

type Event struct {
	Key  domain.QueryKey
	Type EventType
}

// Subscribe registers fn for events on exactly key. fn runs synchronously
// after the cache lock is released, so it may read the cache but should not
// block. The returned func unsubscribes.
func (c *Cache) Subscribe(key domain.QueryKey, fn func(Event)) func() {
	k := key.String()

	c.subMu.Lock()
	c.nextSub++
	id := c.nextSub
	if c.subs[k] == nil {
		c.subs[k] = make(map[uint64]func(Event))
	}
	c.subs[k][id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subs[k], id)
		if len(c.subs[k]) == 0 {
			delete(c.subs, k)
		}
	}
}

func (c *Cache) notify(key domain.QueryKey, t EventType) {
	k := key.String()

	c.subMu.RLock()
	fns := make([]func(Event), 0, len(c.subs[k]))
	for _, fn := range c.subs[k] {
		fns = append(fns, fn)
	}
	c.subMu.RUnlock()

	ev := Event{Key: key, Type: t}
	for _, fn := range fns {
		fn(ev)
	}
}
