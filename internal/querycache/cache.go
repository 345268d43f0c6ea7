// Package querycache holds the last known value per query key and serves
// reads from it, fetching through the supplied function only when the entry
// is absent or stale.
//
// The cache is created once per process and passed explicitly to every use
// case. Writes are synchronous and visible to all readers as soon as Write
// returns. Concurrent reads of the same key share one in-flight fetch.
package querycache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/venue-admin/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Status - состояние записи кеша
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// FetchFunc loads the value for a key from the backend.
type FetchFunc func(ctx context.Context) (interface{}, error)

// Result is what a reader observes for a key.
type Result struct {
	Data      interface{}
	Status    Status
	Err       error
	UpdatedAt time.Time
	Stale     bool
}

func (r Result) IsLoading() bool { return r.Status == StatusLoading || r.Status == StatusIdle }
func (r Result) IsError() bool   { return r.Status == StatusError }

type entry struct {
	key         domain.QueryKey
	data        interface{}
	hasData     bool
	status      Status
	err         error
	updatedAt   time.Time
	invalidated bool
	// gen changes on every write or invalidation; a fetch only lands if the
	// generation it started from is still current.
	gen uint64
}

// Cache - общий кеш запросов дашборда
type Cache struct {
	mu        sync.RWMutex
	entries   map[string]*entry
	group     singleflight.Group
	staleTime time.Duration
	now       func() time.Time
	logger    *zap.Logger

	subMu   sync.RWMutex
	subs    map[string]map[uint64]func(Event)
	nextSub uint64

	hits        atomic.Int64
	misses      atomic.Int64
	fetches     atomic.Int64
	fetchErrors atomic.Int64
}

// Option configures a Cache.
type Option func(*Cache)

// WithStaleTime makes successful entries stale after d. Zero keeps them
// fresh until invalidated.
func WithStaleTime(d time.Duration) Option {
	return func(c *Cache) { c.staleTime = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func New(logger *zap.Logger, opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]*entry),
		subs:    make(map[string]map[uint64]func(Event)),
		now:     time.Now,
		logger:  logger.Named("querycache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) isStale(e *entry) bool {
	if e.invalidated || e.status != StatusSuccess {
		return true
	}
	return c.staleTime > 0 && c.now().Sub(e.updatedAt) > c.staleTime
}

func (c *Cache) result(e *entry) Result {
	return Result{
		Data:      e.data,
		Status:    e.status,
		Err:       e.err,
		UpdatedAt: e.updatedAt,
		Stale:     c.isStale(e),
	}
}

// Peek returns the current state of key without fetching. An absent key
// reads as idle (loading), not as an error.
func (c *Cache) Peek(key domain.QueryKey) Result {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return Result{Status: StatusIdle, Stale: true}
	}
	return c.result(e)
}

// Read returns the cached value for key, calling fetch when the entry is
// absent or stale. Callers racing on the same key share one fetch. If ctx
// ends first the caller stops waiting but the fetch keeps going for the rest.
func (c *Cache) Read(ctx context.Context, key domain.QueryKey, fetch FetchFunc) (Result, error) {
	k := key.String()

	c.mu.Lock()
	e, ok := c.entries[k]
	if ok && !c.isStale(e) {
		res := c.result(e)
		c.mu.Unlock()
		c.hits.Add(1)
		return res, nil
	}
	if !ok {
		e = &entry{key: key, status: StatusIdle}
		c.entries[k] = e
	}
	if !e.hasData {
		e.status = StatusLoading
	}
	gen := e.gen
	c.mu.Unlock()
	c.misses.Add(1)

	ch := c.group.DoChan(k, func() (interface{}, error) {
		c.fetches.Add(1)
		c.logger.Debug("Fetching", zap.Strings("key", key))

		data, err := fetch(context.WithoutCancel(ctx))
		c.storeFetch(key, gen, data, err)
		return data, err
	})

	select {
	case <-ctx.Done():
		return Result{Status: StatusLoading}, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return Result{Status: StatusError, Err: r.Err}, r.Err
		}
		return Result{Data: r.Val, Status: StatusSuccess, UpdatedAt: c.now()}, nil
	}
}

func (c *Cache) storeFetch(key domain.QueryKey, gen uint64, data interface{}, err error) {
	k := key.String()

	c.mu.Lock()
	e, ok := c.entries[k]
	if !ok || e.gen != gen {
		c.mu.Unlock()
		c.logger.Debug("Discarding fetch overtaken by a newer write", zap.Strings("key", key))
		return
	}

	if err != nil {
		c.fetchErrors.Add(1)
		e.err = err
		if !e.hasData {
			e.status = StatusError
		}
		c.mu.Unlock()
		c.logger.Warn("Fetch failed", zap.Strings("key", key), zap.Error(err))
		c.notify(key, EventFetchFailed)
		return
	}

	e.data = data
	e.hasData = true
	e.status = StatusSuccess
	e.err = nil
	e.invalidated = false
	e.updatedAt = c.now()
	c.mu.Unlock()

	c.notify(key, EventFetched)
}

// Write replaces the value at key with updater(previous). previous is nil
// when nothing is cached. The write is visible to readers on return.
func (c *Cache) Write(key domain.QueryKey, updater func(prev interface{}) interface{}) {
	k := key.String()

	c.mu.Lock()
	e, ok := c.entries[k]
	if !ok {
		e = &entry{key: key}
		c.entries[k] = e
	}
	var prev interface{}
	if e.hasData {
		prev = e.data
	}
	e.data = updater(prev)
	e.hasData = true
	e.status = StatusSuccess
	e.err = nil
	e.invalidated = false
	e.updatedAt = c.now()
	e.gen++
	c.mu.Unlock()

	c.group.Forget(k)
	c.notify(key, EventWritten)
}

// Update is Write restricted to keys that already hold data. It reports
// whether the updater ran. Merging into a list that was never fetched would
// leave a partial list looking fresh, so callers that patch lists use this.
func (c *Cache) Update(key domain.QueryKey, updater func(prev interface{}) interface{}) bool {
	k := key.String()

	c.mu.Lock()
	e, ok := c.entries[k]
	if !ok || !e.hasData {
		c.mu.Unlock()
		return false
	}
	e.data = updater(e.data)
	e.status = StatusSuccess
	e.updatedAt = c.now()
	e.gen++
	c.mu.Unlock()

	c.group.Forget(k)
	c.notify(key, EventWritten)
	return true
}

// Invalidate marks key and every key it prefixes as stale, so the next Read
// refetches. It returns the keys that were marked.
func (c *Cache) Invalidate(key domain.QueryKey) []domain.QueryKey {
	return c.invalidate(key, false)
}

// InvalidateExact marks only key as stale.
func (c *Cache) InvalidateExact(key domain.QueryKey) []domain.QueryKey {
	return c.invalidate(key, true)
}

func (c *Cache) invalidate(key domain.QueryKey, exact bool) []domain.QueryKey {
	var marked []domain.QueryKey

	c.mu.Lock()
	for k, e := range c.entries {
		if exact && !e.key.Equal(key) {
			continue
		}
		if !exact && !e.key.HasPrefix(key) {
			continue
		}
		e.invalidated = true
		e.gen++
		c.group.Forget(k)
		marked = append(marked, e.key)
	}
	c.mu.Unlock()

	for _, k := range marked {
		c.notify(k, EventInvalidated)
	}
	if len(marked) > 0 {
		c.logger.Debug("Invalidated", zap.Strings("key", key), zap.Bool("exact", exact), zap.Int("count", len(marked)))
	}
	return marked
}

// Remove drops key and every key it prefixes.
func (c *Cache) Remove(key domain.QueryKey) {
	var removed []domain.QueryKey

	c.mu.Lock()
	for k, e := range c.entries {
		if e.key.HasPrefix(key) {
			delete(c.entries, k)
			c.group.Forget(k)
			removed = append(removed, e.key)
		}
	}
	c.mu.Unlock()

	for _, k := range removed {
		c.notify(k, EventRemoved)
	}
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.Remove(domain.QueryKey{})
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats - счётчики кеша для health-эндпоинта
type Stats struct {
	Entries     int   `json:"entries"`
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
	Fetches     int64 `json:"fetches"`
	FetchErrors int64 `json:"fetch_errors"`
}

func (c *Cache) Stats() Stats {
	return Stats{
		Entries:     c.Len(),
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Fetches:     c.fetches.Load(),
		FetchErrors: c.fetchErrors.Load(),
	}
}

// ReadAs is Read for callers that know the stored type.
func ReadAs[T any](ctx context.Context, c *Cache, key domain.QueryKey, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	res, err := c.Read(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	v, ok := res.Data.(T)
	if !ok {
		return zero, fmt.Errorf("cache entry %v holds %T", []string(key), res.Data)
	}
	return v, nil
}

// GetAs returns the cached value at key if it holds a T, without fetching.
// Stale values are returned as well.
func GetAs[T any](c *Cache, key domain.QueryKey) (T, bool) {
	var zero T
	res := c.Peek(key)
	if res.Data == nil {
		return zero, false
	}
	v, ok := res.Data.(T)
	return v, ok
}

// FreshAs is GetAs that ignores stale entries. Checks that must agree with
// the backend use it, since a stale value may predate the last mutation.
func FreshAs[T any](c *Cache, key domain.QueryKey) (T, bool) {
	var zero T
	res := c.Peek(key)
	if res.Stale || res.Data == nil {
		return zero, false
	}
	v, ok := res.Data.(T)
	return v, ok
}

// UpdateAs is Update for callers that know the stored type.
func UpdateAs[T any](c *Cache, key domain.QueryKey, fn func(prev T) T) bool {
	return c.Update(key, func(prev interface{}) interface{} {
		typed, ok := prev.(T)
		if !ok {
			return prev
		}
		return fn(typed)
	})
}

// WriteAs is Write for callers that know the stored type. prev is the zero
// value when nothing is cached.
func WriteAs[T any](c *Cache, key domain.QueryKey, fn func(prev T) T) {
	c.Write(key, func(prev interface{}) interface{} {
		typed, _ := prev.(T)
		return fn(typed)
	})
}
