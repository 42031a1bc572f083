package branding

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"golang.org/x/sync/singleflight"

	"github.com/rmsplatform/rms/internal/client/storage"
	"github.com/rmsplatform/rms/internal/logging"
)

// Fetcher is the network collaborator the cache refreshes from.
type Fetcher interface {
	FetchBranding(ctx context.Context) (Record, error)
}

// Cache is the in-process branding cache.
//
// Semantics:
//   - Seeded synchronously from the persistent store at construction;
//     corrupt or unavailable storage is a plain cache miss.
//   - At most one refresh is in flight at any time; concurrent Ensure
//     callers share the same fetch and observe the same outcome.
//   - A successful fetch fully replaces the record and persists it.
//   - A failed fetch never overwrites existing data. If nothing was cached
//     yet it installs an empty record, so HasData becomes true exactly once
//     per process even under permanent network failure and the gate can
//     never block forever.
type Cache struct {
	store   storage.Store
	fetcher Fetcher
	bus     evbus.Bus
	logger  logging.Logger

	mu   sync.Mutex
	data *Record

	group        singleflight.Group
	fetchTimeout time.Duration
}

func NewCache(store storage.Store, fetcher Fetcher, bus evbus.Bus, logger logging.Logger) *Cache {
	c := &Cache{
		store:        store,
		fetcher:      fetcher,
		bus:          bus,
		logger:       logger.With("module", "branding"),
		fetchTimeout: 10 * time.Second,
	}
	c.seedFromStore()
	return c
}

func (c *Cache) seedFromStore() {
	ctx := context.Background()

	raw, err := c.store.Get(ctx, StorageKey)
	if err != nil {
		c.logger.Warn(ctx, "branding seed read failed", "error", err)
		return
	}
	if raw == nil {
		return
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		c.logger.Warn(ctx, "discarding corrupt persisted branding", "error", err)
		return
	}
	c.data = &rec
}

// HasData reports whether the cache holds a resolved record (possibly the
// empty fallback installed after a first failed refresh).
func (c *Cache) HasData() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data != nil
}

// Current returns the cached record (zero Record when nothing is cached yet)
// and unconditionally triggers a background refresh: stale-while-revalidate.
// It never blocks.
func (c *Cache) Current() Record {
	snap := c.snapshot()
	c.Refresh()
	return snap
}

func (c *Cache) snapshot() Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		return Record{}
	}
	return *c.data
}

// Refresh fires a background Ensure and returns immediately.
func (c *Cache) Refresh() {
	go func() {
		_ = c.Ensure(context.Background())
	}()
}

// Ensure fetches branding from the collaborator unless a refresh is already
// in flight, in which case it joins the running one. Fetch failures are
// absorbed by the cache policy; the only returned error is ctx cancellation
// while waiting.
func (c *Cache) Ensure(ctx context.Context) error {
	ch := c.group.DoChan("refresh", func() (any, error) {
		// The fetch runs on its own context so one impatient waiter
		// cannot cancel a refresh other callers joined.
		fctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
		defer cancel()
		c.refresh(fctx)
		return nil, nil
	})

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Cache) refresh(ctx context.Context) {
	rec, err := c.fetcher.FetchBranding(ctx)
	if err != nil {
		c.mu.Lock()
		first := c.data == nil
		if first {
			empty := Record{}
			c.data = &empty
		}
		c.mu.Unlock()
		c.logger.Warn(ctx, "branding refresh failed", "error", err, "firstResolve", first)
		return
	}

	c.mu.Lock()
	c.data = &rec
	c.mu.Unlock()

	c.persist(ctx, rec)

	if c.bus != nil {
		c.bus.Publish(TopicUpdated)
	}
}

func (c *Cache) persist(ctx context.Context, rec Record) {
	raw, err := json.Marshal(rec)
	if err != nil {
		c.logger.Warn(ctx, "branding marshal failed", "error", err)
		return
	}
	if err := c.store.Set(ctx, StorageKey, raw); err != nil {
		c.logger.Warn(ctx, "branding persist failed", "error", err)
	}
}
