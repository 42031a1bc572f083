package branding

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmsplatform/rms/internal/client/storage"
	"github.com/rmsplatform/rms/internal/logging"
)

// stubFetcher counts calls and optionally blocks until released.
type stubFetcher struct {
	mu      sync.Mutex
	calls   int
	rec     Record
	err     error
	release chan struct{} // when non-nil, FetchBranding waits on it
}

func (f *stubFetcher) FetchBranding(ctx context.Context) (Record, error) {
	f.mu.Lock()
	f.calls++
	release := f.release
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return Record{}, ctx.Err()
		}
	}
	return f.rec, f.err
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func seedStore(t *testing.T, store storage.Store, rec Record) {
	t.Helper()
	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), StorageKey, raw))
}

func TestCache_SeedsSynchronouslyFromStore(t *testing.T) {
	store := storage.NewMemoryStore()
	seedStore(t, store, Record{CompanyName: "Acme Realty"})

	f := &stubFetcher{release: make(chan struct{})} // network never answers
	c := NewCache(store, f, nil, logging.NewNopLogger())

	assert.True(t, c.HasData())
	assert.Equal(t, "Acme Realty", c.snapshot().CompanyName)
	assert.Equal(t, 0, f.callCount())
}

func TestCache_CorruptPersistedValueIsACacheMiss(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), StorageKey, []byte("{corrupt")))

	c := NewCache(store, &stubFetcher{}, nil, logging.NewNopLogger())

	assert.False(t, c.HasData())
}

func TestCache_EnsureDeduplicatesConcurrentFetches(t *testing.T) {
	store := storage.NewMemoryStore()
	f := &stubFetcher{rec: Record{CompanyName: "Acme Realty"}, release: make(chan struct{})}
	c := NewCache(store, f, nil, logging.NewNopLogger())

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, c.Ensure(context.Background()))
		}()
	}

	// Both waiters must have joined the same in-flight fetch.
	require.Eventually(t, func() bool { return f.callCount() == 1 },
		time.Second, 5*time.Millisecond)
	close(f.release)
	wg.Wait()

	assert.Equal(t, 1, f.callCount())
	assert.Equal(t, "Acme Realty", c.snapshot().CompanyName)
}

func TestCache_FailedRefreshNeverOverwritesGoodData(t *testing.T) {
	store := storage.NewMemoryStore()
	seedStore(t, store, Record{CompanyName: "Acme"})

	f := &stubFetcher{err: errors.New("network down")}
	c := NewCache(store, f, nil, logging.NewNopLogger())

	require.NoError(t, c.Ensure(context.Background()))

	assert.Equal(t, "Acme", c.snapshot().CompanyName)

	raw, err := store.Get(context.Background(), StorageKey)
	require.NoError(t, err)
	var persisted Record
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, "Acme", persisted.CompanyName)
}

func TestCache_FirstFailureResolvesToEmptyRecord(t *testing.T) {
	store := storage.NewMemoryStore()
	f := &stubFetcher{err: errors.New("network down")}
	c := NewCache(store, f, nil, logging.NewNopLogger())

	require.False(t, c.HasData())
	require.NoError(t, c.Ensure(context.Background()))

	assert.True(t, c.HasData())
	assert.Equal(t, Record{}, c.snapshot())
}

func TestCache_SuccessReplacesAndPersists(t *testing.T) {
	store := storage.NewMemoryStore()
	seedStore(t, store, Record{CompanyName: "Old Name", SupportEmail: "old@rms.test"})

	f := &stubFetcher{rec: Record{CompanyName: "New Name"}}
	c := NewCache(store, f, nil, logging.NewNopLogger())

	require.NoError(t, c.Ensure(context.Background()))

	// Full replacement, not a merge: the old support email is gone.
	assert.Equal(t, Record{CompanyName: "New Name"}, c.snapshot())

	raw, err := store.Get(context.Background(), StorageKey)
	require.NoError(t, err)
	var persisted Record
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, Record{CompanyName: "New Name"}, persisted)
}

func TestCache_CurrentIsStaleWhileRevalidate(t *testing.T) {
	store := storage.NewMemoryStore()
	seedStore(t, store, Record{CompanyName: "Stale"})

	f := &stubFetcher{rec: Record{CompanyName: "Fresh"}}
	c := NewCache(store, f, nil, logging.NewNopLogger())

	// First read returns the stale snapshot without blocking.
	assert.Equal(t, "Stale", c.Current().CompanyName)

	require.Eventually(t, func() bool {
		return c.snapshot().CompanyName == "Fresh"
	}, time.Second, 5*time.Millisecond)
}

func TestCache_PublishesEventAfterSuccessfulRefresh(t *testing.T) {
	store := storage.NewMemoryStore()
	bus := evbus.New()

	var mu sync.Mutex
	fired := 0
	require.NoError(t, bus.Subscribe(TopicUpdated, func() {
		mu.Lock()
		fired++
		mu.Unlock()
	}))

	f := &stubFetcher{rec: Record{CompanyName: "Acme"}}
	c := NewCache(store, f, bus, logging.NewNopLogger())

	require.NoError(t, c.Ensure(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, fired)
}

func TestCache_PersistFailureIsSwallowed(t *testing.T) {
	store := &failingStore{Store: storage.NewMemoryStore()}
	f := &stubFetcher{rec: Record{CompanyName: "Acme"}}
	c := NewCache(store, f, nil, logging.NewNopLogger())

	require.NoError(t, c.Ensure(context.Background()))

	// In-memory value updated even though persistence failed.
	assert.Equal(t, "Acme", c.snapshot().CompanyName)
}

// failingStore rejects writes but delegates reads.
type failingStore struct {
	storage.Store
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}
