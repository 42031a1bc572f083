package branding

import (
	"context"
	"sync"
	"time"
)

// DefaultGateTimeout bounds worst-case blocking on first paint. Three
// seconds is a hard product requirement, not a tuning knob.
const DefaultGateTimeout = 3000 * time.Millisecond

type GateState int

const (
	GatePending GateState = iota
	GateReady
)

func (s GateState) String() string {
	if s == GateReady {
		return "ready"
	}
	return "pending"
}

// Gate withholds branding-dependent output until the cache is known-ready.
// It opens on the first of: data already cached, the refresh resolving, or
// the timeout elapsing. READY is terminal; later refreshes never re-block.
type Gate struct {
	cache   *Cache
	timeout time.Duration

	once  sync.Once
	ready chan struct{}
}

func NewGate(cache *Cache) *Gate {
	return NewGateWithTimeout(cache, DefaultGateTimeout)
}

// NewGateWithTimeout exists for development and tests; production callers
// use NewGate.
func NewGateWithTimeout(cache *Cache, timeout time.Duration) *Gate {
	return &Gate{cache: cache, timeout: timeout, ready: make(chan struct{})}
}

func (g *Gate) markReady() {
	g.once.Do(func() { close(g.ready) })
}

// State reports the current gate state without blocking.
func (g *Gate) State() GateState {
	select {
	case <-g.ready:
		return GateReady
	default:
		return GatePending
	}
}

// Done is closed once the gate is READY.
func (g *Gate) Done() <-chan struct{} {
	return g.ready
}

// Wait blocks until the gate is READY or ctx is cancelled. Cancellation
// returns GatePending without consuming the gate's one-way transition;
// a later Wait may still open it.
func (g *Gate) Wait(ctx context.Context) GateState {
	if g.State() == GateReady {
		return GateReady
	}

	// Synchronous fast path: repeat visits seed the cache from the
	// persistent store before the gate is ever consulted.
	if g.cache.HasData() {
		g.markReady()
		return GateReady
	}

	var ensureErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		ensureErr = g.cache.Ensure(ctx)
	}()

	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	select {
	case <-done:
		// Ensure only errors on ctx cancellation.
		if ensureErr != nil {
			return GatePending
		}
	case <-timer.C:
	case <-ctx.Done():
		return GatePending
	}

	g.markReady()
	return GateReady
}
