// Package storage defines the key-value scopes backing the client: a
// persistent SQLite-backed store that survives restarts, and a
// session-lifetime in-memory store that lives and dies with the process.
package storage

import "context"

// Store is a flat key-value store for string keys and opaque byte values.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites any existing value (upsert).
//   - Delete is idempotent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
