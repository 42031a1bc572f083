// Package authstore persists the bearer credential and user profile across
// two storage scopes. The selected scope follows the host classification
// (persistent when standalone, session otherwise); reads fall back to the
// other scope so a credential written under one classification is still
// found after the host changes class between sessions.
//
// Nothing here returns an error to callers: storage failures are logged and
// treated as cache misses or no-op writes, per the platform's resilience
// policy for non-critical client state.
package authstore

import (
	"context"
	"encoding/json"

	evbus "github.com/asaskevich/EventBus"

	"github.com/rmsplatform/rms/internal/client/platform"
	"github.com/rmsplatform/rms/internal/client/storage"
	"github.com/rmsplatform/rms/internal/logging"
)

const (
	// TokenKey holds the raw access token.
	TokenKey = "token"
	// UserKey holds the JSON-serialized User.
	UserKey = "user"

	// TopicUserUpdated is published after every UpdateUser so independent
	// components can re-read the profile without plumbing.
	TopicUserUpdated = "user-updated"
)

type Store struct {
	platform platform.Capabilities
	bus      evbus.Bus
	logger   logging.Logger
}

func New(caps platform.Capabilities, bus evbus.Bus, logger logging.Logger) *Store {
	return &Store{platform: caps, bus: bus, logger: logger.With("module", "authstore")}
}

// selectedScope is the primary read/write target for the current host class.
func (s *Store) selectedScope() storage.Store {
	if s.platform.IsStandaloneHost() {
		return s.platform.PersistentStore()
	}
	return s.platform.SessionStore()
}

// otherScope is the fallback read target.
func (s *Store) otherScope() storage.Store {
	if s.platform.IsStandaloneHost() {
		return s.platform.SessionStore()
	}
	return s.platform.PersistentStore()
}

func (s *Store) read(ctx context.Context, key string) []byte {
	if !s.platform.IsInteractiveHost() {
		return nil
	}

	v, err := s.selectedScope().Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "credential read failed", "key", key, "error", err)
	}
	if v != nil {
		return v
	}

	// Cross-scope fallback: the host classification may have changed since
	// the credential was written.
	v, err = s.otherScope().Get(ctx, key)
	if err != nil {
		s.logger.Warn(ctx, "credential fallback read failed", "key", key, "error", err)
	}
	return v
}

// Token returns the stored access token, or "" when absent.
func (s *Store) Token(ctx context.Context) string {
	return string(s.read(ctx, TokenKey))
}

// User returns the stored profile, or nil when absent or unreadable.
func (s *Store) User(ctx context.Context) *User {
	raw := s.read(ctx, UserKey)
	if raw == nil {
		return nil
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.logger.Warn(ctx, "discarding unparseable stored user", "error", err)
		return nil
	}
	return &u
}

// SetAuth stores the token and user as a pair in the selected scope. In
// standalone mode the pair is additionally mirrored into the session scope
// so session-only readers still see it. Mirroring is one-directional:
// session-mode writes never leak into long-lived storage.
func (s *Store) SetAuth(ctx context.Context, token string, user User) {
	if !s.platform.IsInteractiveHost() {
		return
	}

	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Error(ctx, "user marshal failed", "error", err)
		return
	}

	s.writePair(ctx, s.selectedScope(), token, raw)
	if s.platform.IsStandaloneHost() {
		s.writePair(ctx, s.platform.SessionStore(), token, raw)
	}
}

func (s *Store) writePair(ctx context.Context, scope storage.Store, token string, user []byte) {
	if err := scope.Set(ctx, TokenKey, []byte(token)); err != nil {
		s.logger.Warn(ctx, "token write failed", "error", err)
	}
	if err := scope.Set(ctx, UserKey, user); err != nil {
		s.logger.Warn(ctx, "user write failed", "error", err)
	}
}

// UpdateUser merges the patch over the current user and writes the result
// back with the same write-then-mirror rule as SetAuth, then announces the
// change on the event bus. No current user means no-op.
func (s *Store) UpdateUser(ctx context.Context, patch UserPatch) {
	current := s.User(ctx)
	if current == nil {
		return
	}

	updated := patch.apply(*current)
	raw, err := json.Marshal(updated)
	if err != nil {
		s.logger.Error(ctx, "user marshal failed", "error", err)
		return
	}

	if err := s.selectedScope().Set(ctx, UserKey, raw); err != nil {
		s.logger.Warn(ctx, "user write failed", "error", err)
	}
	if s.platform.IsStandaloneHost() {
		if err := s.platform.SessionStore().Set(ctx, UserKey, raw); err != nil {
			s.logger.Warn(ctx, "user mirror write failed", "error", err)
		}
	}

	if s.bus != nil {
		s.bus.Publish(TopicUserUpdated)
	}
}

// ClearAuth removes the token and user from both scopes unconditionally, so
// logout is complete even when the host classification changed since login.
func (s *Store) ClearAuth(ctx context.Context) {
	if !s.platform.IsInteractiveHost() {
		return
	}
	for _, scope := range []storage.Store{s.platform.PersistentStore(), s.platform.SessionStore()} {
		if err := scope.Delete(ctx, TokenKey); err != nil {
			s.logger.Warn(ctx, "token delete failed", "error", err)
		}
		if err := scope.Delete(ctx, UserKey); err != nil {
			s.logger.Warn(ctx, "user delete failed", "error", err)
		}
	}
}
