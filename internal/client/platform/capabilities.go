// Package platform abstracts the host environment the client runs in:
// whether there is an interactive user at all, whether the app runs as an
// installed (standalone) desktop application or as an embedded/ad-hoc
// process, and which storage scopes are available in each case.
//
// Production code injects Desktop; tests and headless embedders inject
// Memory. Nothing else in the client probes the environment directly.
package platform

import "github.com/rmsplatform/rms/internal/client/storage"

// Capabilities describes the current host environment.
type Capabilities interface {
	// IsInteractiveHost reports whether a user-facing session exists.
	// When false, credential reads return zero values and writes no-op.
	IsInteractiveHost() bool

	// IsStandaloneHost reports whether the client runs as an installed
	// standalone application (long-lived storage is the primary scope)
	// rather than an ordinary short-lived session.
	IsStandaloneHost() bool

	// PersistentStore returns the scope that survives restarts.
	PersistentStore() storage.Store

	// SessionStore returns the scope tied to the current process lifetime.
	SessionStore() storage.Store
}
