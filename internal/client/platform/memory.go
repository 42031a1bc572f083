package platform

import "github.com/rmsplatform/rms/internal/client/storage"

// Memory is an in-memory Capabilities implementation for tests and headless
// embedding. Both scopes are plain memory stores; the host classification
// flags are fixed at construction.
type Memory struct {
	Interactive bool
	Standalone  bool
	persistent  storage.Store
	session     storage.Store
}

func NewMemory(interactive, standalone bool) *Memory {
	return &Memory{
		Interactive: interactive,
		Standalone:  standalone,
		persistent:  storage.NewMemoryStore(),
		session:     storage.NewMemoryStore(),
	}
}

func (m *Memory) IsInteractiveHost() bool { return m.Interactive }

func (m *Memory) IsStandaloneHost() bool { return m.Standalone }

func (m *Memory) PersistentStore() storage.Store { return m.persistent }

func (m *Memory) SessionStore() storage.Store { return m.session }
