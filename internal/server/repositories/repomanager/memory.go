package repomanager

import (
	"context"
	"database/sql"

	"github.com/rmsplatform/rms/internal/dbx"
	"github.com/rmsplatform/rms/internal/server/repositories/branding"
	"github.com/rmsplatform/rms/internal/server/repositories/users"
)

// MemoryRepositoryManager serves the in-memory repositories. The db handle
// is ignored: there is no transaction to bind to, every accessor returns
// the same shared instance.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	branding *branding.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		branding: branding.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Branding(db dbx.DBTX) branding.Repository {
	return m.branding
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
