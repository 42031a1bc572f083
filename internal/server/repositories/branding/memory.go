package branding

import (
	"context"
	"sync"
	"time"

	"github.com/rmsplatform/rms/internal/common"
	"github.com/rmsplatform/rms/internal/server/models"
)

// MemoryRepository is a Repository for tests and Postgres-less deployments.
type MemoryRepository struct {
	mu       sync.RWMutex
	settings *models.BrandingSettings
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Get(ctx context.Context) (*models.BrandingSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return nil, common.ErrorNotFound
	}
	s := *r.settings
	return &s, nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, settings *models.BrandingSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := *settings
	s.UpdatedAt = time.Now()
	r.settings = &s
	return nil
}
