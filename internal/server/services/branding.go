package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmsplatform/rms/internal/common"
	"github.com/rmsplatform/rms/internal/dbx"
	"github.com/rmsplatform/rms/internal/server/models"
	"github.com/rmsplatform/rms/internal/server/repositories/repomanager"
)

type BrandingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBrandingService(db *sql.DB, m repomanager.RepositoryManager) *BrandingService {
	return &BrandingService{db: db, repomanager: m}
}

// Get returns the current branding document. Before any admin has
// configured branding there is nothing to serve, and the caller gets an
// empty document rather than an error: clients treat branding as optional.
func (s *BrandingService) Get(ctx context.Context) (*models.BrandingSettings, error) {
	repo := s.repomanager.Branding(s.db)

	settings, err := repo.Get(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &models.BrandingSettings{}, nil
		}
		return nil, fmt.Errorf("error loading branding: %w", err)
	}

	return settings, nil
}

// Update replaces the whole branding document. Fields absent from the
// request become empty; there is no field-level merge.
func (s *BrandingService) Update(ctx context.Context, settings *models.BrandingSettings) error {
	err := runInTx(ctx, s.db, func(ctx context.Context, h dbx.DBTX) error {
		return s.repomanager.Branding(h).Upsert(ctx, settings)
	})

	if err != nil {
		return fmt.Errorf("error updating branding: %w", err)
	}

	return nil
}
