// Package branding contains the branding settings repository.
package branding

import (
	"context"

	"github.com/rmsplatform/rms/internal/server/models"
)

// Repository stores the single module-wide branding document.
// Get returns common.ErrorNotFound until branding has been configured once.
type Repository interface {
	Get(ctx context.Context) (*models.BrandingSettings, error)
	Upsert(ctx context.Context, settings *models.BrandingSettings) error
}
