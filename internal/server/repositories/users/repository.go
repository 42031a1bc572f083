// Package users contains the user account repository.
package users

import (
	"context"

	"github.com/rmsplatform/rms/internal/server/models"
)

// Repository is the persistence contract for user accounts.
// Lookups return common.ErrorNotFound when no row matches, and Create
// returns common.ErrorAlreadyExists on an email collision.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}
