// Package services contains the business layer between the HTTP API and
// the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rmsplatform/rms/internal/common"
	"github.com/rmsplatform/rms/internal/dbx"
	"github.com/rmsplatform/rms/internal/server/auth"
	"github.com/rmsplatform/rms/internal/server/config"
	"github.com/rmsplatform/rms/internal/server/models"
	"github.com/rmsplatform/rms/internal/server/repositories/repomanager"
)

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func (s *UserService) Register(ctx context.Context, firstName, lastName, email string, password []byte) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	referralCode, err := common.MakeRandHexString(4)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleRealtor,
		ReferralCode: referralCode,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, email string, password []byte) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, password) != nil {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}

// UpdateProfile overlays the non-nil patch fields on the stored profile.
// The read and the write run in one transaction so concurrent patches do
// not resurrect stale fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch models.UserPatch) (*models.User, error) {
	var updated *models.User

	err := runInTx(ctx, s.db, func(ctx context.Context, h dbx.DBTX) error {
		repo := s.repomanager.Users(h)

		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		merged := patch.Apply(*user)

		updated, err = repo.Update(ctx, &merged)
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return updated, nil
}
