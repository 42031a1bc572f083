package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rmsplatform/rms/internal/common"
	"github.com/rmsplatform/rms/internal/server/auth"
	"github.com/rmsplatform/rms/internal/server/config"
	"github.com/rmsplatform/rms/internal/server/models"
	"github.com/rmsplatform/rms/internal/server/repositories/repomanager"
)

func newUserService() *UserService {
	cfg := &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
	}
	return NewUserService(nil, repomanager.NewMemoryRepositoryManager(), cfg)
}

func TestRegister_HashesPasswordAndAssignsDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	user, err := svc.Register(ctx, "Jane", "Doe", "jane@example.com", []byte("pa55word"))
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleRealtor, user.Role)
	assert.NotEmpty(t, user.ReferralCode)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("pa55word")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	_, err := svc.Register(ctx, "Jane", "Doe", "jane@example.com", []byte("pw"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, "John", "Doe", "jane@example.com", []byte("pw2"))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	registered, err := svc.Register(ctx, "Jane", "Doe", "jane@example.com", []byte("pa55word"))
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "jane@example.com", []byte("pa55word"))
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)

	userID, err := auth.GetUserIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	_, err := svc.Register(ctx, "Jane", "Doe", "jane@example.com", []byte("right"))
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "jane@example.com", []byte("wrong"))
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	_, _, err := svc.Login(ctx, "nobody@example.com", []byte("pw"))
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUpdateProfile_ShallowMerge(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	registered, err := svc.Register(ctx, "Jane", "Doe", "jane@example.com", []byte("pw"))
	require.NoError(t, err)

	newName := "Janet"
	updated, err := svc.UpdateProfile(ctx, registered.ID, models.UserPatch{FirstName: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Janet", updated.FirstName)
	// untouched fields survive
	assert.Equal(t, "Doe", updated.LastName)
	assert.Equal(t, "jane@example.com", updated.Email)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	name := "X"
	_, err := svc.UpdateProfile(ctx, "no-such-id", models.UserPatch{FirstName: &name})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestProfile_ReturnsStoredUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	registered, err := svc.Register(ctx, "Jane", "Doe", "jane@example.com", []byte("pw"))
	require.NoError(t, err)

	got, err := svc.Profile(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, got.Email)
}
