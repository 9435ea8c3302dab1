package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nearbuy/internal/domain/entity"
	"nearbuy/pkg/errors"
)

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	locationRepo := newFakeLocationRepo()
	uc := NewUserUseCase(userRepo, locationRepo)

	require.NoError(t, userRepo.Create(ctx, &entity.User{
		ID:    "u1",
		Phone: "+15551234",
		Name:  "Alice",
		About: "old about",
	}))

	user, err := uc.UpdateProfile(ctx, "u1", UpdateProfileInput{
		Name:  "Alice B",
		About: "new about",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", user.Name)
	assert.Equal(t, "new about", user.About)

	// An empty name keeps the current one; about is replaced as given.
	user, err = uc.UpdateProfile(ctx, "u1", UpdateProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", user.Name)
	assert.Empty(t, user.About)
}

func TestGetProfileHidesPrivateFields(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo, newFakeLocationRepo())

	require.NoError(t, userRepo.Create(ctx, &entity.User{
		ID:    "u1",
		Phone: "+15551234",
		Name:  "Alice",
	}))

	profile, err := uc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "Alice", profile.Name)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	locationRepo := newFakeLocationRepo()
	uc := NewUserUseCase(userRepo, locationRepo)

	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "u1", Phone: "+15551234", Name: "Alice"}))
	require.NoError(t, locationRepo.Upsert(ctx, &entity.Location{UserID: "u1", Latitude: 1, Longitude: 2, UpdatedAt: time.Now()}))

	require.NoError(t, uc.DeleteAccount(ctx, "u1"))

	_, err := uc.GetMe(ctx, "u1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = locationRepo.GetByUserID(ctx, "u1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteAccountWithoutLocation(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo, newFakeLocationRepo())

	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "u1", Phone: "+15551234", Name: "Alice"}))
	require.NoError(t, uc.DeleteAccount(ctx, "u1"))
}
