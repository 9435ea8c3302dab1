package usecase

import (
	"context"
	"log"
	"time"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/pkg/errors"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
}

func NewUserUseCase(userRepo repository.UserRepository, locationRepo repository.LocationRepository) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		locationRepo: locationRepo,
	}
}

type UpdateProfileInput struct {
	Name      string
	About     string
	AvatarURL string
}

func (uc *UserUseCase) GetMe(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.PublicProfile(), nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	user.About = input.About
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteAccount soft-deletes the user and their location. Posts and
// messages stay in place; profiles simply stop resolving.
func (uc *UserUseCase) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := uc.userRepo.SoftDelete(ctx, userID); err != nil {
		return err
	}

	if err := uc.locationRepo.SoftDeleteByUserID(ctx, userID); err != nil && !errors.Is(err, "NOT_FOUND") {
		log.Printf("DeleteAccount: soft deleting location for user %s failed: %v", userID, err)
	}

	return nil
}
