package usecase

import (
	"context"
	"time"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/pkg/errors"
)

// IdentityVerifier resolves a bearer credential to a verified identity.
// The OTP exchange itself happens against the identity provider before the
// backend ever sees a request.
type IdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (uid string, phone string, err error)
}

type AuthUseCase struct {
	userRepo repository.UserRepository
	verifier IdentityVerifier
}

func NewAuthUseCase(userRepo repository.UserRepository, verifier IdentityVerifier) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		verifier: verifier,
	}
}

type RegisterInput struct {
	Name string
}

// Register creates the user record on a phone number's first verified
// session. Subsequent calls return the existing record unchanged.
func (uc *AuthUseCase) Register(ctx context.Context, uid, phone string, input RegisterInput) (*entity.User, error) {
	existing, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if phone == "" {
		return nil, errors.BadRequest("A verified phone number is required", nil)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Phone:     phone,
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}
