package repository

import (
	"context"

	"nearbuy/internal/domain/entity"
)

type LocationRepository interface {
	// Upsert creates the user's location or replaces the existing one;
	// each user has at most one location document.
	Upsert(ctx context.Context, location *entity.Location) error
	GetByUserID(ctx context.Context, userID string) (*entity.Location, error)
	SoftDeleteByUserID(ctx context.Context, userID string) error
}
