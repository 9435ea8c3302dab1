package repository

import (
	"context"

	"nearbuy/internal/domain/entity"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Post, int64, error)

	// ListActive returns every non-deleted post with active status; nearby
	// search filters and orders these by distance in the use case.
	ListActive(ctx context.Context) ([]*entity.Post, error)

	// IncrementResponseCount atomically bumps the post's response counter.
	IncrementResponseCount(ctx context.Context, id string) error
}
