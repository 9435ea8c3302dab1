package repository

import (
	"context"

	"nearbuy/internal/domain/entity"
)

type ReplyRepository interface {
	Create(ctx context.Context, reply *entity.Reply) error
	GetByID(ctx context.Context, id string) (*entity.Reply, error)
	ListByPostID(ctx context.Context, postID string) ([]*entity.Reply, error)

	// Accept atomically marks the reply accepted, completes the post, and
	// resets every sibling reply on the post to pending. If the post is no
	// longer active by the time the transaction reads it, Accept fails with
	// a conflict and nothing is written.
	Accept(ctx context.Context, postID, replyID string) error
}
