package repository

import (
	"context"

	"nearbuy/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// ListByThread returns the thread's messages in creation order.
	ListByThread(ctx context.Context, threadID string) ([]*entity.Message, error)

	// ListByPost returns every message on the post in creation order.
	ListByPost(ctx context.Context, postID string) ([]*entity.Message, error)

	// ListByParticipant returns every message where the user is sender or
	// receiver, in creation order.
	ListByParticipant(ctx context.Context, userID string) ([]*entity.Message, error)

	// MarkReplied flips the message from pending to replied. The update is
	// conditional on the current status being pending, so concurrent calls
	// transition the message at most once.
	MarkReplied(ctx context.Context, id string) error
}
