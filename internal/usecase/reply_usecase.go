package usecase

import (
	"context"
	"time"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/pkg/errors"
)

type ReplyUseCase struct {
	replyRepo repository.ReplyRepository
	postRepo  repository.PostRepository
}

func NewReplyUseCase(
	replyRepo repository.ReplyRepository,
	postRepo repository.PostRepository,
) *ReplyUseCase {
	return &ReplyUseCase{
		replyRepo: replyRepo,
		postRepo:  postRepo,
	}
}

type CreateReplyInput struct {
	PostID      string
	Price       int64
	Description string
	ImageURLs   []string
}

func (uc *ReplyUseCase) CreateReply(ctx context.Context, userID string, input CreateReplyInput) (*entity.Reply, error) {
	if input.Price <= 0 {
		return nil, errors.BadRequest("Price must be positive", nil)
	}

	post, err := uc.postRepo.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	if !post.IsOpen() {
		return nil, errors.InvalidState("Post is no longer accepting replies", nil)
	}

	if post.IsOwnedBy(userID) {
		return nil, errors.BadRequest("You cannot reply to your own post", nil)
	}

	now := time.Now()
	reply := &entity.Reply{
		PostID:      post.ID,
		UserID:      userID,
		Price:       input.Price,
		Description: input.Description,
		ImageURLs:   input.ImageURLs,
		Status:      entity.ReplyStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}

	return reply, nil
}

func (uc *ReplyUseCase) ListPostReplies(ctx context.Context, postID string) ([]*entity.Reply, error) {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return uc.replyRepo.ListByPostID(ctx, postID)
}

// AcceptReply accepts one reply on behalf of the post owner. The accepted
// reply, the post's completed status, and the reset of every sibling reply
// commit together in a single store transaction; a concurrent acceptance
// loses with a conflict once the post has left its active status.
func (uc *ReplyUseCase) AcceptReply(ctx context.Context, callerID, postID, replyID string) (*entity.Reply, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !post.IsOwnedBy(callerID) {
		return nil, errors.Forbidden("Only the post owner can accept a reply", nil)
	}

	if !post.IsOpen() {
		return nil, errors.InvalidState("Post is no longer accepting replies", nil)
	}

	reply, err := uc.replyRepo.GetByID(ctx, replyID)
	if err != nil {
		return nil, err
	}

	if reply.PostID != postID {
		return nil, errors.NotFound("Reply", nil)
	}

	if err := uc.replyRepo.Accept(ctx, postID, replyID); err != nil {
		return nil, err
	}

	reply.Status = entity.ReplyStatusAccepted
	return reply, nil
}
