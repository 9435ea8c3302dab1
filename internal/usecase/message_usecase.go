package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/internal/infrastructure/ratelimit"
	"nearbuy/pkg/errors"
)

// MessageUseCase implements the thread gating rules: anyone except the
// owner may open a thread on an open post, the owner may always reply in
// their threads, and a non-owner may only follow up once the owner has
// replied at least once.
type MessageUseCase struct {
	messageRepo repository.MessageRepository
	postRepo    repository.PostRepository
	rateLimiter *ratelimit.RateLimiter
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	postRepo repository.PostRepository,
	rateLimiter *ratelimit.RateLimiter,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		postRepo:    postRepo,
		rateLimiter: rateLimiter,
	}
}

type CreateMessageInput struct {
	PostID   string
	ThreadID string
	Text     string
	Price    *int64
	Type     entity.MessageType
	Meta     map[string]interface{}
}

// ThreadMessages groups one thread's messages, oldest first.
type ThreadMessages struct {
	ThreadID string            `json:"thread_id"`
	Messages []*entity.Message `json:"messages"`
}

// ThreadPreview is one row of a user's inbox: the thread and its most
// recent message.
type ThreadPreview struct {
	ThreadID    string          `json:"thread_id"`
	LastMessage *entity.Message `json:"last_message"`
}

func (uc *MessageUseCase) CreateMessage(ctx context.Context, senderID string, input CreateMessageInput) (*entity.Message, error) {
	allowed, waitTime := uc.rateLimiter.Allow(senderID, "send_message")
	if !allowed {
		log.Printf("CreateMessage rate limited: user %s must wait %v", senderID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before sending another message", waitTime)
	}

	if input.Type == "" {
		input.Type = entity.MessageTypeText
	}
	if !entity.ValidMessageType(input.Type) {
		return nil, errors.BadRequest("Invalid message type", nil)
	}
	if input.Type == entity.MessageTypeText && input.Text == "" {
		return nil, errors.BadRequest("Text is required", nil)
	}
	if input.Price != nil && *input.Price <= 0 {
		return nil, errors.BadRequest("Price must be positive", nil)
	}

	post, err := uc.postRepo.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	if !post.IsOpen() {
		return nil, errors.InvalidState("Post is no longer accepting messages", nil)
	}

	message := &entity.Message{
		PostID:    post.ID,
		SenderID:  senderID,
		Text:      input.Text,
		Price:     input.Price,
		Type:      input.Type,
		Meta:      input.Meta,
		Status:    entity.MessageStatusPending,
		CreatedAt: time.Now(),
	}

	if input.ThreadID == "" {
		// New thread: the receiver is always the post owner, and owners
		// cannot open a thread on their own post.
		if senderID == post.UserID {
			return nil, errors.BadRequest("You cannot message your own post", nil)
		}

		message.ThreadID = uuid.New().String()
		message.ReceiverID = post.UserID

		if err := uc.messageRepo.Create(ctx, message); err != nil {
			return nil, err
		}

		// Counted only for thread-initiating messages.
		if err := uc.postRepo.IncrementResponseCount(ctx, post.ID); err != nil {
			log.Printf("CreateMessage: incrementing response count for post %s failed: %v", post.ID, err)
		}

		return message, nil
	}

	thread, err := uc.messageRepo.ListByThread(ctx, input.ThreadID)
	if err != nil {
		return nil, err
	}
	if len(thread) == 0 {
		return nil, errors.Forbidden("You cannot send messages in this thread", nil)
	}
	if thread[0].PostID != post.ID {
		return nil, errors.BadRequest("Thread does not belong to this post", nil)
	}

	roles := entity.DeriveThreadRoles(post, thread[0])

	receiverID, err := roles.Counterparty(senderID)
	if err != nil {
		return nil, err
	}

	if !canSendInThread(post, roles, thread, senderID) {
		return nil, errors.Forbidden("You cannot send messages in this thread until the owner replies", nil)
	}

	message.ThreadID = input.ThreadID
	message.ReceiverID = receiverID

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// CanSendMessage reports whether the user may currently send a follow-up in
// the thread. It is false for empty threads, missing or closed posts, and
// for non-owners while the owner has not yet replied.
func (uc *MessageUseCase) CanSendMessage(ctx context.Context, threadID, userID string) bool {
	thread, err := uc.messageRepo.ListByThread(ctx, threadID)
	if err != nil || len(thread) == 0 {
		return false
	}

	post, err := uc.postRepo.GetByID(ctx, thread[0].PostID)
	if err != nil {
		return false
	}

	if !post.IsOpen() {
		return false
	}

	roles := entity.DeriveThreadRoles(post, thread[0])
	return canSendInThread(post, roles, thread, userID)
}

// canSendInThread is the single gating predicate. The owner may always
// reply in their threads; the initiator may follow up only after the owner
// has sent at least one message; everyone else is out.
func canSendInThread(post *entity.Post, roles entity.ThreadRoles, thread []*entity.Message, userID string) bool {
	if userID == roles.OwnerID {
		return true
	}
	if !roles.IsParticipant(userID) {
		return false
	}
	for _, m := range thread {
		if m.SenderID == roles.OwnerID {
			return true
		}
	}
	return false
}

// GetThreadMessages returns the thread's messages, oldest first. Only
// participants may read a thread. When the owner reads it, the initiating
// message is acknowledged as answered (see acknowledgeThread).
func (uc *MessageUseCase) GetThreadMessages(ctx context.Context, callerID, threadID string) ([]*entity.Message, error) {
	thread, err := uc.messageRepo.ListByThread(ctx, threadID)
	if err != nil {
		return nil, err
	}

	participant := false
	for _, m := range thread {
		if m.Involves(callerID) {
			participant = true
			break
		}
	}
	if !participant {
		return nil, errors.NotFound("Thread", nil)
	}

	post, err := uc.postRepo.GetByID(ctx, thread[0].PostID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			// The post is gone; the transcript is still readable.
			return thread, nil
		}
		return nil, err
	}

	if callerID == post.UserID {
		if err := uc.acknowledgeThread(ctx, post, thread); err != nil {
			log.Printf("GetThreadMessages: acknowledging thread %s failed: %v", threadID, err)
		}
	}

	return thread, nil
}

// acknowledgeThread marks the initiator's first message as replied once the
// owner has engaged with the thread. It runs on the owner's read path and
// is idempotent: the store only flips pending messages, so repeated or
// concurrent reads transition the message at most once. Owner messages are
// never touched.
func (uc *MessageUseCase) acknowledgeThread(ctx context.Context, post *entity.Post, thread []*entity.Message) error {
	ownerReplied := false
	for _, m := range thread {
		if m.SenderID == post.UserID {
			ownerReplied = true
			break
		}
	}
	if !ownerReplied {
		return nil
	}

	for _, m := range thread {
		if m.SenderID == post.UserID {
			continue
		}
		if m.Status == entity.MessageStatusPending {
			if err := uc.messageRepo.MarkReplied(ctx, m.ID); err != nil {
				return err
			}
			m.Status = entity.MessageStatusReplied
		}
		// Only the initiator's first message is ever acknowledged.
		break
	}

	return nil
}

// GetPostMessages returns every thread on the post, grouped by thread in
// first-message order, each group oldest first. Restricted to the post
// owner.
func (uc *MessageUseCase) GetPostMessages(ctx context.Context, callerID, postID string) ([]*ThreadMessages, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !post.IsOwnedBy(callerID) {
		return nil, errors.Forbidden("Only the post owner can view all conversations on a post", nil)
	}

	messages, err := uc.messageRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	groupIndex := make(map[string]int)
	var groups []*ThreadMessages
	for _, m := range messages {
		idx, ok := groupIndex[m.ThreadID]
		if !ok {
			idx = len(groups)
			groupIndex[m.ThreadID] = idx
			groups = append(groups, &ThreadMessages{ThreadID: m.ThreadID})
		}
		groups[idx].Messages = append(groups[idx].Messages, m)
	}

	return groups, nil
}

// GetUserThreads returns one preview per thread the user participates in,
// holding only the most recent message, most recently active thread first.
func (uc *MessageUseCase) GetUserThreads(ctx context.Context, userID string) ([]*ThreadPreview, error) {
	messages, err := uc.messageRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]*entity.Message)
	for _, m := range messages {
		last, ok := latest[m.ThreadID]
		if !ok || m.CreatedAt.After(last.CreatedAt) {
			latest[m.ThreadID] = m
		}
	}

	previews := make([]*ThreadPreview, 0, len(latest))
	for threadID, m := range latest {
		previews = append(previews, &ThreadPreview{ThreadID: threadID, LastMessage: m})
	}

	sort.Slice(previews, func(i, j int) bool {
		return previews[i].LastMessage.CreatedAt.After(previews[j].LastMessage.CreatedAt)
	})

	return previews, nil
}
