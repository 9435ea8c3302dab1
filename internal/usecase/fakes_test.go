package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/pkg/errors"
)

// In-memory repositories backing the use case tests. They mirror the
// store's behavior where it matters: not-found mapping, soft deletes,
// conditional status flips, and the transactional reply acceptance.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Phone == phone && user.DeletedAt == nil {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	now := time.Now()
	user.DeletedAt = &now
	return nil
}

type fakeLocationRepo struct {
	mu        sync.Mutex
	locations map[string]*entity.Location
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[string]*entity.Location)}
}

func (r *fakeLocationRepo) Upsert(ctx context.Context, location *entity.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if location.ID == "" {
		location.ID = location.UserID
	}
	r.locations[location.UserID] = location
	return nil
}

func (r *fakeLocationRepo) GetByUserID(ctx context.Context, userID string) (*entity.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	location, ok := r.locations[userID]
	if !ok || location.DeletedAt != nil {
		return nil, errors.NotFound("Location", nil)
	}
	copied := *location
	return &copied, nil
}

func (r *fakeLocationRepo) SoftDeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	location, ok := r.locations[userID]
	if !ok {
		return errors.NotFound("Location", nil)
	}
	now := time.Now()
	location.DeletedAt = &now
	return nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.Post
	order []string
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*entity.Post)}
}

func (r *fakePostRepo) Create(ctx context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	copied := *post
	r.posts[post.ID] = &copied
	r.order = append(r.order, post.ID)
	return nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(id)
}

func (r *fakePostRepo) getLocked(id string) (*entity.Post, error) {
	post, ok := r.posts[id]
	if !ok || post.DeletedAt != nil {
		return nil, errors.NotFound("Post", nil)
	}
	copied := *post
	return &copied, nil
}

func (r *fakePostRepo) Update(ctx context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.posts[post.ID]
	if !ok {
		return errors.NotFound("Post", nil)
	}
	copied := *post
	copied.ResponseCount = stored.ResponseCount
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakePostRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Post, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matches []*entity.Post
	for _, id := range r.order {
		post := r.posts[id]
		if post.UserID == userID && post.DeletedAt == nil {
			copied := *post
			matches = append(matches, &copied)
		}
	}

	total := int64(len(matches))
	if offset > len(matches) {
		offset = len(matches)
	}
	end := offset + limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[offset:end], total, nil
}

func (r *fakePostRepo) ListActive(ctx context.Context) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var active []*entity.Post
	for _, id := range r.order {
		post := r.posts[id]
		if post.Status == entity.PostStatusActive && post.DeletedAt == nil {
			copied := *post
			active = append(active, &copied)
		}
	}
	return active, nil
}

func (r *fakePostRepo) IncrementResponseCount(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return errors.NotFound("Post", nil)
	}
	post.ResponseCount++
	return nil
}

type fakeReplyRepo struct {
	mu      sync.Mutex
	replies map[string]*entity.Reply
	order   []string
	posts   *fakePostRepo
}

func newFakeReplyRepo(posts *fakePostRepo) *fakeReplyRepo {
	return &fakeReplyRepo{replies: make(map[string]*entity.Reply), posts: posts}
}

func (r *fakeReplyRepo) Create(ctx context.Context, reply *entity.Reply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if reply.ID == "" {
		reply.ID = uuid.New().String()
	}
	copied := *reply
	r.replies[reply.ID] = &copied
	r.order = append(r.order, reply.ID)
	return nil
}

func (r *fakeReplyRepo) GetByID(ctx context.Context, id string) (*entity.Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reply, ok := r.replies[id]
	if !ok {
		return nil, errors.NotFound("Reply", nil)
	}
	copied := *reply
	return &copied, nil
}

func (r *fakeReplyRepo) ListByPostID(ctx context.Context, postID string) ([]*entity.Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matches []*entity.Reply
	for _, id := range r.order {
		reply := r.replies[id]
		if reply.PostID == postID {
			copied := *reply
			matches = append(matches, &copied)
		}
	}
	return matches, nil
}

// Accept serializes on the repo mutex so the status check and the writes
// behave like a single store transaction.
func (r *fakeReplyRepo) Accept(ctx context.Context, postID, replyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts.mu.Lock()
	defer r.posts.mu.Unlock()

	post, ok := r.posts.posts[postID]
	if !ok || post.DeletedAt != nil {
		return errors.NotFound("Post", nil)
	}
	if !post.IsOpen() {
		return errors.Conflict("A reply has already been accepted for this post")
	}

	reply, ok := r.replies[replyID]
	if !ok || reply.PostID != postID {
		return errors.NotFound("Reply", nil)
	}

	now := time.Now()
	post.Status = entity.PostStatusCompleted
	post.UpdatedAt = now
	reply.Status = entity.ReplyStatusAccepted
	reply.UpdatedAt = now
	for _, sibling := range r.replies {
		if sibling.PostID == postID && sibling.ID != replyID {
			sibling.Status = entity.ReplyStatusPending
			sibling.UpdatedAt = now
		}
	}
	return nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) ListByThread(ctx context.Context, threadID string) ([]*entity.Message, error) {
	return r.list(func(m *entity.Message) bool { return m.ThreadID == threadID })
}

func (r *fakeMessageRepo) ListByPost(ctx context.Context, postID string) ([]*entity.Message, error) {
	return r.list(func(m *entity.Message) bool { return m.PostID == postID })
}

func (r *fakeMessageRepo) ListByParticipant(ctx context.Context, userID string) ([]*entity.Message, error) {
	return r.list(func(m *entity.Message) bool { return m.Involves(userID) })
}

func (r *fakeMessageRepo) list(match func(*entity.Message) bool) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matches []*entity.Message
	for _, m := range r.messages {
		if match(m) {
			copied := *m
			matches = append(matches, &copied)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
	return matches, nil
}

func (r *fakeMessageRepo) MarkReplied(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.ID == id {
			if m.Status == entity.MessageStatusPending {
				m.Status = entity.MessageStatusReplied
			}
			return nil
		}
	}
	return errors.NotFound("Message", nil)
}

var (
	_ repository.UserRepository     = (*fakeUserRepo)(nil)
	_ repository.LocationRepository = (*fakeLocationRepo)(nil)
	_ repository.PostRepository     = (*fakePostRepo)(nil)
	_ repository.ReplyRepository    = (*fakeReplyRepo)(nil)
	_ repository.MessageRepository  = (*fakeMessageRepo)(nil)
)
