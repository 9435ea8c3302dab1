package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/pkg/errors"
	"nearbuy/pkg/geo"
)

type PostUseCase struct {
	postRepo     repository.PostRepository
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
}

func NewPostUseCase(
	postRepo repository.PostRepository,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
) *PostUseCase {
	return &PostUseCase{
		postRepo:     postRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
	}
}

type CreatePostInput struct {
	Title       string
	Description string
	Price       *int64
	ImageURLs   []string
	Type        entity.PostType
}

// NearbyPost is one nearby search result: the post, its distance from the
// query point, and the owner's public profile.
type NearbyPost struct {
	*entity.Post
	DistanceKm float64             `json:"distance_km"`
	Owner      *entity.UserProfile `json:"owner,omitempty"`
}

type NearbyResult struct {
	Posts       []*NearbyPost `json:"posts"`
	TotalCount  int64         `json:"totalCount"`
	CurrentPage int           `json:"currentPage"`
	HasMore     bool          `json:"hasMore"`
}

func (uc *PostUseCase) CreatePost(ctx context.Context, userID string, input CreatePostInput) (*entity.Post, error) {
	if input.Title == "" {
		return nil, errors.BadRequest("Title is required", nil)
	}

	if input.Type != entity.PostTypeRequest && input.Type != entity.PostTypeOffer && input.Type != entity.PostTypeAnnouncement {
		return nil, errors.BadRequest("Invalid post type", nil)
	}

	if input.Price != nil && *input.Price <= 0 {
		return nil, errors.BadRequest("Price must be positive", nil)
	}

	// Posting requires a saved location; the post keeps a snapshot of it.
	location, err := uc.locationRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.BadRequest("Set your location before creating a post", err)
		}
		return nil, err
	}

	now := time.Now()
	post := &entity.Post{
		UserID:      userID,
		LocationID:  location.ID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageURLs:   input.ImageURLs,
		Type:        input.Type,
		Status:      entity.PostStatusActive,
		Location:    location.Snapshot(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (uc *PostUseCase) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	return uc.postRepo.GetByID(ctx, id)
}

func (uc *PostUseCase) ListUserPosts(ctx context.Context, userID string, limit, offset int) ([]*entity.Post, int64, error) {
	return uc.postRepo.ListByUserID(ctx, userID, limit, offset)
}

// UpdateStatus moves a post along its lifecycle. Transitions are checked
// against the explicit table on PostStatus; a completed or cancelled post
// cannot change status again.
func (uc *PostUseCase) UpdateStatus(ctx context.Context, userID, postID string, newStatus entity.PostStatus) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !post.IsOwnedBy(userID) {
		return nil, errors.Forbidden("Only the post owner can change its status", nil)
	}

	if !entity.ValidPostStatus(newStatus) {
		return nil, errors.BadRequest("Invalid post status", nil)
	}

	if !post.Status.CanTransitionTo(newStatus) {
		return nil, errors.InvalidState("Post cannot change from "+string(post.Status)+" to "+string(newStatus), nil)
	}

	post.Status = newStatus
	post.UpdatedAt = time.Now()

	if err := uc.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// FindNearby returns active posts within radiusKm of the query point,
// nearest first, paginated with 1-indexed pages.
func (uc *PostUseCase) FindNearby(ctx context.Context, lat, lon, radiusKm float64, page, pageSize int) (*NearbyResult, error) {
	if !geo.ValidCoordinates(lat, lon) {
		return nil, errors.BadRequest("Invalid coordinates", nil)
	}

	if radiusKm < 0 {
		return nil, errors.BadRequest("Radius must not be negative", nil)
	}

	if page < 1 {
		return nil, errors.BadRequest("Page must be 1 or greater", nil)
	}

	if pageSize < 1 {
		return nil, errors.BadRequest("Page size must be 1 or greater", nil)
	}

	posts, err := uc.postRepo.ListActive(ctx)
	if err != nil {
		log.Printf("FindNearby: listing active posts failed: %v", err)
		return nil, errors.Internal("Search failed", err)
	}

	var matches []*NearbyPost
	for _, post := range posts {
		distance := geo.Distance(lat, lon, post.Location.Latitude, post.Location.Longitude)
		if distance <= radiusKm {
			matches = append(matches, &NearbyPost{Post: post, DistanceKm: distance})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	totalCount := len(matches)
	offset := (page - 1) * pageSize

	start := offset
	if start > totalCount {
		start = totalCount
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}
	pageItems := matches[start:end]

	// Attach owner profiles for the returned page only.
	profiles := make(map[string]*entity.UserProfile)
	for _, item := range pageItems {
		profile, ok := profiles[item.Post.UserID]
		if !ok {
			owner, err := uc.userRepo.GetByID(ctx, item.Post.UserID)
			if err != nil {
				if !errors.Is(err, "NOT_FOUND") {
					log.Printf("FindNearby: loading owner %s failed: %v", item.Post.UserID, err)
					return nil, errors.Internal("Search failed", err)
				}
				// Owner soft-deleted since posting; the post is still
				// returned without a profile.
				profiles[item.Post.UserID] = nil
				continue
			}
			profile = owner.PublicProfile()
			profiles[item.Post.UserID] = profile
		}
		item.Owner = profile
	}

	return &NearbyResult{
		Posts:       pageItems,
		TotalCount:  int64(totalCount),
		CurrentPage: page,
		HasMore:     offset+pageSize < totalCount,
	}, nil
}
