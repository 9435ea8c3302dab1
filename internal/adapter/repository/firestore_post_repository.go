package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/pkg/errors"
)

type firestorePostRepository struct {
	client *firestore.Client
}

func NewFirestorePostRepository(client *firestore.Client) repository.PostRepository {
	return &firestorePostRepository{
		client: client,
	}
}

func (r *firestorePostRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == "" {
		doc := r.client.Collection("posts").NewDoc()
		post.ID = doc.ID
	}

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	_, err := r.client.Collection("posts").Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create post", err)
	}

	return nil
}

func (r *firestorePostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	doc, err := r.client.Collection("posts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Post", err)
		}
		return nil, errors.Internal("Failed to get post", err)
	}

	var post entity.Post
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse post data", err)
	}

	if post.DeletedAt != nil {
		return nil, errors.NotFound("Post", nil)
	}

	return &post, nil
}

func (r *firestorePostRepository) Update(ctx context.Context, post *entity.Post) error {
	post.UpdatedAt = time.Now()

	_, err := r.client.Collection("posts").Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to update post", err)
	}

	return nil
}

func (r *firestorePostRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Post, int64, error) {
	query := r.client.Collection("posts").
		Where("userId", "==", userID).
		Where("deletedAt", "==", nil).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		log.Printf("Firestore error while fetching posts for user %s: %v", userID, err)
		return nil, 0, errors.Internal("Failed to fetch posts", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var posts []*entity.Post

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate posts", err)
		}

		var post entity.Post
		if err := doc.DataTo(&post); err != nil {
			return nil, 0, errors.Internal("Failed to parse post data", err)
		}

		posts = append(posts, &post)
	}

	return posts, total, nil
}

func (r *firestorePostRepository) ListActive(ctx context.Context) ([]*entity.Post, error) {
	query := r.client.Collection("posts").
		Where("status", "==", string(entity.PostStatusActive)).
		Where("deletedAt", "==", nil)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to fetch active posts", err)
	}

	var posts []*entity.Post
	for _, doc := range docs {
		var post entity.Post
		if err := doc.DataTo(&post); err != nil {
			log.Printf("Error parsing post data %s: %v", doc.Ref.ID, err)
			continue
		}
		posts = append(posts, &post)
	}

	return posts, nil
}

func (r *firestorePostRepository) IncrementResponseCount(ctx context.Context, id string) error {
	_, err := r.client.Collection("posts").Doc(id).Update(ctx, []firestore.Update{
		{Path: "responseCount", Value: firestore.Increment(1)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to increment response count", err)
	}

	return nil
}
