package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/pkg/errors"
)

type firestoreReplyRepository struct {
	client *firestore.Client
}

func NewFirestoreReplyRepository(client *firestore.Client) repository.ReplyRepository {
	return &firestoreReplyRepository{
		client: client,
	}
}

func (r *firestoreReplyRepository) Create(ctx context.Context, reply *entity.Reply) error {
	if reply.ID == "" {
		doc := r.client.Collection("replies").NewDoc()
		reply.ID = doc.ID
	}

	now := time.Now()
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = now
	}
	reply.UpdatedAt = now

	_, err := r.client.Collection("replies").Doc(reply.ID).Set(ctx, reply)
	if err != nil {
		return errors.Internal("Failed to create reply", err)
	}

	return nil
}

func (r *firestoreReplyRepository) GetByID(ctx context.Context, id string) (*entity.Reply, error) {
	doc, err := r.client.Collection("replies").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Reply", err)
		}
		return nil, errors.Internal("Failed to get reply", err)
	}

	var reply entity.Reply
	if err := doc.DataTo(&reply); err != nil {
		return nil, errors.Internal("Failed to parse reply data", err)
	}

	return &reply, nil
}

func (r *firestoreReplyRepository) ListByPostID(ctx context.Context, postID string) ([]*entity.Reply, error) {
	query := r.client.Collection("replies").
		Where("postId", "==", postID).
		OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)
	var replies []*entity.Reply

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate replies", err)
		}

		var reply entity.Reply
		if err := doc.DataTo(&reply); err != nil {
			return nil, errors.Internal("Failed to parse reply data", err)
		}

		replies = append(replies, &reply)
	}

	return replies, nil
}

// Accept commits the full acceptance in one transaction: the post moves to
// completed, the target reply to accepted, and every sibling reply is reset
// to pending. Firestore transactions are optimistic, so of two concurrent
// acceptances one commit wins; the other re-reads the post, finds it no
// longer active, and fails with a conflict without writing anything.
func (r *firestoreReplyRepository) Accept(ctx context.Context, postID, replyID string) error {
	postRef := r.client.Collection("posts").Doc(postID)
	replyRef := r.client.Collection("replies").Doc(replyID)
	repliesQuery := r.client.Collection("replies").Where("postId", "==", postID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		postDoc, err := tx.Get(postRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Post", err)
			}
			return err
		}

		var post entity.Post
		if err := postDoc.DataTo(&post); err != nil {
			return err
		}

		if !post.IsOpen() {
			return errors.Conflict("A reply has already been accepted for this post")
		}

		replyDoc, err := tx.Get(replyRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Reply", err)
			}
			return err
		}

		var target entity.Reply
		if err := replyDoc.DataTo(&target); err != nil {
			return err
		}

		if target.PostID != postID {
			return errors.NotFound("Reply", nil)
		}

		siblings, err := tx.Documents(repliesQuery).GetAll()
		if err != nil {
			return err
		}

		now := time.Now()

		if err := tx.Update(postRef, []firestore.Update{
			{Path: "status", Value: string(entity.PostStatusCompleted)},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}

		if err := tx.Update(replyRef, []firestore.Update{
			{Path: "status", Value: string(entity.ReplyStatusAccepted)},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}

		for _, doc := range siblings {
			if doc.Ref.ID == replyID {
				continue
			}
			if err := tx.Update(doc.Ref, []firestore.Update{
				{Path: "status", Value: string(entity.ReplyStatusPending)},
				{Path: "updatedAt", Value: now},
			}); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, "CONFLICT") || errors.Is(err, "NOT_FOUND") {
			return err
		}
		return errors.Internal("Failed to accept reply", err)
	}

	return nil
}
