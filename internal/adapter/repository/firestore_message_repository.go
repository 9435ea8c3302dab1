package repository

import (
	"context"
	"log"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListByThread(ctx context.Context, threadID string) ([]*entity.Message, error) {
	query := r.client.Collection("messages").
		Where("threadId", "==", threadID).
		OrderBy("createdAt", firestore.Asc)

	return r.collect(ctx, query)
}

func (r *firestoreMessageRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Message, error) {
	query := r.client.Collection("messages").
		Where("postId", "==", postID).
		OrderBy("createdAt", firestore.Asc)

	return r.collect(ctx, query)
}

// ListByParticipant merges the sent and received sides, since Firestore has
// no OR query across two fields.
func (r *firestoreMessageRepository) ListByParticipant(ctx context.Context, userID string) ([]*entity.Message, error) {
	sent, err := r.collect(ctx, r.client.Collection("messages").Where("senderId", "==", userID))
	if err != nil {
		return nil, err
	}

	received, err := r.collect(ctx, r.client.Collection("messages").Where("receiverId", "==", userID))
	if err != nil {
		return nil, err
	}

	messages := append(sent, received...)
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	return messages, nil
}

// MarkReplied transitions the message from pending to replied inside a
// transaction. Concurrent calls observe the flipped status and do nothing,
// so the transition happens exactly once.
func (r *firestoreMessageRepository) MarkReplied(ctx context.Context, id string) error {
	docRef := r.client.Collection("messages").Doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Message", err)
			}
			return err
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return err
		}

		if message.Status != entity.MessageStatusPending {
			return nil
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "status", Value: string(entity.MessageStatusReplied)},
		})
	})

	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return err
		}
		return errors.Internal("Failed to mark message replied", err)
	}

	return nil
}

func (r *firestoreMessageRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Message, error) {
	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			log.Printf("Error parsing message data %s: %v", doc.Ref.ID, err)
			return nil, errors.Internal("Failed to parse message data", err)
		}

		messages = append(messages, &message)
	}

	return messages, nil
}
