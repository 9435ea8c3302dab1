package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/pkg/errors"
)

type firestoreLocationRepository struct {
	client *firestore.Client
}

func NewFirestoreLocationRepository(client *firestore.Client) repository.LocationRepository {
	return &firestoreLocationRepository{
		client: client,
	}
}

// Locations are keyed by user ID, which enforces the one-location-per-user
// rule at the storage level.
func (r *firestoreLocationRepository) Upsert(ctx context.Context, location *entity.Location) error {
	docRef := r.client.Collection("locations").Doc(location.UserID)

	existing, err := docRef.Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return errors.Internal("Failed to read location", err)
	}

	now := time.Now()
	if err == nil {
		var prev entity.Location
		if err := existing.DataTo(&prev); err != nil {
			return errors.Internal("Failed to parse location data", err)
		}
		location.ID = prev.ID
		location.CreatedAt = prev.CreatedAt
	} else {
		location.ID = uuid.New().String()
		location.CreatedAt = now
	}
	location.UpdatedAt = now
	location.DeletedAt = nil

	if _, err := docRef.Set(ctx, location); err != nil {
		return errors.Internal("Failed to save location", err)
	}

	return nil
}

func (r *firestoreLocationRepository) GetByUserID(ctx context.Context, userID string) (*entity.Location, error) {
	doc, err := r.client.Collection("locations").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Location", err)
		}
		return nil, errors.Internal("Failed to get location", err)
	}

	var location entity.Location
	if err := doc.DataTo(&location); err != nil {
		return nil, errors.Internal("Failed to parse location data", err)
	}

	if location.DeletedAt != nil {
		return nil, errors.NotFound("Location", nil)
	}

	return &location, nil
}

func (r *firestoreLocationRepository) SoftDeleteByUserID(ctx context.Context, userID string) error {
	now := time.Now()
	_, err := r.client.Collection("locations").Doc(userID).Update(ctx, []firestore.Update{
		{Path: "deletedAt", Value: now},
		{Path: "updatedAt", Value: now},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Location", err)
		}
		return errors.Internal("Failed to soft delete location", err)
	}

	return nil
}
