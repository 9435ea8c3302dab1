package usecase

import (
	"context"
	"log"
	"time"

	"nearbuy/internal/domain/entity"
	"nearbuy/internal/domain/repository"
	"nearbuy/internal/infrastructure/geocode"
	"nearbuy/pkg/errors"
	"nearbuy/pkg/geo"
)

type LocationUseCase struct {
	locationRepo repository.LocationRepository
	geocoder     geocode.Geocoder
}

func NewLocationUseCase(locationRepo repository.LocationRepository, geocoder geocode.Geocoder) *LocationUseCase {
	return &LocationUseCase{
		locationRepo: locationRepo,
		geocoder:     geocoder,
	}
}

// SetLocation reverse-geocodes the coordinates and saves them as the
// user's single location, replacing any previous one. Posts created before
// the change keep their original snapshot.
func (uc *LocationUseCase) SetLocation(ctx context.Context, userID string, lat, lon float64) (*entity.Location, error) {
	if !geo.ValidCoordinates(lat, lon) {
		return nil, errors.BadRequest("Invalid coordinates", nil)
	}

	place, err := uc.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		// The address is cosmetic; coordinates alone are enough to save.
		log.Printf("SetLocation: reverse geocoding (%f, %f) failed: %v", lat, lon, err)
		place = &geocode.Place{}
	}

	now := time.Now()
	location := &entity.Location{
		UserID:     userID,
		Latitude:   lat,
		Longitude:  lon,
		Address:    place.Address,
		City:       place.City,
		Region:     place.Region,
		Country:    place.Country,
		PostalCode: place.PostalCode,
		UpdatedAt:  now,
	}

	if err := uc.locationRepo.Upsert(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}

func (uc *LocationUseCase) GetMyLocation(ctx context.Context, userID string) (*entity.Location, error) {
	return uc.locationRepo.GetByUserID(ctx, userID)
}
