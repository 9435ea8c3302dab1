package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nearbuy/internal/infrastructure/geocode"
	"nearbuy/pkg/errors"
)

type fakeGeocoder struct {
	place *geocode.Place
	err   error
}

func (g *fakeGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (*geocode.Place, error) {
	return g.place, g.err
}

func TestSetLocation(t *testing.T) {
	ctx := context.Background()
	locationRepo := newFakeLocationRepo()
	uc := NewLocationUseCase(locationRepo, &fakeGeocoder{place: &geocode.Place{
		City:    "Amsterdam",
		Country: "Netherlands",
	}})

	location, err := uc.SetLocation(ctx, "u1", 52.37, 4.89)
	require.NoError(t, err)
	assert.Equal(t, 52.37, location.Latitude)
	assert.Equal(t, "Amsterdam", location.City)
	assert.Equal(t, "Netherlands", location.Country)

	stored, err := uc.GetMyLocation(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, location.Latitude, stored.Latitude)
}

func TestSetLocationReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	locationRepo := newFakeLocationRepo()
	uc := NewLocationUseCase(locationRepo, &fakeGeocoder{place: &geocode.Place{}})

	_, err := uc.SetLocation(ctx, "u1", 52.37, 4.89)
	require.NoError(t, err)
	_, err = uc.SetLocation(ctx, "u1", 48.85, 2.35)
	require.NoError(t, err)

	stored, err := uc.GetMyLocation(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 48.85, stored.Latitude)
	assert.Equal(t, 2.35, stored.Longitude)
}

func TestSetLocationInvalidCoordinates(t *testing.T) {
	ctx := context.Background()
	uc := NewLocationUseCase(newFakeLocationRepo(), &fakeGeocoder{place: &geocode.Place{}})

	_, err := uc.SetLocation(ctx, "u1", 95, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSetLocationGeocoderFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	uc := NewLocationUseCase(newFakeLocationRepo(), &fakeGeocoder{err: errors.Internal("geocoder down", nil)})

	location, err := uc.SetLocation(ctx, "u1", 52.37, 4.89)
	require.NoError(t, err)
	assert.Equal(t, 52.37, location.Latitude)
	assert.Empty(t, location.City)
}
