package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	// Rounding in the acos argument can leave a sub-meter residue.
	assert.InDelta(t, 0.0, Distance(0, 0, 0, 0), 1e-3)
	assert.InDelta(t, 0.0, Distance(52.37, 4.89, 52.37, 4.89), 1e-3)
	assert.InDelta(t, 0.0, Distance(-90, 0, -90, 0), 1e-3)
}

func TestDistanceKnownPairs(t *testing.T) {
	// One degree of latitude along a meridian.
	oneDegree := 2 * math.Pi * EarthRadiusKm / 360
	assert.InDelta(t, oneDegree, Distance(0, 0, 1, 0), 0.01)

	// Paris to London.
	assert.InDelta(t, 343.5, Distance(48.8566, 2.3522, 51.5074, -0.1278), 2.0)

	// Antipodal points sit half the circumference apart.
	assert.InDelta(t, math.Pi*EarthRadiusKm, Distance(0, 0, 0, 180), 0.01)
	assert.InDelta(t, math.Pi*EarthRadiusKm, Distance(90, 0, -90, 0), 0.01)
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := Distance(48.8566, 2.3522, 51.5074, -0.1278)
	b := Distance(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, a, b, 1e-9)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(0, 0))
	assert.True(t, ValidCoordinates(90, 180))
	assert.True(t, ValidCoordinates(-90, -180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(-90.1, 0))
	assert.False(t, ValidCoordinates(0, 180.1))
	assert.False(t, ValidCoordinates(0, -180.1))
}
