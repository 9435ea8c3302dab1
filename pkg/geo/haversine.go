package geo

import "math"

// EarthRadiusKm is the mean radius of the Earth.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points given in decimal degrees, using the spherical law of cosines:
//
//	d = R * acos(cos(la1)*cos(la2)*cos(lo2-lo1) + sin(la1)*sin(la2))
//
// The acos argument is clamped to [-1, 1] because rounding can push it
// marginally outside the domain for identical or antipodal points.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	la1 := toRadians(lat1)
	la2 := toRadians(lat2)
	dlo := toRadians(lon2 - lon1)

	arg := math.Cos(la1)*math.Cos(la2)*math.Cos(dlo) + math.Sin(la1)*math.Sin(la2)
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}

	return EarthRadiusKm * math.Acos(arg)
}

// ValidCoordinates reports whether lat/lon fall in the usual WGS84 ranges.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
