// Package geo validates clock-in/out coordinates against a circular
// geofence.
package geo

import (
	"math"

	"ewarga-backend/internal/apperr"
)

// Radius bumi dalam meter (mean Earth radius).
const earthRadiusMeters = 6371000

// Fence is a circular boundary: center point plus radius.
type Fence struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

// Distance returns the great-circle distance between two coordinates in
// meters, using the Haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Validate checks whether the point lies inside the fence. Points strictly
// beyond the radius are rejected with an OutOfRangeError carrying the
// rounded distance.
func (f Fence) Validate(lat, lon float64) error {
	d := Distance(lat, lon, f.Latitude, f.Longitude)
	if d > f.RadiusMeters {
		return &apperr.OutOfRangeError{
			DistanceMeters: math.Round(d),
			RadiusMeters:   f.RadiusMeters,
		}
	}
	return nil
}
