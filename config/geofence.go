package config

import (
	"sync"

	"ewarga-backend/internal/geo"
	"ewarga-backend/internal/timeclock"
)

// The geofence and the civil UTC offset come from an external configuration
// source and change rarely, so both are read once and cached for the life
// of the process.

var (
	geofenceOnce sync.Once
	geofence     geo.Fence

	offsetOnce sync.Once
	offset     timeclock.Offset
)

// CachedGeofence satisfies service.GeofenceSource.
type CachedGeofence struct{}

func (CachedGeofence) Geofence() geo.Fence {
	geofenceOnce.Do(func() {
		geofence = geo.Fence{
			Latitude:     GetEnvAsFloat("GEOFENCE_LAT", -6.2350),
			Longitude:    GetEnvAsFloat("GEOFENCE_LON", 106.9945),
			RadiusMeters: GetEnvAsFloat("GEOFENCE_RADIUS_METERS", 200),
		}
	})
	return geofence
}

// ClockOffset returns the fixed civil-timezone offset (default WIB, UTC+7).
func ClockOffset() timeclock.Offset {
	offsetOnce.Do(func() {
		offset = timeclock.Offset(GetEnvAsInt("UTC_OFFSET_MINUTES", 420))
	})
	return offset
}
