package utils

import "math"

// CalculateHaversineDistance returns the great-circle distance between two
// coordinates in meters.
func CalculateHaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // Earth radius in meters

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// GeofenceZone is a named circular zone used to validate on-site attendance.
type GeofenceZone struct {
	Name      string
	Latitude  float64
	Longitude float64
	Radius    float64 // meters
}

// GeofenceResult reports whether a point fell inside a zone. When Inside is
// false, Distance holds the smallest distance observed across all zones so
// callers can include it in the rejection message.
type GeofenceResult struct {
	Inside   bool
	ZoneName string
	Distance float64
}

// EvaluateGeofence checks a point against a set of zones and returns the
// first zone whose radius contains it.
func EvaluateGeofence(lat, lon float64, zones []GeofenceZone) GeofenceResult {
	nearest := math.Inf(1)
	for _, zone := range zones {
		distance := CalculateHaversineDistance(lat, lon, zone.Latitude, zone.Longitude)
		if distance <= zone.Radius {
			return GeofenceResult{Inside: true, ZoneName: zone.Name, Distance: distance}
		}
		if distance < nearest {
			nearest = distance
		}
	}
	return GeofenceResult{Inside: false, Distance: nearest}
}

// IsValidCoordinate rejects NaN and out-of-range WGS-84 coordinates.
func IsValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
