package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var headOffice = GeofenceZone{
	Name:      "Kantor Pusat",
	Latitude:  -6.161777101062483,
	Longitude: 106.87519933469652,
	Radius:    100,
}

func TestEvaluateGeofence_AtCenter(t *testing.T) {
	result := EvaluateGeofence(headOffice.Latitude, headOffice.Longitude, []GeofenceZone{headOffice})

	assert.True(t, result.Inside)
	assert.Equal(t, "Kantor Pusat", result.ZoneName)
	assert.InDelta(t, 0, result.Distance, 0.001)
}

func TestEvaluateGeofence_WithinRadius(t *testing.T) {
	// ~50m north of the office center
	lat := headOffice.Latitude + 50.0/111320.0
	result := EvaluateGeofence(lat, headOffice.Longitude, []GeofenceZone{headOffice})

	assert.True(t, result.Inside)
	assert.InDelta(t, 50, result.Distance, 1)
}

func TestEvaluateGeofence_OutsideRadius(t *testing.T) {
	// ~500m north of the office center
	lat := headOffice.Latitude + 500.0/111320.0
	result := EvaluateGeofence(lat, headOffice.Longitude, []GeofenceZone{headOffice})

	assert.False(t, result.Inside)
	assert.InDelta(t, 500, result.Distance, 5)
}

func TestEvaluateGeofence_FirstMatchingZoneWins(t *testing.T) {
	second := headOffice
	second.Name = "Cabang"
	result := EvaluateGeofence(headOffice.Latitude, headOffice.Longitude, []GeofenceZone{headOffice, second})

	assert.True(t, result.Inside)
	assert.Equal(t, "Kantor Pusat", result.ZoneName)
}

func TestEvaluateGeofence_NoZones(t *testing.T) {
	result := EvaluateGeofence(0, 0, nil)

	assert.False(t, result.Inside)
	assert.True(t, math.IsInf(result.Distance, 1))
}

func TestCalculateHaversineDistance_KnownPair(t *testing.T) {
	// Jakarta Monas to Istiqlal mosque, roughly 650m apart
	distance := CalculateHaversineDistance(-6.1754, 106.8272, -6.1702, 106.8311)
	assert.InDelta(t, 720, distance, 80)
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(-6.16, 106.87))
	assert.True(t, IsValidCoordinate(90, 180))
	assert.False(t, IsValidCoordinate(90.01, 0))
	assert.False(t, IsValidCoordinate(0, -180.5))
	assert.False(t, IsValidCoordinate(math.NaN(), 0))
	assert.False(t, IsValidCoordinate(0, math.NaN()))
}
