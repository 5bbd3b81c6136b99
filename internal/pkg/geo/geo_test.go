package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMetersZero(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(-6.2088, 106.8456, -6.2088, 106.8456))
}

func TestDistanceMetersSymmetry(t *testing.T) {
	cases := []struct {
		lat1, lon1, lat2, lon2 float64
	}{
		{-6.2088, 106.8456, -6.1751, 106.8650},
		{0.0001, 0.0001, -0.0001, -0.0001},
		{51.5074, -0.1278, 40.7128, -74.0060},
	}
	for _, c := range cases {
		ab := DistanceMeters(c.lat1, c.lon1, c.lat2, c.lon2)
		ba := DistanceMeters(c.lat2, c.lon2, c.lat1, c.lon1)
		assert.InDelta(t, ab, ba, 0.01)
	}
}

func TestDistanceMetersKnownDistance(t *testing.T) {
	// One degree of latitude is roughly 111.19 km on a 6371 km sphere.
	d := DistanceMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 10)
}

func TestWithinFence(t *testing.T) {
	fence := Fence{Latitude: -6.2088, Longitude: 106.8456, RadiusMeters: 100}

	assert.True(t, WithinFence(-6.2088, 106.8456, fence))
	// ~55m north of the reference point
	assert.True(t, WithinFence(-6.2083, 106.8456, fence))
	// ~500m away
	assert.False(t, WithinFence(-6.2043, 106.8456, fence))
}
