package geo

import "math"

const earthRadiusMeters = 6371000

// Fence is a circular boundary around a reference point.
type Fence struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// DistanceMeters returns the great-circle (Haversine) distance between two
// coordinates in meters, rounded to 2 decimal places.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return round2(earthRadiusMeters * c)
}

// WithinFence reports whether the coordinate lies inside the fence radius.
func WithinFence(lat, lon float64, fence Fence) bool {
	return DistanceMeters(lat, lon, fence.Latitude, fence.Longitude) <= fence.RadiusMeters
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
