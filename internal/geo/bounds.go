package geo

import (
	"math"

	"globex/internal/types"
)

// Placed markers never reach the poles, where the projection degenerates.
const (
	MinMarkerLatitude = -85.0
	MaxMarkerLatitude = 85.0
)

// ClampLatitude limits lat to [MinMarkerLatitude, MaxMarkerLatitude].
func ClampLatitude(lat float64) float64 {
	return math.Min(MaxMarkerLatitude, math.Max(MinMarkerLatitude, lat))
}

// NormalizeLongitude wraps lon into (-180, 180].
func NormalizeLongitude(lon float64) float64 {
	if lon > -180 && lon <= 180 {
		return lon
	}
	l := math.Mod(lon+180, 360)
	if l < 0 {
		l += 360
	}
	l -= 180
	if l == -180 {
		l = 180
	}
	return l
}

// Offset moves base by the given degree deltas, scaled by factor, and returns
// a point that satisfies the marker bounds.
func Offset(base types.GeoPoint, dLat, dLon, factor float64) types.GeoPoint {
	return types.NewGeoPoint(
		ClampLatitude(base.Latitude+dLat*factor),
		NormalizeLongitude(base.Longitude+dLon*factor),
	)
}

// ValidCoordinates reports whether lat/lon describe a point on the globe.
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
