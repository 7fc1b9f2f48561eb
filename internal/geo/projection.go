package geo

import (
	"math"

	"globex/internal/types"
)

// Scene dimensions shared with the renderer.
const (
	GlobeRadius = 5.0
	// MarkerRadius sits slightly above the globe surface so markers do not
	// z-fight with the globe mesh.
	MarkerRadius    = 5.1
	MarkerDotRadius = 0.07
	MarkerHitRadius = 0.15
)

// Project converts a geographic point to a scene position on a sphere of the
// given radius. The axis convention matches the renderer: Y is the polar
// axis, longitude -180 lies on +X.
func Project(point types.GeoPoint, radius float64) types.Point3D {
	phi := (90 - point.Latitude) * (math.Pi / 180)
	theta := (point.Longitude + 180) * (math.Pi / 180)

	return types.Point3D{
		X: -(radius * math.Sin(phi) * math.Cos(theta)),
		Y: radius * math.Cos(phi),
		Z: radius * math.Sin(phi) * math.Sin(theta),
	}
}
