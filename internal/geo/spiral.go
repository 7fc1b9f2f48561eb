package geo

import "math"

// GoldenAngle is the angular step between successive spiral points, in
// radians (about 137.5 degrees).
const GoldenAngle = 2.399963229728653

const (
	// spiralBaseRadius and spiralRadiusPerItem size the spiral in degrees;
	// spiralMaxRadius caps it so dense batches stay near the centroid.
	spiralBaseRadius    = 2.0
	spiralRadiusPerItem = 0.25
	spiralMaxRadius     = 8.0

	// minLonScale bounds the meridian-convergence correction near the poles.
	minLonScale = 0.3
)

// SpiralMaxRadius returns the outer radius, in degrees, of the spiral used
// for a batch of total items.
func SpiralMaxRadius(total int) float64 {
	return math.Min(spiralMaxRadius, spiralBaseRadius+float64(total)*spiralRadiusPerItem)
}

// SpiralOffset returns the latitude/longitude offset in degrees for the
// index-th of total items spread around a centroid at baseLatitude.
//
// Offsets follow a golden-angle spiral whose radius grows linearly with
// index/(total-1). The longitude offset is divided by cos(baseLatitude),
// floored at 0.3, so the spread stays circular on the globe. total must be
// at least 1; a single item gets a zero offset.
func SpiralOffset(index, total int, baseLatitude float64) (dLat, dLon float64) {
	t := 0.0
	if total > 1 {
		t = float64(index) / float64(total-1)
	}
	r := t * SpiralMaxRadius(total)
	theta := float64(index) * GoldenAngle

	dLat = r * math.Sin(theta)
	dLon = r * math.Cos(theta) / LonScale(baseLatitude)
	return dLat, dLon
}

// LonScale returns the longitude compensation factor applied by
// SpiralOffset for the given base latitude.
func LonScale(baseLatitude float64) float64 {
	return math.Max(minLonScale, math.Cos(baseLatitude*math.Pi/180))
}
