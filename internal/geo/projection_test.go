package geo

import (
	"math"
	"testing"

	"globex/internal/types"
)

const tolerance = 1e-9

func TestProject_NormEqualsRadius(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lon := -179.0; lon <= 180; lon += 11 {
			for _, radius := range []float64{1, GlobeRadius, MarkerRadius} {
				p := Project(types.NewGeoPoint(lat, lon), radius)
				if math.Abs(p.Norm()-radius) > tolerance {
					t.Fatalf("|Project(%v, %v, %v)| = %v, want %v", lat, lon, radius, p.Norm(), radius)
				}
			}
		}
	}
}

func TestProject_AxisConvention(t *testing.T) {
	tests := []struct {
		name  string
		point types.GeoPoint
		want  types.Point3D
	}{
		{"north pole", types.NewGeoPoint(90, 0), types.Point3D{X: 0, Y: 1, Z: 0}},
		{"south pole", types.NewGeoPoint(-90, 0), types.Point3D{X: 0, Y: -1, Z: 0}},
		{"prime meridian", types.NewGeoPoint(0, 0), types.Point3D{X: 1, Y: 0, Z: 0}},
		{"antimeridian", types.NewGeoPoint(0, 180), types.Point3D{X: -1, Y: 0, Z: 0}},
		{"ninety east", types.NewGeoPoint(0, 90), types.Point3D{X: 0, Y: 0, Z: -1}},
		{"ninety west", types.NewGeoPoint(0, -90), types.Point3D{X: 0, Y: 0, Z: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.point, 1)
			if math.Abs(got.X-tt.want.X) > tolerance ||
				math.Abs(got.Y-tt.want.Y) > tolerance ||
				math.Abs(got.Z-tt.want.Z) > tolerance {
				t.Errorf("Project(%+v, 1) = %+v, want %+v", tt.point, got, tt.want)
			}
		})
	}
}

func TestProject_Deterministic(t *testing.T) {
	p := types.NewGeoPoint(22.3, 70.8)
	a := Project(p, MarkerRadius)
	b := Project(p, MarkerRadius)
	if a != b {
		t.Errorf("Project not deterministic: %+v vs %+v", a, b)
	}
}
