package geo

import (
	"testing"

	"globex/internal/types"
)

func TestClampLatitude(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{85, 85},
		{85.0001, 85},
		{90, 85},
		{-90, -85},
		{-84.9, -84.9},
		{1e9, 85},
	}

	for _, tt := range tests {
		if got := ClampLatitude(tt.in); got != tt.want {
			t.Errorf("ClampLatitude(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLongitude(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-97, -97},
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{540, 180},
		{-540, 180},
		{359, -1},
		{725, 5},
	}

	for _, tt := range tests {
		got := NormalizeLongitude(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeLongitude(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got <= -180 || got > 180 {
			t.Errorf("NormalizeLongitude(%v) = %v, outside (-180, 180]", tt.in, got)
		}
	}
}

func TestOffset_StaysInBounds(t *testing.T) {
	bases := []types.GeoPoint{
		types.NewGeoPoint(38, -97),
		types.NewGeoPoint(84, 179),
		types.NewGeoPoint(-84, -179.5),
		types.NewGeoPoint(0, 180),
	}

	for _, base := range bases {
		for total := 1; total <= 60; total++ {
			for i := 0; i < total; i++ {
				dLat, dLon := SpiralOffset(i, total, base.Latitude)
				for _, factor := range []float64{1, 0.6} {
					p := Offset(base, dLat, dLon, factor)
					if p.Latitude < -85 || p.Latitude > 85 {
						t.Fatalf("latitude %v out of [-85, 85] (base %+v, i=%d, total=%d)", p.Latitude, base, i, total)
					}
					if p.Longitude <= -180 || p.Longitude > 180 {
						t.Fatalf("longitude %v out of (-180, 180] (base %+v, i=%d, total=%d)", p.Longitude, base, i, total)
					}
				}
			}
		}
	}
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{28.6139, 77.2090, true},
		{90, 180, true},
		{-90, -180, true},
		{91, 0, false},
		{0, 181, false},
	}

	for _, tt := range tests {
		if got := ValidCoordinates(tt.lat, tt.lon); got != tt.want {
			t.Errorf("ValidCoordinates(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
		}
	}
}
