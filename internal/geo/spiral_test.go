package geo

import (
	"math"
	"testing"
)

func TestSpiralOffset_SingleItem(t *testing.T) {
	for _, lat := range []float64{-89, -45, 0, 38, 85} {
		dLat, dLon := SpiralOffset(0, 1, lat)
		if dLat != 0 || dLon != 0 {
			t.Errorf("SpiralOffset(0, 1, %v) = (%v, %v), want (0, 0)", lat, dLat, dLon)
		}
	}
}

func TestSpiralOffset_DistinctOffsets(t *testing.T) {
	type pair struct{ lat, lon float64 }

	for total := 2; total <= 200; total++ {
		seen := make(map[pair]int, total)
		for i := 0; i < total; i++ {
			dLat, dLon := SpiralOffset(i, total, 20)
			p := pair{dLat, dLon}
			if j, ok := seen[p]; ok {
				t.Fatalf("total=%d: indices %d and %d share offset (%v, %v)", total, j, i, dLat, dLon)
			}
			seen[p] = i
		}
	}
}

func TestSpiralOffset_RadiusCap(t *testing.T) {
	latitudes := []float64{-90, -85, -60, -30, 0, 22.3, 38, 54, 80, 90}

	for _, lat := range latitudes {
		for total := 1; total <= 120; total++ {
			limit := math.Min(8, 2+float64(total)*0.25)
			for i := 0; i < total; i++ {
				dLat, dLon := SpiralOffset(i, total, lat)
				r := math.Hypot(dLat, dLon*LonScale(lat))
				if r > limit+1e-9 {
					t.Fatalf("lat=%v total=%d index=%d: radius %v exceeds %v", lat, total, i, r, limit)
				}
			}
		}
	}
}

func TestSpiralOffset_Deterministic(t *testing.T) {
	for i := 0; i < 25; i++ {
		a1, b1 := SpiralOffset(i, 25, -14)
		a2, b2 := SpiralOffset(i, 25, -14)
		if a1 != a2 || b1 != b2 {
			t.Fatalf("SpiralOffset(%d, 25, -14) not reproducible: (%v,%v) vs (%v,%v)", i, a1, b1, a2, b2)
		}
	}
}

func TestSpiralOffset_LastItemOnOuterRing(t *testing.T) {
	total := 10
	dLat, dLon := SpiralOffset(total-1, total, 0)
	r := math.Hypot(dLat, dLon)
	if math.Abs(r-SpiralMaxRadius(total)) > 1e-9 {
		t.Errorf("last item radius = %v, want %v", r, SpiralMaxRadius(total))
	}
}

func TestSpiralMaxRadius(t *testing.T) {
	tests := []struct {
		total int
		want  float64
	}{
		{1, 2.25},
		{4, 3},
		{20, 7},
		{24, 8},
		{100, 8},
	}

	for _, tt := range tests {
		if got := SpiralMaxRadius(tt.total); got != tt.want {
			t.Errorf("SpiralMaxRadius(%d) = %v, want %v", tt.total, got, tt.want)
		}
	}
}

func TestLonScale(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		want float64
	}{
		{"equator", 0, 1},
		{"sixty degrees", 60, 0.5},
		{"near pole floors at 0.3", 85, 0.3},
		{"south pole floors at 0.3", -90, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LonScale(tt.lat); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("LonScale(%v) = %v, want %v", tt.lat, got, tt.want)
			}
		})
	}
}
