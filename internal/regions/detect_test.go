package regions

import (
	"testing"

	"globex/internal/types"
)

func TestDetectSubRegion(t *testing.T) {
	gujarat := types.Region{Key: "gujarat", Tier: types.TierSubRegion, Centroid: types.NewGeoPoint(22.3, 70.8)}
	delhi := types.Region{Key: "delhi", Tier: types.TierSubRegion, Centroid: types.NewGeoPoint(28.61, 77.20)}
	jammu := types.Region{Key: "jammu", Tier: types.TierSubRegion, Centroid: types.NewGeoPoint(33.45, 76.24)}
	kashmir := types.Region{Key: "kashmir", Tier: types.TierSubRegion, Centroid: types.NewGeoPoint(34.1, 74.8)}
	tamilNadu := types.Region{Key: "tamil nadu", Tier: types.TierSubRegion, Centroid: types.NewGeoPoint(11.1, 78.6)}

	candidates := []types.Region{gujarat, delhi, tamilNadu, jammu, kashmir}

	tests := []struct {
		name   string
		item   types.Item
		want   string
		wantOk bool
	}{
		{
			name:   "title match",
			item:   types.Item{Title: "Gujarat sees record rainfall"},
			want:   "gujarat",
			wantOk: true,
		},
		{
			name:   "description match",
			item:   types.Item{Title: "Heatwave continues", Description: "Temperatures in DELHI crossed 45C"},
			want:   "delhi",
			wantOk: true,
		},
		{
			name:   "multi-word name",
			item:   types.Item{Title: "Floods in Tamil Nadu"},
			want:   "tamil nadu",
			wantOk: true,
		},
		{
			name:   "first candidate wins",
			item:   types.Item{Title: "Kashmir and Jammu brace for snow"},
			want:   "jammu",
			wantOk: true,
		},
		{
			name:   "title and description are joined with a space",
			item:   types.Item{Title: "Tamil", Description: "Nadu"},
			want:   "tamil nadu",
			wantOk: true,
		},
		{
			name:   "no match",
			item:   types.Item{Title: "Markets rally in Mumbai"},
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectSubRegion(tt.item, candidates)
			if ok != tt.wantOk {
				t.Fatalf("DetectSubRegion() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got.Key != tt.want {
				t.Errorf("DetectSubRegion() = %q, want %q", got.Key, tt.want)
			}
		})
	}
}

func TestDetectSubRegion_ScenarioGujarat(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	got, ok := DetectSubRegion(types.Item{Title: "Gujarat sees record rainfall"}, c.SubRegions("in"))
	if !ok {
		t.Fatal("DetectSubRegion() found no region")
	}
	if got.Key != "gujarat" || got.Centroid != types.NewGeoPoint(22.3, 70.8) {
		t.Errorf("DetectSubRegion() = %+v, want gujarat (22.3, 70.8)", got)
	}
}

func TestDetectSubRegion_NoCandidates(t *testing.T) {
	if _, ok := DetectSubRegion(types.Item{Title: "Gujarat"}, nil); ok {
		t.Error("DetectSubRegion() with no candidates returned a match")
	}
}
