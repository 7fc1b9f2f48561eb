package types

// PlacedMarker is a news item with its computed globe position.
type PlacedMarker struct {
	ID          string   `json:"id" example:"7d1c3f5e-9a51-4d3e-9a0c-3c1f0b8b2d11"`
	Item        Item     `json:"item"`
	Position    GeoPoint `json:"position"`
	Projected   Point3D  `json:"projected"`
	RegionLabel string   `json:"regionLabel" example:"GUJARAT"`
	Timezone    string   `json:"timezone,omitempty" example:"Asia/Kolkata"`
}
