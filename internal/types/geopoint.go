package types

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" example:"38"`
	Longitude float64 `json:"longitude" example:"-97"`
}

func NewGeoPoint(latitude, longitude float64) GeoPoint {
	return GeoPoint{
		Latitude:  latitude,
		Longitude: longitude,
	}
}
