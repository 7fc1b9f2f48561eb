package locate

import "globex/internal/types"

// Location is a place extracted from a model reply.
type Location struct {
	Name      string         `json:"name" example:"New Delhi, India"`
	Point     types.GeoPoint `json:"point"`
	Reasoning string         `json:"reasoning,omitempty"`
}
