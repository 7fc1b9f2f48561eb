package types

// RegionTier distinguishes country-level regions from the finer sub-regions
// that exist for designated countries.
type RegionTier int

const (
	TierCountry RegionTier = iota
	TierSubRegion
)

func (t RegionTier) String() string {
	switch t {
	case TierCountry:
		return "country"
	case TierSubRegion:
		return "sub-region"
	default:
		return "unknown"
	}
}

// Region is a named area with a representative centroid. Country regions
// are keyed by their lower-case country code, sub-regions by lower-case name.
type Region struct {
	Key      string     `json:"key" example:"gujarat"`
	Tier     RegionTier `json:"-"`
	Centroid GeoPoint   `json:"centroid"`
}
