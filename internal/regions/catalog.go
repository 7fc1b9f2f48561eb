package regions

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"globex/internal/geo"
	"globex/internal/types"

	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var defaultCatalog []byte

// ErrUnknownRegion is returned when no centroid is known for a country code.
var ErrUnknownRegion = errors.New("no centroid mapping for country code")

type catalogFile struct {
	Countries []countryEntry `yaml:"countries"`
}

type countryEntry struct {
	Code       string        `yaml:"code"`
	Lat        float64       `yaml:"lat"`
	Lon        float64       `yaml:"lon"`
	SubRegions []regionEntry `yaml:"subRegions"`
}

type regionEntry struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

// Catalog holds the static region reference data. It is built once and
// never mutated, so it is safe for concurrent readers.
type Catalog struct {
	order      []string
	countries  map[string]types.Region
	subRegions map[string][]types.Region
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse builds a catalog from its YAML representation.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse region catalog: %w", err)
	}

	c := &Catalog{
		countries:  make(map[string]types.Region, len(file.Countries)),
		subRegions: make(map[string][]types.Region),
	}

	for _, entry := range file.Countries {
		code := strings.ToLower(strings.TrimSpace(entry.Code))
		if code == "" {
			return nil, fmt.Errorf("region catalog: country entry without code")
		}
		if _, dup := c.countries[code]; dup {
			return nil, fmt.Errorf("region catalog: duplicate country code %q", code)
		}
		if !geo.ValidCoordinates(entry.Lat, entry.Lon) {
			return nil, fmt.Errorf("region catalog: invalid centroid for %q: (%v, %v)", code, entry.Lat, entry.Lon)
		}

		c.order = append(c.order, code)
		c.countries[code] = types.Region{
			Key:      code,
			Tier:     types.TierCountry,
			Centroid: types.NewGeoPoint(entry.Lat, entry.Lon),
		}

		for _, sub := range entry.SubRegions {
			name := strings.ToLower(strings.TrimSpace(sub.Name))
			if name == "" {
				return nil, fmt.Errorf("region catalog: sub-region of %q without name", code)
			}
			if !geo.ValidCoordinates(sub.Lat, sub.Lon) {
				return nil, fmt.Errorf("region catalog: invalid centroid for %q: (%v, %v)", name, sub.Lat, sub.Lon)
			}
			c.subRegions[code] = append(c.subRegions[code], types.Region{
				Key:      name,
				Tier:     types.TierSubRegion,
				Centroid: types.NewGeoPoint(sub.Lat, sub.Lon),
			})
		}
	}

	return c, nil
}

// Country returns the country-level region for code.
func (c *Catalog) Country(code string) (types.Region, error) {
	key := strings.ToLower(strings.TrimSpace(code))
	region, ok := c.countries[key]
	if !ok {
		return types.Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, code)
	}
	return region, nil
}

// SubRegions returns the fine-grained regions of a designated country, in
// catalog order, or nil when the country has none.
func (c *Catalog) SubRegions(code string) []types.Region {
	return c.subRegions[strings.ToLower(strings.TrimSpace(code))]
}

// Designated reports whether code supports fine-grained sub-placement.
func (c *Catalog) Designated(code string) bool {
	return len(c.SubRegions(code)) > 0
}

// Countries returns all country regions in catalog order.
func (c *Catalog) Countries() []types.Region {
	out := make([]types.Region, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.countries[code])
	}
	return out
}
