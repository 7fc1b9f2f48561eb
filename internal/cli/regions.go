package cli

import (
	"globex/internal/regions"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type regionListing struct {
	Code       string          `yaml:"code"`
	Lat        float64         `yaml:"lat"`
	Lon        float64         `yaml:"lon"`
	SubRegions []regionSummary `yaml:"subRegions,omitempty"`
}

type regionSummary struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the built-in country centroids and sub-regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := regions.Default()
			if err != nil {
				return err
			}

			var out []regionListing
			for _, c := range catalog.Countries() {
				listing := regionListing{Code: c.Key, Lat: c.Centroid.Latitude, Lon: c.Centroid.Longitude}
				for _, sub := range catalog.SubRegions(c.Key) {
					listing.SubRegions = append(listing.SubRegions, regionSummary{
						Name: sub.Key,
						Lat:  sub.Centroid.Latitude,
						Lon:  sub.Centroid.Longitude,
					})
				}
				out = append(out, listing)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(map[string][]regionListing{"countries": out})
		},
	}
}
