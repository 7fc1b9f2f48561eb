package cli

import (
	"encoding/json"
	"fmt"

	"globex/internal/geo"
	"globex/internal/types"

	"github.com/spf13/cobra"
)

type projection struct {
	Point     types.GeoPoint `json:"point"`
	Radius    float64        `json:"radius"`
	Projected types.Point3D  `json:"projected"`
}

func newProjectCmd() *cobra.Command {
	var lat, lon, radius float64

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a latitude/longitude onto the globe scene",
		Example: `  globexctl project --lat 22.3 --lon 70.8
  globexctl project --lat 0 --lon 0 --radius 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !geo.ValidCoordinates(lat, lon) {
				return fmt.Errorf("coordinates out of range: lat=%v lon=%v", lat, lon)
			}
			if radius <= 0 {
				return fmt.Errorf("radius must be positive, got %v", radius)
			}
			point := types.NewGeoPoint(lat, lon)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(projection{
				Point:     point,
				Radius:    radius,
				Projected: geo.Project(point, radius),
			})
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in decimal degrees")
	cmd.Flags().Float64Var(&radius, "radius", geo.MarkerRadius, "sphere radius")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}
