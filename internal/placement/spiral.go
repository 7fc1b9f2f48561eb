package placement

import (
	"context"

	"globex/internal/geo"
	"globex/internal/types"
)

// PlaceSpiral places items around region with the spiral strategy and no
// side effects. Each item keeps its input position as its spiral index;
// items with a blank title produce no marker. IDs are left empty.
func PlaceSpiral(items []types.Item, region types.Region, fineRegions []types.Region) []types.PlacedMarker {
	var locator SpiralLocator

	markers := make([]types.PlacedMarker, 0, len(items))
	for i, item := range items {
		if !item.Valid() {
			continue
		}
		pos, label, _ := locator.Locate(context.Background(), item, i, len(items), region, fineRegions)
		markers = append(markers, types.PlacedMarker{
			Item:        item,
			Position:    pos,
			Projected:   geo.Project(pos, geo.MarkerRadius),
			RegionLabel: label,
		})
	}
	return markers
}
