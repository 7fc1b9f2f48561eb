package regions

import (
	"strings"

	"globex/internal/types"
)

// DetectSubRegion returns the first candidate whose name occurs in the
// item's title or description, ignoring case. Candidate order is the only
// tie-break; there is no scoring.
func DetectSubRegion(item types.Item, candidates []types.Region) (types.Region, bool) {
	text := item.Text()
	for _, candidate := range candidates {
		if candidate.Key == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(candidate.Key)) {
			return candidate, true
		}
	}
	return types.Region{}, false
}
