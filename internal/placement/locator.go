package placement

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"globex/internal/geo"
	"globex/internal/locate"
	"globex/internal/regions"
	"globex/internal/types"
)

// Strategy names accepted by configuration and the markers endpoint.
const (
	StrategySpiral = "spiral"
	StrategyLLM    = "llm"
)

// Fine regions pull markers tighter than the spiral used around a country
// centroid.
const (
	FineScale   = 0.6
	CoarseScale = 1.0
)

// Locator decides where a single item goes. index and total describe the
// item's position in its batch; region is the country region and fine the
// country's sub-regions, empty when the country is not designated.
type Locator interface {
	Name() string
	Locate(ctx context.Context, item types.Item, index, total int, region types.Region, fine []types.Region) (types.GeoPoint, string, error)
}

// SpiralLocator places items around a centroid on a golden-angle spiral.
type SpiralLocator struct{}

func (SpiralLocator) Name() string {
	return StrategySpiral
}

func (SpiralLocator) Locate(_ context.Context, item types.Item, index, total int, region types.Region, fine []types.Region) (types.GeoPoint, string, error) {
	base := region.Centroid
	label := strings.ToUpper(region.Key)
	scale := CoarseScale

	if sub, ok := regions.DetectSubRegion(item, fine); ok {
		base = sub.Centroid
		label = strings.ToUpper(sub.Key)
		scale = FineScale
	}

	dLat, dLon := geo.SpiralOffset(index, total, base.Latitude)
	return geo.Offset(base, dLat, dLon, scale), label, nil
}

// LLMLocator asks a text model where each item takes place. Calls are
// serialized; one request is in flight at a time.
type LLMLocator struct {
	service locate.Service
	mu      sync.Mutex
}

func NewLLMLocator(service locate.Service) *LLMLocator {
	return &LLMLocator{service: service}
}

func (l *LLMLocator) Name() string {
	return StrategyLLM
}

func (l *LLMLocator) Locate(ctx context.Context, item types.Item, _, _ int, region types.Region, _ []types.Region) (types.GeoPoint, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	loc, err := l.service.Locate(ctx, item, region.Key)
	if err != nil {
		return types.GeoPoint{}, "", err
	}

	label := strings.ToUpper(strings.TrimSpace(loc.Name))
	if label == "" {
		label = strings.ToUpper(region.Key)
	}
	return geo.Offset(loc.Point, 0, 0, 0), label, nil
}

// NewLocator returns the locator for a strategy name. service may be nil
// when only the spiral strategy is used.
func NewLocator(strategy string, service locate.Service) (Locator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategySpiral:
		return SpiralLocator{}, nil
	case StrategyLLM:
		if service == nil {
			return nil, fmt.Errorf("%w: llm strategy needs a locate service", ErrUnknownStrategy)
		}
		return NewLLMLocator(service), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
