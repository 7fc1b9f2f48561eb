package placement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"globex/internal/geo"
	"globex/internal/regions"
	"globex/internal/scene"
	"globex/internal/timezone"
	"globex/internal/types"

	"github.com/google/uuid"
)

var (
	// ErrMalformedItem marks an item that cannot be placed.
	ErrMalformedItem = errors.New("malformed item")

	// ErrUnknownStrategy is returned for a placement strategy name that is
	// not recognised.
	ErrUnknownStrategy = errors.New("unknown placement strategy")
)

// Skip reasons reported to the Recorder.
const (
	SkipMalformed = "malformed"
	SkipUnlocated = "unlocated"
)

// PauseFunc reports whether fetching is paused. It is polled once before
// each item.
type PauseFunc func() bool

// Recorder receives placement measurements.
type Recorder interface {
	BatchPlaced(markers int)
	ItemSkipped(reason string)
}

type nopRecorder struct{}

func (nopRecorder) BatchPlaced(int)    {}
func (nopRecorder) ItemSkipped(string) {}

// Batch is the complete set of markers from one placement run. A batch is
// never modified after it is returned.
type Batch struct {
	ID          string               `json:"id"`
	CountryCode string               `json:"countryCode" example:"us"`
	Strategy    string               `json:"strategy" example:"spiral"`
	Markers     []types.PlacedMarker `json:"markers"`
	Skipped     int                  `json:"skipped"`
	Interrupted bool                 `json:"interrupted"`
	CreatedAt   time.Time            `json:"createdAt"`

	registryOnce sync.Once
	registry     *scene.Registry
}

// Registry returns the pick registry for the batch's markers.
func (b *Batch) Registry() *scene.Registry {
	b.registryOnce.Do(func() {
		b.registry = scene.RegistryFromMarkers(b.Markers)
	})
	return b.registry
}

// Marker returns the marker with the given id.
func (b *Batch) Marker(id string) (types.PlacedMarker, bool) {
	for _, m := range b.Markers {
		if m.ID == id {
			return m, true
		}
	}
	return types.PlacedMarker{}, false
}

// Engine turns news items into globe markers.
type Engine struct {
	catalog  *regions.Catalog
	locator  Locator
	timezone timezone.Service
	recorder Recorder
	logger   *slog.Logger
}

// NewEngine creates a placement engine. tz and recorder may be nil.
func NewEngine(catalog *regions.Catalog, locator Locator, tz timezone.Service, recorder Recorder, logger *slog.Logger) *Engine {
	if locator == nil {
		locator = SpiralLocator{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Engine{
		catalog:  catalog,
		locator:  locator,
		timezone: tz,
		recorder: recorder,
		logger:   logger.With("component", "placement-engine"),
	}
}

// WithLocator returns a copy of the engine that uses locator.
func (e *Engine) WithLocator(locator Locator) *Engine {
	clone := *e
	clone.locator = locator
	return &clone
}

// Strategy returns the name of the engine's locator.
func (e *Engine) Strategy() string {
	return e.locator.Name()
}

// PlaceMarkers places items around the centroid of countryCode. Items are
// processed in order, one at a time. When pause reports true the loop stops
// and the markers produced so far are returned in an interrupted batch.
// Context cancellation also stops the loop; the partial batch is returned
// together with the context error.
func (e *Engine) PlaceMarkers(ctx context.Context, items []types.Item, countryCode string, pause PauseFunc) (*Batch, error) {
	region, err := e.catalog.Country(countryCode)
	if err != nil {
		e.logger.Error("cannot place batch", "country", countryCode, "error", err)
		return nil, err
	}
	fine := e.catalog.SubRegions(region.Key)

	batch := &Batch{
		ID:          uuid.NewString(),
		CountryCode: region.Key,
		Strategy:    e.locator.Name(),
		Markers:     make([]types.PlacedMarker, 0, len(items)),
	}

	e.logger.Info("placing batch",
		"batch", batch.ID,
		"country", region.Key,
		"strategy", batch.Strategy,
		"items", len(items),
	)

	for i, item := range items {
		if pause != nil && pause() {
			e.logger.Info("fetch paused, stopping batch", "batch", batch.ID, "placed", len(batch.Markers))
			batch.Interrupted = true
			break
		}
		if err := ctx.Err(); err != nil {
			batch.Interrupted = true
			batch.CreatedAt = time.Now()
			return batch, err
		}

		marker, err := e.placeItem(ctx, item, i, len(items), region, fine)
		if err != nil {
			batch.Skipped++
			if errors.Is(err, ErrMalformedItem) {
				e.recorder.ItemSkipped(SkipMalformed)
				e.logger.Warn("skipping malformed item", "index", i, "error", err)
			} else {
				e.recorder.ItemSkipped(SkipUnlocated)
				e.logger.Error("failed to locate item",
					"index", i,
					"title", item.Title,
					"error_type", fmt.Sprintf("%T", err),
					"error", err,
				)
			}
			continue
		}
		batch.Markers = append(batch.Markers, marker)
	}

	batch.CreatedAt = time.Now()
	e.recorder.BatchPlaced(len(batch.Markers))

	e.logger.Info("placed batch",
		"batch", batch.ID,
		"markers", len(batch.Markers),
		"skipped", batch.Skipped,
		"interrupted", batch.Interrupted,
	)
	return batch, nil
}

func (e *Engine) placeItem(ctx context.Context, item types.Item, index, total int, region types.Region, fine []types.Region) (types.PlacedMarker, error) {
	if !item.Valid() {
		return types.PlacedMarker{}, fmt.Errorf("%w: item %d has no title", ErrMalformedItem, index)
	}

	pos, label, err := e.locator.Locate(ctx, item, index, total, region, fine)
	if err != nil {
		return types.PlacedMarker{}, err
	}

	return types.PlacedMarker{
		ID:          uuid.NewString(),
		Item:        item,
		Position:    pos,
		Projected:   geo.Project(pos, geo.MarkerRadius),
		RegionLabel: label,
		Timezone:    e.lookupTimezone(pos),
	}, nil
}

func (e *Engine) lookupTimezone(pos types.GeoPoint) string {
	if e.timezone == nil {
		return ""
	}
	tz, err := e.timezone.GetTimezone(pos.Latitude, pos.Longitude)
	if err != nil {
		e.logger.Debug("no timezone for marker", "latitude", pos.Latitude, "longitude", pos.Longitude, "error", err)
		return ""
	}
	return tz
}
