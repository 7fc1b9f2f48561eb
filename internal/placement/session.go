package placement

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"globex/internal/scene"
	"globex/internal/types"
)

// ErrUnknownMarker is returned when selecting a marker that is not part of
// the current batch.
var ErrUnknownMarker = errors.New("marker not in current batch")

// Rotation is the globe's auto-rotation control as last set by the client.
type Rotation struct {
	Paused        bool    `json:"paused"`
	SliderDegrees float64 `json:"sliderDegrees" example:"45"`
}

// State is a point-in-time copy of the session for display.
type State struct {
	FetchPaused    bool     `json:"fetchPaused"`
	Rotation       Rotation `json:"rotation"`
	SelectedMarker string   `json:"selectedMarker,omitempty"`
	BatchID        string   `json:"batchId,omitempty"`
	MarkerCount    int      `json:"markerCount"`
	Interrupted    bool     `json:"interrupted"`
}

// Session holds the shared state between the batch loop and request
// handlers. Each field has a single writer; readers always see a complete
// value.
type Session struct {
	fetchPaused atomic.Bool
	rotation    atomic.Pointer[Rotation]
	batch       atomic.Pointer[Batch]
	selected    atomic.Pointer[string]

	// runMu serializes batch runs.
	runMu sync.Mutex
}

func NewSession() *Session {
	s := &Session{}
	s.rotation.Store(&Rotation{})
	return s
}

// FetchPaused reports whether new batches are held back.
func (s *Session) FetchPaused() bool {
	return s.fetchPaused.Load()
}

func (s *Session) SetFetchPaused(paused bool) {
	s.fetchPaused.Store(paused)
}

// ToggleFetchPause flips the pause flag and returns the new value.
func (s *Session) ToggleFetchPause() bool {
	for {
		old := s.fetchPaused.Load()
		if s.fetchPaused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (s *Session) Rotation() Rotation {
	return *s.rotation.Load()
}

func (s *Session) SetRotation(r Rotation) {
	s.rotation.Store(&r)
}

// Batch returns the current batch, or nil before the first run.
func (s *Session) Batch() *Batch {
	return s.batch.Load()
}

// Replace installs b as the current batch. The selection is cleared when
// its marker is not part of b.
func (s *Session) Replace(b *Batch) {
	s.batch.Store(b)
	if id := s.Selected(); id != "" {
		if _, ok := b.Marker(id); !ok {
			s.selected.Store(nil)
		}
	}
}

// Selected returns the id of the selected marker, or "".
func (s *Session) Selected() string {
	if id := s.selected.Load(); id != nil {
		return *id
	}
	return ""
}

// Select marks id as selected. An empty id clears the selection.
func (s *Session) Select(id string) error {
	if id == "" {
		s.selected.Store(nil)
		return nil
	}
	b := s.Batch()
	if b == nil {
		return ErrUnknownMarker
	}
	if _, ok := b.Marker(id); !ok {
		return ErrUnknownMarker
	}
	s.selected.Store(&id)
	return nil
}

// Pick casts ray against the current batch and selects the closest marker
// it hits. A miss clears the selection.
func (s *Session) Pick(ray scene.Ray) (types.PlacedMarker, bool) {
	b := s.Batch()
	if b == nil {
		return types.PlacedMarker{}, false
	}
	reg := b.Registry()
	id, ok := scene.ClosestHit(scene.Intersect(ray, reg), reg)
	if !ok {
		s.selected.Store(nil)
		return types.PlacedMarker{}, false
	}
	marker, _ := b.Marker(id)
	s.selected.Store(&id)
	return marker, true
}

// Run places items with engine and installs the resulting batch. Only one
// run executes at a time. A cancelled run leaves the current batch in place.
func (s *Session) Run(ctx context.Context, engine *Engine, items []types.Item, countryCode string) (*Batch, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	b, err := engine.PlaceMarkers(ctx, items, countryCode, s.FetchPaused)
	if err != nil {
		return b, err
	}
	s.Replace(b)
	return b, nil
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	st := State{
		FetchPaused:    s.FetchPaused(),
		Rotation:       s.Rotation(),
		SelectedMarker: s.Selected(),
	}
	if b := s.Batch(); b != nil {
		st.BatchID = b.ID
		st.MarkerCount = len(b.Markers)
		st.Interrupted = b.Interrupted
	}
	return st
}
