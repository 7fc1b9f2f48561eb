package placement

import (
	"context"
	"errors"
	"sync"
	"testing"

	"globex/internal/scene"
	"globex/internal/types"
)

func TestSession_BatchReplace(t *testing.T) {
	engine := NewEngine(mustCatalog(t), nil, nil, nil, discardLogger())
	s := NewSession()

	first, err := s.Run(context.Background(), engine, []types.Item{{Title: "old one"}, {Title: "old two"}}, "us")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := s.Select(first.Markers[0].ID); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	second, err := s.Run(context.Background(), engine, []types.Item{{Title: "new"}}, "gb")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := s.Batch()
	if got != second {
		t.Fatal("session should hold the second batch")
	}
	if len(got.Markers) != 1 || got.Markers[0].Item.Title != "new" {
		t.Errorf("batch should contain only second-batch items, got %d markers", len(got.Markers))
	}
	if s.Selected() != "" {
		t.Errorf("selection %q should be cleared after replace", s.Selected())
	}
}

func TestSession_FailedRunKeepsBatch(t *testing.T) {
	engine := NewEngine(mustCatalog(t), nil, nil, nil, discardLogger())
	s := NewSession()

	first, err := s.Run(context.Background(), engine, []types.Item{{Title: "kept"}}, "us")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := s.Run(context.Background(), engine, []types.Item{{Title: "lost"}}, "zz"); err == nil {
		t.Fatal("expected error for unknown region")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Run(ctx, engine, []types.Item{{Title: "lost"}}, "us"); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}

	if s.Batch() != first {
		t.Error("failed runs must not replace the current batch")
	}
}

func TestSession_PausedRunKeepsPartialBatch(t *testing.T) {
	engine := NewEngine(mustCatalog(t), nil, nil, nil, discardLogger())
	s := NewSession()
	s.SetFetchPaused(true)

	b, err := s.Run(context.Background(), engine, titles(4), "us")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !b.Interrupted || len(b.Markers) != 0 {
		t.Errorf("interrupted=%v markers=%d, want true and 0", b.Interrupted, len(b.Markers))
	}
	if s.State().Interrupted != true {
		t.Error("state should report the interrupted batch")
	}
}

func TestSession_ToggleFetchPause(t *testing.T) {
	s := NewSession()
	if !s.ToggleFetchPause() || !s.FetchPaused() {
		t.Fatal("first toggle should pause")
	}
	if s.ToggleFetchPause() || s.FetchPaused() {
		t.Fatal("second toggle should resume")
	}
}

func TestSession_Rotation(t *testing.T) {
	s := NewSession()
	if got := s.Rotation(); got != (Rotation{}) {
		t.Errorf("initial rotation = %+v", got)
	}
	s.SetRotation(Rotation{Paused: true, SliderDegrees: 120})
	if got := s.Rotation(); !got.Paused || got.SliderDegrees != 120 {
		t.Errorf("rotation = %+v", got)
	}
}

func TestSession_Select(t *testing.T) {
	engine := NewEngine(mustCatalog(t), nil, nil, nil, discardLogger())
	s := NewSession()

	if err := s.Select("missing"); !errors.Is(err, ErrUnknownMarker) {
		t.Errorf("Select() before any batch error = %v, want ErrUnknownMarker", err)
	}

	b, err := s.Run(context.Background(), engine, titles(2), "us")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := s.Select("missing"); !errors.Is(err, ErrUnknownMarker) {
		t.Errorf("Select() error = %v, want ErrUnknownMarker", err)
	}
	if err := s.Select(b.Markers[1].ID); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if s.Selected() != b.Markers[1].ID {
		t.Errorf("Selected() = %q", s.Selected())
	}
	if err := s.Select(""); err != nil || s.Selected() != "" {
		t.Errorf("empty id should clear the selection")
	}
}

func TestSession_Pick(t *testing.T) {
	engine := NewEngine(mustCatalog(t), nil, nil, nil, discardLogger())
	s := NewSession()

	if _, ok := s.Pick(scene.Ray{Direction: types.Point3D{Z: 1}}); ok {
		t.Fatal("pick without a batch should miss")
	}

	b, err := s.Run(context.Background(), engine, []types.Item{{Title: "only"}}, "us")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	target := b.Markers[0].Projected

	ray := scene.Ray{Origin: target.Scale(3), Direction: target.Scale(-1)}
	marker, ok := s.Pick(ray)
	if !ok {
		t.Fatal("ray aimed at the marker should hit it")
	}
	if marker.ID != b.Markers[0].ID || s.Selected() != marker.ID {
		t.Errorf("picked %q, selected %q, want %q", marker.ID, s.Selected(), b.Markers[0].ID)
	}

	away := scene.Ray{Origin: target.Scale(3), Direction: target}
	if _, ok := s.Pick(away); ok {
		t.Error("ray pointing away should miss")
	}
	if s.Selected() != "" {
		t.Error("a miss should clear the selection")
	}
}

func TestSession_ConcurrentReaders(t *testing.T) {
	engine := NewEngine(mustCatalog(t), nil, nil, nil, discardLogger())
	s := NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.State()
				if b := s.Batch(); b != nil {
					_ = b.Registry()
				}
			}
		}()
	}
	for i := 0; i < 5; i++ {
		if _, err := s.Run(context.Background(), engine, titles(3), "us"); err != nil {
			t.Errorf("Run() error = %v", err)
		}
	}
	wg.Wait()
}
