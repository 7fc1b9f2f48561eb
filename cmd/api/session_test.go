package main

import (
	"net/http"
	"testing"

	"globex/internal/placement"
)

func TestFetchPause(t *testing.T) {
	app := newTestApp(t, &mockNewsService{})

	state := decode[placement.State](t, app.do(t, http.MethodPost, "/api/session/fetch-pause", nil))
	if !state.FetchPaused {
		t.Fatal("empty body should toggle pause on")
	}
	state = decode[placement.State](t, app.do(t, http.MethodPost, "/api/session/fetch-pause", nil))
	if state.FetchPaused {
		t.Fatal("second toggle should resume")
	}

	paused := true
	for i := 0; i < 2; i++ {
		state = decode[placement.State](t, app.do(t, http.MethodPost, "/api/session/fetch-pause", FetchPauseRequest{Paused: &paused}))
		if !state.FetchPaused {
			t.Fatal("explicit pause should stay paused")
		}
	}
}

func TestRotation(t *testing.T) {
	app := newTestApp(t, &mockNewsService{})

	w := app.do(t, http.MethodPost, "/api/session/rotation", RotationRequest{Paused: true, SliderDegrees: 90})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}
	state := decode[placement.State](t, app.do(t, http.MethodGet, "/api/session", nil))
	if !state.Rotation.Paused || state.Rotation.SliderDegrees != 90 {
		t.Errorf("rotation = %+v", state.Rotation)
	}

	if w := app.do(t, http.MethodPost, "/api/session/rotation", RotationRequest{SliderDegrees: 400}); w.Code != http.StatusBadRequest {
		t.Errorf("out of range slider = %d, want 400", w.Code)
	}
}
