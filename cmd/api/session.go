package main

import (
	"errors"
	"io"
	"net/http"

	"globex/internal/placement"

	"github.com/gin-gonic/gin"
)

// FetchPauseRequest sets the fetch pause flag. Without a value the flag is toggled.
type FetchPauseRequest struct {
	Paused *bool `json:"paused,omitempty"`
}

// RotationRequest is the globe rotation control state
type RotationRequest struct {
	Paused        bool    `json:"paused"`
	SliderDegrees float64 `json:"sliderDegrees" binding:"gte=0,lte=360" example:"45"`
}

// handleGetSession godoc
// @Summary Get session state
// @Tags session
// @Produce json
// @Success 200 {object} placement.State
// @Router /api/session [get]
func (app *App) handleGetSession(c *gin.Context) {
	c.JSON(http.StatusOK, app.svc.session.State())
}

// handleFetchPause godoc
// @Summary Pause or resume fetching
// @Description A running batch stops before its next item once paused and keeps the markers placed so far.
// @Tags session
// @Accept json
// @Produce json
// @Param request body FetchPauseRequest false "Explicit state; omit to toggle"
// @Success 200 {object} placement.State
// @Failure 400 {object} ErrorResponse
// @Router /api/session/fetch-pause [post]
func (app *App) handleFetchPause(c *gin.Context) {
	var req FetchPauseRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var paused bool
	if req.Paused != nil {
		paused = *req.Paused
		app.svc.session.SetFetchPaused(paused)
	} else {
		paused = app.svc.session.ToggleFetchPause()
	}
	app.logger.Info("fetch pause changed", "paused", paused)

	c.JSON(http.StatusOK, app.svc.session.State())
}

// handleRotation godoc
// @Summary Set globe rotation controls
// @Tags session
// @Accept json
// @Produce json
// @Param request body RotationRequest true "Rotation state"
// @Success 200 {object} placement.State
// @Failure 400 {object} ErrorResponse
// @Router /api/session/rotation [post]
func (app *App) handleRotation(c *gin.Context) {
	var req RotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	app.svc.session.SetRotation(placement.Rotation{
		Paused:        req.Paused,
		SliderDegrees: req.SliderDegrees,
	})
	c.JSON(http.StatusOK, app.svc.session.State())
}
