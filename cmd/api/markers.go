package main

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"globex/internal/news"
	"globex/internal/placement"
	"globex/internal/regions"
	"globex/internal/scene"
	"globex/internal/types"

	"github.com/gin-gonic/gin"
)

// PlaceMarkersRequest selects the news feed to place. Every field is optional.
type PlaceMarkersRequest struct {
	Endpoint string `json:"endpoint" example:"top-headlines"`
	Category string `json:"category" example:"general"`
	Country  string `json:"country" example:"in"`
	Sources  string `json:"sources" example:"bbc-news"`
	Q        string `json:"q" example:"news"`
	Limit    int    `json:"limit" binding:"gte=0,lte=50" example:"10"`     // Markers to place, defaults to app.newsAmount
	Strategy string `json:"strategy" example:"spiral" enums:"spiral,llm"` // Overrides placement.strategy
}

// PickRequest is a ray in scene coordinates, usually from the camera
// through the pointer.
type PickRequest struct {
	Origin    types.Point3D `json:"origin"`
	Direction types.Point3D `json:"direction"`
}

// PickResponse reports the marker a ray selected, if any
type PickResponse struct {
	Hit    bool                `json:"hit"`
	Marker *types.PlacedMarker `json:"marker,omitempty"`
}

// handlePlaceMarkers godoc
// @Summary Fetch news and place a new marker batch
// @Description Fetches a feed and places one marker per article around the country centroid. The new batch replaces the previous one.
// @Tags markers
// @Accept json
// @Produce json
// @Param request body PlaceMarkersRequest false "Feed selection and placement options"
// @Success 200 {object} placement.Batch
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/markers [post]
func (app *App) handlePlaceMarkers(c *gin.Context) {
	var req PlaceMarkersRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if app.svc.session.FetchPaused() {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "fetching is paused"})
		return
	}

	query := news.Query{
		Endpoint: req.Endpoint,
		Category: req.Category,
		Country:  req.Country,
		Sources:  req.Sources,
		Q:        req.Q,
	}
	if strings.TrimSpace(query.Category) == "" {
		query.Category = app.cfg.App.DefaultCategory
	}
	if strings.TrimSpace(query.Country) == "" {
		query.Country = app.cfg.App.DefaultCountry
	}

	// Reject unknown countries before spending an upstream request
	if _, err := app.svc.catalog.Country(query.Country); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	engine := app.svc.engine
	if req.Strategy != "" {
		locator, err := placement.NewLocator(req.Strategy, app.svc.locate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		engine = engine.WithLocator(locator)
	}

	limit := req.Limit
	if limit == 0 {
		limit = app.cfg.App.NewsAmount
	}

	items, err := app.fetchItems(c.Request.Context(), query, limit)
	if err != nil {
		app.respondNewsError(c, err)
		return
	}

	batch, err := app.svc.session.Run(c.Request.Context(), engine, items, query.Country)
	if err != nil {
		if errors.Is(err, regions.ErrUnknownRegion) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		app.logger.Error("failed to place markers", "country", query.Country, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to place markers"})
		return
	}

	c.JSON(http.StatusOK, batch)
}

// handleGetMarkers godoc
// @Summary Get the current marker batch
// @Tags markers
// @Produce json
// @Success 200 {object} placement.Batch
// @Failure 404 {object} ErrorResponse
// @Router /api/markers [get]
func (app *App) handleGetMarkers(c *gin.Context) {
	batch := app.svc.session.Batch()
	if batch == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no markers placed yet"})
		return
	}
	c.JSON(http.StatusOK, batch)
}

// handlePickMarker godoc
// @Summary Select the marker under a ray
// @Description Casts the ray against the current batch and selects the closest marker it hits. The globe and other geometry never count as a hit. A miss clears the selection.
// @Tags markers
// @Accept json
// @Produce json
// @Param request body PickRequest true "Ray in scene coordinates"
// @Success 200 {object} PickResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/markers/pick [post]
func (app *App) handlePickMarker(c *gin.Context) {
	var req PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.Direction.Norm() == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "direction must be non-zero"})
		return
	}

	marker, ok := app.svc.session.Pick(scene.Ray{Origin: req.Origin, Direction: req.Direction})
	if !ok {
		c.JSON(http.StatusOK, PickResponse{Hit: false})
		return
	}
	c.JSON(http.StatusOK, PickResponse{Hit: true, Marker: &marker})
}
