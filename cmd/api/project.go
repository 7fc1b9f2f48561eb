package main

import (
	"net/http"

	"globex/internal/geo"
	"globex/internal/types"

	"github.com/gin-gonic/gin"
)

// ProjectInput defines the query parameters for the projection endpoint
type ProjectInput struct {
	Latitude  *float64 `form:"lat" binding:"required"` // Latitude in decimal degrees
	Longitude *float64 `form:"lon" binding:"required"` // Longitude in decimal degrees
	Radius    float64  `form:"radius"`                 // Sphere radius, defaults to the marker radius
}

// ProjectResponse is a geographic point and its scene position
type ProjectResponse struct {
	Point     types.GeoPoint `json:"point"`
	Radius    float64        `json:"radius" example:"5.1"`
	Projected types.Point3D  `json:"projected"`
}

// handleProject godoc
// @Summary Project a coordinate onto the globe
// @Tags markers
// @Produce json
// @Param lat query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(38)
// @Param lon query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-97)
// @Param radius query number false "Sphere radius" default(5.1)
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/project [get]
func (app *App) handleProject(c *gin.Context) {
	var input ProjectInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !geo.ValidCoordinates(*input.Latitude, *input.Longitude) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "latitude must be in [-90, 90] and longitude in [-180, 180]"})
		return
	}

	radius := input.Radius
	if radius <= 0 {
		radius = geo.MarkerRadius
	}

	point := types.NewGeoPoint(*input.Latitude, *input.Longitude)
	c.JSON(http.StatusOK, ProjectResponse{
		Point:     point,
		Radius:    radius,
		Projected: geo.Project(point, radius),
	})
}
