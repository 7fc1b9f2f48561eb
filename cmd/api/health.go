package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// handleRoot godoc
// @Summary Liveness banner
// @Tags health
// @Produce plain
// @Success 200 {string} string "GlobeX backend up"
// @Router / [get]
func (app *App) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, "GlobeX backend up")
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}
