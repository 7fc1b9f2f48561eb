package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoints
	app.router.GET("/", app.handleRoot)
	app.router.GET("/ping", app.handlePing)

	// News proxy and model passthrough used by the frontend
	app.router.GET("/api/news", app.handleGetNews)
	app.router.POST("/ask-claude", app.handleAskClaude)

	// Markers
	app.router.POST("/api/markers", app.handlePlaceMarkers)
	app.router.GET("/api/markers", app.handleGetMarkers)
	app.router.POST("/api/markers/pick", app.handlePickMarker)
	app.router.GET("/api/project", app.handleProject)

	// Session controls
	app.router.GET("/api/session", app.handleGetSession)
	app.router.POST("/api/session/fetch-pause", app.handleFetchPause)
	app.router.POST("/api/session/rotation", app.handleRotation)

	app.router.GET("/metrics", gin.WrapH(app.svc.metrics.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
