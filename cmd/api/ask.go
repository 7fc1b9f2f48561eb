package main

import (
	"errors"
	"io"
	"net/http"

	"globex/internal/llm"

	"github.com/gin-gonic/gin"
)

// AskRequest is the body of the ask endpoint
type AskRequest struct {
	Prompt string `json:"prompt" example:"Where does this story take place? Gujarat sees record rainfall"`
}

// AskContent is one block of model output
type AskContent struct {
	Text string `json:"text" example:"Location: New Delhi, India\nLatitude: 28.6139\nLongitude: 77.2090\nReasoning: Demo fallback without LLM key."`
}

// AskResponse wraps the reply in the content-block shape the frontend reads
type AskResponse struct {
	Content []AskContent `json:"content"`
}

// handleAskClaude godoc
// @Summary Ask the text model
// @Description Forwards a prompt to the configured model. Without an API key a fixed demo location is returned.
// @Tags llm
// @Accept json
// @Produce json
// @Param request body AskRequest false "Prompt; empty becomes \"Find location\""
// @Success 200 {object} AskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ask-claude [post]
func (app *App) handleAskClaude(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	reply, err := app.svc.locate.Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		app.svc.metrics.UpstreamError("OpenRouter")
		if code, msg, ok := llm.HTTPStatus(err); ok {
			c.JSON(code, ErrorResponse{Error: "OpenRouter error", Body: msg})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AskResponse{Content: []AskContent{{Text: reply}}})
}
