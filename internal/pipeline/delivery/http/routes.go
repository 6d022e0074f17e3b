package http

import (
	"github.com/gin-gonic/gin"

	"transcript-tasks/internal/middleware"
)

// RegisterRoutes maps the pipeline endpoints. Every POST is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/extract", mw.RateLimit(), h.Extract)
	rg.POST("/issues", mw.RateLimit(), h.FileIssues)
	rg.POST("/recordings", mw.RateLimit(), h.ProcessRecording)
}
