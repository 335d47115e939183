package http

import (
	"github.com/gin-gonic/gin"

	"time-range-parser/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", h.ListTools)
	rg.POST("/:name", mw.RateLimit(), h.InvokeTool)
}
