package http

import (
	"github.com/gin-gonic/gin"

	"time-range-parser/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Text resolving routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/resolve", mw.RateLimit(), h.Resolve)
	rg.POST("/convert", mw.RateLimit(), h.Convert)
	rg.POST("/recurrence", mw.RateLimit(), h.Recurrence)
	rg.POST("/duration", mw.RateLimit(), h.Duration)

	rg.GET("/calendar-info", mw.RateLimit(), h.CalendarInfo)
	rg.GET("/dst-status", h.DSTStatus)
	rg.GET("/world-time", h.WorldTime)
	rg.GET("/holidays", mw.RateLimit(), h.Holidays)
	rg.GET("/timezones", h.Timezones)
	rg.GET("/server-info", h.ServerInfo)
}
