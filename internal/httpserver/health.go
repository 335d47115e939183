package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"time-range-parser/pkg/response"
)

// Service identity reported by the system routes.
const (
	HealthVersion = "0.1.0"
	ServiceName   = "time-range-parser"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Service identity and default timezone
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	info := srv.timeRangeUC.ServerInfo(c.Request.Context())
	response.OK(c, gin.H{
		"status":           "healthy",
		"service":          ServiceName,
		"version":          HealthVersion,
		"default_timezone": info.DefaultTimezone,
	})
}

// readyCheck reports ready when the default timezone loads from tzdata.
// @Summary Readiness Check
// @Description Checks tzdata for the default timezone and lists optional capabilities
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "tzdata unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	info := srv.timeRangeUC.ServerInfo(c.Request.Context())
	if _, err := time.LoadLocation(info.DefaultTimezone); err != nil {
		srv.l.Errorf(c.Request.Context(), "httpserver.readyCheck: %v", err)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "timezone database unavailable",
		})
		return
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"service":      ServiceName,
		"capabilities": info.Capabilities,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}
