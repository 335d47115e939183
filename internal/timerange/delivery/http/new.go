package http

import (
	"github.com/gin-gonic/gin"

	"time-range-parser/internal/timerange"
	"time-range-parser/pkg/log"
)

// Handler is the public interface for the time-range HTTP delivery layer.
type Handler interface {
	Resolve(c *gin.Context)
	Convert(c *gin.Context)
	Recurrence(c *gin.Context)
	Duration(c *gin.Context)
	CalendarInfo(c *gin.Context)
	DSTStatus(c *gin.Context)
	WorldTime(c *gin.Context)
	Holidays(c *gin.Context)
	Timezones(c *gin.Context)
	ServerInfo(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc timerange.UseCase
}

// New creates a new HTTP handler for the time-range domain.
func New(l log.Logger, uc timerange.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

var _ Handler = (*handler)(nil)
