package http

import (
	"github.com/gin-gonic/gin"

	"time-range-parser/internal/agent"
	"time-range-parser/pkg/log"
)

// Handler exposes the tool registry over HTTP.
type Handler interface {
	ListTools(c *gin.Context)
	InvokeTool(c *gin.Context)
}

type handler struct {
	l        log.Logger
	registry *agent.ToolRegistry
}

// New creates a new HTTP handler for the tool registry.
func New(l log.Logger, registry *agent.ToolRegistry) *handler {
	return &handler{
		l:        l,
		registry: registry,
	}
}

var _ Handler = (*handler)(nil)
