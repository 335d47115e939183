package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"time-range-parser/internal/agent"
	"time-range-parser/internal/middleware"
	"time-range-parser/internal/timerange"
	"time-range-parser/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware
	mw middleware.Middleware

	// Time range domain
	timeRangeUC  timerange.UseCase
	toolRegistry *agent.ToolRegistry
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Config

	// Time range domain
	TimeRangeUC  timerange.UseCase
	ToolRegistry *agent.ToolRegistry
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              middleware.New(logger, cfg.Middleware),
		timeRangeUC:     cfg.TimeRangeUC,
		toolRegistry:    cfg.ToolRegistry,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.timeRangeUC == nil {
		return errors.New("time range usecase is required")
	}
	return nil
}
