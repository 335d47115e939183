package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	agentHTTP "time-range-parser/internal/agent/delivery/http"
	trHTTP "time-range-parser/internal/timerange/delivery/http"
)

// setupTimeRangeDomain registers /api/v1/time-range/*.
func (srv HTTPServer) setupTimeRangeDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := trHTTP.New(srv.l, srv.timeRangeUC)
	trHTTP.RegisterRoutes(api.Group("/time-range"), h, srv.mw)

	srv.l.Infof(ctx, "Time range domain registered")
	return nil
}

// setupToolDomain registers /api/v1/tools and /api/v1/tools/:name.
func (srv HTTPServer) setupToolDomain(ctx context.Context, api *gin.RouterGroup) {
	h := agentHTTP.New(srv.l, srv.toolRegistry)
	agentHTTP.RegisterRoutes(api.Group("/tools"), h, srv.mw)

	srv.l.Infof(ctx, "Tool domain registered (%d tools)", len(srv.toolRegistry.Names()))
}
