package tools

import (
	"context"

	"time-range-parser/internal/agent"
	"time-range-parser/internal/timerange"
	pkgLog "time-range-parser/pkg/log"
)

type ServerInfoTool struct {
	uc    timerange.UseCase
	l     pkgLog.Logger
	names func() []string
}

// NewServerInfoTool creates the tool. names lists the exposed tools and may be nil.
func NewServerInfoTool(uc timerange.UseCase, l pkgLog.Logger, names func() []string) *ServerInfoTool {
	return &ServerInfoTool{uc: uc, l: l, names: names}
}

func (t *ServerInfoTool) Name() string {
	return "server_info"
}

func (t *ServerInfoTool) Description() string {
	return "Get server information and capabilities."
}

func (t *ServerInfoTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{})
}

type ServerInfoOutput struct {
	Name            string          `json:"name"`
	Version         string          `json:"version"`
	Description     string          `json:"description"`
	DefaultTimezone string          `json:"default_timezone"`
	Resolution      string          `json:"resolution"`
	Capabilities    map[string]bool `json:"capabilities"`
	Tools           []string        `json:"tools"`
}

func (t *ServerInfoTool) Execute(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	info := t.uc.ServerInfo(ctx)
	tools := info.Tools
	if t.names != nil {
		tools = t.names()
	}
	return ServerInfoOutput{
		Name:            info.Name,
		Version:         info.Version,
		Description:     info.Description,
		DefaultTimezone: info.DefaultTimezone,
		Resolution:      info.Resolution,
		Capabilities:    info.Capabilities,
		Tools:           tools,
	}, nil
}

var _ agent.Tool = (*ServerInfoTool)(nil)
