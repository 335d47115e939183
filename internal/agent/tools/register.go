package tools

import (
	"time-range-parser/internal/agent"
	"time-range-parser/internal/timerange"
	pkgLog "time-range-parser/pkg/log"
)

// RegisterAll adds every time tool to registry.
func RegisterAll(registry *agent.ToolRegistry, uc timerange.UseCase, l pkgLog.Logger) {
	registry.Register(NewResolveTimeRangeTool(uc, l))
	registry.Register(NewConvertTimezoneTool(uc, l))
	registry.Register(NewExpandRecurrenceTool(uc, l))
	registry.Register(NewCalculateDurationTool(uc, l))
	registry.Register(NewGetDSTStatusTool(uc, l))
	registry.Register(NewGetCalendarInfoTool(uc, l))
	registry.Register(NewGetWorldTimeTool(uc, l))
	registry.Register(NewListPublicHolidaysTool(uc, l))
	registry.Register(NewServerInfoTool(uc, l, registry.Names))
}
