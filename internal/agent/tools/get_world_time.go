package tools

import (
	"context"

	"time-range-parser/internal/agent"
	"time-range-parser/internal/timerange"
	pkgLog "time-range-parser/pkg/log"
)

type GetWorldTimeTool struct {
	uc timerange.UseCase
	l  pkgLog.Logger
}

func NewGetWorldTimeTool(uc timerange.UseCase, l pkgLog.Logger) *GetWorldTimeTool {
	return &GetWorldTimeTool{uc: uc, l: l}
}

func (t *GetWorldTimeTool) Name() string {
	return "get_world_time"
}

func (t *GetWorldTimeTool) Description() string {
	return "Get the current time in a city or timezone from WorldTimeAPI."
}

func (t *GetWorldTimeTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"city": stringProp("City name or IANA timezone, e.g. 'tokyo' or 'America/New_York'."),
	}, "city")
}

type GetWorldTimeInput struct {
	City string `json:"city"`
}

type GetWorldTimeOutput struct {
	City         string `json:"city"`
	Timezone     string `json:"timezone"`
	CurrentTime  string `json:"current_time"`
	UTCOffset    string `json:"utc_offset"`
	DST          bool   `json:"dst"`
	WeekNumber   int    `json:"week_number"`
	DayOfYear    int    `json:"day_of_year"`
	Abbreviation string `json:"abbreviation"`
	Source       string `json:"source"`
}

func (t *GetWorldTimeTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params GetWorldTimeInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	wt, err := t.uc.WorldTime(ctx, timerange.WorldTimeInput{City: params.City})
	if err != nil {
		return nil, err
	}

	return GetWorldTimeOutput{
		City:         wt.City,
		Timezone:     wt.Timezone,
		CurrentTime:  wt.CurrentTime,
		UTCOffset:    wt.UTCOffset,
		DST:          wt.DST,
		WeekNumber:   wt.WeekNumber,
		DayOfYear:    wt.DayOfYear,
		Abbreviation: wt.Abbreviation,
		Source:       wt.Source,
	}, nil
}

var _ agent.Tool = (*GetWorldTimeTool)(nil)
