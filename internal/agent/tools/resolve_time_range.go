package tools

import (
	"context"

	"time-range-parser/internal/agent"
	"time-range-parser/internal/timerange"
	pkgLog "time-range-parser/pkg/log"
)

type ResolveTimeRangeTool struct {
	uc timerange.UseCase
	l  pkgLog.Logger
}

func NewResolveTimeRangeTool(uc timerange.UseCase, l pkgLog.Logger) *ResolveTimeRangeTool {
	return &ResolveTimeRangeTool{uc: uc, l: l}
}

func (t *ResolveTimeRangeTool) Name() string {
	return "resolve_time_range"
}

func (t *ResolveTimeRangeTool) Description() string {
	return "Parse natural language date/time text (Dutch or English) into a start/end ISO-8601 range with second resolution."
}

func (t *ResolveTimeRangeTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"text":     stringProp("Natural language input, e.g. 'volgende vrijdag 15:00' or 'Q4 2025'."),
		"timezone": stringProp(timezoneDescription),
		"now_iso":  stringProp(nowISODescription),
		"fiscal_start_month": map[string]interface{}{
			"type":        "integer",
			"description": "Start month of the fiscal year (1-12).",
			"default":     1,
			"minimum":     1,
			"maximum":     12,
		},
	}, "text")
}

type ResolveTimeRangeInput struct {
	Text             string `json:"text"`
	Timezone         string `json:"timezone"`
	NowISO           string `json:"now_iso"`
	FiscalStartMonth int    `json:"fiscal_start_month"`
}

type ResolveTimeRangeOutput struct {
	Input    string `json:"input"`
	Timezone string `json:"timezone"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Kind     string `json:"kind"`
}

// ResolveErrorOutput keeps the offending text next to the message.
type ResolveErrorOutput struct {
	Error string `json:"error"`
	Input string `json:"input"`
}

func (t *ResolveTimeRangeTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params ResolveTimeRangeInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "resolve_time_range: text=%q timezone=%q", params.Text, params.Timezone)

	out, err := t.uc.Resolve(ctx, timerange.ResolveInput{
		Text:             params.Text,
		Timezone:         params.Timezone,
		NowISO:           params.NowISO,
		FiscalStartMonth: params.FiscalStartMonth,
	})
	if err != nil {
		t.l.Errorf(ctx, "resolve_time_range: %v", err)
		return ResolveErrorOutput{Error: err.Error(), Input: params.Text}, nil
	}

	iv := out.Interval
	return ResolveTimeRangeOutput{
		Input:    out.Input,
		Timezone: iv.Timezone,
		Start:    formatTime(iv.Start),
		End:      formatTime(iv.End),
		Kind:     iv.Kind(),
	}, nil
}

var _ agent.Tool = (*ResolveTimeRangeTool)(nil)
