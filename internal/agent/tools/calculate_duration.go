package tools

import (
	"context"

	"time-range-parser/internal/agent"
	"time-range-parser/internal/timerange"
	pkgLog "time-range-parser/pkg/log"
)

type CalculateDurationTool struct {
	uc timerange.UseCase
	l  pkgLog.Logger
}

func NewCalculateDurationTool(uc timerange.UseCase, l pkgLog.Logger) *CalculateDurationTool {
	return &CalculateDurationTool{uc: uc, l: l}
}

func (t *CalculateDurationTool) Name() string {
	return "calculate_duration"
}

func (t *CalculateDurationTool) Description() string {
	return "Calculate the duration between two dates/times. Example: start='nu', end='kerst' returns days, business days and a readable breakdown."
}

func (t *CalculateDurationTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"start":    stringProp("Start expression."),
		"end":      stringProp("End expression."),
		"timezone": stringProp(timezoneDescription),
		"now_iso":  stringProp(nowISODescription),
	}, "start", "end")
}

type CalculateDurationInput struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
	NowISO   string `json:"now_iso"`
}

func (t *CalculateDurationTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params CalculateDurationInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "calculate_duration: start=%q end=%q", params.Start, params.End)

	out, err := t.uc.CalculateDuration(ctx, timerange.DurationInput{
		Start:    params.Start,
		End:      params.End,
		Timezone: params.Timezone,
		NowISO:   params.NowISO,
	})
	if err != nil {
		return nil, err
	}
	return out.Duration, nil
}

var _ agent.Tool = (*CalculateDurationTool)(nil)
