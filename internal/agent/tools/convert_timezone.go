package tools

import (
	"context"

	"time-range-parser/internal/agent"
	"time-range-parser/internal/timerange"
	pkgLog "time-range-parser/pkg/log"
)

type ConvertTimezoneTool struct {
	uc timerange.UseCase
	l  pkgLog.Logger
}

func NewConvertTimezoneTool(uc timerange.UseCase, l pkgLog.Logger) *ConvertTimezoneTool {
	return &ConvertTimezoneTool{uc: uc, l: l}
}

func (t *ConvertTimezoneTool) Name() string {
	return "convert_timezone"
}

func (t *ConvertTimezoneTool) Description() string {
	return "Convert a date/time expression from one timezone to another. Example: text='15:00', source='Amsterdam', target='New York'."
}

func (t *ConvertTimezoneTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"text":            stringProp("Date/time expression to convert."),
		"target_timezone": stringProp("Timezone to express the result in."),
		"source_timezone": stringProp(timezoneDescription),
		"now_iso":         stringProp(nowISODescription),
	}, "text", "target_timezone")
}

type ConvertTimezoneInput struct {
	Text           string `json:"text"`
	TargetTimezone string `json:"target_timezone"`
	SourceTimezone string `json:"source_timezone"`
	NowISO         string `json:"now_iso"`
}

func (t *ConvertTimezoneTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params ConvertTimezoneInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "convert_timezone: text=%q from=%q to=%q", params.Text, params.SourceTimezone, params.TargetTimezone)

	out, err := t.uc.Convert(ctx, timerange.ConvertInput{
		Text:           params.Text,
		TargetTimezone: params.TargetTimezone,
		SourceTimezone: params.SourceTimezone,
		NowISO:         params.NowISO,
	})
	if err != nil {
		return nil, err
	}
	return out.Conversion, nil
}

var _ agent.Tool = (*ConvertTimezoneTool)(nil)
