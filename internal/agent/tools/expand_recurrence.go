package tools

import (
	"context"

	"time-range-parser/internal/agent"
	"time-range-parser/internal/timerange"
	"time-range-parser/pkg/daterange"
	pkgLog "time-range-parser/pkg/log"
)

type ExpandRecurrenceTool struct {
	uc timerange.UseCase
	l  pkgLog.Logger
}

func NewExpandRecurrenceTool(uc timerange.UseCase, l pkgLog.Logger) *ExpandRecurrenceTool {
	return &ExpandRecurrenceTool{uc: uc, l: l}
}

func (t *ExpandRecurrenceTool) Name() string {
	return "expand_recurrence"
}

func (t *ExpandRecurrenceTool) Description() string {
	return "Generate a list of dates from a recurrence rule. Example: text='elke vrijdag', count=5 returns the next 5 Fridays."
}

func (t *ExpandRecurrenceTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"text":     stringProp("Recurrence phrase, e.g. 'elke maandag', 'every 2 weeks', 'maandelijks'."),
		"timezone": stringProp(timezoneDescription),
		"now_iso":  stringProp(nowISODescription),
		"count": map[string]interface{}{
			"type":        "integer",
			"description": "Number of dates to generate.",
			"default":     daterange.DefaultRecurrenceSize,
		},
	}, "text")
}

type ExpandRecurrenceInput struct {
	Text     string `json:"text"`
	Timezone string `json:"timezone"`
	NowISO   string `json:"now_iso"`
	Count    int    `json:"count"`
}

func (t *ExpandRecurrenceTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params ExpandRecurrenceInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}
	if params.Count == 0 {
		params.Count = daterange.DefaultRecurrenceSize
	}

	t.l.Infof(ctx, "expand_recurrence: text=%q count=%d", params.Text, params.Count)

	out, err := t.uc.ExpandRecurrence(ctx, timerange.RecurrenceInput{
		Text:     params.Text,
		Timezone: params.Timezone,
		NowISO:   params.NowISO,
		Count:    params.Count,
	})
	if err != nil {
		return nil, err
	}
	return out.Recurrence, nil
}

var _ agent.Tool = (*ExpandRecurrenceTool)(nil)
