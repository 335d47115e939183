package tools

import (
	"context"

	"time-range-parser/internal/agent"
	"time-range-parser/internal/timerange"
	pkgLog "time-range-parser/pkg/log"
)

type ListPublicHolidaysTool struct {
	uc timerange.UseCase
	l  pkgLog.Logger
}

func NewListPublicHolidaysTool(uc timerange.UseCase, l pkgLog.Logger) *ListPublicHolidaysTool {
	return &ListPublicHolidaysTool{uc: uc, l: l}
}

func (t *ListPublicHolidaysTool) Name() string {
	return "list_public_holidays"
}

func (t *ListPublicHolidaysTool) Description() string {
	return "List public holidays inside a period described in natural language (default: this year)."
}

func (t *ListPublicHolidaysTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"text":     stringProp("Period to search, e.g. 'dit jaar' or 'Q2 2026'."),
		"timezone": stringProp(timezoneDescription),
		"now_iso":  stringProp(nowISODescription),
	})
}

type ListPublicHolidaysInput struct {
	Text     string `json:"text"`
	Timezone string `json:"timezone"`
	NowISO   string `json:"now_iso"`
}

type HolidayOutput struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type ListPublicHolidaysOutput struct {
	Start    string          `json:"start"`
	End      string          `json:"end"`
	Timezone string          `json:"timezone"`
	Holidays []HolidayOutput `json:"holidays"`
}

func (t *ListPublicHolidaysTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params ListPublicHolidaysInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	out, err := t.uc.ListHolidays(ctx, timerange.HolidaysInput{
		Text:     params.Text,
		Timezone: params.Timezone,
		NowISO:   params.NowISO,
	})
	if err != nil {
		return nil, err
	}

	holidays := make([]HolidayOutput, 0, len(out.Holidays))
	for _, h := range out.Holidays {
		holidays = append(holidays, HolidayOutput{
			Name:  h.Name,
			Start: formatTime(h.Start),
			End:   formatTime(h.End),
		})
	}

	return ListPublicHolidaysOutput{
		Start:    formatTime(out.Interval.Start),
		End:      formatTime(out.Interval.End),
		Timezone: out.Interval.Timezone,
		Holidays: holidays,
	}, nil
}

var _ agent.Tool = (*ListPublicHolidaysTool)(nil)
