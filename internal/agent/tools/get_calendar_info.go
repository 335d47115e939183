package tools

import (
	"context"

	"time-range-parser/internal/agent"
	"time-range-parser/internal/timerange"
	pkgLog "time-range-parser/pkg/log"
)

type GetCalendarInfoTool struct {
	uc timerange.UseCase
	l  pkgLog.Logger
}

func NewGetCalendarInfoTool(uc timerange.UseCase, l pkgLog.Logger) *GetCalendarInfoTool {
	return &GetCalendarInfoTool{uc: uc, l: l}
}

func (t *GetCalendarInfoTool) Name() string {
	return "get_calendar_info"
}

func (t *GetCalendarInfoTool) Description() string {
	return "Get ISO week number, day of year and weekday for today or for a described day."
}

func (t *GetCalendarInfoTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"text":     stringProp("Optional day expression, e.g. 'volgende vrijdag'. Empty means today."),
		"timezone": stringProp(timezoneDescription),
		"now_iso":  stringProp(nowISODescription),
	})
}

type GetCalendarInfoInput struct {
	Text     string `json:"text"`
	Timezone string `json:"timezone"`
	NowISO   string `json:"now_iso"`
}

type GetCalendarInfoOutput struct {
	Timezone    string `json:"timezone"`
	Date        string `json:"date"`
	WeekNumber  int    `json:"week_number"`
	DayOfYear   int    `json:"day_of_year"`
	DayOfWeek   int    `json:"day_of_week"`
	ISOWeekDate string `json:"iso_week_date"`
}

func (t *GetCalendarInfoTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params GetCalendarInfoInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	info, err := t.uc.CalendarInfo(ctx, timerange.CalendarInfoInput{
		Text:     params.Text,
		Timezone: params.Timezone,
		NowISO:   params.NowISO,
	})
	if err != nil {
		return nil, err
	}

	return GetCalendarInfoOutput{
		Timezone:    info.Timezone,
		Date:        info.Date.Format("2006-01-02"),
		WeekNumber:  info.WeekNumber,
		DayOfYear:   info.DayOfYear,
		DayOfWeek:   info.DayOfWeek,
		ISOWeekDate: info.ISOWeekDate,
	}, nil
}

var _ agent.Tool = (*GetCalendarInfoTool)(nil)
