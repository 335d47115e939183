package http

import (
	"time"

	"time-range-parser/internal/timerange"
	"time-range-parser/pkg/daterange"
	"time-range-parser/pkg/response"
)

// --- Request DTOs ---

type resolveReq struct {
	Text             string `json:"text"               binding:"required"`
	Timezone         string `json:"timezone"`
	NowISO           string `json:"now_iso"`
	FiscalStartMonth int    `json:"fiscal_start_month" binding:"omitempty,min=1,max=12"`
}

func (r resolveReq) toInput() timerange.ResolveInput {
	return timerange.ResolveInput{
		Text:             r.Text,
		Timezone:         r.Timezone,
		NowISO:           r.NowISO,
		FiscalStartMonth: r.FiscalStartMonth,
	}
}

// ---

type convertReq struct {
	Text           string `json:"text"            binding:"required"`
	TargetTimezone string `json:"target_timezone" binding:"required"`
	SourceTimezone string `json:"source_timezone"`
	NowISO         string `json:"now_iso"`
}

func (r convertReq) toInput() timerange.ConvertInput {
	return timerange.ConvertInput{
		Text:           r.Text,
		TargetTimezone: r.TargetTimezone,
		SourceTimezone: r.SourceTimezone,
		NowISO:         r.NowISO,
	}
}

// ---

type recurrenceReq struct {
	Text     string `json:"text"     binding:"required"`
	Timezone string `json:"timezone"`
	NowISO   string `json:"now_iso"`
	Count    int    `json:"count"    binding:"omitempty,min=1"`
}

func (r recurrenceReq) toInput() timerange.RecurrenceInput {
	count := r.Count
	if count == 0 {
		count = daterange.DefaultRecurrenceSize
	}
	return timerange.RecurrenceInput{
		Text:     r.Text,
		Timezone: r.Timezone,
		NowISO:   r.NowISO,
		Count:    count,
	}
}

// ---

type durationReq struct {
	Start    string `json:"start"    binding:"required"`
	End      string `json:"end"      binding:"required"`
	Timezone string `json:"timezone"`
	NowISO   string `json:"now_iso"`
}

func (r durationReq) toInput() timerange.DurationInput {
	return timerange.DurationInput{
		Start:    r.Start,
		End:      r.End,
		Timezone: r.Timezone,
		NowISO:   r.NowISO,
	}
}

// ---

type calendarInfoReq struct {
	Text     string `form:"text"`
	Timezone string `form:"timezone"`
	NowISO   string `form:"now_iso"`
}

func (r calendarInfoReq) toInput() timerange.CalendarInfoInput {
	return timerange.CalendarInfoInput{Text: r.Text, Timezone: r.Timezone, NowISO: r.NowISO}
}

type dstStatusReq struct {
	Timezone string `form:"timezone"`
	NowISO   string `form:"now_iso"`
}

func (r dstStatusReq) toInput() timerange.DSTStatusInput {
	return timerange.DSTStatusInput{Timezone: r.Timezone, NowISO: r.NowISO}
}

type worldTimeReq struct {
	City string `form:"city" binding:"required"`
}

func (r worldTimeReq) toInput() timerange.WorldTimeInput {
	return timerange.WorldTimeInput{City: r.City}
}

type holidaysReq struct {
	Text     string `form:"text"`
	Timezone string `form:"timezone"`
	NowISO   string `form:"now_iso"`
}

func (r holidaysReq) toInput() timerange.HolidaysInput {
	return timerange.HolidaysInput{Text: r.Text, Timezone: r.Timezone, NowISO: r.NowISO}
}

// --- Response DTOs ---

func optionalTimestamp(t *time.Time) *response.Timestamp {
	if t == nil {
		return nil
	}
	ts := response.Timestamp(*t)
	return &ts
}

type resolveResp struct {
	Input       string                 `json:"input"`
	Timezone    string                 `json:"timezone"`
	Start       response.Timestamp     `json:"start"                 swaggertype:"string"`
	End         response.Timestamp     `json:"end"                   swaggertype:"string"`
	Kind        string                 `json:"kind"`
	Assumptions *daterange.Assumptions `json:"assumptions,omitempty" swaggertype:"object"`
}

func newResolveResp(input string, iv daterange.Interval) resolveResp {
	return resolveResp{
		Input:       input,
		Timezone:    iv.Timezone,
		Start:       response.Timestamp(iv.Start),
		End:         response.Timestamp(iv.End),
		Kind:        iv.Kind(),
		Assumptions: iv.Assumptions,
	}
}

func (h *handler) newResolveResp(out timerange.ResolveOutput) resolveResp {
	return newResolveResp(out.Input, out.Interval)
}

type convertResp struct {
	Input              string             `json:"input"`
	SourceTimezone     string             `json:"source_timezone"`
	TargetTimezone     string             `json:"target_timezone"`
	SourceStart        response.Timestamp `json:"source_start" swaggertype:"string"`
	TargetStart        response.Timestamp `json:"target_start" swaggertype:"string"`
	SourceEnd          response.Timestamp `json:"source_end"   swaggertype:"string"`
	TargetEnd          response.Timestamp `json:"target_end"   swaggertype:"string"`
	UTCOffsetDiffHours float64            `json:"utc_offset_diff_hours"`
}

func (h *handler) newConvertResp(out timerange.ConvertOutput) convertResp {
	c := out.Conversion
	return convertResp{
		Input:              c.Input,
		SourceTimezone:     c.SourceTimezone,
		TargetTimezone:     c.TargetTimezone,
		SourceStart:        response.Timestamp(c.SourceStart),
		TargetStart:        response.Timestamp(c.TargetStart),
		SourceEnd:          response.Timestamp(c.SourceEnd),
		TargetEnd:          response.Timestamp(c.TargetEnd),
		UTCOffsetDiffHours: c.UTCOffsetDiffHours,
	}
}

type recurrenceResp struct {
	Input    string                   `json:"input"`
	Timezone string                   `json:"timezone"`
	Rule     daterange.RecurrenceRule `json:"rule"`
	Dates    []response.Timestamp     `json:"dates"    swaggertype:"array,string"`
}

func (h *handler) newRecurrenceResp(out timerange.RecurrenceOutput) recurrenceResp {
	r := out.Recurrence
	dates := make([]response.Timestamp, len(r.Dates))
	for i, d := range r.Dates {
		dates[i] = response.Timestamp(d)
	}
	return recurrenceResp{Input: r.Input, Timezone: r.Timezone, Rule: r.Rule, Dates: dates}
}

type durationDetail struct {
	TotalDays     float64 `json:"total_days"`
	TotalSeconds  float64 `json:"total_seconds"`
	BusinessDays  int     `json:"business_days"`
	HumanReadable string  `json:"human_readable"`
}

type durationResp struct {
	InputStart string             `json:"input_start"`
	InputEnd   string             `json:"input_end"`
	Timezone   string             `json:"timezone"`
	StartISO   response.Timestamp `json:"start_iso"   swaggertype:"string"`
	EndISO     response.Timestamp `json:"end_iso"     swaggertype:"string"`
	Duration   durationDetail     `json:"duration"`
}

func (h *handler) newDurationResp(out timerange.DurationOutput) durationResp {
	d := out.Duration
	return durationResp{
		InputStart: d.InputStart,
		InputEnd:   d.InputEnd,
		Timezone:   d.Timezone,
		StartISO:   response.Timestamp(d.Start),
		EndISO:     response.Timestamp(d.End),
		Duration: durationDetail{
			TotalDays:     d.TotalDays,
			TotalSeconds:  d.TotalSeconds,
			BusinessDays:  d.BusinessDays,
			HumanReadable: d.HumanReadable,
		},
	}
}

type calendarInfoResp struct {
	Timezone    string        `json:"timezone"`
	Date        response.Date `json:"date"          swaggertype:"string"`
	WeekNumber  int           `json:"week_number"`
	DayOfYear   int           `json:"day_of_year"`
	DayOfWeek   int           `json:"day_of_week"`
	ISOWeekDate string        `json:"iso_week_date"`
}

func (h *handler) newCalendarInfoResp(out timerange.CalendarInfo) calendarInfoResp {
	return calendarInfoResp{
		Timezone:    out.Timezone,
		Date:        response.Date(out.Date),
		WeekNumber:  out.WeekNumber,
		DayOfYear:   out.DayOfYear,
		DayOfWeek:   out.DayOfWeek,
		ISOWeekDate: out.ISOWeekDate,
	}
}

type dstStatusResp struct {
	Timezone        string              `json:"timezone"`
	IsDST           bool                `json:"is_dst"`
	DSTAbbreviation string              `json:"dst_abbreviation"`
	DSTStart        *response.Timestamp `json:"dst_start"        swaggertype:"string"`
	DSTEnd          *response.Timestamp `json:"dst_end"          swaggertype:"string"`
	NextTransition  *response.Timestamp `json:"next_transition"  swaggertype:"string"`
	UTCOffset       string              `json:"utc_offset"`
	RawOffset       int                 `json:"raw_offset"`
	DSTOffset       int                 `json:"dst_offset"`
	Source          string              `json:"source"`
}

func (h *handler) newDSTStatusResp(out timerange.DSTStatus) dstStatusResp {
	return dstStatusResp{
		Timezone:        out.Timezone,
		IsDST:           out.IsDST,
		DSTAbbreviation: out.Abbreviation,
		DSTStart:        optionalTimestamp(out.DSTStart),
		DSTEnd:          optionalTimestamp(out.DSTEnd),
		NextTransition:  optionalTimestamp(out.NextTransition),
		UTCOffset:       out.UTCOffset,
		RawOffset:       out.RawOffset,
		DSTOffset:       out.DSTOffset,
		Source:          out.Source,
	}
}

type worldTimeResp struct {
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

func (h *handler) newWorldTimeResp(out timerange.WorldTime) worldTimeResp {
	return worldTimeResp{
		City:         out.City,
		Timezone:     out.Timezone,
		CurrentTime:  out.CurrentTime,
		UTCOffset:    out.UTCOffset,
		DST:          out.DST,
		WeekNumber:   out.WeekNumber,
		DayOfYear:    out.DayOfYear,
		Abbreviation: out.Abbreviation,
		Source:       out.Source,
	}
}

type holidayResp struct {
	Name  string             `json:"name"`
	Start response.Timestamp `json:"start" swaggertype:"string"`
	End   response.Timestamp `json:"end"   swaggertype:"string"`
}

type holidaysResp struct {
	Range    resolveResp   `json:"range"`
	Holidays []holidayResp `json:"holidays"`
}

func (h *handler) newHolidaysResp(input string, out timerange.HolidaysOutput) holidaysResp {
	items := make([]holidayResp, len(out.Holidays))
	for i, hol := range out.Holidays {
		items[i] = holidayResp{Name: hol.Name, Start: response.Timestamp(hol.Start), End: response.Timestamp(hol.End)}
	}
	return holidaysResp{Range: newResolveResp(input, out.Interval), Holidays: items}
}

type serverInfoResp struct {
	Name            string          `json:"name"`
	Version         string          `json:"version"`
	Description     string          `json:"description"`
	DefaultTimezone string          `json:"default_timezone"`
	Resolution      string          `json:"resolution"`
	Capabilities    map[string]bool `json:"capabilities"`
}

func (h *handler) newServerInfoResp(out timerange.ServerInfo) serverInfoResp {
	return serverInfoResp{
		Name:            out.Name,
		Version:         out.Version,
		Description:     out.Description,
		DefaultTimezone: out.DefaultTimezone,
		Resolution:      out.Resolution,
		Capabilities:    out.Capabilities,
	}
}

type timezonesResp struct {
	Timezones []string `json:"timezones"`
	Source    string   `json:"source"`
}

func (h *handler) newTimezonesResp(out timerange.TimezonesOutput) timezonesResp {
	return timezonesResp{Timezones: out.Timezones, Source: out.Source}
}
