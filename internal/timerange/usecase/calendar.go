package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"time-range-parser/internal/timerange"
	"time-range-parser/pkg/datemath"
	"time-range-parser/pkg/gcalendar"
	"time-range-parser/pkg/worldtime"
)

const defaultHolidayText = "dit jaar"

// DSTStatus reports daylight saving for a zone. WorldTimeAPI answers when it is
// enabled and no instant is pinned; tzdata is used otherwise.
func (uc *implUseCase) DSTStatus(ctx context.Context, input timerange.DSTStatusInput) (timerange.DSTStatus, error) {
	cc, err := uc.resolveContext(ctx, input.Timezone, input.NowISO)
	if err != nil {
		return timerange.DSTStatus{}, err
	}

	if uc.worldTime != nil && strings.TrimSpace(input.NowISO) == "" {
		info, err := uc.worldTime.TimeInfo(ctx, cc.tz)
		if err == nil {
			return dstFromTimeInfo(cc.tz, info), nil
		}
		uc.l.Warnf(ctx, "timerange.usecase.DSTStatus: %v", err)
	}

	return localDSTStatus(cc.tz, cc.now), nil
}

func localDSTStatus(tz string, now time.Time) timerange.DSTStatus {
	abbr, offset := now.Zone()
	raw := datemath.StandardOffset(now)

	st := timerange.DSTStatus{
		Timezone:     tz,
		IsDST:        now.IsDST(),
		Abbreviation: abbr,
		UTCOffset:    now.Format("-07:00"),
		RawOffset:    raw,
		DSTOffset:    offset - raw,
		Source:       timerange.SourceLocal,
	}
	if next, ok := datemath.NextTransition(now); ok {
		st.NextTransition = &next
	}
	if st.IsDST {
		if prev, ok := datemath.PrevTransition(now); ok {
			st.DSTStart = &prev
		}
		st.DSTEnd = st.NextTransition
	}
	return st
}

func dstFromTimeInfo(tz string, info worldtime.TimeInfo) timerange.DSTStatus {
	st := timerange.DSTStatus{
		Timezone:     tz,
		IsDST:        info.DST,
		Abbreviation: info.Abbreviation,
		UTCOffset:    info.UTCOffset,
		RawOffset:    info.RawOffset,
		DSTOffset:    info.DSTOffset,
		DSTStart:     parseOptionalTime(info.DSTFrom),
		DSTEnd:       parseOptionalTime(info.DSTUntil),
		Source:       timerange.SourceWorldTime,
	}
	st.NextTransition = st.DSTEnd
	return st
}

func parseOptionalTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil
	}
	return &t
}

// CalendarInfo returns ISO week facts for today or for the day named by Text.
func (uc *implUseCase) CalendarInfo(ctx context.Context, input timerange.CalendarInfoInput) (timerange.CalendarInfo, error) {
	cc, err := uc.resolveContext(ctx, input.Timezone, input.NowISO)
	if err != nil {
		return timerange.CalendarInfo{}, err
	}

	day := cc.now
	if strings.TrimSpace(input.Text) != "" {
		out, err := uc.Resolve(ctx, timerange.ResolveInput{
			Text:     input.Text,
			Timezone: cc.tz,
			NowISO:   cc.now.Format(time.RFC3339),
		})
		if err != nil {
			return timerange.CalendarInfo{}, err
		}
		day = out.Interval.Start
	}

	isoYear, week := day.ISOWeek()
	return timerange.CalendarInfo{
		Timezone:    cc.tz,
		Date:        datemath.StartOfDay(day),
		WeekNumber:  week,
		DayOfYear:   day.YearDay(),
		DayOfWeek:   datemath.WeekdayIndex(day) + 1,
		ISOWeekDate: fmt.Sprintf("%04d-W%02d", isoYear, week),
	}, nil
}

// ListHolidays resolves Text (default: this year) and lists the public
// holidays inside it.
func (uc *implUseCase) ListHolidays(ctx context.Context, input timerange.HolidaysInput) (timerange.HolidaysOutput, error) {
	if uc.holidays == nil {
		return timerange.HolidaysOutput{}, timerange.ErrHolidaysDisabled
	}

	text := input.Text
	if strings.TrimSpace(text) == "" {
		text = defaultHolidayText
	}
	out, err := uc.Resolve(ctx, timerange.ResolveInput{Text: text, Timezone: input.Timezone, NowISO: input.NowISO})
	if err != nil {
		return timerange.HolidaysOutput{}, err
	}
	iv := out.Interval

	holidays, err := uc.holidays.ListHolidays(ctx, gcalendar.ListHolidaysRequest{
		CalendarID: uc.cfg.HolidayCalendarID,
		TimeMin:    iv.Start,
		TimeMax:    iv.End.Add(time.Second),
		Location:   iv.Start.Location(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "timerange.usecase.ListHolidays: %v", err)
		return timerange.HolidaysOutput{}, fmt.Errorf("%w: %v", timerange.ErrHolidaysUnavailable, err)
	}

	return timerange.HolidaysOutput{Interval: iv, Holidays: holidays}, nil
}
