package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"time-range-parser/internal/timerange"
	"time-range-parser/internal/timerange/usecase"
	"time-range-parser/pkg/daterange"
	"time-range-parser/pkg/gcalendar"
	"time-range-parser/pkg/log"
	"time-range-parser/pkg/worldtime"
)

var amsterdam = mustLoad("Europe/Amsterdam")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Monday 2026-01-26 09:00 Europe/Amsterdam.
var anchor = time.Date(2026, time.January, 26, 9, 0, 0, 0, amsterdam)

func rfc(t time.Time) string { return t.Format(time.RFC3339) }

type mockWorldTime struct {
	zone    string
	now     time.Time
	info    worldtime.TimeInfo
	err     error
	zoneErr error
}

func (m *mockWorldTime) CurrentTime(ctx context.Context, timezone string) (time.Time, error) {
	return m.now, m.err
}
func (m *mockWorldTime) TimeInfo(ctx context.Context, timezone string) (worldtime.TimeInfo, error) {
	return m.info, m.err
}
func (m *mockWorldTime) LocalTimezone(ctx context.Context) (string, error) {
	return m.zone, m.zoneErr
}
func (m *mockWorldTime) Timezones(ctx context.Context) ([]string, error) {
	return []string{m.zone}, m.err
}

type mockHolidays struct {
	got      gcalendar.ListHolidaysRequest
	holidays []gcalendar.Holiday
	err      error
}

func (m *mockHolidays) ListHolidays(ctx context.Context, req gcalendar.ListHolidaysRequest) ([]gcalendar.Holiday, error) {
	m.got = req
	return m.holidays, m.err
}

func newUseCase(t *testing.T, wt worldtime.IWorldTime, hc timerange.HolidayCalendar) timerange.UseCase {
	t.Helper()
	engine, err := daterange.New(daterange.Config{Clock: func() time.Time { return anchor }})
	require.NoError(t, err)

	return usecase.New(log.NewNop(), engine, wt, hc, usecase.Config{
		MaxTextLength: 64,
		CustomEvents:  usecase.DefaultCustomEvents(),
		Clock:         func() time.Time { return anchor },
	})
}

func TestResolve(t *testing.T) {
	uc := newUseCase(t, nil, nil)
	ctx := context.Background()

	t.Run("uses the clock when now_iso is empty", func(t *testing.T) {
		out, err := uc.Resolve(ctx, timerange.ResolveInput{Text: "morgen"})
		require.NoError(t, err)
		assert.Equal(t, "2026-01-27T00:00:00+01:00", rfc(out.Interval.Start))
		assert.Equal(t, "2026-01-27T23:59:59+01:00", rfc(out.Interval.End))
		assert.Equal(t, "Europe/Amsterdam", out.Interval.Timezone)
	})

	t.Run("naive now_iso is read in the zone", func(t *testing.T) {
		out, err := uc.Resolve(ctx, timerange.ResolveInput{
			Text:     "vandaag",
			Timezone: "new york",
			NowISO:   "2026-03-02T08:00:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "America/New_York", out.Interval.Timezone)
		assert.Equal(t, "2026-03-02T00:00:00-05:00", rfc(out.Interval.Start))
	})

	t.Run("offset now_iso", func(t *testing.T) {
		out, err := uc.Resolve(ctx, timerange.ResolveInput{Text: "vandaag", NowISO: "2026-03-02T23:30:00Z"})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-03T00:00:00+01:00", rfc(out.Interval.Start))
	})

	t.Run("custom event", func(t *testing.T) {
		out, err := uc.Resolve(ctx, timerange.ResolveInput{Text: "'Black Friday 2025'"})
		require.NoError(t, err)
		assert.Equal(t, "custom_event", out.Interval.Kind())
		assert.Equal(t, "2025-11-28T00:00:00+01:00", rfc(out.Interval.Start))
		assert.Equal(t, "2025-11-28T23:59:59+01:00", rfc(out.Interval.End))
	})

	t.Run("fiscal start month", func(t *testing.T) {
		out, err := uc.Resolve(ctx, timerange.ResolveInput{Text: "Q1 2026", FiscalStartMonth: 4})
		require.NoError(t, err)
		assert.Equal(t, "2026-04-01T00:00:00+02:00", rfc(out.Interval.Start))
	})
}

func TestResolve_Errors(t *testing.T) {
	uc := newUseCase(t, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		input    timerange.ResolveInput
		wantErr  error
		wantHint string
	}{
		{name: "too long", input: timerange.ResolveInput{Text: strings.Repeat("a", 65)}, wantErr: timerange.ErrTextTooLong},
		{name: "fiscal month", input: timerange.ResolveInput{Text: "Q1", FiscalStartMonth: 13}, wantErr: timerange.ErrInvalidFiscalMonth},
		{name: "bad now_iso", input: timerange.ResolveInput{Text: "morgen", NowISO: "ergens"}, wantErr: timerange.ErrInvalidNowISO},
		{name: "unknown zone", input: timerange.ResolveInput{Text: "morgen", Timezone: "Mars/Olympus"}, wantErr: daterange.ErrUnknownTimezone},
		{name: "quarter hint", input: timerange.ResolveInput{Text: "Q5 2025"}, wantErr: daterange.ErrInvalidQuarter, wantHint: timerange.HintInvalidQuarter},
		{name: "week hint", input: timerange.ResolveInput{Text: "week 60"}, wantErr: daterange.ErrInvalidWeekNumber, wantHint: timerange.HintInvalidWeek},
		{name: "empty", input: timerange.ResolveInput{Text: "  "}, wantErr: daterange.ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Resolve(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			if tt.wantHint != "" {
				assert.Contains(t, err.Error(), " - Hint: "+tt.wantHint)
			}
		})
	}
}

func TestErrorHint(t *testing.T) {
	assert.Equal(t, timerange.HintInvalidQuarter, usecase.ErrorHint("q7 volgend jaar"))
	assert.Equal(t, timerange.HintInvalidWeek, usecase.ErrorHint("Week 99"))
	assert.Equal(t, "", usecase.ErrorHint("week 12"))
}

func TestResolve_WorldTimeContext(t *testing.T) {
	ctx := context.Background()
	ny := mustLoad("America/New_York")

	t.Run("detected zone and remote now", func(t *testing.T) {
		wt := &mockWorldTime{zone: "America/New_York", now: time.Date(2026, 6, 10, 22, 0, 0, 0, ny)}
		uc := newUseCase(t, wt, nil)

		out, err := uc.Resolve(ctx, timerange.ResolveInput{Text: "morgen"})
		require.NoError(t, err)
		assert.Equal(t, "America/New_York", out.Interval.Timezone)
		assert.Equal(t, "2026-06-11T00:00:00-04:00", rfc(out.Interval.Start))
	})

	t.Run("failures fall back to default zone and clock", func(t *testing.T) {
		wt := &mockWorldTime{err: errors.New("down"), zoneErr: errors.New("down")}
		uc := newUseCase(t, wt, nil)

		out, err := uc.Resolve(ctx, timerange.ResolveInput{Text: "morgen"})
		require.NoError(t, err)
		assert.Equal(t, "Europe/Amsterdam", out.Interval.Timezone)
		assert.Equal(t, "2026-01-27T00:00:00+01:00", rfc(out.Interval.Start))
	})
}

func TestOperations(t *testing.T) {
	uc := newUseCase(t, nil, nil)
	ctx := context.Background()

	t.Run("Convert", func(t *testing.T) {
		out, err := uc.Convert(ctx, timerange.ConvertInput{Text: "morgen 15:00", TargetTimezone: "New York"})
		require.NoError(t, err)
		assert.Equal(t, "2026-01-27T09:00:00-05:00", rfc(out.Conversion.TargetStart))
		assert.Equal(t, -6.0, out.Conversion.UTCOffsetDiffHours)
	})

	t.Run("ExpandRecurrence", func(t *testing.T) {
		out, err := uc.ExpandRecurrence(ctx, timerange.RecurrenceInput{Text: "elke vrijdag", Count: 2})
		require.NoError(t, err)
		require.Len(t, out.Recurrence.Dates, 2)
		assert.Equal(t, "2026-01-30T00:00:00+01:00", rfc(out.Recurrence.Dates[0]))
	})

	t.Run("ExpandRecurrence count out of range", func(t *testing.T) {
		_, err := uc.ExpandRecurrence(ctx, timerange.RecurrenceInput{Text: "elke dag", Count: 5000})
		assert.ErrorIs(t, err, timerange.ErrInvalidCount)
	})

	t.Run("CalculateDuration", func(t *testing.T) {
		out, err := uc.CalculateDuration(ctx, timerange.DurationInput{Start: "vandaag", End: "volgende vrijdag"})
		require.NoError(t, err)
		assert.Equal(t, 11.0, out.Duration.TotalDays)
		assert.Equal(t, 9, out.Duration.BusinessDays)
	})

	t.Run("CalculateDuration too long", func(t *testing.T) {
		_, err := uc.CalculateDuration(ctx, timerange.DurationInput{Start: "vandaag", End: strings.Repeat("x", 100)})
		assert.ErrorIs(t, err, timerange.ErrTextTooLong)
	})
}

func TestDSTStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("local summer", func(t *testing.T) {
		uc := newUseCase(t, nil, nil)
		st, err := uc.DSTStatus(ctx, timerange.DSTStatusInput{Timezone: "amsterdam", NowISO: "2026-07-01T12:00:00"})
		require.NoError(t, err)
		assert.True(t, st.IsDST)
		assert.Equal(t, "CEST", st.Abbreviation)
		assert.Equal(t, "+02:00", st.UTCOffset)
		assert.Equal(t, 3600, st.RawOffset)
		assert.Equal(t, 3600, st.DSTOffset)
		require.NotNil(t, st.DSTStart)
		require.NotNil(t, st.DSTEnd)
		assert.Equal(t, "2026-03-29T03:00:00+02:00", rfc(*st.DSTStart))
		assert.Equal(t, "2026-10-25T02:00:00+01:00", rfc(*st.DSTEnd))
		assert.Equal(t, timerange.SourceLocal, st.Source)
	})

	t.Run("local winter", func(t *testing.T) {
		uc := newUseCase(t, nil, nil)
		st, err := uc.DSTStatus(ctx, timerange.DSTStatusInput{})
		require.NoError(t, err)
		assert.False(t, st.IsDST)
		assert.Equal(t, "CET", st.Abbreviation)
		assert.Nil(t, st.DSTStart)
		require.NotNil(t, st.NextTransition)
		assert.Equal(t, "2026-03-29T03:00:00+02:00", rfc(*st.NextTransition))
	})

	t.Run("WorldTimeAPI", func(t *testing.T) {
		from := "2026-03-29T01:00:00+00:00"
		until := "2026-10-25T01:00:00+00:00"
		wt := &mockWorldTime{
			zone: "Europe/Amsterdam",
			now:  anchor,
			info: worldtime.TimeInfo{DST: true, Abbreviation: "CEST", UTCOffset: "+02:00", RawOffset: 3600, DSTOffset: 3600, DSTFrom: &from, DSTUntil: &until},
		}
		uc := newUseCase(t, wt, nil)

		st, err := uc.DSTStatus(ctx, timerange.DSTStatusInput{Timezone: "Europe/Amsterdam"})
		require.NoError(t, err)
		assert.Equal(t, timerange.SourceWorldTime, st.Source)
		require.NotNil(t, st.DSTEnd)
		assert.Equal(t, "2026-10-25T01:00:00Z", st.DSTEnd.UTC().Format(time.RFC3339))
	})
}

func TestCalendarInfo(t *testing.T) {
	uc := newUseCase(t, nil, nil)
	ctx := context.Background()

	info, err := uc.CalendarInfo(ctx, timerange.CalendarInfoInput{})
	require.NoError(t, err)
	assert.Equal(t, 5, info.WeekNumber)
	assert.Equal(t, 26, info.DayOfYear)
	assert.Equal(t, 1, info.DayOfWeek)
	assert.Equal(t, "2026-W05", info.ISOWeekDate)

	info, err = uc.CalendarInfo(ctx, timerange.CalendarInfoInput{Text: "1 januari 2027"})
	require.NoError(t, err)
	assert.Equal(t, 53, info.WeekNumber)
	assert.Equal(t, 5, info.DayOfWeek)
	assert.Equal(t, "2026-W53", info.ISOWeekDate)
	assert.Equal(t, "2027-01-01T00:00:00+01:00", rfc(info.Date))
}

func TestWorldTime(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		uc := newUseCase(t, nil, nil)
		_, err := uc.WorldTime(ctx, timerange.WorldTimeInput{City: "London"})
		assert.ErrorIs(t, err, timerange.ErrWorldTimeDisabled)
	})

	t.Run("city lookup", func(t *testing.T) {
		wt := &mockWorldTime{info: worldtime.TimeInfo{Datetime: "2026-01-26T08:00:00+00:00", UTCOffset: "+00:00", Abbreviation: "GMT", WeekNumber: 5}}
		uc := newUseCase(t, wt, nil)

		out, err := uc.WorldTime(ctx, timerange.WorldTimeInput{City: "London"})
		require.NoError(t, err)
		assert.Equal(t, "Europe/London", out.Timezone)
		assert.Equal(t, "GMT", out.Abbreviation)
		assert.Equal(t, timerange.SourceWorldTime, out.Source)
	})

	t.Run("api failure", func(t *testing.T) {
		uc := newUseCase(t, &mockWorldTime{err: errors.New("timeout")}, nil)
		_, err := uc.WorldTime(ctx, timerange.WorldTimeInput{City: "Tokyo"})
		assert.ErrorIs(t, err, timerange.ErrWorldTimeUnavailable)
	})
}

func TestListHolidays(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		uc := newUseCase(t, nil, nil)
		_, err := uc.ListHolidays(ctx, timerange.HolidaysInput{})
		assert.ErrorIs(t, err, timerange.ErrHolidaysDisabled)
	})

	t.Run("defaults to this year", func(t *testing.T) {
		hc := &mockHolidays{holidays: []gcalendar.Holiday{{Name: "Koningsdag"}}}
		uc := newUseCase(t, nil, hc)

		out, err := uc.ListHolidays(ctx, timerange.HolidaysInput{})
		require.NoError(t, err)
		require.Len(t, out.Holidays, 1)
		assert.Equal(t, "2026-01-01T00:00:00+01:00", rfc(hc.got.TimeMin))
		assert.Equal(t, "2027-01-01T00:00:00+01:00", rfc(hc.got.TimeMax))
	})

	t.Run("calendar failure", func(t *testing.T) {
		uc := newUseCase(t, nil, &mockHolidays{err: errors.New("quota")})
		_, err := uc.ListHolidays(ctx, timerange.HolidaysInput{Text: "april"})
		assert.ErrorIs(t, err, timerange.ErrHolidaysUnavailable)
	})
}

func TestServerInfo(t *testing.T) {
	ctx := context.Background()

	info := newUseCase(t, nil, nil).ServerInfo(ctx)
	assert.Equal(t, usecase.ServiceName, info.Name)
	assert.Equal(t, "Europe/Amsterdam", info.DefaultTimezone)
	assert.Equal(t, "seconds", info.Resolution)
	assert.False(t, info.Capabilities["world_time"])

	info = newUseCase(t, &mockWorldTime{zone: "Asia/Tokyo"}, nil).ServerInfo(ctx)
	assert.Equal(t, "Asia/Tokyo", info.DefaultTimezone)
	assert.True(t, info.Capabilities["world_time"])
}

func TestTimezones(t *testing.T) {
	ctx := context.Background()

	out, err := newUseCase(t, nil, nil).Timezones(ctx)
	require.NoError(t, err)
	assert.Equal(t, timerange.SourceLocal, out.Source)
	assert.Contains(t, out.Timezones, "Europe/Amsterdam")
	assert.True(t, sort.StringsAreSorted(out.Timezones))

	out, err = newUseCase(t, &mockWorldTime{zone: "Asia/Tokyo"}, nil).Timezones(ctx)
	require.NoError(t, err)
	assert.Equal(t, timerange.SourceWorldTime, out.Source)
	assert.Equal(t, []string{"Asia/Tokyo"}, out.Timezones)

	out, err = newUseCase(t, &mockWorldTime{err: errors.New("down")}, nil).Timezones(ctx)
	require.NoError(t, err)
	assert.Equal(t, timerange.SourceLocal, out.Source)
}
