package daterange_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"time-range-parser/pkg/daterange"
)

var amsterdam = mustLoad("Europe/Amsterdam")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func ams(y int, m time.Month, d, h, min, s int) time.Time {
	return time.Date(y, m, d, h, min, s, 0, amsterdam)
}

var (
	monday = ams(2026, time.January, 26, 9, 0, 0)
	friday = ams(2026, time.January, 30, 14, 0, 0)
	sunday = ams(2026, time.February, 1, 10, 0, 0)
)

func rfc(t time.Time) string {
	return t.Format(time.RFC3339)
}

func newEngine(t *testing.T) *daterange.Engine {
	t.Helper()
	e, err := daterange.New(daterange.Config{})
	require.NoError(t, err)
	return e
}

func TestResolve(t *testing.T) {
	e := newEngine(t)

	tcs := []struct {
		text  string
		now   time.Time
		start time.Time
		end   time.Time
		kind  string
	}{
		{"morgen", monday, ams(2026, 1, 27, 0, 0, 0), ams(2026, 1, 27, 23, 59, 59), "date_whole_day"},
		{"vandaag", monday, ams(2026, 1, 26, 0, 0, 0), ams(2026, 1, 26, 23, 59, 59), "date_whole_day"},
		{"gisteren", monday, ams(2026, 1, 25, 0, 0, 0), ams(2026, 1, 25, 23, 59, 59), "date_whole_day"},
		{"overmorgen", monday, ams(2026, 1, 28, 0, 0, 0), ams(2026, 1, 28, 23, 59, 59), "date_whole_day"},
		{"morgen 15:00", monday, ams(2026, 1, 27, 15, 0, 0), ams(2026, 1, 27, 16, 0, 0), "time_with_default_duration"},
		{"half 10", monday, ams(2026, 1, 26, 9, 30, 0), ams(2026, 1, 26, 10, 30, 0), "time_with_default_duration"},
		{"morgen half 3", monday, ams(2026, 1, 27, 2, 30, 0), ams(2026, 1, 27, 3, 30, 0), "time_with_default_duration"},
		{"volgende vrijdag", monday, ams(2026, 2, 6, 0, 0, 0), ams(2026, 2, 6, 23, 59, 59), "date_whole_day"},
		{"nu", monday, monday, monday.Add(time.Hour), "now_keyword_with_default_duration"},
		{"deze maand", monday, ams(2026, 1, 1, 0, 0, 0), ams(2026, 1, 31, 23, 59, 59), "period_bounds"},
		{"vandaag 3 maanden", monday, monday, ams(2026, 4, 26, 9, 0, 0), "duration"},

		{"van 9 tot 17 uur", monday, ams(2026, 1, 26, 9, 0, 0), ams(2026, 1, 26, 17, 0, 0), "explicit_range"},
		{"from 10 to 12", monday, ams(2026, 1, 26, 10, 0, 0), ams(2026, 1, 26, 12, 0, 0), "explicit_range"},
		{"tussen 14:00 en 15:30", monday, ams(2026, 1, 26, 14, 0, 0), ams(2026, 1, 26, 15, 30, 0), "explicit_range"},
		{"van 22:00 tot 02:00", monday, ams(2026, 1, 26, 22, 0, 0), ams(2026, 1, 27, 2, 0, 0), "explicit_range"},
		{"tussen maandag en woensdag", monday, ams(2026, 1, 26, 0, 0, 0), ams(2026, 1, 28, 23, 59, 59), "explicit_range"},
		{"gisteren tussen 1 en 2", monday, ams(2026, 1, 25, 1, 0, 0), ams(2026, 1, 25, 2, 0, 0), "explicit_range"},
		{"van 9:00 tot 17:00 morgen", monday, ams(2026, 1, 27, 9, 0, 0), ams(2026, 1, 27, 17, 0, 0), "explicit_range"},
		{"van 9 tot 17 morgen", monday, ams(2026, 1, 27, 9, 0, 0), ams(2026, 1, 27, 17, 0, 0), "explicit_range"},
		{"vorige maandag 15:00", monday, ams(2026, 1, 19, 15, 0, 0), ams(2026, 1, 19, 16, 0, 0), "time_with_default_duration"},
		{"vorige maandag", monday, ams(2026, 1, 19, 0, 0, 0), ams(2026, 1, 19, 23, 59, 59), "date_whole_day"},

		{"Q4 2025", monday, ams(2025, 10, 1, 0, 0, 0), ams(2025, 12, 31, 23, 59, 59), "quarter"},
		{"vierde kwartaal", monday, ams(2026, 10, 1, 0, 0, 0), ams(2026, 12, 31, 23, 59, 59), "quarter"},
		{"vorig kwartaal", ams(2026, 1, 1, 0, 0, 0), ams(2025, 10, 1, 0, 0, 0), ams(2025, 12, 31, 23, 59, 59), "relative_quarter"},
		{"next quarter", monday, ams(2026, 4, 1, 0, 0, 0), ams(2026, 6, 30, 23, 59, 59), "relative_quarter"},
		{"eind 2024", monday, ams(2024, 12, 31, 0, 0, 0), ams(2024, 12, 31, 23, 59, 59), "year_boundary"},
		{"week 42", monday, ams(2026, 10, 12, 0, 0, 0), ams(2026, 10, 18, 23, 59, 59), "week_number"},
		{"week 1 2025", monday, ams(2024, 12, 30, 0, 0, 0), ams(2025, 1, 5, 23, 59, 59), "week_number"},
		{"H1", monday, ams(2026, 1, 1, 0, 0, 0), ams(2026, 6, 30, 23, 59, 59), "half_year"},
		{"tweede helft 2025", monday, ams(2025, 7, 1, 0, 0, 0), ams(2025, 12, 31, 23, 59, 59), "half_year"},
		{"eerste maandag van maart", monday, ams(2026, 3, 2, 0, 0, 0), ams(2026, 3, 2, 23, 59, 59), "ordinal_weekday"},
		{"laatste vrijdag van de maand", monday, ams(2026, 1, 30, 0, 0, 0), ams(2026, 1, 30, 23, 59, 59), "ordinal_weekday"},
		{"morgenochtend", monday, ams(2026, 1, 27, 6, 0, 0), ams(2026, 1, 27, 11, 59, 59), "compound_day"},
		{"vrijdagnacht", monday, ams(2026, 1, 30, 23, 0, 0), ams(2026, 1, 31, 5, 59, 59), "compound_day"},
		{"overmorgenmiddag", monday, ams(2026, 1, 28, 12, 0, 0), ams(2026, 1, 28, 17, 59, 59), "compound_day"},
		{"vorige winter", monday, ams(2025, 12, 1, 0, 0, 0), ams(2026, 2, 28, 23, 59, 59), "season"},
		{"deze winter", monday, ams(2026, 12, 1, 0, 0, 0), ams(2027, 2, 28, 23, 59, 59), "season"},
		{"zomer 2025", monday, ams(2025, 6, 1, 0, 0, 0), ams(2025, 8, 31, 23, 59, 59), "season"},
		{"pasen", friday, ams(2026, 4, 5, 0, 0, 0), ams(2026, 4, 5, 23, 59, 59), "moving_holiday"},
		{"tweede pinksterdag 2025", monday, ams(2025, 6, 9, 0, 0, 0), ams(2025, 6, 9, 23, 59, 59), "moving_holiday"},
		{"kerst", monday, ams(2026, 12, 25, 0, 0, 0), ams(2026, 12, 25, 23, 59, 59), "holiday"},
		{"tweede kerstdag", monday, ams(2026, 12, 26, 0, 0, 0), ams(2026, 12, 26, 23, 59, 59), "holiday"},
		{"dit weekend", friday, ams(2026, 1, 31, 0, 0, 0), ams(2026, 2, 1, 23, 59, 59), "weekend"},
		{"volgend weekend", friday, ams(2026, 2, 7, 0, 0, 0), ams(2026, 2, 8, 23, 59, 59), "weekend"},
		{"weekend", sunday, ams(2026, 2, 7, 0, 0, 0), ams(2026, 2, 8, 23, 59, 59), "weekend"},
		{"vorige maand", monday, ams(2025, 12, 1, 0, 0, 0), ams(2025, 12, 31, 23, 59, 59), "past_period"},
		{"afgelopen week", monday, ams(2026, 1, 19, 0, 0, 0), ams(2026, 1, 25, 23, 59, 59), "past_period"},
		{"volgende maand", monday, ams(2026, 2, 1, 0, 0, 0), ams(2026, 2, 28, 23, 59, 59), "future_period"},
		{"next year", monday, ams(2027, 1, 1, 0, 0, 0), ams(2027, 12, 31, 23, 59, 59), "future_period"},
		{"over 2 weken", monday, ams(2026, 2, 9, 0, 0, 0), ams(2026, 2, 9, 23, 59, 59), "in_duration"},
		{"3 dagen geleden", monday, ams(2026, 1, 23, 0, 0, 0), ams(2026, 1, 23, 23, 59, 59), "ago"},
		{"5 januari", monday, ams(2027, 1, 5, 0, 0, 0), ams(2027, 1, 5, 23, 59, 59), "dutch_day_month"},
		{"op vijftien maart", monday, ams(2026, 3, 15, 0, 0, 0), ams(2026, 3, 15, 23, 59, 59), "dutch_day_month"},
		{"29 februari", monday, ams(2028, 2, 29, 0, 0, 0), ams(2028, 2, 29, 23, 59, 59), "dutch_day_month"},
		{"begin maart", monday, ams(2026, 3, 1, 0, 0, 0), ams(2026, 3, 10, 23, 59, 59), "month_expr"},
		{"medio april", monday, ams(2026, 4, 11, 0, 0, 0), ams(2026, 4, 20, 23, 59, 59), "month_expr"},
		{"binnenkort", friday, ams(2026, 1, 30, 0, 0, 0), ams(2026, 2, 6, 23, 59, 59), "vague_time"},
		{"straks", monday, ams(2026, 1, 26, 11, 0, 0), ams(2026, 1, 26, 12, 0, 0), "vague_time"},
		{"zojuist", monday, ams(2026, 1, 26, 8, 50, 0), ams(2026, 1, 26, 9, 50, 0), "vague_time"},
		{"vanavond", monday, ams(2026, 1, 26, 20, 0, 0), ams(2026, 1, 26, 22, 0, 0), "vague_time"},
	}

	for _, tc := range tcs {
		t.Run(tc.text, func(t *testing.T) {
			iv, err := e.Resolve(context.Background(), tc.text, daterange.ResolveOptions{Now: tc.now})
			require.NoError(t, err)
			assert.Equal(t, rfc(tc.start), rfc(iv.Start), "start")
			assert.Equal(t, rfc(tc.end), rfc(iv.End), "end")
			assert.Equal(t, tc.kind, iv.Kind())
			assert.Equal(t, "Europe/Amsterdam", iv.Timezone)
			assert.False(t, iv.End.Before(iv.Start))
		})
	}
}

func TestResolve_RangeAssumptions(t *testing.T) {
	e := newEngine(t)

	iv, err := e.Resolve(context.Background(), "van 22:00 tot 02:00", daterange.ResolveOptions{Now: monday})
	require.NoError(t, err)

	split, _ := iv.Assumptions.Get("range_split")
	assert.Equal(t, []string{"22:00", "02:00"}, split)
	next, _ := iv.Assumptions.Get("inferred_next_day")
	assert.Equal(t, true, next)
	endOnly, _ := iv.Assumptions.Get("end_time_only")
	assert.Equal(t, true, endOnly)

	iv, err = e.Resolve(context.Background(), "tussen maandag en woensdag", daterange.ResolveOptions{Now: monday})
	require.NoError(t, err)
	mode, _ := iv.Assumptions.Get("weekday_range_mode")
	assert.Equal(t, "this_week", mode)
}

func TestResolve_RangeWithTrailingDay(t *testing.T) {
	e := newEngine(t)

	// The start takes the end's day, then the pair is put in order.
	iv, err := e.Resolve(context.Background(), "van 23:00 tot 01:00 morgen", daterange.ResolveOptions{Now: monday})
	require.NoError(t, err)
	split, _ := iv.Assumptions.Get("range_split")
	assert.Equal(t, []string{"23:00", "01:00 morgen"}, split)
	assert.Equal(t, rfc(ams(2026, 1, 27, 1, 0, 0)), rfc(iv.Start))
	assert.Equal(t, rfc(ams(2026, 1, 27, 23, 0, 0)), rfc(iv.End))

	iv, err = e.Resolve(context.Background(), "van 22:00 tot 02:00 morgen", daterange.ResolveOptions{Now: monday})
	require.NoError(t, err)
	assert.Equal(t, 2026, iv.Start.Year())
	assert.Equal(t, 2026, iv.End.Year())
	assert.False(t, iv.End.Before(iv.Start))
}

func TestResolve_RangeAlignsStartToEndDay(t *testing.T) {
	e := newEngine(t)

	iv, err := e.Resolve(context.Background(), "tussen 1 en 2 gisteren", daterange.ResolveOptions{Now: monday})
	require.NoError(t, err)
	assert.Equal(t, rfc(ams(2026, 1, 25, 1, 0, 0)), rfc(iv.Start))
	assert.Equal(t, rfc(ams(2026, 1, 25, 2, 0, 0)), rfc(iv.End))

	split, _ := iv.Assumptions.Get("range_split")
	assert.Equal(t, []string{"1:00", "2:00 gisteren"}, split)
	next, _ := iv.Assumptions.Get("inferred_next_day")
	assert.Equal(t, false, next)
	endOnly, _ := iv.Assumptions.Get("end_time_only")
	assert.Equal(t, false, endOnly)
}

func TestResolve_RangeSameMonthLaterYear(t *testing.T) {
	e := newEngine(t)

	iv, err := e.Resolve(context.Background(), "van 5/1/2025 tot 10/1/27", daterange.ResolveOptions{Now: monday})
	require.NoError(t, err)
	assert.Equal(t, rfc(ams(2025, 1, 5, 0, 0, 0)), rfc(iv.Start))
	assert.Equal(t, rfc(ams(2025, 1, 10, 23, 59, 59)), rfc(iv.End))

	// A four digit year on the end is taken as written.
	iv, err = e.Resolve(context.Background(), "van 5/1/2025 tot 10/1/2027", daterange.ResolveOptions{Now: monday})
	require.NoError(t, err)
	assert.Equal(t, rfc(ams(2027, 1, 10, 23, 59, 59)), rfc(iv.End))
}

func TestResolve_Timezone(t *testing.T) {
	e := newEngine(t)

	iv, err := e.Resolve(context.Background(), "morgen 15:00", daterange.ResolveOptions{
		Timezone: "new york",
		Now:      monday,
	})
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", iv.Timezone)
	assert.Equal(t, "2026-01-27T15:00:00-05:00", iv.Start.Format(daterange.TimestampLayout))
}

func TestResolve_FiscalYear(t *testing.T) {
	e := newEngine(t)

	iv, err := e.Resolve(context.Background(), "Q1 2026", daterange.ResolveOptions{Now: monday, FiscalStartMonth: 4})
	require.NoError(t, err)
	assert.Equal(t, rfc(ams(2026, 4, 1, 0, 0, 0)), rfc(iv.Start))
	assert.Equal(t, rfc(ams(2026, 6, 30, 23, 59, 59)), rfc(iv.End))

	iv, err = e.Resolve(context.Background(), "Q4 2026", daterange.ResolveOptions{Now: monday, FiscalStartMonth: 4})
	require.NoError(t, err)
	assert.Equal(t, rfc(ams(2027, 1, 1, 0, 0, 0)), rfc(iv.Start))
}

func TestResolve_DefaultMinutes(t *testing.T) {
	e := newEngine(t)

	iv, err := e.Resolve(context.Background(), "morgen 15:00", daterange.ResolveOptions{Now: monday, DefaultMinutes: 30})
	require.NoError(t, err)
	assert.Equal(t, rfc(ams(2026, 1, 27, 15, 30, 0)), rfc(iv.End))
	minutes, _ := iv.Assumptions.Get("default_minutes")
	assert.Equal(t, 30, minutes)
}

func TestResolve_Errors(t *testing.T) {
	e := newEngine(t)

	tcs := []struct {
		name string
		text string
		tz   string
		err  error
		msg  string
	}{
		{"empty", "", "", daterange.ErrEmptyInput, "Lege invoer."},
		{"whitespace", "   ", "", daterange.ErrEmptyInput, "Lege invoer."},
		{"quotes only", `""`, "", daterange.ErrEmptyInput, "Lege invoer."},
		{"gibberish", "blabla", "", daterange.ErrUnparseableText, "Kon tekst niet parsen: 'blabla'"},
		{"bad start", "van blabla tot morgen", "", daterange.ErrInvalidRangeEndpoint, "Kon start niet parsen: 'blabla'"},
		{"week out of range", "week 60", "", daterange.ErrInvalidWeekNumber, "Ongeldig weeknummer in: 'week 60'"},
		{"quarter out of range", "Q5", "", daterange.ErrInvalidQuarter, "Ongeldig kwartaal in: 'q5'"},
		{"unknown timezone", "morgen", "Mars/Olympus", daterange.ErrUnknownTimezone, "Onbekende tijdzone: 'Mars/Olympus'"},
		{"day past month end", "31 februari 2026", "", daterange.ErrInvalidDate, "Ongeldige datum in: '31 februari 2026'"},
		{"day zero", "0 januari", "", daterange.ErrInvalidDate, "Ongeldige datum in: '0 januari'"},
		{"no leap day ahead", "30 februari", "", daterange.ErrInvalidDate, "Ongeldige datum in: '30 februari'"},
		{"missing fifth weekday", "vijfde maandag van februari", "", daterange.ErrInvalidDate, "Ongeldige datum in: 'vijfde maandag van februari'"},
		{"amount overflows", "99999999999999999999 dagen geleden", "", daterange.ErrInvalidAmount, "Ongeldig aantal in: '99999999999999999999 dagen geleden'"},
		{"amount too large", "over 999999999999 jaar", "", daterange.ErrInvalidAmount, "Ongeldig aantal in: 'over 999999999999 jaar'"},
		{"amount past year 9999", "over 8000 jaar", "", daterange.ErrInvalidAmount, "Ongeldig aantal in: 'over 8000 jaar'"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Resolve(context.Background(), tc.text, daterange.ResolveOptions{Timezone: tc.tz, Now: monday})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestResolve_InvalidRangeEndpointSide(t *testing.T) {
	e := newEngine(t)

	_, err := e.Resolve(context.Background(), "van blabla tot morgen", daterange.ResolveOptions{Now: monday})
	var inputErr *daterange.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, daterange.SideStart, inputErr.Side)
	assert.Equal(t, "blabla", inputErr.Input)
}

func TestInterval_MarshalJSON(t *testing.T) {
	e := newEngine(t)

	iv, err := e.Resolve(context.Background(), "morgen", daterange.ResolveOptions{Now: monday})
	require.NoError(t, err)

	b, err := json.Marshal(iv)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"start": "2026-01-27T00:00:00+01:00",
		"end": "2026-01-27T23:59:59+01:00",
		"timezone": "Europe/Amsterdam",
		"assumptions": {"kind": "date_whole_day", "base_now": "2026-01-26T09:00:00+01:00"}
	}`, string(b))
}

func TestAssumptions_KeepInsertionOrder(t *testing.T) {
	a := daterange.NewAssumptions("explicit_range").Set("range_split", []string{"a", "b"}).Set("base_now", "x")
	a.Set("kind", "other")

	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"other","range_split":["a","b"],"base_now":"x"}`, string(b))
	assert.Equal(t, []string{"kind", "range_split", "base_now"}, a.Keys())
}

func TestNew_InvalidDefaultTimezone(t *testing.T) {
	_, err := daterange.New(daterange.Config{DefaultTimezone: "Nowhere/Special"})
	assert.Error(t, err)
}

func TestEngine_UsesClockWhenNowIsZero(t *testing.T) {
	e, err := daterange.New(daterange.Config{Clock: func() time.Time { return monday }})
	require.NoError(t, err)

	iv, err := e.Resolve(context.Background(), "morgen", daterange.ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, rfc(ams(2026, 1, 27, 0, 0, 0)), rfc(iv.Start))
}
