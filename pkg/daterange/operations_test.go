package daterange_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"time-range-parser/pkg/datemath"
	"time-range-parser/pkg/daterange"
)

func TestConvertTimezone(t *testing.T) {
	e := newEngine(t)

	c, err := e.ConvertTimezone(context.Background(), "morgen 15:00", "new york", "", monday)
	require.NoError(t, err)

	assert.Equal(t, "Europe/Amsterdam", c.SourceTimezone)
	assert.Equal(t, "America/New_York", c.TargetTimezone)
	assert.Equal(t, "2026-01-27T15:00:00+01:00", c.SourceStart.Format(daterange.TimestampLayout))
	assert.Equal(t, "2026-01-27T09:00:00-05:00", c.TargetStart.Format(daterange.TimestampLayout))
	assert.Equal(t, "2026-01-27T10:00:00-05:00", c.TargetEnd.Format(daterange.TimestampLayout))
	assert.Equal(t, -6.0, c.UTCOffsetDiffHours)
	assert.True(t, c.SourceStart.Equal(c.TargetStart))

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"target_start":"2026-01-27T09:00:00-05:00"`)
}

func TestConvertTimezone_UnknownTarget(t *testing.T) {
	e := newEngine(t)

	_, err := e.ConvertTimezone(context.Background(), "morgen", "Atlantis/Capital", "", monday)
	assert.ErrorIs(t, err, daterange.ErrUnknownTimezone)
}

func TestExpandRecurrence(t *testing.T) {
	e := newEngine(t)

	tcs := []struct {
		text     string
		interval int
		unit     datemath.Unit
		weekday  *int
		first    string
		second   string
	}{
		{"elke vrijdag", 1, datemath.Week, intPtr(4), "2026-01-30T00:00:00+01:00", "2026-02-06T00:00:00+01:00"},
		{"every monday", 1, datemath.Week, intPtr(0), "2026-01-26T09:00:00+01:00", "2026-02-02T09:00:00+01:00"},
		{"every 2 weeks", 2, datemath.Week, nil, "2026-01-26T09:00:00+01:00", "2026-02-09T09:00:00+01:00"},
		{"dagelijks", 1, datemath.Day, nil, "2026-01-26T09:00:00+01:00", "2026-01-27T09:00:00+01:00"},
		{"maandelijks", 1, datemath.Month, nil, "2026-01-26T09:00:00+01:00", "2026-02-26T09:00:00+01:00"},
		{"elke 3 dagen", 3, datemath.Day, nil, "2026-01-26T09:00:00+01:00", "2026-01-29T09:00:00+01:00"},
		{"iedere keer", 1, datemath.Day, nil, "2026-01-26T09:00:00+01:00", "2026-01-27T09:00:00+01:00"},
		{"elke maandag om 9:00", 1, datemath.Week, intPtr(0), "2026-01-26T09:00:00+01:00", "2026-02-02T09:00:00+01:00"},
		{"om de 2 dagen", 2, datemath.Day, nil, "2026-01-26T09:00:00+01:00", "2026-01-28T09:00:00+01:00"},
	}

	for _, tc := range tcs {
		t.Run(tc.text, func(t *testing.T) {
			r, err := e.ExpandRecurrence(context.Background(), tc.text, "", monday, 3)
			require.NoError(t, err)
			require.Len(t, r.Dates, 3)

			assert.Equal(t, tc.interval, r.Rule.Interval)
			assert.Equal(t, tc.unit, r.Rule.Unit)
			assert.Equal(t, tc.weekday, r.Rule.Weekday)
			assert.Equal(t, tc.first, r.Dates[0].Format(daterange.TimestampLayout))
			assert.Equal(t, tc.second, r.Dates[1].Format(daterange.TimestampLayout))
		})
	}
}

func TestExpandRecurrence_DefaultCountAndTimezone(t *testing.T) {
	e := newEngine(t)

	r, err := e.ExpandRecurrence(context.Background(), "daily", "NYC", monday, 0)
	require.NoError(t, err)
	assert.Len(t, r.Dates, daterange.DefaultRecurrenceSize)
	assert.Equal(t, "America/New_York", r.Timezone)
	assert.Equal(t, "2026-01-26T03:00:00-05:00", r.Dates[0].Format(daterange.TimestampLayout))

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"rule":{"interval":1,"unit":"days","weekday":null}`)
}

func TestExpandRecurrence_Unrecognized(t *testing.T) {
	e := newEngine(t)

	_, err := e.ExpandRecurrence(context.Background(), "blabla", "", monday, 3)
	require.ErrorIs(t, err, daterange.ErrRecurrencePatternUnrecognized)
	assert.Equal(t, "Kon geen herhalingspatroon herkennen in: 'blabla'", err.Error())
}

func TestCalculateDuration(t *testing.T) {
	e := newEngine(t)

	d, err := e.CalculateDuration(context.Background(), "vandaag", "volgende vrijdag", "", monday)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-26T00:00:00+01:00", d.Start.Format(daterange.TimestampLayout))
	assert.Equal(t, "2026-02-06T00:00:00+01:00", d.End.Format(daterange.TimestampLayout))
	assert.Equal(t, 11.0, d.TotalDays)
	assert.Equal(t, float64(11*24*3600), d.TotalSeconds)
	assert.Equal(t, 9, d.BusinessDays)
	assert.Equal(t, "1 week 4 days", d.HumanReadable)
}

func TestCalculateDuration_Reversed(t *testing.T) {
	e := newEngine(t)

	d, err := e.CalculateDuration(context.Background(), "volgende vrijdag", "vandaag", "", monday)
	require.NoError(t, err)
	assert.Equal(t, -11.0, d.TotalDays)
	assert.Equal(t, -9, d.BusinessDays)
	assert.Equal(t, "-1 week -4 days", d.HumanReadable)
}

func TestCalculateDuration_PropagatesErrors(t *testing.T) {
	e := newEngine(t)

	_, err := e.CalculateDuration(context.Background(), "vandaag", "blabla", "", monday)
	assert.ErrorIs(t, err, daterange.ErrUnparseableText)
}

func TestBusinessDays(t *testing.T) {
	tcs := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"same day", monday, monday.Add(5 * time.Hour), 0},
		{"friday to monday", friday, ams(2026, 2, 2, 8, 0, 0), 1},
		{"saturday to monday", ams(2026, 1, 31, 0, 0, 0), ams(2026, 2, 2, 0, 0, 0), 0},
		{"full week", monday, monday.AddDate(0, 0, 7), 5},
		{"backwards", monday.AddDate(0, 0, 7), monday, -5},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, daterange.BusinessDays(tc.from, tc.to))
		})
	}
}

func TestHumanizeDuration(t *testing.T) {
	tcs := []struct {
		from, to time.Time
		want     string
	}{
		{monday, monday, "0 seconds"},
		{monday, monday.Add(3*time.Hour + 30*time.Minute), "3 hours 30 minutes"},
		{monday, monday.Add(time.Minute + time.Second), "1 minute 1 second"},
		{monday, ams(2027, 3, 27, 9, 0, 0), "1 year 2 months 1 day"},
		{monday, monday.AddDate(0, 0, 1), "1 day"},
	}

	for _, tc := range tcs {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, daterange.HumanizeDuration(tc.from, tc.to))
		})
	}
}

func intPtr(i int) *int {
	return &i
}
