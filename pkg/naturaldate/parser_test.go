package naturaldate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"time-range-parser/pkg/naturaldate"
)

var amsterdam = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		panic(err)
	}
	return loc
}()

func at(y int, m time.Month, d, h, mi int) time.Time {
	return time.Date(y, m, d, h, mi, 0, 0, amsterdam)
}

func TestParseGrammar(t *testing.T) {
	p := naturaldate.New()
	monday := at(2026, time.January, 26, 9, 0)

	tests := []struct {
		name   string
		text   string
		prefer naturaldate.PreferDatesFrom
		want   time.Time
	}{
		{name: "tomorrow keeps clock", text: "morgen", want: at(2026, 1, 27, 9, 0)},
		{name: "english yesterday", text: "yesterday", want: at(2026, 1, 25, 9, 0)},
		{name: "relative day with clock", text: "morgen 15:00", want: at(2026, 1, 27, 15, 0)},
		{name: "pm suffix", text: "tomorrow 3pm", want: at(2026, 1, 27, 15, 0)},
		{name: "separate pm", text: "tomorrow at 3 pm", want: at(2026, 1, 27, 15, 0)},
		{name: "dotted clock", text: "vandaag 14.30", want: at(2026, 1, 26, 14, 30)},
		{name: "uur suffix", text: "overmorgen om 10 uur", want: at(2026, 1, 28, 10, 0)},
		{name: "weekday prefers future", text: "woensdag", want: at(2026, 1, 28, 0, 0)},
		{name: "weekday same day", text: "maandag", want: at(2026, 1, 26, 0, 0)},
		{name: "weekday current period", text: "zondag", prefer: naturaldate.PreferCurrentPeriod, want: at(2026, 2, 1, 0, 0)},
		{name: "next weekday skips a week", text: "volgende vrijdag 10:00", want: at(2026, 2, 6, 10, 0)},
		{name: "last weekday", text: "last friday", want: at(2026, 1, 23, 0, 0)},
		{name: "this week", text: "deze week", want: monday},
		{name: "last month", text: "last month", want: at(2025, 12, 26, 9, 0)},
		{name: "in amount", text: "in 2 hours", want: at(2026, 1, 26, 11, 0)},
		{name: "amount ago", text: "3 dagen geleden", want: at(2026, 1, 23, 9, 0)},
		{name: "bare amount", text: "30 minuten", want: monday},
		{name: "iso date", text: "2026-03-05", want: at(2026, 3, 5, 0, 0)},
		{name: "day first date", text: "5-3-2026 10:15", want: at(2026, 3, 5, 10, 15)},
		{name: "day month name", text: "5 maart", want: at(2026, 3, 5, 0, 0)},
		{name: "english month day", text: "march 5th 2027", want: at(2027, 3, 5, 0, 0)},
		{name: "past date rolls forward", text: "1 januari", want: at(2027, 1, 1, 0, 0)},
		{name: "past date in current period", text: "1 januari", prefer: naturaldate.PreferCurrentPeriod, want: at(2026, 1, 1, 0, 0)},
		{name: "accented input", text: "Één dag geleden", want: at(2026, 1, 25, 9, 0)},
		{name: "day part", text: "morgen avond", want: at(2026, 1, 27, 18, 0)},
		{name: "day after tomorrow phrase", text: "day after tomorrow", want: at(2026, 1, 28, 9, 0)},
		{name: "spliced date with time", text: "2026-02-06 15:00", want: at(2026, 2, 6, 15, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.text, naturaldate.Settings{
				Location:        amsterdam,
				RelativeBase:    monday,
				PreferDatesFrom: tt.prefer,
			})
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, amsterdam, got.Location())
		})
	}
}

func TestParseAbsoluteFormats(t *testing.T) {
	p := naturaldate.New()
	base := at(2026, time.January, 26, 9, 0)

	got, err := p.Parse("2026-01-30T15:00:00Z", naturaldate.Settings{Location: amsterdam, RelativeBase: base})
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 1, 30, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, 16, got.Hour())
}

func TestParseUnrecognized(t *testing.T) {
	p := naturaldate.New()
	base := at(2026, time.January, 26, 9, 0)

	for _, text := range []string{"", "   ", "blabla", "10", "volgende blabla", "25:00 morgen", "01:00morgen", "17:00morgen"} {
		t.Run(text, func(t *testing.T) {
			_, err := p.Parse(text, naturaldate.Settings{Location: amsterdam, RelativeBase: base})
			assert.ErrorIs(t, err, naturaldate.ErrUnrecognized)
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "een", naturaldate.Fold("één"))
	assert.Equal(t, "creme brulee", naturaldate.Fold("Crème Brûlée"))
	assert.Equal(t, "q4 2025", naturaldate.Fold("Q4 2025"))
}
