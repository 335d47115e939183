package timerange

import (
	"time"

	"time-range-parser/pkg/daterange"
	"time-range-parser/pkg/gcalendar"
)

// --- UseCase Inputs ---

type ResolveInput struct {
	Text             string
	Timezone         string
	NowISO           string
	FiscalStartMonth int
}

type ConvertInput struct {
	Text           string
	TargetTimezone string
	SourceTimezone string
	NowISO         string
}

type RecurrenceInput struct {
	Text     string
	Timezone string
	NowISO   string
	Count    int
}

type DurationInput struct {
	Start    string
	End      string
	Timezone string
	NowISO   string
}

type DSTStatusInput struct {
	Timezone string
	NowISO   string
}

type CalendarInfoInput struct {
	// Text optionally names the day ("volgende vrijdag"). Empty means today.
	Text     string
	Timezone string
	NowISO   string
}

type WorldTimeInput struct {
	City string
}

type HolidaysInput struct {
	Text     string
	Timezone string
	NowISO   string
}

// --- UseCase Outputs ---

type ResolveOutput struct {
	Input    string
	Interval daterange.Interval
}

type ConvertOutput struct {
	Conversion daterange.Conversion
}

type RecurrenceOutput struct {
	Recurrence daterange.Recurrence
}

type DurationOutput struct {
	Duration daterange.DurationResult
}

// DSTStatus describes daylight saving for a zone at one instant.
type DSTStatus struct {
	Timezone       string
	IsDST          bool
	Abbreviation   string
	UTCOffset      string
	RawOffset      int
	DSTOffset      int
	DSTStart       *time.Time
	DSTEnd         *time.Time
	NextTransition *time.Time
	Source         string
}

type CalendarInfo struct {
	Timezone    string
	Date        time.Time
	WeekNumber  int
	DayOfYear   int
	DayOfWeek   int
	ISOWeekDate string
}

type WorldTime struct {
	City         string
	Timezone     string
	CurrentTime  string
	UTCOffset    string
	DST          bool
	WeekNumber   int
	DayOfYear    int
	Abbreviation string
	Source       string
}

type ServerInfo struct {
	Name            string
	Version         string
	Description     string
	DefaultTimezone string
	Resolution      string
	Capabilities    map[string]bool
	Tools           []string
}

type TimezonesOutput struct {
	Timezones []string
	Source    string
}

type HolidaysOutput struct {
	Interval daterange.Interval
	Holidays []gcalendar.Holiday
}

// Source values of DSTStatus and WorldTime.
const (
	SourceLocal     = "tzdata"
	SourceWorldTime = "WorldTimeAPI"
)
