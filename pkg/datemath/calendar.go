package datemath

import "time"

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of t's day in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// WeekdayIndex returns the weekday of t with Monday as 0 and Sunday as 6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsValidDate reports whether day exists in the given month of year.
func IsValidDate(year int, month time.Month, day int) bool {
	return month >= time.January && month <= time.December && day >= 1 && day <= DaysIn(year, month)
}

// AddMonths adds n calendar months, clamping the day to the end of the target month
// (Jan 31 + 1 month = Feb 28). The wall clock is kept.
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Add adds n units to t. Day based units keep the wall clock, clock units are exact.
func Add(t time.Time, n int, unit Unit) time.Time {
	if d, ok := unit.Fixed(); ok {
		return t.Add(time.Duration(n) * d)
	}
	switch unit {
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return AddMonths(t, n)
	case Quarter:
		return AddMonths(t, 3*n)
	case Year:
		return AddMonths(t, 12*n)
	}
	return t
}

// StartOf returns the first instant of the unit containing t.
// Weeks start on Monday, quarters are calendar quarters.
func StartOf(t time.Time, unit Unit) time.Time {
	loc := t.Location()
	switch unit {
	case Second:
		return t.Truncate(time.Second)
	case Minute:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	case Hour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc)
	case Day:
		return StartOfDay(t)
	case Week:
		return StartOfDay(t.AddDate(0, 0, -WeekdayIndex(t)))
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	case Quarter:
		m := (int(t.Month())-1)/3*3 + 1
		return time.Date(t.Year(), time.Month(m), 1, 0, 0, 0, 0, loc)
	case Year:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	}
	return t
}

// EndOf returns the last second of the unit containing t.
func EndOf(t time.Time, unit Unit) time.Time {
	return LastSecondBefore(Add(StartOf(t, unit), 1, unit))
}

// LastSecondBefore returns the instant one second before t.
func LastSecondBefore(t time.Time) time.Time {
	return t.Add(-time.Second)
}

// NextWeekday returns midnight of the next occurrence of weekday (Monday=0) after t.
// Today never counts. With skipWeek the occurrence in the following week is returned,
// so "next friday" on a Thursday lands eight days ahead.
func NextWeekday(t time.Time, weekday int, skipWeek bool) time.Time {
	days := mod(weekday-WeekdayIndex(t), 7)
	switch {
	case days == 0:
		days = 7
	case skipWeek:
		days += 7
	}
	return StartOfDay(t.AddDate(0, 0, days))
}

// PrevWeekday returns midnight of the previous occurrence of weekday before t.
// Today never counts.
func PrevWeekday(t time.Time, weekday int) time.Time {
	days := mod(WeekdayIndex(t)-weekday, 7)
	if days == 0 {
		days = 7
	}
	return StartOfDay(t.AddDate(0, 0, -days))
}

// NthWeekdayOfMonth returns the nth (1-based) weekday of the month, or the last one
// when n is -1. The second result is false when the month has no such occurrence.
func NthWeekdayOfMonth(year int, month time.Month, weekday, n int, loc *time.Location) (time.Time, bool) {
	if n == -1 {
		d := time.Date(year, month, DaysIn(year, month), 0, 0, 0, 0, loc)
		for WeekdayIndex(d) != weekday {
			d = d.AddDate(0, 0, -1)
		}
		return d, true
	}
	if n < 1 {
		return time.Time{}, false
	}

	d := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	for WeekdayIndex(d) != weekday {
		d = d.AddDate(0, 0, 1)
	}
	d = d.AddDate(0, 0, 7*(n-1))
	if d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

// ISOWeekStart returns the Monday of ISO 8601 week `week` of `year`.
func ISOWeekStart(year, week int, loc *time.Location) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	return jan4.AddDate(0, 0, -WeekdayIndex(jan4)+7*(week-1))
}

// ISOWeeksIn returns the number of ISO weeks (52 or 53) of year.
func ISOWeeksIn(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
