package datemath

import "time"

// FiscalPeriodStart returns the first day of a period that starts in calendarMonth
// of a calendar year, shifted by the fiscal year start. Months past December
// wrap into the next year.
func FiscalPeriodStart(year, calendarMonth, fiscalStartMonth int, loc *time.Location) time.Time {
	month := calendarMonth + normalizeFiscal(fiscalStartMonth) - 1
	for month > 12 {
		month -= 12
		year++
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
}

// QuarterStart returns the first day of fiscal quarter q (1..4) of year.
func QuarterStart(year, q, fiscalStartMonth int, loc *time.Location) time.Time {
	return FiscalPeriodStart(year, (q-1)*3+1, fiscalStartMonth, loc)
}

// HalfYearStart returns the first day of fiscal half h (1 or 2) of year.
func HalfYearStart(year, h, fiscalStartMonth int, loc *time.Location) time.Time {
	base := 1
	if h == 2 {
		base = 7
	}
	return FiscalPeriodStart(year, base, fiscalStartMonth, loc)
}

// CurrentQuarterStart returns the first day of the fiscal quarter containing t.
func CurrentQuarterStart(t time.Time, fiscalStartMonth int) time.Time {
	fiscal := normalizeFiscal(fiscalStartMonth)
	adjusted := mod(int(t.Month())-fiscal, 12)
	start := adjusted/3*3 + fiscal
	if start > 12 {
		start -= 12
	}

	year := t.Year()
	if int(t.Month()) < fiscal && start >= fiscal {
		year--
	}
	return time.Date(year, time.Month(start), 1, 0, 0, 0, 0, t.Location())
}

func normalizeFiscal(m int) int {
	if m < 1 || m > 12 {
		return 1
	}
	return m
}
