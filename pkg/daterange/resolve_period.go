package daterange

import (
	"strconv"
	"time"

	"time-range-parser/pkg/datemath"
)

// query is the input every specialized resolver receives.
type query struct {
	text   string
	now    time.Time
	fiscal int
	vocab  *Vocabulary
	pat    *patterns
}

func (q query) loc() *time.Location {
	return q.now.Location()
}

func (q query) date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, q.loc())
}

// resolveFunc reports ok=false when the expression is not its concern.
type resolveFunc func(q query) (sp span, ok bool, err error)

func wholeDay(t time.Time) span {
	return span{datemath.StartOfDay(t), datemath.EndOfDay(t)}
}

func months(start time.Time, n int) span {
	return span{start, datemath.LastSecondBefore(datemath.AddMonths(start, n))}
}

func yearOr(s string, fallback int) int {
	if y, err := strconv.Atoi(s); err == nil {
		return y
	}
	return fallback
}

var quarterOrdinals = map[string]int{
	"1e": 1, "eerste": 1, "1ste": 1, "1st": 1, "first": 1,
	"2e": 2, "tweede": 2, "2de": 2, "2nd": 2, "second": 2,
	"3e": 3, "derde": 3, "3de": 3, "3rd": 3, "third": 3,
	"4e": 4, "vierde": 4, "4de": 4, "4th": 4, "fourth": 4,
}

func resolveQuarter(q query) (span, bool, error) {
	re := q.pat.quarter
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		if q.pat.invalidQuarter.MatchString(q.text) {
			return span{}, false, inputError(ErrInvalidQuarter, q.text)
		}
		return span{}, false, nil
	}

	var quarter int
	switch {
	case group(re, m, "qnotation") != "":
		quarter = int(group(re, m, "qnotation")[1] - '0')
	case group(re, m, "quarternum") != "":
		quarter, _ = strconv.Atoi(group(re, m, "quarternum"))
	default:
		quarter = quarterOrdinals[group(re, m, "ordinal")]
	}
	if quarter < 1 || quarter > 4 {
		return span{}, false, nil
	}

	year := yearOr(group(re, m, "year"), q.now.Year())
	return months(datemath.QuarterStart(year, quarter, q.fiscal, q.loc()), 3), true, nil
}

func resolveRelativeQuarter(q query) (span, bool, error) {
	current := datemath.CurrentQuarterStart(q.now, q.fiscal)

	if m := q.pat.pastPeriod.FindStringSubmatch(q.text); m != nil {
		if q.vocab.PeriodUnits[group(q.pat.pastPeriod, m, "unit")] == datemath.Quarter {
			return months(datemath.AddMonths(current, -3), 3), true, nil
		}
	}
	if m := q.pat.futurePeriod.FindStringSubmatch(q.text); m != nil {
		if q.vocab.PeriodUnits[group(q.pat.futurePeriod, m, "unit")] == datemath.Quarter {
			return months(datemath.AddMonths(current, 3), 3), true, nil
		}
	}
	return span{}, false, nil
}

func resolveYearBoundary(q query) (span, bool, error) {
	re := q.pat.yearBoundary
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}

	year, _ := strconv.Atoi(group(re, m, "year"))
	switch group(re, m, "type") {
	case "begin", "start":
		return wholeDay(q.date(year, time.January, 1)), true, nil
	default:
		return wholeDay(q.date(year, time.December, 31)), true, nil
	}
}

func resolveWeekNumber(q query) (span, bool, error) {
	re := q.pat.weekNumber
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}

	week, _ := strconv.Atoi(group(re, m, "week"))
	year := yearOr(group(re, m, "year"), q.now.Year())
	if week < 1 || week > datemath.ISOWeeksIn(year) {
		return span{}, false, inputError(ErrInvalidWeekNumber, q.text)
	}

	start := datemath.ISOWeekStart(year, week, q.loc())
	return span{start, datemath.EndOf(start, datemath.Week)}, true, nil
}

func resolveHalfYear(q query) (span, bool, error) {
	re := q.pat.halfYear
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}

	var half int
	if h := group(re, m, "hnotation"); h != "" {
		half = int(h[1] - '0')
	} else {
		half = q.vocab.HalfYears[collapseSpaces(group(re, m, "text"))]
	}
	if half != 1 && half != 2 {
		return span{}, false, nil
	}

	year := yearOr(group(re, m, "year"), q.now.Year())
	return months(datemath.HalfYearStart(year, half, q.fiscal, q.loc()), 6), true, nil
}

func resolveSeason(q query) (span, bool, error) {
	re := q.pat.season
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}
	season, ok := q.vocab.Seasons[group(re, m, "season")]
	if !ok {
		return span{}, false, nil
	}

	year := q.now.Year()
	switch group(re, m, "modifier") {
	case "volgende", "volgend", "next":
		year++
	case "vorige", "vorig", "last", "previous", "afgelopen":
		year--
	}
	year = yearOr(group(re, m, "year"), year)

	start := q.date(year, season.StartMonth, 1)
	endYear := year
	if season.StartMonth > season.EndMonth {
		endYear++
	}
	end := datemath.EndOf(q.date(endYear, season.EndMonth, 1), datemath.Month)
	return span{start, end}, true, nil
}

func resolveMonthExpr(q query) (span, bool, error) {
	re := q.pat.monthExpr
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}
	month, ok := q.vocab.Months[group(re, m, "month")]
	if !ok {
		return span{}, false, nil
	}

	year := q.now.Year()
	if y := group(re, m, "year"); y != "" {
		year, _ = strconv.Atoi(y)
	} else if month < q.now.Month() {
		year++
	}

	first := q.date(year, month, 1)
	last := datemath.EndOf(first, datemath.Month)
	switch group(re, m, "position") {
	case "begin", "start":
		return span{first, datemath.EndOfDay(first.AddDate(0, 0, 9))}, true, nil
	case "eind", "end":
		return span{datemath.StartOfDay(last.AddDate(0, 0, -9)), last}, true, nil
	case "medio", "half", "midden", "mid":
		return span{first.AddDate(0, 0, 10), datemath.EndOfDay(first.AddDate(0, 0, 19))}, true, nil
	}
	return span{first, last}, true, nil
}

func resolveWeekend(q query) (span, bool, error) {
	re := q.pat.weekend
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}

	saturday := datemath.StartOfDay(q.now.AddDate(0, 0, 5-datemath.WeekdayIndex(q.now)))
	switch group(re, m, "modifier") {
	case "volgend", "volgende", "next":
		saturday = saturday.AddDate(0, 0, 7)
	case "vorig", "vorige", "last", "afgelopen":
		saturday = saturday.AddDate(0, 0, -7)
	case "":
		if q.now.Weekday() == time.Sunday {
			saturday = saturday.AddDate(0, 0, 7)
		}
	}
	return span{saturday, datemath.EndOfDay(saturday.AddDate(0, 0, 1))}, true, nil
}

func resolvePastPeriod(q query) (span, bool, error) {
	re := q.pat.pastPeriod
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}

	var unit datemath.Unit
	switch group(re, m, "unit") {
	case "jaar":
		unit = datemath.Year
	case "maand":
		unit = datemath.Month
	case "week":
		unit = datemath.Week
	default:
		return span{}, false, nil
	}
	start := datemath.StartOf(datemath.Add(q.now, -1, unit), unit)
	return span{start, datemath.EndOf(start, unit)}, true, nil
}

func resolveFuturePeriod(q query) (span, bool, error) {
	re := q.pat.futurePeriod
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}

	var unit datemath.Unit
	switch group(re, m, "unit") {
	case "jaar", "year":
		unit = datemath.Year
	case "maand", "month":
		unit = datemath.Month
	case "week":
		unit = datemath.Week
	default:
		return span{}, false, nil
	}
	start := datemath.StartOf(datemath.Add(q.now, 1, unit), unit)
	return span{start, datemath.EndOf(start, unit)}, true, nil
}
