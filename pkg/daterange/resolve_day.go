package daterange

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"time-range-parser/pkg/datemath"
)

func resolveOrdinalWeekday(q query) (span, bool, error) {
	re := q.pat.ordinalWeekday
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}

	ordinal, ok := q.vocab.Ordinals[group(re, m, "ordinal")]
	if !ok {
		return span{}, false, nil
	}
	weekday := q.vocab.Weekdays[group(re, m, "weekday")]
	monthWord, yearWord := group(re, m, "month"), group(re, m, "year")

	// "laatste vrijdag" without a month is the previous friday, not ours.
	if monthWord == "" && ordinal == -1 {
		return span{}, false, nil
	}

	year := yearOr(yearWord, q.now.Year())
	month := q.now.Month()
	if monthWord != "" && monthWord != "maand" && monthWord != "month" {
		if month, ok = q.vocab.Months[monthWord]; !ok {
			return span{}, false, nil
		}
	}

	day, ok := datemath.NthWeekdayOfMonth(year, month, weekday, ordinal, q.loc())
	if !ok {
		return span{}, false, inputError(ErrInvalidDate, q.text)
	}
	if monthWord == "" && yearWord == "" && day.Before(datemath.StartOfDay(q.now)) {
		next := datemath.AddMonths(q.now, 1)
		if day, ok = datemath.NthWeekdayOfMonth(next.Year(), next.Month(), weekday, ordinal, q.loc()); !ok {
			return span{}, false, inputError(ErrInvalidDate, q.text)
		}
	}
	return wholeDay(day), true, nil
}

func resolveCompoundDay(q query) (span, bool, error) {
	re := q.pat.compoundDay
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}

	var target time.Time
	dayWord := group(re, m, "day")
	if offset, ok := q.vocab.RelativeDays[dayWord]; ok {
		target = q.now.AddDate(0, 0, offset)
	} else if wd, ok := q.vocab.Weekdays[dayWord]; ok {
		target = datemath.NextWeekday(q.now, wd, false)
	} else {
		return span{}, false, nil
	}

	part, ok := q.vocab.DayParts[group(re, m, "part")]
	if !ok {
		return span{}, false, nil
	}
	start := at(target, part.Start, 0)
	endDay := target
	if part.Start >= part.End {
		endDay = target.AddDate(0, 0, 1)
	}
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), part.End-1, 59, 59, 0, endDay.Location())
	return span{start, end}, true, nil
}

func resolveMovingHoliday(q query) (span, bool, error) {
	re := q.pat.movingHoliday
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}

	offset := q.vocab.MovingHolidays[group(re, m, "holiday")]
	if y := group(re, m, "year"); y != "" {
		year, _ := strconv.Atoi(y)
		return wholeDay(datemath.EasterOffset(year, offset, q.loc())), true, nil
	}

	day := datemath.EasterOffset(q.now.Year(), offset, q.loc())
	if day.Before(datemath.StartOfDay(q.now)) {
		day = datemath.EasterOffset(q.now.Year()+1, offset, q.loc())
	}
	return wholeDay(day), true, nil
}

func resolveFixedHoliday(q query) (span, bool, error) {
	for _, h := range q.vocab.FixedHolidays {
		if !strings.Contains(q.text, h.Name) {
			continue
		}
		day := q.date(q.now.Year(), h.Month, h.Day)
		if day.Before(datemath.StartOfDay(q.now)) {
			day = q.date(q.now.Year()+1, h.Month, h.Day)
		}
		return wholeDay(day), true, nil
	}
	return span{}, false, nil
}

func resolveInDuration(q query) (span, bool, error) {
	return resolveAmount(q, q.pat.inDuration, 1)
}

func resolveAgo(q query) (span, bool, error) {
	return resolveAmount(q, q.pat.ago, -1)
}

// maxAmount bounds an amount per unit so the result stays within years 1..9999.
var maxAmount = map[datemath.Unit]int{
	datemath.Day:   3_652_500,
	datemath.Week:  521_786,
	datemath.Month: 120_000,
	datemath.Year:  10_000,
}

// resolveAmount handles "over 2 weken" and "3 dagen geleden": the whole day
// the amount lands on. "een", "a" and "an" count as one.
func resolveAmount(q query, re *regexp.Regexp, sign int) (span, bool, error) {
	m := re.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}
	unit, ok := amountUnit(m[re.SubexpIndex("unit")])
	if !ok {
		return span{}, false, nil
	}

	n := 1
	if word := m[re.SubexpIndex("n")]; q.pat.number.MatchString(word) {
		v, err := strconv.Atoi(word)
		if err != nil || v > maxAmount[unit] {
			return span{}, false, inputError(ErrInvalidAmount, q.text)
		}
		n = v
	}

	day := datemath.Add(q.now, sign*n, unit)
	if day.Year() < 1 || day.Year() > 9999 {
		return span{}, false, inputError(ErrInvalidAmount, q.text)
	}
	return wholeDay(day), true, nil
}

func amountUnit(word string) (datemath.Unit, bool) {
	switch word {
	case "dag", "dagen", "day", "days":
		return datemath.Day, true
	case "week", "weken", "weeks":
		return datemath.Week, true
	case "maand", "maanden", "month", "months":
		return datemath.Month, true
	case "jaar", "jaren", "year", "years":
		return datemath.Year, true
	}
	return "", false
}

func resolveDayMonth(q query) (span, bool, error) {
	re := q.pat.dayMonth
	loc := re.FindStringSubmatchIndex(q.text)
	if loc == nil {
		return span{}, false, nil
	}
	// "10:00 maart" is a clock time followed by a month, not day 0.
	if dayStart := loc[2*re.SubexpIndex("day")]; dayStart > 0 && strings.ContainsAny(q.text[dayStart-1:dayStart], ":.") {
		return span{}, false, nil
	}
	m := make([]string, len(loc)/2)
	for i := range m {
		if loc[2*i] >= 0 {
			m[i] = q.text[loc[2*i]:loc[2*i+1]]
		}
	}

	month, ok := q.vocab.Months[group(re, m, "month")]
	if !ok {
		return span{}, false, nil
	}
	dayWord := group(re, m, "day")
	day, spelled := q.vocab.DayNumbers[dayWord]
	if spelled && day < 1 {
		return span{}, false, nil
	}
	if !spelled {
		day, _ = strconv.Atoi(strings.TrimRight(dayWord, "stndrhe"))
	}
	if day < 1 || day > 31 {
		return span{}, false, inputError(ErrInvalidDate, q.text)
	}

	if y := group(re, m, "year"); y != "" {
		year, _ := strconv.Atoi(y)
		if !datemath.IsValidDate(year, month, day) {
			return span{}, false, inputError(ErrInvalidDate, q.text)
		}
		return wholeDay(q.date(year, month, day)), true, nil
	}

	today := datemath.StartOfDay(q.now)
	for offset := 0; offset < 5; offset++ {
		year := q.now.Year() + offset
		if !datemath.IsValidDate(year, month, day) {
			continue
		}
		date := q.date(year, month, day)
		if offset == 0 && date.Before(today) {
			continue
		}
		return wholeDay(date), true, nil
	}
	return span{}, false, inputError(ErrInvalidDate, q.text)
}

func resolveVague(q query) (span, bool, error) {
	m := q.pat.vague.FindStringSubmatch(q.text)
	if m == nil {
		return span{}, false, nil
	}
	expr, ok := q.vocab.Vague[m[1]]
	if !ok {
		return span{}, false, nil
	}

	now := q.now
	switch expr.Kind {
	case VagueFuture:
		start := now.Add(expr.Offset)
		return span{start, start.Add(time.Hour)}, true, nil
	case VaguePast:
		start := now.Add(-expr.Offset)
		return span{start, start.Add(time.Hour)}, true, nil
	case VagueFutureRange:
		return span{datemath.StartOfDay(now), datemath.EndOfDay(now.AddDate(0, 0, expr.Days))}, true, nil
	case VaguePastRange:
		return span{datemath.StartOfDay(now.AddDate(0, 0, -expr.Days)), datemath.EndOfDay(now)}, true, nil
	case VagueCurrentRange:
		half := expr.Days / 2
		return span{datemath.StartOfDay(now.AddDate(0, 0, -half)), datemath.EndOfDay(now.AddDate(0, 0, half))}, true, nil
	case VagueAroundNow:
		d := time.Duration(expr.Hours) * time.Hour
		return span{now.Add(-d), now.Add(d)}, true, nil
	case VagueFixedToday, VagueTimeOfDay:
		start := at(now, expr.Hour, expr.Minute)
		return span{start, start.Add(2 * time.Hour)}, true, nil
	}
	return span{}, false, nil
}

// at returns t's day at hour:minute:00.
func at(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
