package naturaldate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"time-range-parser/pkg/datemath"
)

type unit = datemath.Unit

const (
	unitSecond  = datemath.Second
	unitMinute  = datemath.Minute
	unitHour    = datemath.Hour
	unitDay     = datemath.Day
	unitWeek    = datemath.Week
	unitMonth   = datemath.Month
	unitQuarter = datemath.Quarter
	unitYear    = datemath.Year
)

var (
	clockRe    = regexp.MustCompile(`^(\d{1,2})(?:[:.](\d{2}))?(?::(\d{2}))?(am|pm|u|h)?$`)
	isoDateRe  = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dmyRe      = regexp.MustCompile(`^(\d{1,2})[-/.](\d{1,2})[-/.](\d{2}|\d{4})$`)
	dmRe       = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})$`)
	dayNumRe   = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th|e|ste|de)?$`)
	yearRe     = regexp.MustCompile(`^\d{4}$`)
	digitsRe   = regexp.MustCompile(`^\d+$`)
	phraseSubs = strings.NewReplacer(
		"day after tomorrow", "overmorgen",
		"day before yesterday", "eergisteren",
		"'s ochtends", "ochtend",
		"'s morgens", "ochtend",
		"'s middags", "middag",
		"'s avonds", "avond",
		"'s nachts", "nacht",
		"a.m.", "am",
		"p.m.", "pm",
		",", " ",
	)
)

type clock struct {
	hour, minute, second int
}

type shift struct {
	n    int
	unit unit
}

// expression collects what the tokens of one input said.
type expression struct {
	dayOffset   int
	hasRelative bool

	weekday     int
	weekdayMode int // 0 plain, 1 next, -1 last, 2 this
	hasWeekday  bool

	year, day int
	month     time.Month

	shifts []shift
	clock  *clock
	now    bool
}

const weekdayThis = 2

// parseGrammar parses text with the built-in Dutch/English token grammar.
// It fails on the first token it does not understand.
func parseGrammar(text string, s Settings) (time.Time, bool) {
	tokens := strings.Fields(phraseSubs.Replace(text))
	if len(tokens) == 0 {
		return time.Time{}, false
	}

	expr := expression{weekday: -1}
	matched := false

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		next := func(k int) string {
			if i+k < len(tokens) {
				return tokens[i+k]
			}
			return ""
		}

		switch {
		case tok == "nu" || tok == "now":
			expr.now = true

		case isRelativeDay(tok):
			expr.dayOffset += relativeDays[tok]
			expr.hasRelative = true

		case isWeekday(tok):
			expr.weekday, expr.hasWeekday = weekdays[tok], true

		case isModifier(tok):
			dir := modifiers[tok]
			target := next(1)
			if wd, ok := weekdays[target]; ok {
				expr.weekday, expr.hasWeekday = wd, true
				expr.weekdayMode = dir
				if dir == 0 {
					expr.weekdayMode = weekdayThis
				}
				i++
				break
			}
			u, ok := units[target]
			if !ok || u == unitSecond || u == unitMinute {
				return time.Time{}, false
			}
			if dir != 0 {
				expr.shifts = append(expr.shifts, shift{n: dir, unit: u})
			}
			expr.hasRelative = true
			i++

		case inWords[tok]:
			n, ok := parseCount(next(1))
			u, uok := units[next(2)]
			if !ok || !uok {
				return time.Time{}, false
			}
			expr.shifts = append(expr.shifts, shift{n: n, unit: u})
			expr.hasRelative = true
			i += 2

		case isCount(tok) && isUnit(next(1)):
			n, _ := parseCount(tok)
			u := units[next(1)]
			if agoWords[next(2)] {
				expr.shifts = append(expr.shifts, shift{n: -n, unit: u})
				expr.hasRelative = true
				i += 2
				break
			}
			if next(1) == "uur" && digitsRe.MatchString(tok) && n <= 24 {
				expr.clock = &clock{hour: n % 24}
				i++
				break
			}
			// A bare amount ("3 dagen") describes a length, not a position.
			i++

		case isDayPart(tok):
			if expr.clock == nil {
				expr.clock = &clock{hour: dayParts[tok]}
			}

		case isoDateRe.MatchString(tok):
			m := isoDateRe.FindStringSubmatch(tok)
			expr.year, expr.month, expr.day = atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3])

		case dmyRe.MatchString(tok):
			m := dmyRe.FindStringSubmatch(tok)
			expr.day, expr.month, expr.year = atoi(m[1]), time.Month(atoi(m[2])), expandYear(m[3])

		case dmRe.MatchString(tok):
			m := dmRe.FindStringSubmatch(tok)
			expr.day, expr.month = atoi(m[1]), time.Month(atoi(m[2]))

		case isMonth(tok):
			expr.month = months[tok]
			if m := dayNumRe.FindStringSubmatch(next(1)); m != nil && !isClockSuffix(next(2)) {
				expr.day = atoi(m[1])
				i++
			}

		case dayNumRe.MatchString(tok) && isMonthAfterFiller(tokens, i+1):
			expr.day = atoi(dayNumRe.FindStringSubmatch(tok)[1])

		case yearRe.MatchString(tok):
			expr.year = atoi(tok)

		case clockRe.MatchString(tok):
			c, ok := parseClock(tok, next(1))
			if !ok {
				return time.Time{}, false
			}
			if next(1) == "am" || next(1) == "pm" || next(1) == "uur" {
				i++
			}
			expr.clock = &c

		case fillers[tok]:
			continue

		default:
			return time.Time{}, false
		}
		matched = true
	}

	if !matched {
		return time.Time{}, false
	}
	return expr.resolve(s)
}

func (e expression) resolve(s Settings) (time.Time, bool) {
	base := s.RelativeBase.In(s.Location)
	keepClock := true

	var t time.Time
	switch {
	case e.day > 0 || e.month > 0 || e.year > 0:
		keepClock = false
		year, month, day := e.year, e.month, e.day
		explicitYear := year > 0
		if !explicitYear {
			year = base.Year()
		}
		if month == 0 {
			month = time.January
			if !explicitYear {
				month = base.Month()
			}
		}
		if day == 0 {
			day = 1
		}
		if !datemath.IsValidDate(year, month, day) {
			return time.Time{}, false
		}
		t = time.Date(year, month, day, 0, 0, 0, 0, s.Location)
		if !explicitYear && s.PreferDatesFrom == PreferFuture && t.Before(datemath.StartOfDay(base)) {
			if e.day == 0 && e.month == base.Month() {
				break
			}
			t = datemath.AddMonths(t, 12)
		}

	default:
		t = base.AddDate(0, 0, e.dayOffset)
	}

	if e.hasWeekday {
		keepClock = false
		t = resolveWeekday(t, e.weekday, e.weekdayMode, s.PreferDatesFrom)
	}

	for _, sh := range e.shifts {
		t = datemath.Add(t, sh.n, sh.unit)
	}

	switch {
	case e.clock != nil:
		t = time.Date(t.Year(), t.Month(), t.Day(), e.clock.hour, e.clock.minute, e.clock.second, 0, s.Location)
	case !keepClock:
		t = datemath.StartOfDay(t)
	}

	return t, true
}

func resolveWeekday(from time.Time, weekday, mode int, prefer PreferDatesFrom) time.Time {
	switch mode {
	case 1:
		return datemath.NextWeekday(from, weekday, true)
	case -1:
		return datemath.PrevWeekday(from, weekday)
	case weekdayThis:
		return datemath.StartOf(from, datemath.Week).AddDate(0, 0, weekday)
	}

	if prefer == PreferCurrentPeriod {
		return datemath.StartOf(from, datemath.Week).AddDate(0, 0, weekday)
	}
	days := (weekday - datemath.WeekdayIndex(from) + 7) % 7
	return datemath.StartOfDay(from.AddDate(0, 0, days))
}

func parseClock(tok, next string) (clock, bool) {
	m := clockRe.FindStringSubmatch(tok)
	if m == nil {
		return clock{}, false
	}
	suffix := m[4]
	if suffix == "" && (next == "am" || next == "pm") {
		suffix = next
	}
	// A bare number is only a time when something marks it as one.
	if m[2] == "" && suffix == "" && next != "uur" {
		return clock{}, false
	}

	c := clock{hour: atoi(m[1])}
	if m[2] != "" {
		c.minute = atoi(m[2])
	}
	if m[3] != "" {
		c.second = atoi(m[3])
	}
	if c.hour > 24 || c.minute > 59 || c.second > 59 {
		return clock{}, false
	}

	switch suffix {
	case "am", "pm":
		if c.hour == 0 || c.hour > 12 {
			return clock{}, false
		}
		if c.hour == 12 {
			c.hour = 0
		}
		if suffix == "pm" {
			c.hour += 12
		}
	}

	if c.hour == 24 {
		c.hour = 0
	}
	return c, true
}

func parseCount(tok string) (int, bool) {
	if n, ok := counts[tok]; ok {
		return n, true
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func expandYear(s string) int {
	y := atoi(s)
	if len(s) == 2 {
		y += 2000
	}
	return y
}

func isMonthAfterFiller(tokens []string, i int) bool {
	for ; i < len(tokens); i++ {
		if tokens[i] == "van" || tokens[i] == "of" {
			continue
		}
		return isMonth(tokens[i])
	}
	return false
}

func isClockSuffix(tok string) bool {
	return tok == "am" || tok == "pm" || tok == "uur"
}

func isRelativeDay(tok string) bool { _, ok := relativeDays[tok]; return ok }
func isWeekday(tok string) bool     { _, ok := weekdays[tok]; return ok }
func isModifier(tok string) bool    { _, ok := modifiers[tok]; return ok }
func isUnit(tok string) bool        { _, ok := units[tok]; return ok }
func isMonth(tok string) bool       { _, ok := months[tok]; return ok }
func isDayPart(tok string) bool     { _, ok := dayParts[tok]; return ok }
func isCount(tok string) bool       { _, ok := parseCount(tok); return ok }

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
