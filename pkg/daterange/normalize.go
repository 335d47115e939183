package daterange

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"time-range-parser/pkg/datemath"
)

// normalizeClock rewrites Dutch clock idioms into H:MM:
// "half 10" -> "9:30", "kwart over 3" -> "3:15", "kwart voor 3" -> "2:45",
// "van 9 tot 17 uur" -> "van 9:00 tot 17:00" and "10 uur" -> "10:00".
func (p *patterns) normalizeClock(text string) string {
	text = replaceSubmatch(p.half, text, func(m []string) string {
		return strconv.Itoa(previousHour(m[1])) + ":30"
	})
	text = replaceSubmatch(p.quarterPast, text, func(m []string) string {
		return m[1] + ":15"
	})
	text = replaceSubmatch(p.quarterTo, text, func(m []string) string {
		return strconv.Itoa(previousHour(m[1])) + ":45"
	})

	if loc := p.timeRange.FindStringSubmatchIndex(text); loc != nil {
		from, start := text[loc[2]:loc[3]], withMinutes(text[loc[4]:loc[5]])
		connector, end := text[loc[8]:loc[9]], withMinutes(text[loc[10]:loc[11]])
		return text[:loc[0]] + from + " " + start + " " + connector + " " + end + text[loc[1]:]
	}
	return replaceSubmatch(p.dutchHour, text, func(m []string) string {
		return m[1] + ":00"
	})
}

func previousHour(s string) int {
	h, _ := strconv.Atoi(s)
	if h == 0 {
		return 23
	}
	return h - 1
}

func withMinutes(clock string) string {
	if strings.Contains(clock, ":") {
		return clock
	}
	return clock + ":00"
}

// replaceSubmatch is regexp.ReplaceAllStringFunc with access to the submatches.
func replaceSubmatch(re *regexp.Regexp, s string, fn func(m []string) string) string {
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringSubmatchIndex(s, -1) {
		m := make([]string, len(loc)/2)
		for i := range m {
			if loc[2*i] >= 0 {
				m[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(fn(m))
		last = loc[1]
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// padBareHours turns standalone numbers up to 24 into clock times ("2 gisteren"
// -> "2:00 gisteren"). Numbers touching ':' or '.' are left alone.
func (p *patterns) padBareHours(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range p.bareHour.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && strings.ContainsAny(text[loc[0]-1:loc[0]], ":.") {
			continue
		}
		if loc[1] < len(text) && strings.ContainsAny(text[loc[1]:loc[1]+1], ":.") {
			continue
		}
		n, _ := strconv.Atoi(text[loc[0]:loc[1]])
		if n > 24 {
			continue
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(strconv.Itoa(n) + ":00")
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func (p *patterns) hasTime(text string) bool {
	return p.timeHint.MatchString(text)
}

func (p *patterns) hasDate(text string) bool {
	return p.dateHint.MatchString(text)
}

// extractDatePart returns the first explicit date in text, or text itself.
func (p *patterns) extractDatePart(text string) string {
	if m := p.dateExtract.FindString(text); m != "" {
		return m
	}
	return text
}

func (p *patterns) hasWeekday(text string) bool {
	return p.weekday.MatchString(text)
}

// duration is an amount of a calendar or clock unit, e.g. "3 maanden".
type duration struct {
	n    int
	unit datemath.Unit
}

func (d duration) addTo(t time.Time) time.Time {
	return datemath.Add(t, d.n, d.unit)
}

func (d duration) String() string {
	return strconv.Itoa(d.n) + " " + string(d.unit)
}

var durationIndicators = []string{"voor", "lang", "duur", "duurt", "over", "binnen", "na"}

// parseDuration finds an amount like "2 uur" or "3 weken". A small hour amount
// next to a date ("morgen 10 uur") is a clock time, not a duration.
func (p *patterns) parseDuration(text string) (duration, bool) {
	loc := p.duration.FindStringSubmatchIndex(text)
	if loc == nil {
		return duration{}, false
	}
	n, err := strconv.Atoi(text[loc[2]:loc[3]])
	if err != nil {
		return duration{}, false
	}
	u := text[loc[4]:loc[5]]

	var unit datemath.Unit
	switch u {
	case "minuten", "minuut", "mins", "min":
		unit = datemath.Minute
	case "uren", "uur", "hours", "hour", "h":
		unit = datemath.Hour
	case "dagen", "dag", "days", "day", "d":
		unit = datemath.Day
	case "weken", "week", "weeks", "w":
		unit = datemath.Week
	case "maanden", "maand", "months", "month":
		unit = datemath.Month
	default:
		unit = datemath.Year
	}

	if unit == datemath.Hour && n <= 24 {
		before := strings.TrimSpace(text[:loc[0]])
		indicated := false
		for _, ind := range durationIndicators {
			if strings.HasSuffix(before, ind) {
				indicated = true
				break
			}
		}
		if !indicated && (p.hasDate(text) || containsAny(text, "morgen", "vandaag", "overmorgen")) {
			return duration{}, false
		}
	}
	return duration{n: n, unit: unit}, true
}

// periodBounds expands "deze maand" or "next week" around anchor to the
// whole unit. Weekday references are handled elsewhere.
func (p *patterns) periodBounds(text string, units map[string]datemath.Unit, anchor time.Time) (span, bool) {
	if p.hasWeekday(text) {
		return span{}, false
	}
	m := p.periodUnit.FindStringSubmatch(text)
	if m == nil {
		return span{}, false
	}
	unit := units[m[1]]
	return span{datemath.StartOf(anchor, unit), datemath.EndOf(anchor, unit)}, true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
