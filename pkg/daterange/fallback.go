package daterange

import (
	"context"
	"regexp"
	"strings"
	"time"

	"time-range-parser/pkg/datemath"
	"time-range-parser/pkg/naturaldate"
)

// momentStrategy is one step of the single moment ladder. Steps run in order
// and the first that understands the text wins.
type momentStrategy struct {
	name string
	run  func(e *Engine, text string, base time.Time, prefer naturaldate.PreferDatesFrom) (time.Time, bool)
}

var momentStrategies = []momentStrategy{
	{"next_weekday", parseNextWeekdayDateOnly},
	{"prev_weekday", parsePrevWeekday},
	{"general", parseGeneral},
	{"extracted_date", parseExtractedDate},
	{"next_weekday_substituted", parseNextWeekdaySubstituted},
	{"prev_weekday_substituted", parsePrevWeekdaySubstituted},
}

// parseMoment resolves text to a single instant relative to base, floored to
// whole seconds.
func (e *Engine) parseMoment(ctx context.Context, text string, base time.Time, prefer naturaldate.PreferDatesFrom) (time.Time, bool) {
	for _, s := range momentStrategies {
		if t, ok := s.run(e, text, base, prefer); ok {
			e.l.Debugf(ctx, "daterange.parseMoment: %q via %s -> %s", text, s.name, t.Format(TimestampLayout))
			return t.In(base.Location()).Truncate(time.Second), true
		}
	}
	e.l.Debugf(ctx, "daterange.parseMoment: could not parse %q", text)
	return time.Time{}, false
}

// "volgende vrijdag" without a clock time is the friday of next week.
func parseNextWeekdayDateOnly(e *Engine, text string, base time.Time, _ naturaldate.PreferDatesFrom) (time.Time, bool) {
	if e.pat.hasTime(text) {
		return time.Time{}, false
	}
	t, _, ok := e.nextWeekday(text, base)
	return t, ok
}

// "vorige maandag" without a clock time is the monday before base.
func parsePrevWeekday(e *Engine, text string, base time.Time, _ naturaldate.PreferDatesFrom) (time.Time, bool) {
	if e.pat.hasTime(text) {
		return time.Time{}, false
	}
	t, _, ok := e.prevWeekday(text, base)
	return t, ok
}

func parseGeneral(e *Engine, text string, base time.Time, prefer naturaldate.PreferDatesFrom) (time.Time, bool) {
	cleaned := e.pat.atDigit.ReplaceAllString(e.pat.normalizeClock(text), "$1")
	return e.parse(cleaned, base, prefer)
}

func parseExtractedDate(e *Engine, text string, base time.Time, prefer naturaldate.PreferDatesFrom) (time.Time, bool) {
	part := e.pat.extractDatePart(text)
	if part == text {
		return time.Time{}, false
	}
	return e.parse(part, base, prefer)
}

// "volgende vrijdag om 15:00" the general parser could not read: retry with
// the weekday replaced by its date, keeping just the date if that fails too.
func parseNextWeekdaySubstituted(e *Engine, text string, base time.Time, prefer naturaldate.PreferDatesFrom) (time.Time, bool) {
	day, loc, ok := e.nextWeekday(text, base)
	if !ok {
		return time.Time{}, false
	}
	return e.withSubstitutedDate(text, loc, day, base, prefer), true
}

func parsePrevWeekdaySubstituted(e *Engine, text string, base time.Time, prefer naturaldate.PreferDatesFrom) (time.Time, bool) {
	day, loc, ok := e.prevWeekday(text, base)
	if !ok {
		return time.Time{}, false
	}
	return e.withSubstitutedDate(text, loc, day, base, prefer), true
}

func (e *Engine) withSubstitutedDate(text string, loc []int, day, base time.Time, prefer naturaldate.PreferDatesFrom) time.Time {
	if !e.pat.hasTime(text) {
		return day
	}
	if t, ok := e.parse(substituteDateToken(text, loc, day), base, prefer); ok {
		return t
	}
	return day
}

// substituteDateToken replaces text[loc[0]:loc[1]] with day as YYYY-MM-DD and
// collapses the surrounding whitespace.
func substituteDateToken(text string, loc []int, day time.Time) string {
	replaced := text[:loc[0]] + " " + day.Format("2006-01-02") + " " + text[loc[1]:]
	return strings.Join(strings.Fields(replaced), " ")
}

func (e *Engine) nextWeekday(text string, base time.Time) (time.Time, []int, bool) {
	return e.weekdayFrom(e.pat.nextWeekday, text, func(wd int) time.Time {
		return datemath.NextWeekday(base, wd, true)
	})
}

func (e *Engine) prevWeekday(text string, base time.Time) (time.Time, []int, bool) {
	return e.weekdayFrom(e.pat.prevWeekday, text, func(wd int) time.Time {
		return datemath.PrevWeekday(base, wd)
	})
}

func (e *Engine) weekdayFrom(re *regexp.Regexp, text string, pick func(wd int) time.Time) (time.Time, []int, bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return time.Time{}, nil, false
	}
	wd, ok := e.vocab.Weekdays[text[loc[2]:loc[3]]]
	if !ok {
		return time.Time{}, nil, false
	}
	return pick(wd), loc[:2], true
}

func (e *Engine) parse(text string, base time.Time, prefer naturaldate.PreferDatesFrom) (time.Time, bool) {
	t, err := e.parser.Parse(text, naturaldate.Settings{
		Location:        base.Location(),
		RelativeBase:    base,
		PreferDatesFrom: prefer,
	})
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
