package daterange

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"time-range-parser/pkg/datemath"
	"time-range-parser/pkg/naturaldate"
)

// splitRange finds "tussen A en B", "van A tot B" or "A - B". Text before the
// range keyword applies to both sides ("gisteren tussen 10 en 11").
func (e *Engine) splitRange(text string) (a, b string, ok bool) {
	for _, re := range []*regexp.Regexp{e.pat.rangeBetween, e.pat.rangeFromTo} {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		a, b = submatch(re, text, loc, "a"), submatch(re, text, loc, "b")
		prefix := strings.TrimSpace(text[:loc[0]])

		if e.mentionsDay(prefix + " " + b) {
			if n, err := strconv.Atoi(a); err == nil && n <= 24 {
				a += ":00"
			}
			b = e.pat.padBareHours(b)
		}
		if prefix != "" {
			a = prefix + " " + a
			b = prefix + " " + b
		}
		return a, b, true
	}

	trimmed := strings.TrimSpace(text)
	if loc := e.pat.rangeDash.FindStringSubmatchIndex(trimmed); loc != nil {
		a = strings.TrimSpace(submatch(e.pat.rangeDash, trimmed, loc, "a"))
		b = strings.TrimSpace(submatch(e.pat.rangeDash, trimmed, loc, "b"))
		return a, b, true
	}
	return "", "", false
}

func (e *Engine) mentionsDay(text string) bool {
	for w := range e.vocab.RelativeDays {
		if strings.Contains(text, w) {
			return true
		}
	}
	for w := range e.vocab.Weekdays {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// resolveRange resolves both sides of an explicit range. The end inherits the
// start's date when it only names a clock time, and moves to the next day when
// that would put it before the start.
func (e *Engine) resolveRange(ctx context.Context, text string, now time.Time, tz string) (Interval, bool, error) {
	a, b, ok := e.splitRange(text)
	if !ok {
		return Interval{}, false, nil
	}
	e.l.Debugf(ctx, "daterange.resolveRange: %q to %q", a, b)
	baseNow := now.Format(TimestampLayout)

	if sp, ok := e.weekdayRangeThisWeek(a, b, now); ok {
		return finalize(sp, tz, NewAssumptions("explicit_range").
			Set("range_split", []string{a, b}).
			Set("base_now", baseNow).
			Set("weekday_range_mode", "this_week")), true, nil
	}

	p := e.pat
	start, ok := e.parseMoment(ctx, a, now, naturaldate.PreferCurrentPeriod)
	if !ok {
		return Interval{}, true, &InputError{Err: ErrInvalidRangeEndpoint, Input: a, Side: SideStart}
	}
	start = p.dateOnly(start, a)

	aHasDate, bHasDate, bHasTime := p.hasDate(a), p.hasDate(b), p.hasTime(b)
	var end time.Time
	if bHasDate {
		if end, ok = e.parseMoment(ctx, b, now, naturaldate.PreferCurrentPeriod); !ok {
			return Interval{}, true, &InputError{Err: ErrInvalidRangeEndpoint, Input: b, Side: SideEnd}
		}
		end = p.dateOnly(end, b)
	} else {
		if end, ok = e.parseMoment(ctx, b, start, naturaldate.PreferCurrentPeriod); !ok {
			return Interval{}, true, &InputError{Err: ErrInvalidRangeEndpoint, Input: b, Side: SideEnd}
		}
		if bHasTime {
			end = time.Date(start.Year(), start.Month(), start.Day(), end.Hour(), end.Minute(), end.Second(), 0, start.Location())
		}
		end = p.dateOnly(end, b)
	}

	inferredNextDay := false
	if end.Before(start) && !bHasDate && bHasTime {
		end = end.AddDate(0, 0, 1)
		inferredNextDay = true
	}
	if bHasDate && !bHasTime {
		end = datemath.EndOfDay(end)
	}
	if !aHasDate && bHasDate && !sameDay(start, end) {
		start = time.Date(end.Year(), end.Month(), end.Day(), start.Hour(), start.Minute(), start.Second(), 0, start.Location())
	}
	if start.Month() == end.Month() && end.Year() > start.Year() && !p.fourDigits.MatchString(b) {
		end = time.Date(start.Year(), end.Month(), end.Day(), end.Hour(), end.Minute(), end.Second(), 0, end.Location())
	}
	if start.After(end) {
		start, end = end, start
	}

	return finalize(span{start, end}, tz, NewAssumptions("explicit_range").
		Set("range_split", []string{a, b}).
		Set("base_now", baseNow).
		Set("end_time_only", !bHasDate && bHasTime).
		Set("inferred_next_day", inferredNextDay)), true, nil
}

// weekdayRangeThisWeek handles "maandag tot woensdag": both days in the
// current week, the end rolling a week ahead when it precedes the start.
func (e *Engine) weekdayRangeThisWeek(a, b string, now time.Time) (span, bool) {
	wa, okA := e.vocab.Weekdays[strings.TrimSpace(a)]
	wb, okB := e.vocab.Weekdays[strings.TrimSpace(b)]
	if !okA || !okB {
		return span{}, false
	}

	monday := datemath.StartOf(now, datemath.Week)
	start := monday.AddDate(0, 0, wa)
	end := datemath.EndOfDay(monday.AddDate(0, 0, wb))
	if end.Before(start) {
		end = end.AddDate(0, 0, 7)
	}
	return span{start, end}, true
}

// dateOnly moves t to the start of its day when text names a date but no time.
func (p *patterns) dateOnly(t time.Time, text string) time.Time {
	if p.hasDate(text) && !p.hasTime(text) {
		return datemath.StartOfDay(t)
	}
	return t.Truncate(time.Second)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
