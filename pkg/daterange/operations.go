package daterange

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"time-range-parser/pkg/datemath"
	"time-range-parser/pkg/naturaldate"
)

// Conversion is an interval resolved in one timezone and shown in another.
type Conversion struct {
	Input              string
	SourceTimezone     string
	TargetTimezone     string
	SourceStart        time.Time
	TargetStart        time.Time
	SourceEnd          time.Time
	TargetEnd          time.Time
	UTCOffsetDiffHours float64
}

// MarshalJSON implements json.Marshaler.
func (c Conversion) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"input":                 c.Input,
		"source_timezone":       c.SourceTimezone,
		"target_timezone":       c.TargetTimezone,
		"source_start":          c.SourceStart.Format(TimestampLayout),
		"target_start":          c.TargetStart.Format(TimestampLayout),
		"source_end":            c.SourceEnd.Format(TimestampLayout),
		"target_end":            c.TargetEnd.Format(TimestampLayout),
		"utc_offset_diff_hours": c.UTCOffsetDiffHours,
	})
}

// ConvertTimezone resolves text in sourceTZ (engine default when empty) and
// re-expresses both ends in targetTZ.
func (e *Engine) ConvertTimezone(ctx context.Context, text, targetTZ, sourceTZ string, now time.Time) (Conversion, error) {
	targetLoc, target, err := e.Location(targetTZ)
	if err != nil {
		return Conversion{}, err
	}
	iv, err := e.Resolve(ctx, text, ResolveOptions{Timezone: sourceTZ, Now: now})
	if err != nil {
		return Conversion{}, err
	}

	targetStart := iv.Start.In(targetLoc)
	_, sourceOffset := iv.Start.Zone()
	_, targetOffset := targetStart.Zone()
	return Conversion{
		Input:              text,
		SourceTimezone:     iv.Timezone,
		TargetTimezone:     target,
		SourceStart:        iv.Start,
		TargetStart:        targetStart,
		SourceEnd:          iv.End,
		TargetEnd:          iv.End.In(targetLoc),
		UTCOffsetDiffHours: float64(targetOffset-sourceOffset) / 3600,
	}, nil
}

// Recurrence is the expansion of a recurrence phrase into concrete instants.
type Recurrence struct {
	Input    string
	Timezone string
	Rule     RecurrenceRule
	Dates    []time.Time
}

// MarshalJSON implements json.Marshaler.
func (r Recurrence) MarshalJSON() ([]byte, error) {
	dates := make([]string, len(r.Dates))
	for i, d := range r.Dates {
		dates[i] = d.Format(TimestampLayout)
	}
	return json.Marshal(map[string]any{
		"input":    r.Input,
		"timezone": r.Timezone,
		"rule":     r.Rule,
		"dates":    dates,
	})
}

var recurrenceKeywordUnits = []struct {
	words []string
	unit  datemath.Unit
}{
	{[]string{"dagelijks", "daily"}, datemath.Day},
	{[]string{"wekelijks", "weekly"}, datemath.Week},
	{[]string{"maandelijks", "monthly"}, datemath.Month},
	{[]string{"jaarlijks", "yearly", "annually"}, datemath.Year},
}

// ExpandRecurrence turns "elke vrijdag", "every 2 weeks" or "maandelijks" into
// count instants starting at now (or the next matching weekday).
func (e *Engine) ExpandRecurrence(ctx context.Context, text, tz string, now time.Time, count int) (Recurrence, error) {
	loc, tz, err := e.Location(tz)
	if err != nil {
		return Recurrence{}, err
	}
	if count <= 0 {
		count = DefaultRecurrenceSize
	}
	current := e.Now(now, loc)
	normalized := naturaldate.Fold(text)

	// Only "elke 2 weken" sets the interval, "elke maandag om 9:00" keeps 1.
	rule := RecurrenceRule{Interval: 1}
	if m := e.pat.recurrenceInterval.FindStringSubmatch(normalized); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			rule.Interval = n
		}
	}

	for _, name := range e.vocab.WeekdayNames {
		if strings.Contains(normalized, name) {
			wd := e.vocab.Weekdays[name]
			rule.Weekday = &wd
			rule.Unit = datemath.Week
			break
		}
	}
	if rule.Unit == "" {
		for i, re := range e.pat.unitWords {
			if re.MatchString(normalized) {
				rule.Unit = e.vocab.DurationUnits[e.vocab.DurationUnitNames[i]]
				break
			}
		}
	}
	for _, k := range recurrenceKeywordUnits {
		if containsAny(normalized, k.words...) {
			rule.Unit, rule.Interval = k.unit, 1
			break
		}
	}
	if rule.Unit == "" {
		if !containsAny(normalized, e.vocab.RecurrenceKeywords...) {
			return Recurrence{}, inputError(ErrRecurrencePatternUnrecognized, text)
		}
		rule.Unit = datemath.Day
	}

	if rule.Weekday != nil && datemath.WeekdayIndex(current) != *rule.Weekday {
		current = datemath.NextWeekday(current, *rule.Weekday, false)
	}
	current = current.Truncate(time.Second)

	e.l.Debugf(ctx, "daterange.ExpandRecurrence: %q -> every %d %s", text, rule.Interval, rule.Unit)
	dates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, current)
		current = datemath.Add(current, rule.Interval, rule.Unit)
	}
	return Recurrence{Input: text, Timezone: tz, Rule: rule, Dates: dates}, nil
}

// DurationResult is the difference between the starts of two resolved expressions.
type DurationResult struct {
	InputStart    string
	InputEnd      string
	Timezone      string
	Start         time.Time
	End           time.Time
	TotalSeconds  float64
	TotalDays     float64
	BusinessDays  int
	HumanReadable string
}

// MarshalJSON implements json.Marshaler.
func (d DurationResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"input_start": d.InputStart,
		"input_end":   d.InputEnd,
		"timezone":    d.Timezone,
		"start_iso":   d.Start.Format(TimestampLayout),
		"end_iso":     d.End.Format(TimestampLayout),
		"duration": map[string]any{
			"total_days":     d.TotalDays,
			"total_seconds":  d.TotalSeconds,
			"business_days":  d.BusinessDays,
			"human_readable": d.HumanReadable,
		},
	})
}

// CalculateDuration resolves both expressions and measures start to start.
// Business days count the Monday to Friday dates in [start, end), negative
// when end precedes start.
func (e *Engine) CalculateDuration(ctx context.Context, startText, endText, tz string, now time.Time) (DurationResult, error) {
	opts := ResolveOptions{Timezone: tz, Now: now}
	a, err := e.Resolve(ctx, startText, opts)
	if err != nil {
		return DurationResult{}, err
	}
	b, err := e.Resolve(ctx, endText, opts)
	if err != nil {
		return DurationResult{}, err
	}

	diff := b.Start.Sub(a.Start)
	return DurationResult{
		InputStart:    startText,
		InputEnd:      endText,
		Timezone:      a.Timezone,
		Start:         a.Start,
		End:           b.Start,
		TotalSeconds:  diff.Seconds(),
		TotalDays:     diff.Hours() / 24,
		BusinessDays:  BusinessDays(a.Start, b.Start),
		HumanReadable: HumanizeDuration(a.Start, b.Start),
	}, nil
}

// BusinessDays counts Monday to Friday calendar dates from from up to, but not
// including, the date of to. The count is negative when to precedes from.
func BusinessDays(from, to time.Time) int {
	sign := 1
	if to.Before(from) {
		from, to = to, from
		sign = -1
	}

	n := 0
	end := datemath.StartOfDay(to)
	for d := datemath.StartOfDay(from); d.Before(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n++
		}
	}
	return sign * n
}

// HumanizeDuration describes the calendar distance from from to to in English,
// e.g. "1 year 2 months 3 days" or "-4 hours 30 minutes".
func HumanizeDuration(from, to time.Time) string {
	prefix := ""
	if to.Before(from) {
		from, to = to, from
		prefix = "-"
	}

	years, months := 0, 0
	for !datemath.AddMonths(from, 12*(years+1)).After(to) {
		years++
	}
	cursor := datemath.AddMonths(from, 12*years)
	for !datemath.AddMonths(cursor, months+1).After(to) {
		months++
	}
	cursor = datemath.AddMonths(cursor, months)
	rest := to.Sub(cursor)

	days := int(rest / (24 * time.Hour))
	rest -= time.Duration(days) * 24 * time.Hour
	parts := []struct {
		n    int
		unit string
	}{
		{years, "year"},
		{months, "month"},
		{days / 7, "week"},
		{days % 7, "day"},
		{int(rest / time.Hour), "hour"},
		{int(rest % time.Hour / time.Minute), "minute"},
		{int(rest % time.Minute / time.Second), "second"},
	}

	var words []string
	for _, p := range parts {
		if p.n == 0 {
			continue
		}
		unit := p.unit
		if p.n != 1 {
			unit += "s"
		}
		words = append(words, fmt.Sprintf("%s%d %s", prefix, p.n, unit))
	}
	if len(words) == 0 {
		return "0 seconds"
	}
	return strings.Join(words, " ")
}
