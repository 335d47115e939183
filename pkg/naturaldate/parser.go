// Package naturaldate parses a single Dutch or English date/time expression
// into an instant.
//
// Parsing is layered:
//  1. A strict token grammar for relative days, weekdays, modifiers
//     ("volgende week", "last month"), amounts ("over 2 weken", "3 days ago"),
//     day-first dates and clock times.
//  2. Absolute formats through github.com/araddon/dateparse (RFC3339, "Jan 2 2006", ...).
//  3. English free phrases through github.com/olebedev/when, accepted only when
//     the phrase covers the whole input.
package naturaldate

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrUnrecognized is returned when no layer understood the text.
var ErrUnrecognized = errors.New("naturaldate: unrecognized expression")

// PreferDatesFrom decides which occurrence an incomplete date resolves to.
type PreferDatesFrom int

const (
	// PreferFuture picks the next occurrence ("maart" in April is next March).
	PreferFuture PreferDatesFrom = iota
	// PreferCurrentPeriod picks the occurrence in the current period
	// ("vrijdag" is the Friday of this week, even when it already passed).
	PreferCurrentPeriod
)

// Settings controls a single Parse call.
type Settings struct {
	// Location the result is expressed in. Defaults to UTC.
	Location *time.Location
	// RelativeBase is the "now" every relative expression is computed from.
	RelativeBase time.Time
	// PreferDatesFrom resolves incomplete dates.
	PreferDatesFrom PreferDatesFrom
}

// Parser is safe for concurrent use.
type Parser struct {
	nlp *when.Parser
}

// New creates a Parser.
func New() *Parser {
	nlp := when.New(nil)
	nlp.Add(en.All...)
	nlp.Add(common.All...)
	return &Parser{nlp: nlp}
}

var (
	isoTimeSepRe = regexp.MustCompile(`(\d)t(\d)`)
	zuluRe       = regexp.MustCompile(`(\d)z$`)
	digitRe      = regexp.MustCompile(`\d`)
)

// Parse resolves text relative to s.RelativeBase. Results without a clock
// component are returned at midnight, except pure relative words ("morgen",
// "next week") which keep the clock of the relative base.
func (p *Parser) Parse(text string, s Settings) (time.Time, error) {
	if s.Location == nil {
		s.Location = time.UTC
	}
	if s.RelativeBase.IsZero() {
		s.RelativeBase = time.Now()
	}

	folded := strings.TrimSpace(Fold(text))
	if folded == "" {
		return time.Time{}, ErrUnrecognized
	}

	if t, ok := parseGrammar(folded, s); ok {
		return t, nil
	}

	if t, ok := parseAbsolute(folded, s.Location); ok {
		return t, nil
	}

	if t, ok := p.parsePhrase(folded, s); ok {
		return t, nil
	}

	return time.Time{}, ErrUnrecognized
}

func parseAbsolute(text string, loc *time.Location) (time.Time, bool) {
	// Bare numbers are hours or days, never timestamps.
	if len(text) < 6 || !digitRe.MatchString(text) {
		return time.Time{}, false
	}

	candidate := isoTimeSepRe.ReplaceAllString(text, "${1}T${2}")
	candidate = zuluRe.ReplaceAllString(candidate, "${1}Z")

	t, err := dateparse.ParseIn(candidate, loc, dateparse.PreferMonthFirst(false), dateparse.RetryAmbiguousDateWithSwap(true))
	// A time without a date comes back in year 0.
	if err != nil || t.Year() == 0 {
		return time.Time{}, false
	}
	return t.In(loc), true
}

func (p *Parser) parsePhrase(text string, s Settings) (time.Time, bool) {
	base := s.RelativeBase.In(s.Location)
	r, err := p.nlp.Parse(text, base)
	if err != nil || r == nil {
		return time.Time{}, false
	}

	rest := text[:r.Index] + " " + text[r.Index+len(r.Text):]
	for _, tok := range strings.Fields(rest) {
		if !fillers[tok] {
			return time.Time{}, false
		}
	}
	return r.Time.In(s.Location), true
}
