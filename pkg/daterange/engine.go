// Package daterange resolves Dutch and English natural-language date and time
// expressions ("morgen 15:00", "Q4 2025", "tussen maandag en woensdag",
// "vorige winter") into concrete start/end intervals in a named timezone.
package daterange

import (
	"context"
	"errors"
	"strings"
	"time"

	"time-range-parser/pkg/log"
	"time-range-parser/pkg/naturaldate"
)

const (
	DefaultTimezone       = "Europe/Amsterdam"
	DefaultEventMinutes   = 60
	DefaultRecurrenceSize = 10
)

// Config configures an Engine.
type Config struct {
	// DefaultTimezone is used when a call does not name one.
	DefaultTimezone string
	// DefaultEventMinutes is the length of a single moment with a clock time.
	DefaultEventMinutes int
	// Vocabulary overrides the built-in word tables.
	Vocabulary *Vocabulary
	Logger     log.Logger
	// Clock supplies "now" when a call does not pin it.
	Clock func() time.Time
}

// ResolveOptions are the per call settings of Resolve.
type ResolveOptions struct {
	// Timezone is an IANA name or alias. Empty means the engine default.
	Timezone string
	// Now pins the reference instant. Zero means the engine clock.
	Now time.Time
	// FiscalStartMonth (1..12) shifts quarters and half years. Zero means January.
	FiscalStartMonth int
	// DefaultMinutes overrides the engine default event length.
	DefaultMinutes int
}

// Engine is immutable after New and safe for concurrent use.
type Engine struct {
	l               log.Logger
	vocab           *Vocabulary
	pat             *patterns
	parser          *naturaldate.Parser
	clock           func() time.Time
	defaultTimezone string
	defaultMinutes  int
}

var errInvalidDefaultTimezone = errors.New("daterange: invalid default timezone")

// New builds an Engine, compiling every pattern once.
func New(cfg Config) (*Engine, error) {
	vocab := cfg.Vocabulary
	if vocab == nil {
		vocab = BuildVocabulary()
	}
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = DefaultTimezone
	}
	if _, err := time.LoadLocation(cfg.DefaultTimezone); err != nil {
		return nil, errInvalidDefaultTimezone
	}
	if cfg.DefaultEventMinutes <= 0 {
		cfg.DefaultEventMinutes = DefaultEventMinutes
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &Engine{
		l:               cfg.Logger,
		vocab:           vocab,
		pat:             compilePatterns(vocab),
		parser:          naturaldate.New(),
		clock:           cfg.Clock,
		defaultTimezone: cfg.DefaultTimezone,
		defaultMinutes:  cfg.DefaultEventMinutes,
	}, nil
}

// DefaultTimezone returns the timezone used when a call names none.
func (e *Engine) DefaultTimezone() string {
	return e.defaultTimezone
}

// Vocabulary returns the engine's word tables. Callers must not modify them.
func (e *Engine) Vocabulary() *Vocabulary {
	return e.vocab
}

// NormalizeTimezone maps aliases and city names to IANA identifiers.
func (e *Engine) NormalizeTimezone(tz string) string {
	return e.vocab.NormalizeTimezone(tz, e.defaultTimezone)
}

// Location normalizes and loads tz.
func (e *Engine) Location(tz string) (*time.Location, string, error) {
	return e.vocab.LoadLocation(tz, e.defaultTimezone)
}

// Now returns the reference instant for a call: pinned when given, the engine
// clock otherwise, expressed in loc.
func (e *Engine) Now(pinned time.Time, loc *time.Location) time.Time {
	if pinned.IsZero() {
		pinned = e.clock()
	}
	return pinned.In(loc)
}

var resolverChain = []struct {
	kind    string
	resolve resolveFunc
}{
	{"quarter", resolveQuarter},
	{"relative_quarter", resolveRelativeQuarter},
	{"year_boundary", resolveYearBoundary},
	{"week_number", resolveWeekNumber},
	{"half_year", resolveHalfYear},
	{"ordinal_weekday", resolveOrdinalWeekday},
	{"compound_day", resolveCompoundDay},
	{"season", resolveSeason},
	{"moving_holiday", resolveMovingHoliday},
	{"holiday", resolveFixedHoliday},
	{"weekend", resolveWeekend},
	{"past_period", resolvePastPeriod},
	{"future_period", resolveFuturePeriod},
	{"in_duration", resolveInDuration},
	{"ago", resolveAgo},
	{"dutch_day_month", resolveDayMonth},
	{"month_expr", resolveMonthExpr},
	{"vague_time", resolveVague},
}

// Resolve turns text into an interval. Specialized expressions are tried
// first, then explicit ranges ("van ... tot ..."), then a single moment.
func (e *Engine) Resolve(ctx context.Context, text string, opts ResolveOptions) (Interval, error) {
	text = strings.Trim(strings.TrimSpace(text), `'"`)
	if text == "" {
		return Interval{}, inputError(ErrEmptyInput, text)
	}

	loc, tz, err := e.Location(opts.Timezone)
	if err != nil {
		return Interval{}, err
	}
	now := e.Now(opts.Now, loc)
	minutes := opts.DefaultMinutes
	if minutes <= 0 {
		minutes = e.defaultMinutes
	}
	baseNow := now.Format(TimestampLayout)

	lowered := naturaldate.Fold(text)
	e.l.Debugf(ctx, "daterange.Resolve: text=%q now=%s tz=%s", text, baseNow, tz)

	if e.vocab.NowKeywords[lowered] {
		return finalize(span{now, now.Add(time.Duration(minutes) * time.Minute)}, tz,
			NewAssumptions("now_keyword_with_default_duration").
				Set("default_minutes", minutes).
				Set("base_now", baseNow)), nil
	}

	q := query{text: lowered, now: now, fiscal: opts.FiscalStartMonth, vocab: e.vocab, pat: e.pat}
	for _, r := range resolverChain {
		sp, ok, err := r.resolve(q)
		if err != nil {
			e.l.Warnf(ctx, "daterange.Resolve.%s: %v", r.kind, err)
			return Interval{}, err
		}
		if ok {
			e.l.Debugf(ctx, "daterange.Resolve: matched %s", r.kind)
			return finalize(sp, tz, NewAssumptions(r.kind).Set("base_now", baseNow)), nil
		}
	}

	normalized := e.pat.normalizeClock(lowered)
	if iv, ok, err := e.resolveRange(ctx, normalized, now, tz); ok || err != nil {
		return iv, err
	}
	return e.resolveMoment(ctx, text, lowered, normalized, now, tz, minutes)
}

// resolveMoment handles a single moment: a duration, a whole period, a clock
// time with the default length, or a whole day.
func (e *Engine) resolveMoment(ctx context.Context, text, lowered, normalized string, now time.Time, tz string, minutes int) (Interval, error) {
	baseNow := now.Format(TimestampLayout)
	start, ok := e.parseMoment(ctx, normalized, now, naturaldate.PreferFuture)
	if !ok {
		return Interval{}, inputError(ErrUnparseableText, text)
	}

	if d, ok := e.pat.parseDuration(lowered); ok {
		return finalize(span{start, d.addTo(start)}, tz,
			NewAssumptions("duration").Set("duration", d.String()).Set("base_now", baseNow)), nil
	}
	if sp, ok := e.pat.periodBounds(lowered, e.vocab.PeriodUnits, start); ok {
		return finalize(sp, tz, NewAssumptions("period_bounds").Set("base_now", baseNow)), nil
	}
	if e.pat.hasTime(lowered) {
		return finalize(span{start, start.Add(time.Duration(minutes) * time.Minute)}, tz,
			NewAssumptions("time_with_default_duration").
				Set("default_minutes", minutes).
				Set("base_now", baseNow)), nil
	}
	return finalize(wholeDay(start), tz, NewAssumptions("date_whole_day").Set("base_now", baseNow)), nil
}

// finalize drops sub-second precision from both ends.
func finalize(sp span, tz string, a *Assumptions) Interval {
	return Interval{
		Start:       sp.start.Truncate(time.Second),
		End:         sp.end.Truncate(time.Second),
		Timezone:    tz,
		Assumptions: a,
	}
}
