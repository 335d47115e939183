package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"time-range-parser/internal/timerange"
	"time-range-parser/pkg/datemath"
	"time-range-parser/pkg/daterange"
)

var (
	invalidQuarterHint = regexp.MustCompile(`(?i)q[5-9]`)
	invalidWeekHint    = regexp.MustCompile(`(?i)week\s*([6-9]\d|[1-9]\d{2,})`)
)

// Resolve turns text into an interval. Configured custom events win over the engine.
func (uc *implUseCase) Resolve(ctx context.Context, input timerange.ResolveInput) (timerange.ResolveOutput, error) {
	if err := uc.checkText(input.Text); err != nil {
		return timerange.ResolveOutput{}, err
	}

	fiscal := input.FiscalStartMonth
	if fiscal == 0 {
		fiscal = uc.cfg.FiscalStartMonth
	}
	if fiscal < 1 || fiscal > 12 {
		return timerange.ResolveOutput{}, timerange.ErrInvalidFiscalMonth
	}

	cc, err := uc.resolveContext(ctx, input.Timezone, input.NowISO)
	if err != nil {
		return timerange.ResolveOutput{}, err
	}
	uc.l.Infof(ctx, "timerange.usecase.Resolve: text=%q timezone=%s fiscal_start=%d", input.Text, cc.tz, fiscal)

	if iv, ok := uc.customEvent(ctx, input.Text, cc); ok {
		return timerange.ResolveOutput{Input: input.Text, Interval: iv}, nil
	}

	iv, err := uc.engine.Resolve(ctx, input.Text, daterange.ResolveOptions{
		Timezone:         cc.tz,
		Now:              cc.now,
		FiscalStartMonth: fiscal,
	})
	if err != nil {
		return timerange.ResolveOutput{}, withHint(input.Text, err)
	}

	return timerange.ResolveOutput{Input: input.Text, Interval: iv}, nil
}

func (uc *implUseCase) customEvent(ctx context.Context, text string, cc callContext) (daterange.Interval, bool) {
	key := strings.ToLower(strings.Trim(strings.TrimSpace(text), `'"`))
	value, ok := uc.customEvents[key]
	if !ok {
		return daterange.Interval{}, false
	}

	day, err := time.ParseInLocation("2006-01-02", value, cc.loc)
	if err != nil {
		uc.l.Warnf(ctx, "timerange.usecase.customEvent: bad date %q for %q: %v", value, key, err)
		return daterange.Interval{}, false
	}

	return daterange.Interval{
		Start:       day,
		End:         datemath.EndOfDay(day),
		Timezone:    cc.tz,
		Assumptions: daterange.NewAssumptions("custom_event").Set("event", key),
	}, true
}

// ErrorHint suggests a fix for common out-of-range inputs.
func ErrorHint(text string) string {
	switch {
	case invalidQuarterHint.MatchString(text):
		return timerange.HintInvalidQuarter
	case invalidWeekHint.MatchString(text):
		return timerange.HintInvalidWeek
	default:
		return ""
	}
}

func withHint(text string, err error) error {
	hint := ErrorHint(text)
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w - Hint: %s", err, hint)
}
