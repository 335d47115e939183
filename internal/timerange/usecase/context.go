package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"

	"time-range-parser/internal/timerange"
)

// callContext is the effective zone and reference instant of one call.
type callContext struct {
	tz  string
	loc *time.Location
	now time.Time
}

// resolveContext fills in a missing zone (IP detection, then the configured
// default) and a missing reference instant (WorldTimeAPI, then the clock).
func (uc *implUseCase) resolveContext(ctx context.Context, tz, nowISO string) (callContext, error) {
	if strings.TrimSpace(tz) == "" && uc.worldTime != nil {
		detected, err := uc.worldTime.LocalTimezone(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "timerange.usecase.resolveContext: detect timezone: %v", err)
		} else {
			tz = detected
		}
	}

	loc, name, err := uc.engine.Location(tz)
	if err != nil {
		return callContext{}, err
	}

	now, err := uc.resolveNow(ctx, nowISO, name, loc)
	if err != nil {
		return callContext{}, err
	}
	return callContext{tz: name, loc: loc, now: now}, nil
}

func (uc *implUseCase) resolveNow(ctx context.Context, nowISO, tz string, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(nowISO) != "" {
		return parseNowISO(nowISO, loc)
	}
	if uc.worldTime != nil {
		now, err := uc.worldTime.CurrentTime(ctx, tz)
		if err == nil {
			return now.In(loc), nil
		}
		uc.l.Warnf(ctx, "timerange.usecase.resolveNow: %v", err)
	}
	return uc.cfg.Clock().In(loc), nil
}

// parseNowISO accepts RFC 3339 and naive ISO timestamps. Naive values are
// read in loc.
func parseNowISO(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", timerange.ErrInvalidNowISO, s)
	}
	return t.In(loc), nil
}

func (uc *implUseCase) checkText(texts ...string) error {
	for _, text := range texts {
		if n := utf8.RuneCountInString(text); n > uc.cfg.MaxTextLength {
			return fmt.Errorf("%w: %d characters, at most %d allowed", timerange.ErrTextTooLong, n, uc.cfg.MaxTextLength)
		}
	}
	return nil
}
