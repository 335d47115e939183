package usecase

import (
	"context"

	"time-range-parser/internal/timerange"
)

func (uc *implUseCase) Convert(ctx context.Context, input timerange.ConvertInput) (timerange.ConvertOutput, error) {
	if err := uc.checkText(input.Text); err != nil {
		return timerange.ConvertOutput{}, err
	}

	cc, err := uc.resolveContext(ctx, input.SourceTimezone, input.NowISO)
	if err != nil {
		return timerange.ConvertOutput{}, err
	}
	uc.l.Infof(ctx, "timerange.usecase.Convert: text=%q from=%s to=%s", input.Text, cc.tz, input.TargetTimezone)

	conv, err := uc.engine.ConvertTimezone(ctx, input.Text, input.TargetTimezone, cc.tz, cc.now)
	if err != nil {
		return timerange.ConvertOutput{}, err
	}
	return timerange.ConvertOutput{Conversion: conv}, nil
}

func (uc *implUseCase) ExpandRecurrence(ctx context.Context, input timerange.RecurrenceInput) (timerange.RecurrenceOutput, error) {
	if err := uc.checkText(input.Text); err != nil {
		return timerange.RecurrenceOutput{}, err
	}
	if input.Count < 0 || input.Count > uc.cfg.MaxCount {
		return timerange.RecurrenceOutput{}, timerange.ErrInvalidCount
	}

	cc, err := uc.resolveContext(ctx, input.Timezone, input.NowISO)
	if err != nil {
		return timerange.RecurrenceOutput{}, err
	}
	uc.l.Infof(ctx, "timerange.usecase.ExpandRecurrence: text=%q count=%d timezone=%s", input.Text, input.Count, cc.tz)

	rec, err := uc.engine.ExpandRecurrence(ctx, input.Text, cc.tz, cc.now, input.Count)
	if err != nil {
		return timerange.RecurrenceOutput{}, err
	}
	return timerange.RecurrenceOutput{Recurrence: rec}, nil
}

func (uc *implUseCase) CalculateDuration(ctx context.Context, input timerange.DurationInput) (timerange.DurationOutput, error) {
	if err := uc.checkText(input.Start, input.End); err != nil {
		return timerange.DurationOutput{}, err
	}

	cc, err := uc.resolveContext(ctx, input.Timezone, input.NowISO)
	if err != nil {
		return timerange.DurationOutput{}, err
	}
	uc.l.Infof(ctx, "timerange.usecase.CalculateDuration: start=%q end=%q timezone=%s", input.Start, input.End, cc.tz)

	res, err := uc.engine.CalculateDuration(ctx, input.Start, input.End, cc.tz, cc.now)
	if err != nil {
		return timerange.DurationOutput{}, err
	}
	return timerange.DurationOutput{Duration: res}, nil
}
