package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"time-range-parser/internal/timerange"
)

const (
	ServiceName        = "time-range-parser"
	ServiceDescription = "Natural language date/time range parser for Dutch and English"
)

// WorldTime looks up the current time of a city or zone via WorldTimeAPI.
func (uc *implUseCase) WorldTime(ctx context.Context, input timerange.WorldTimeInput) (timerange.WorldTime, error) {
	if uc.worldTime == nil {
		uc.l.Warnf(ctx, "timerange.usecase.WorldTime: called for %q while WorldTimeAPI is disabled", input.City)
		return timerange.WorldTime{}, timerange.ErrWorldTimeDisabled
	}

	city := strings.TrimSpace(input.City)
	tz := uc.engine.NormalizeTimezone(city)
	info, err := uc.worldTime.TimeInfo(ctx, tz)
	if err != nil {
		uc.l.Errorf(ctx, "timerange.usecase.WorldTime: %v", err)
		return timerange.WorldTime{}, fmt.Errorf("%w for '%s' (timezone: '%s'): %v", timerange.ErrWorldTimeUnavailable, city, tz, err)
	}

	return timerange.WorldTime{
		City:         city,
		Timezone:     tz,
		CurrentTime:  info.Datetime,
		UTCOffset:    info.UTCOffset,
		DST:          info.DST,
		WeekNumber:   info.WeekNumber,
		DayOfYear:    info.DayOfYear,
		Abbreviation: info.Abbreviation,
		Source:       timerange.SourceWorldTime,
	}, nil
}

// ServerInfo describes the service. The default zone reflects IP detection
// when WorldTimeAPI is enabled.
func (uc *implUseCase) ServerInfo(ctx context.Context) timerange.ServerInfo {
	defaultTZ := uc.engine.DefaultTimezone()
	if uc.worldTime != nil {
		if detected, err := uc.worldTime.LocalTimezone(ctx); err == nil {
			defaultTZ = detected
		}
	}

	return timerange.ServerInfo{
		Name:            ServiceName,
		Version:         uc.cfg.Version,
		Description:     ServiceDescription,
		DefaultTimezone: defaultTZ,
		Resolution:      "seconds",
		Capabilities: map[string]bool{
			"natural_language_parsing": true,
			"recurrence_expansion":     true,
			"timezone_conversion":      true,
			"duration_calculation":     true,
			"dst_awareness":            true,
			"calendar_info":            true,
			"world_time":               uc.worldTime != nil,
			"public_holidays":          uc.holidays != nil,
		},
	}
}

// Timezones lists the zones the service knows: WorldTimeAPI's list when it is
// enabled and reachable, the built-in table otherwise.
func (uc *implUseCase) Timezones(ctx context.Context) (timerange.TimezonesOutput, error) {
	if uc.worldTime != nil {
		zones, err := uc.worldTime.Timezones(ctx)
		if err == nil && len(zones) > 0 {
			return timerange.TimezonesOutput{Timezones: zones, Source: timerange.SourceWorldTime}, nil
		}
		if err != nil {
			uc.l.Warnf(ctx, "timerange.usecase.Timezones: %v", err)
		}
	}

	zones := append([]string(nil), uc.engine.Vocabulary().Timezones...)
	sort.Strings(zones)
	return timerange.TimezonesOutput{Timezones: zones, Source: timerange.SourceLocal}, nil
}
