package timerange

import (
	"context"

	"time-range-parser/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Text resolution
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)
	Convert(ctx context.Context, input ConvertInput) (ConvertOutput, error)
	ExpandRecurrence(ctx context.Context, input RecurrenceInput) (RecurrenceOutput, error)
	CalculateDuration(ctx context.Context, input DurationInput) (DurationOutput, error)

	// Zone and calendar facts
	DSTStatus(ctx context.Context, input DSTStatusInput) (DSTStatus, error)
	CalendarInfo(ctx context.Context, input CalendarInfoInput) (CalendarInfo, error)
	WorldTime(ctx context.Context, input WorldTimeInput) (WorldTime, error)
	ListHolidays(ctx context.Context, input HolidaysInput) (HolidaysOutput, error)
	Timezones(ctx context.Context) (TimezonesOutput, error)
	ServerInfo(ctx context.Context) ServerInfo
}

// HolidayCalendar lists public holidays. *gcalendar.Client implements it.
type HolidayCalendar interface {
	ListHolidays(ctx context.Context, req gcalendar.ListHolidaysRequest) ([]gcalendar.Holiday, error)
}
