package worldtime

import (
	"context"
	"time"
)

// IWorldTime looks up wall clock data for IANA zones.
// Implementations are safe for concurrent use.
type IWorldTime interface {
	CurrentTime(ctx context.Context, timezone string) (time.Time, error)
	TimeInfo(ctx context.Context, timezone string) (TimeInfo, error)
	LocalTimezone(ctx context.Context) (string, error)
	Timezones(ctx context.Context) ([]string, error)
}
