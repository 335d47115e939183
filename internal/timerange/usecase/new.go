package usecase

import (
	"strings"
	"time"

	"time-range-parser/internal/timerange"
	"time-range-parser/pkg/daterange"
	"time-range-parser/pkg/log"
	"time-range-parser/pkg/worldtime"
)

const (
	DefaultMaxTextLength = 256
	DefaultMaxCount      = 1000
	DefaultVersion       = "0.1.0"
)

// Config holds the service level settings around the engine.
type Config struct {
	MaxTextLength     int
	MaxCount          int
	FiscalStartMonth  int
	CustomEvents      map[string]string // lowercase phrase -> YYYY-MM-DD
	HolidayCalendarID string
	Version           string
	Clock             func() time.Time
}

// implUseCase is the private implementation of timerange.UseCase.
type implUseCase struct {
	l            log.Logger
	engine       *daterange.Engine
	worldTime    worldtime.IWorldTime
	holidays     timerange.HolidayCalendar
	cfg          Config
	customEvents map[string]string
}

// New creates a timerange UseCase. worldTime and holidays are optional; pass
// nil to disable them.
func New(l log.Logger, engine *daterange.Engine, worldTime worldtime.IWorldTime, holidays timerange.HolidayCalendar, cfg Config) *implUseCase {
	if cfg.MaxTextLength <= 0 {
		cfg.MaxTextLength = DefaultMaxTextLength
	}
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = DefaultMaxCount
	}
	if cfg.FiscalStartMonth == 0 {
		cfg.FiscalStartMonth = 1
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	events := make(map[string]string, len(cfg.CustomEvents))
	for phrase, day := range cfg.CustomEvents {
		events[strings.ToLower(strings.TrimSpace(phrase))] = strings.TrimSpace(day)
	}

	return &implUseCase{
		l:            l,
		engine:       engine,
		worldTime:    worldTime,
		holidays:     holidays,
		cfg:          cfg,
		customEvents: events,
	}
}

var _ timerange.UseCase = (*implUseCase)(nil)

// DefaultCustomEvents are the named days known out of the box.
func DefaultCustomEvents() map[string]string {
	return map[string]string{
		"black friday 2025": "2025-11-28",
		"cyber monday 2025": "2025-12-01",
		"boekjaar start":    "2026-04-01",
	}
}
